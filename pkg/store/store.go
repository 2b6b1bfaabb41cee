// Package store persists named scenes so networks can be rebuilt and
// re-rendered without shipping scene files around. Backends:
//   - memory: for tests and single-run tools
//   - mongo: for server deployments
//
// Records are keyed by a generated id; names are unique per store and
// resolvable with GetByName.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/fracnet/pkg/scene"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("scene not found")

	// ErrDuplicateName is returned when saving a scene whose name is
	// already taken by a different record.
	ErrDuplicateName = errors.New("scene name already exists")
)

// Record is a stored scene with identity and timestamps.
type Record struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name" bson:"name"`
	Scene     *scene.Scene `json:"scene" bson:"scene"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for scene persistence backends.
type Store interface {
	// Save stores a scene and returns its record. A scene whose name
	// matches an existing record updates that record in place.
	Save(ctx context.Context, s *scene.Scene) (*Record, error)

	// Get retrieves a record by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// GetByName retrieves a record by scene name. Returns ErrNotFound if
	// absent.
	GetByName(ctx context.Context, name string) (*Record, error)

	// List returns all records sorted by name.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-memory Store for tests and single-run tools.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	byName  map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
		byName:  make(map[string]string),
	}
}

// Save stores a scene, updating the existing record when the name matches.
func (m *MemoryStore) Save(ctx context.Context, s *scene.Scene) (*Record, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if id, ok := m.byName[s.Name]; ok {
		rec := m.records[id]
		rec.Scene = s
		rec.UpdatedAt = now
		return cloneRecord(rec), nil
	}

	rec := &Record{
		ID:        uuid.New().String(),
		Name:      s.Name,
		Scene:     s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.records[rec.ID] = rec
	m.byName[rec.Name] = rec.ID
	return cloneRecord(rec), nil
}

// Get retrieves a record by id.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// GetByName retrieves a record by scene name.
func (m *MemoryStore) GetByName(ctx context.Context, name string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(m.records[id]), nil
}

// List returns all records sorted by name.
func (m *MemoryStore) List(ctx context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a record by id.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.byName, rec.Name)
	delete(m.records, id)
	return nil
}

// Close does nothing for the in-memory store.
func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func cloneRecord(rec *Record) *Record {
	c := *rec
	return &c
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
