package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/fracnet/pkg/scene"
)

// MongoStore persists scenes in a MongoDB collection. Scene names carry a
// unique index so concurrent saves cannot create duplicates.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database name (default "fracnet").
	Database string

	// Collection name (default "scenes").
	Collection string
}

// NewMongoStore connects to MongoDB, verifies the connection, and ensures
// the unique name index.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "fracnet"
	}
	if cfg.Collection == "" {
		cfg.Collection = "scenes"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create name index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save stores a scene, updating the existing record when the name matches.
func (m *MongoStore) Save(ctx context.Context, s *scene.Scene) (*Record, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var existing Record
	err := m.coll.FindOne(ctx, bson.M{"name": s.Name}).Decode(&existing)
	switch {
	case err == nil:
		existing.Scene = s
		existing.UpdatedAt = now
		if _, err := m.coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, &existing); err != nil {
			return nil, fmt.Errorf("update scene %q: %w", s.Name, err)
		}
		return &existing, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		rec := &Record{
			ID:        uuid.New().String(),
			Name:      s.Name,
			Scene:     s,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := m.coll.InsertOne(ctx, rec); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateName
			}
			return nil, fmt.Errorf("insert scene %q: %w", s.Name, err)
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("lookup scene %q: %w", s.Name, err)
	}
}

// Get retrieves a record by id.
func (m *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	return m.findOne(ctx, bson.M{"_id": id})
}

// GetByName retrieves a record by scene name.
func (m *MongoStore) GetByName(ctx context.Context, name string) (*Record, error) {
	return m.findOne(ctx, bson.M{"name": name})
}

func (m *MongoStore) findOne(ctx context.Context, filter bson.M) (*Record, error) {
	var rec Record
	err := m.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find scene: %w", err)
	}
	return &rec, nil
}

// List returns all records sorted by name.
func (m *MongoStore) List(ctx context.Context) ([]*Record, error) {
	cur, err := m.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode scenes: %w", err)
	}
	return out, nil
}

// Delete removes a record by id.
func (m *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete scene: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
