package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, one file per
// key. It is the default backend for CLI runs, where a local directory
// survives between invocations and no server is available.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// cacheEntry wraps cached data with its expiration.
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value from the cache. Corrupt or expired entries are
// removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in the cache. A zero ttl stores it without
// expiration; a negative ttl stores the entry already expired.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := cacheEntry{
		Data: data,
	}
	if ttl != 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path, sharding by the first two hash
// characters so no single directory accumulates every entry.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	subdir := hash[:2]
	filename := hash[2:] + ".json"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
