package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AshhKetchup/Rit/internal/compression"
)

// LocalStore implements Store using the local filesystem.
//
// Storage layout:
//
//	objectsDir/
//	  ab/cd123...  (first two hex chars shard, rest is the leaf)
//
// Every object file holds the zlib-compressed framing. Writes go through a
// temp file and rename, so a reader never observes a partially written
// object and concurrent writers of the same id race harmlessly.
type LocalStore struct {
	objectsDir string
	cache      Cache
	compressor *compression.Compressor
}

func NewLocalStore(objectsDir string, cacheSize, compressionLevel int) (*LocalStore, error) {
	if err := os.MkdirAll(objectsDir, 0755); err != nil {
		return nil, fmt.Errorf("create objects dir: %w", err)
	}

	compressor, err := compression.NewCompressor(compressionLevel)
	if err != nil {
		return nil, fmt.Errorf("create compressor: %w", err)
	}

	return &LocalStore{
		objectsDir: objectsDir,
		cache:      NewObjectCache(cacheSize),
		compressor: compressor,
	}, nil
}

// Get retrieves an object's framed bytes by hex id.
func (s *LocalStore) Get(ctx context.Context, id string) ([]byte, error) {
	if data, ok := s.cache.Get(id); ok {
		return data, nil
	}

	compressed, err := os.ReadFile(s.objectPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read object %s: %w", id, err)
	}

	framed, err := s.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}

	s.cache.Add(id, framed)
	return framed, nil
}

// Put persists framed bytes under the given hex id. An object already
// present at id is left untouched: content addressing guarantees its bytes
// match, so skipping also skips redundant compression.
func (s *LocalStore) Put(ctx context.Context, id string, framed []byte) error {
	path := s.objectPath(id)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	compressed, err := s.compressor.Compress(framed)
	if err != nil {
		return fmt.Errorf("compress object %s: %w", id, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create shard dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "obj-*")
	if err != nil {
		return fmt.Errorf("create temp object: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		return fmt.Errorf("write object %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write object %s: %w", id, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store object %s: %w", id, err)
	}

	s.cache.Add(id, framed)
	return nil
}

// Has checks if an object exists.
func (s *LocalStore) Has(ctx context.Context, id string) (bool, error) {
	if s.cache.Has(id) {
		return true, nil
	}

	_, err := os.Stat(s.objectPath(id))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// objectPath returns the filesystem path for a hex id.
// Git-style sharding: objects/ab/cd123...
func (s *LocalStore) objectPath(id string) string {
	if len(id) < 2 {
		return filepath.Join(s.objectsDir, id)
	}
	return filepath.Join(s.objectsDir, id[:2], id[2:])
}
