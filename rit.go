package rit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AshhKetchup/Rit/internal/ignore"
	"github.com/AshhKetchup/Rit/internal/store"
)

const (
	// MetaDir is the reserved metadata directory at the repository root.
	MetaDir = ".rit"

	objectsDirName = "objects"
	refsDirName    = "refs"
	headFileName   = "HEAD"
	defaultHead    = "ref: refs/heads/main\n"
)

// Repository is an explicit handle to one object store. All operations go
// through a handle rather than process-wide state, so multiple stores can
// coexist in a process and tests can run against temp directories.
type Repository struct {
	root        string
	store       Store
	ignores     *ignore.Matcher
	concurrency int
}

// Init creates the metadata layout under dir: objects and refs directories
// plus a HEAD pointer at the default branch. The core never reads HEAD; it
// exists for porcelain layered on top. Init fails if dir already holds a
// repository.
func Init(dir string) error {
	metaDir := filepath.Join(dir, MetaDir)
	if _, err := os.Stat(metaDir); err == nil {
		return fmt.Errorf("repository already exists at %s", metaDir)
	}

	for _, sub := range []string{objectsDirName, refsDirName} {
		if err := os.MkdirAll(filepath.Join(metaDir, sub), 0755); err != nil {
			return fmt.Errorf("create %s dir: %w", sub, err)
		}
	}

	headPath := filepath.Join(metaDir, headFileName)
	if err := os.WriteFile(headPath, []byte(defaultHead), 0644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}

	return nil
}

// Open opens (creating the object layout if needed) the repository at dir.
func Open(dir string, opts ...OpenOption) (*Repository, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	objectsDir := filepath.Join(dir, MetaDir, objectsDirName)
	objects, err := store.NewLocalStore(objectsDir, options.CacheSize, options.CompressionLevel)
	if err != nil {
		return nil, err
	}

	matcher, err := ignore.NewMatcher(dir, options.IgnoreFile, MetaDir, ".git")
	if err != nil {
		return nil, fmt.Errorf("compile ignore rules: %w", err)
	}

	return &Repository{
		root:        dir,
		store:       objects,
		ignores:     matcher,
		concurrency: options.Concurrency,
	}, nil
}

// Root returns the directory the repository was opened at.
func (r *Repository) Root() string { return r.root }

// HashObject fingerprints data as a blob and, when persist is set, writes
// it to the store.
func (r *Repository) HashObject(ctx context.Context, data []byte, persist bool) (ObjectID, error) {
	framed := EncodeBlob(data)
	id := Fingerprint(framed)

	if persist {
		if err := r.store.Put(ctx, id.String(), framed); err != nil {
			return ObjectID{}, err
		}
	}

	return id, nil
}

// ReadObject loads and decodes the object at id, returning its kind and
// raw payload (blob content, or undecoded tree entry bytes).
func (r *Repository) ReadObject(ctx context.Context, id ObjectID) (Kind, []byte, error) {
	framed, err := r.store.Get(ctx, id.String())
	if err != nil {
		return "", nil, err
	}

	kind, payload, err := Decode(framed)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", id, err)
	}

	return kind, payload, nil
}

// ReadBlob returns the content of the blob at id.
func (r *Repository) ReadBlob(ctx context.Context, id ObjectID) ([]byte, error) {
	kind, payload, err := r.ReadObject(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind != KindBlob {
		return nil, fmt.Errorf("object %s is a %s: %w", id, kind, ErrWrongKind)
	}
	return payload, nil
}

// Has reports whether the store holds an object at id.
func (r *Repository) Has(ctx context.Context, id ObjectID) (bool, error) {
	return r.store.Has(ctx, id.String())
}

func (r *Repository) putObject(ctx context.Context, framed []byte) (ObjectID, error) {
	id := Fingerprint(framed)
	if err := r.store.Put(ctx, id.String(), framed); err != nil {
		return ObjectID{}, err
	}
	return id, nil
}
