package rit

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// WriteTree snapshots the directory at dir into the store and returns the
// root tree id. Files become blobs, subdirectories become subtrees; the
// reserved metadata directory and ignore-file matches are skipped.
//
// The walk is bottom-up: a subtree is fully persisted before its parent is
// encoded, because the parent embeds the child's fingerprint. Children of a
// single directory are processed by a bounded worker pool; that is safe
// because object writes are atomic and idempotent, so two siblings racing
// to store identical content cannot conflict. Any read or store failure
// aborts the whole build.
//
// Entries are sorted by name when the tree is encoded, so the root id
// depends only on directory contents, never on readdir order.
func (r *Repository) WriteTree(ctx context.Context, dir string) (ObjectID, error) {
	if dir == "" {
		dir = r.root
	}
	return r.writeTree(ctx, dir, "")
}

func (r *Repository) writeTree(ctx context.Context, dir, rel string) (ObjectID, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return ObjectID{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	// Process children in parallel using conc pool; collection order does
	// not matter because EncodeTree sorts by name.
	var mu sync.Mutex
	var entries []Entry

	p := pool.New().WithMaxGoroutines(r.concurrency).WithContext(ctx).WithCancelOnError()

	for _, de := range dirents {
		name := de.Name()
		if name == MetaDir {
			continue
		}
		// Symlinks, sockets and other irregular files have no object
		// representation and are skipped.
		if !de.IsDir() && !de.Type().IsRegular() {
			continue
		}

		relChild := path.Join(rel, name)
		if r.ignores != nil && r.ignores.Match(relChild, de.IsDir()) {
			continue
		}

		isDir := de.IsDir()
		p.Go(func(ctx context.Context) error {
			full := filepath.Join(dir, name)

			var entry Entry
			if isDir {
				id, err := r.writeTree(ctx, full, relChild)
				if err != nil {
					return err
				}
				entry = Entry{Mode: ModeDir, Name: name, ID: id}
			} else {
				data, err := os.ReadFile(full)
				if err != nil {
					return fmt.Errorf("read file %s: %w", full, err)
				}
				id, err := r.putObject(ctx, EncodeBlob(data))
				if err != nil {
					return err
				}
				entry = Entry{Mode: ModeFile, Name: name, ID: id}
			}

			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return ObjectID{}, err
	}

	framed, err := EncodeTree(entries)
	if err != nil {
		return ObjectID{}, fmt.Errorf("encode tree for %s: %w", dir, err)
	}

	return r.putObject(ctx, framed)
}
