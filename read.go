package rit

import (
	"context"
	"fmt"
)

// ListTree returns the entries of the tree at id, in stored order.
func (r *Repository) ListTree(ctx context.Context, id ObjectID) ([]Entry, error) {
	kind, payload, err := r.ReadObject(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind != KindTree {
		return nil, fmt.Errorf("object %s is a %s: %w", id, kind, ErrWrongKind)
	}
	return DecodeTree(payload)
}

// TreeNames returns just the entry names of the tree at id, for
// lightweight listings.
func (r *Repository) TreeNames(ctx context.Context, id ObjectID) ([]string, error) {
	entries, err := r.ListTree(ctx, id)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names, nil
}
