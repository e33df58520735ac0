// Package rit is a minimal content-addressable object store modeled on
// git's plumbing layer.
//
// Objects come in two kinds: blobs (raw file content) and trees (ordered
// lists of named entries pointing at other objects). Every object is framed
// as "<kind> <size>\x00<payload>" and addressed by the SHA-1 of that exact
// framing, so identical content always lands at the same id and the store
// deduplicates for free. Loose objects are zlib-compressed and sharded by
// the first two hex characters of the id, which keeps the layout
// bit-compatible with git's.
//
// Basic usage:
//
//	_ = rit.Init(dir)
//	repo, _ := rit.Open(dir)
//
//	// Store file content as a blob
//	id, _ := repo.HashObject(ctx, []byte("hello"), true)
//
//	// Read it back
//	data, _ := repo.ReadBlob(ctx, id)
//
//	// Snapshot a whole directory into one root id
//	root, _ := repo.WriteTree(ctx, dir)
//
//	// Enumerate a tree
//	entries, _ := repo.ListTree(ctx, root)
//	for _, e := range entries {
//		fmt.Println(e.Mode, e.Kind(), e.ID, e.Name)
//	}
//
// Identical directory contents always produce the same root id: tree
// entries are sorted by name before framing, so snapshot order never leaks
// into fingerprints.
package rit
