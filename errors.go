package rit

import (
	"errors"

	"github.com/AshhKetchup/Rit/internal/store"
)

var (
	// ErrNotFound reports that no object exists at the requested id.
	ErrNotFound = store.ErrNotFound

	// ErrCorrupt reports that an object's stored bytes could not be
	// decompressed.
	ErrCorrupt = store.ErrCorrupt

	// ErrMalformedObject reports framed bytes that violate the object
	// header or tree entry format.
	ErrMalformedObject = errors.New("rit: malformed object")

	// ErrWrongKind reports a blob-only operation applied to a tree, or
	// the reverse.
	ErrWrongKind = errors.New("rit: wrong object kind")

	// ErrInvalidEntry reports a tree entry with an empty name, a path
	// separator in the name, or a zero id.
	ErrInvalidEntry = errors.New("rit: invalid tree entry")
)
