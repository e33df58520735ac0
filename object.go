package rit

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Kind identifies the kind of object stored.
type Kind string

const (
	KindBlob Kind = "blob"
	KindTree Kind = "tree"
)

// Tree entry mode strings, compatible with git's canonical modes.
const (
	ModeFile = "100644"
	ModeDir  = "40000"
)

// ObjectID is the SHA-1 fingerprint of an object's framed bytes. The raw
// 20-byte form is what tree objects embed; String renders the usual
// 40-character lowercase hex.
type ObjectID [20]byte

// Fingerprint computes the id of framed object bytes. The hash covers the
// full framing, header included, so identical payloads stored under
// different kinds never collide.
func Fingerprint(framed []byte) ObjectID {
	return sha1.Sum(framed)
}

func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether id is the all-zero value.
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

// ParseObjectID parses a 40-character hex object id.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 2*len(id) {
		return ObjectID{}, fmt.Errorf("invalid object id %q: want %d hex characters", s, 2*len(id))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ObjectID{}, fmt.Errorf("invalid object id %q: %w", s, err)
	}
	copy(id[:], raw)
	return id, nil
}
