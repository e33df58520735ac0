package rit

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one entry in a tree object.
type Entry struct {
	Mode string
	Name string
	ID   ObjectID
}

// IsDir returns true if the entry points at a subtree.
func (e Entry) IsDir() bool {
	return e.Mode == ModeDir
}

// Kind returns the object kind the entry's id refers to.
func (e Entry) Kind() Kind {
	if e.IsDir() {
		return KindTree
	}
	return KindBlob
}

// EncodeBlob frames raw file content as a blob object.
// Format: "blob {size}\x00{content}"
func EncodeBlob(payload []byte) []byte {
	return frame(KindBlob, payload)
}

// EncodeTree frames directory entries as a tree object.
// Format: "tree {size}\x00{entries}", each entry "{mode} {name}\x00{raw id}".
//
// Entries are sorted lexicographically by name before framing, so the
// resulting id does not depend on the order the caller discovered them in.
func EncodeTree(entries []Entry) ([]byte, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var buf bytes.Buffer
	for _, entry := range sorted {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		buf.WriteString(entry.Mode)
		buf.WriteByte(' ')
		buf.WriteString(entry.Name)
		buf.WriteByte(0)
		buf.Write(entry.ID[:])
	}

	return frame(KindTree, buf.Bytes()), nil
}

// Decode splits framed bytes into kind and payload, validating the header.
// Tree payloads are decoded further with DecodeTree.
func Decode(framed []byte) (Kind, []byte, error) {
	idx := bytes.IndexByte(framed, 0)
	if idx == -1 {
		return "", nil, fmt.Errorf("%w: missing header terminator", ErrMalformedObject)
	}

	header := string(framed[:idx])
	payload := framed[idx+1:]

	tag, sizeStr, ok := strings.Cut(header, " ")
	if !ok {
		return "", nil, fmt.Errorf("%w: header %q", ErrMalformedObject, header)
	}

	kind := Kind(tag)
	if kind != KindBlob && kind != KindTree {
		return "", nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedObject, tag)
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 0 {
		return "", nil, fmt.Errorf("%w: bad size %q", ErrMalformedObject, sizeStr)
	}
	if size != len(payload) {
		return "", nil, fmt.Errorf("%w: header declares %d bytes, payload has %d", ErrMalformedObject, size, len(payload))
	}

	return kind, payload, nil
}

// DecodeTree parses a tree payload into its entries, in stored order.
func DecodeTree(payload []byte) ([]Entry, error) {
	var entries []Entry

	rest := payload
	for len(rest) > 0 {
		sp := bytes.IndexByte(rest, ' ')
		if sp == -1 {
			return nil, fmt.Errorf("%w: tree entry missing mode", ErrMalformedObject)
		}
		mode := string(rest[:sp])
		rest = rest[sp+1:]

		nul := bytes.IndexByte(rest, 0)
		if nul == -1 {
			return nil, fmt.Errorf("%w: tree entry missing name terminator", ErrMalformedObject)
		}
		name := string(rest[:nul])
		rest = rest[nul+1:]

		var id ObjectID
		if len(rest) < len(id) {
			return nil, fmt.Errorf("%w: truncated id for entry %q", ErrMalformedObject, name)
		}
		copy(id[:], rest)
		rest = rest[len(id):]

		entries = append(entries, Entry{Mode: mode, Name: name, ID: id})
	}

	return entries, nil
}

func frame(kind Kind, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	buf := make([]byte, len(header)+len(payload))
	copy(buf, header)
	copy(buf[len(header):], payload)
	return buf
}

func validateEntry(entry Entry) error {
	if entry.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if strings.ContainsAny(entry.Name, "/\\") {
		return fmt.Errorf("%w: name %q contains a path separator", ErrInvalidEntry, entry.Name)
	}
	if entry.Mode != ModeFile && entry.Mode != ModeDir {
		return fmt.Errorf("%w: unknown mode %q for %q", ErrInvalidEntry, entry.Mode, entry.Name)
	}
	if entry.ID.IsZero() {
		return fmt.Errorf("%w: zero id for %q", ErrInvalidEntry, entry.Name)
	}
	return nil
}
