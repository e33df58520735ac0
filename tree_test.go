package rit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWriteTreeComposition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	writeFile(t, repo.Root(), "a.txt", "hello")
	require.NoError(t, os.Mkdir(filepath.Join(repo.Root(), "b"), 0755))

	root, err := repo.WriteTree(ctx, repo.Root())
	require.NoError(t, err)

	// Pinned: tree{"a.txt" -> blob("hello"), "b" -> empty tree}.
	assert.Equal(t, "4fde1b5f829697a5f5c1ed81307f82788a02b53a", root.String())

	entries, err := repo.ListTree(ctx, root)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{Mode: ModeFile, Name: "a.txt", ID: mustParseID(t, helloBlobID)}, entries[0])
	assert.Equal(t, Entry{Mode: ModeDir, Name: "b", ID: mustParseID(t, emptyTreeID)}, entries[1])

	// The blob and the empty subtree are persisted, not just referenced.
	data, err := repo.ReadBlob(ctx, entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	sub, err := repo.ListTree(ctx, entries[1].ID)
	require.NoError(t, err)
	assert.Empty(t, sub)
}

func TestWriteTreeEmptyDirDeterministic(t *testing.T) {
	ctx := context.Background()

	repoA := newTestRepo(t)
	repoB := newTestRepo(t)

	rootA, err := repoA.WriteTree(ctx, repoA.Root())
	require.NoError(t, err)
	rootB, err := repoB.WriteTree(ctx, repoB.Root())
	require.NoError(t, err)

	assert.Equal(t, rootA, rootB)
	assert.Equal(t, emptyTreeID, rootA.String())
}

func TestWriteTreeNested(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	writeFile(t, repo.Root(), "src/deep/nested.txt", "content")
	writeFile(t, repo.Root(), "src/main.go", "package main")
	writeFile(t, repo.Root(), "README.md", "# rit")

	root, err := repo.WriteTree(ctx, repo.Root())
	require.NoError(t, err)

	names, err := repo.TreeNames(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src"}, names)

	entries, err := repo.ListTree(ctx, root)
	require.NoError(t, err)

	src, err := repo.ListTree(ctx, entries[1].ID)
	require.NoError(t, err)
	require.Len(t, src, 2)
	assert.Equal(t, "deep", src[0].Name)
	assert.True(t, src[0].IsDir())
	assert.Equal(t, "main.go", src[1].Name)
	assert.Equal(t, KindBlob, src[1].Kind())
}

func TestWriteTreeIgnoresOrder(t *testing.T) {
	// Same contents, different creation order: identical root ids.
	ctx := context.Background()

	repoA := newTestRepo(t)
	writeFile(t, repoA.Root(), "a.txt", "one")
	writeFile(t, repoA.Root(), "z.txt", "two")

	repoB := newTestRepo(t)
	writeFile(t, repoB.Root(), "z.txt", "two")
	writeFile(t, repoB.Root(), "a.txt", "one")

	rootA, err := repoA.WriteTree(ctx, repoA.Root())
	require.NoError(t, err)
	rootB, err := repoB.WriteTree(ctx, repoB.Root())
	require.NoError(t, err)

	assert.Equal(t, rootA, rootB)
}

func TestWriteTreeSkipsMetaDir(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	writeFile(t, repo.Root(), "a.txt", "hello")

	root, err := repo.WriteTree(ctx, repo.Root())
	require.NoError(t, err)

	names, err := repo.TreeNames(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names, ".rit must never appear in a snapshot")
}

func TestWriteTreeHonorsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	writeFile(t, dir, ".ritignore", "*.log\nbuild/\n")
	writeFile(t, dir, "keep.txt", "kept")
	writeFile(t, dir, "debug.log", "dropped")
	writeFile(t, dir, "build/out.bin", "dropped")

	// Matcher is compiled at Open, so open after writing the ignore file.
	repo, err := Open(dir)
	require.NoError(t, err)

	root, err := repo.WriteTree(context.Background(), dir)
	require.NoError(t, err)

	names, err := repo.TreeNames(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{".ritignore", "keep.txt"}, names)
}

func TestWriteTreeDeduplicatesContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Many files, one distinct payload: a single blob serves them all.
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		writeFile(t, repo.Root(), name, "same content")
	}

	root, err := repo.WriteTree(ctx, repo.Root())
	require.NoError(t, err)

	entries, err := repo.ListTree(ctx, root)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, entries[1].ID, entries[2].ID)
}

func TestWriteTreeMissingDir(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.WriteTree(context.Background(), filepath.Join(repo.Root(), "no-such-dir"))
	assert.Error(t, err)
}

func TestListTreeOnBlob(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.HashObject(ctx, []byte("hello"), true)
	require.NoError(t, err)

	_, err = repo.ListTree(ctx, id)
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = repo.TreeNames(ctx, id)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestWriteTreeSerialMatchesParallel(t *testing.T) {
	ctx := context.Background()

	build := func(t *testing.T, opts ...OpenOption) ObjectID {
		repo := newTestRepo(t, opts...)
		writeFile(t, repo.Root(), "src/a.go", "package a")
		writeFile(t, repo.Root(), "src/b.go", "package b")
		writeFile(t, repo.Root(), "docs/readme.md", "docs")
		root, err := repo.WriteTree(ctx, repo.Root())
		require.NoError(t, err)
		return root
	}

	serial := build(t, WithConcurrency(1))
	parallel := build(t, WithConcurrency(8))
	assert.Equal(t, serial, parallel)
}

func mustParseID(t *testing.T, s string) ObjectID {
	t.Helper()
	id, err := ParseObjectID(s)
	require.NoError(t, err)
	return id
}
