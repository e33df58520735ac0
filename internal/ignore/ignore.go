// Package ignore decides which paths a snapshot skips.
package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher combines hardcoded defaults with the repository's optional
// ignore file (gitignore syntax).
type Matcher struct {
	ignorer *gitignore.GitIgnore
}

// NewMatcher compiles the matcher for a repository rooted at rootPath.
// ignoreFile is the file name looked up under rootPath (e.g. ".ritignore");
// defaults are patterns that always apply, such as the store's own metadata
// directory — indexing that would recurse into the objects being written.
func NewMatcher(rootPath, ignoreFile string, defaults ...string) (*Matcher, error) {
	path := filepath.Join(rootPath, ignoreFile)

	if _, err := os.Stat(path); err == nil {
		ignorer, err := gitignore.CompileIgnoreFileAndLines(path, defaults...)
		if err != nil {
			return nil, err
		}
		return &Matcher{ignorer: ignorer}, nil
	}

	return &Matcher{ignorer: gitignore.CompileIgnoreLines(defaults...)}, nil
}

// Match reports whether relPath (slash-separated, relative to the
// repository root) should be skipped.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	if m.ignorer.MatchesPath(relPath) {
		return true
	}
	// Directory patterns like "build/" only match with the trailing slash.
	return isDir && m.ignorer.MatchesPath(relPath+"/")
}
