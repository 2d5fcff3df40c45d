// Package locator derives shard paths from words and finds the first
// existing shard file across an ordered list of dictionary roots.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taranathan/dibble/internal/domain"
)

// ShardPath returns the root-relative path of the shard file that holds
// word, which must be non-empty. The word is lowercased; one-letter words
// map to "f/f.json", longer words to "f/fs.json" where f and s are the
// first two letters. The layout, including the one-letter degenerate
// case, is a compatibility contract with pre-existing shard files.
func ShardPath(word string) string {
	runes := []rune(strings.ToLower(word))
	first := string(runes[0])
	if len(runes) == 1 {
		return filepath.Join(first, first+".json")
	}
	return filepath.Join(first, first+string(runes[1])+".json")
}

// Locator probes an ordered list of dictionary roots for shard files.
// Earlier roots win.
type Locator struct {
	roots []string
}

// New returns a Locator over roots, probed in the given order.
func New(roots ...string) *Locator {
	return &Locator{roots: roots}
}

// Locate reads the shard file that would hold word from the first root
// that has it, returning the file contents and the path they came from.
// A root without the file means "try the next root"; only when every root
// misses does Locate return a *NotFoundError. Any other read failure is
// returned as-is.
func (l *Locator) Locate(word string) ([]byte, string, error) {
	rel := ShardPath(word)

	searched := make([]string, 0, len(l.roots))
	for _, root := range l.roots {
		path := filepath.Join(root, rel)
		searched = append(searched, path)

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("read shard: %w", err)
		}
		return data, path, nil
	}

	return nil, "", &NotFoundError{Word: word, Searched: searched}
}

// NotFoundError reports that no searched root held the word's shard.
// Searched lists every probed path in search order: local, user, system.
type NotFoundError struct {
	Word     string
	Searched []string
}

// Error lists the user and system paths, the installed locations a user
// can actually fix; the development-local path is deliberately omitted.
func (e *NotFoundError) Error() string {
	paths := e.Searched
	if len(paths) == 3 {
		paths = paths[1:]
	}

	var b strings.Builder
	b.WriteString("dictionary file not found. Searched:")
	for _, p := range paths {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

func (e *NotFoundError) Unwrap() error { return domain.ErrNotFound }
