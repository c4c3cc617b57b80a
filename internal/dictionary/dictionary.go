// Package dictionary provides the word list used to validate submissions.
//
// Word lists are newline-delimited. Loading normalizes every entry (trim,
// uppercase) so lookups can compare against normalized submissions directly.
// A small list is embedded so the game runs without any external file.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var embeddedWords string

// Dictionary is a read-only set of uppercase words.
type Dictionary interface {
	Contains(word string) bool
	Len() int
}

// Set is a map-backed Dictionary.
type Set map[string]struct{}

// NewSet builds a Set from words, normalizing each one.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		if n, ok := normalize(w); ok {
			s[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is in the set. word must already be uppercase.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s)
}

// Parse reads one word per line from r.
// Blank lines, lines starting with '#', and entries containing anything other
// than ASCII letters are skipped.
func Parse(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, ok := normalize(line); ok {
			s[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read failed: %w", err)
	}
	return s, nil
}

// LoadFile parses the word list at path.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("dictionary: %s contains no words", path)
	}
	return s, nil
}

var (
	defaultOnce sync.Once
	defaultSet  Set
)

// Default returns the embedded word list. It is parsed once and shared, so
// callers must not modify it.
func Default() Set {
	defaultOnce.Do(func() {
		//nolint:errcheck // strings.Reader never fails
		defaultSet, _ = Parse(strings.NewReader(embeddedWords))
	})
	return defaultSet
}

// Load returns the word list at path, or the embedded list when path is empty.
func Load(path string) (Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// normalize trims and uppercases w, rejecting anything but ASCII letters.
func normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return w, true
}
