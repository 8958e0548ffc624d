package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// New returns an empty Lexicon. Queries fail with ErrNotLoaded until Load
// succeeds.
func New() *Lexicon {
	return &Lexicon{}
}

// FromWords returns a loaded Lexicon holding the given words.
func FromWords(words ...string) *Lexicon {
	l := New()
	l.replace(normalize(words))

	return l
}

// Parse reads line-delimited words from r. Each non-blank line contributes
// its first whitespace-separated token, lowercased; trailing content on the
// line is ignored. The result is sorted and deduplicated.
// A read failure returns an error wrapping ErrUnreadable.
func Parse(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		tokens = append(tokens, fields[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	return normalize(tokens), nil
}

// Load reads words from r (see Parse) and replaces the lexicon contents.
// On error the previous contents and loaded state are kept.
func (l *Lexicon) Load(r io.Reader) error {
	words, err := Parse(r)
	if err != nil {
		return err
	}
	l.replace(words)

	return nil
}

// LoadFile opens path and loads it with Load.
func (l *Lexicon) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	if err = l.Load(f); err != nil {
		return fmt.Errorf("lexicon: load %q: %w", path, err)
	}

	return nil
}

// replace installs an already normalized word slice.
func (l *Lexicon) replace(words []string) {
	l.mu.Lock()
	l.words = words
	l.loaded = true
	l.mu.Unlock()
}

// normalize lowercases, sorts and deduplicates words.
func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, fold(w))
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// fold lowercases s. Strings that are already lowercase ASCII, which is what
// the board search produces, are returned without allocating.
func fold(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return cases.Lower(language.Und).String(s)
		}
	}

	return s
}

// Loaded reports whether a Load has succeeded.
func (l *Lexicon) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.loaded
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.words)
}

// Words returns a copy of the words in ascending order.
func (l *Lexicon) Words() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.words)
}

// Contains reports whether word is in the lexicon, ignoring case.
// Returns ErrNotLoaded before the first Load.
// Complexity: O(log W · L).
func (l *Lexicon) Contains(word string) (bool, error) {
	word = fold(word)

	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.loaded {
		return false, ErrNotLoaded
	}
	i := sort.SearchStrings(l.words, word)

	return i < len(l.words) && l.words[i] == word, nil
}

// HasPrefix reports whether some word in the lexicon begins with prefix,
// ignoring case. The empty prefix matches iff the lexicon is non-empty.
// Returns ErrNotLoaded before the first Load.
// Complexity: O(log W · L).
func (l *Lexicon) HasPrefix(prefix string) (bool, error) {
	prefix = fold(prefix)

	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.loaded {
		return false, ErrNotLoaded
	}
	// ceiling: smallest stored word >= prefix
	i := sort.SearchStrings(l.words, prefix)

	return i < len(l.words) && strings.HasPrefix(l.words[i], prefix), nil
}
