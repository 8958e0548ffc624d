package lexicon_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/lexicon"
)

func TestNotLoaded(t *testing.T) {
	l := lexicon.New()
	assert.False(t, l.Loaded())

	ok, err := l.Contains("cat")
	assert.False(t, ok)
	assert.ErrorIs(t, err, lexicon.ErrNotLoaded)

	ok, err = l.HasPrefix("c")
	assert.False(t, ok)
	assert.ErrorIs(t, err, lexicon.ErrNotLoaded)
}

// TestLoad_Format covers first-token-per-line, case folding, blank lines and duplicates.
func TestLoad_Format(t *testing.T) {
	src := "Cat 12 noun\n\n  dog\nCAT\nbird\tflies\n   \nzebra"
	l := lexicon.New()
	require.NoError(t, l.Load(strings.NewReader(src)))

	assert.True(t, l.Loaded())
	assert.Equal(t, []string{"bird", "cat", "dog", "zebra"}, l.Words())
	assert.Equal(t, 4, l.Len())
}

func TestLoad_EmptySourceIsLoaded(t *testing.T) {
	l := lexicon.New()
	require.NoError(t, l.Load(strings.NewReader("")))
	assert.True(t, l.Loaded())
	assert.Zero(t, l.Len())

	ok, err := l.HasPrefix("")
	require.NoError(t, err)
	assert.False(t, ok, "empty lexicon has no prefixes")
}

// TestLoad_Replaces verifies a second Load fully replaces prior contents.
func TestLoad_Replaces(t *testing.T) {
	l := lexicon.FromWords("alpha", "beta")
	require.NoError(t, l.Load(strings.NewReader("gamma\n")))

	ok, err := l.Contains("alpha")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = l.Contains("gamma")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLoad_ReadErrorKeepsContents checks ResourceError reporting and that a failed
// load leaves the previous word set in place.
func TestLoad_ReadErrorKeepsContents(t *testing.T) {
	l := lexicon.FromWords("keep")
	boom := errors.New("disk on fire")

	err := l.Load(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, lexicon.ErrUnreadable)
	assert.ErrorIs(t, err, boom)

	ok, err := l.Contains("keep")
	require.NoError(t, err)
	assert.True(t, ok)

	fresh := lexicon.New()
	require.Error(t, fresh.Load(iotest.ErrReader(boom)))
	assert.False(t, fresh.Loaded(), "failed first load must not mark the lexicon loaded")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nBanana\n"), 0o644))

	l := lexicon.New()
	require.NoError(t, l.LoadFile(path))
	assert.Equal(t, []string{"apple", "banana"}, l.Words())

	err := l.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, lexicon.ErrUnreadable)
	assert.Equal(t, 2, l.Len())
}

func TestContains(t *testing.T) {
	l := lexicon.FromWords("cat", "catalog", "dog")
	cases := []struct {
		in   string
		want bool
	}{
		{"cat", true},
		{"CAT", true},
		{"Catalog", true},
		{"cata", false},
		{"ca", false},
		{"dogs", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := l.Contains(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Contains(%q)", tc.in)
	}
}

func TestHasPrefix(t *testing.T) {
	l := lexicon.FromWords("cat", "catalog", "dog")
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"c", true},
		{"CATA", true},
		{"catalog", true},
		{"catalogs", false},
		{"cb", false},
		{"d", true},
		{"e", false},
		{"zzz", false},
		{"a", false},
	}
	for _, tc := range cases {
		got, err := l.HasPrefix(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "HasPrefix(%q)", tc.in)
	}
}

// TestHasPrefix_AgreesWithLinearScan cross-checks the ceiling query against
// a brute-force scan over every prefix of every word plus some misses.
func TestHasPrefix_AgreesWithLinearScan(t *testing.T) {
	words := []string{"a", "ab", "abc", "abd", "b", "ba", "bead", "beat", "zoo"}
	l := lexicon.FromWords(words...)
	probes := []string{"", "abe", "bea", "beb", "be", "z", "zo", "zoom", "c", "aa"}
	for _, w := range words {
		for i := 0; i <= len(w); i++ {
			probes = append(probes, w[:i])
		}
	}
	for _, p := range probes {
		want := false
		for _, w := range words {
			if strings.HasPrefix(w, p) {
				want = true

				break
			}
		}
		got, err := l.HasPrefix(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "HasPrefix(%q)", p)
	}
}

// TestConcurrentQueriesAndReload runs readers against a lexicon while it is
// being reloaded; every read must see a complete word set.
func TestConcurrentQueriesAndReload(t *testing.T) {
	l := lexicon.FromWords("one", "two")
	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = l.Load(strings.NewReader("one\ntwo\nthree\n"))
		}
	}()
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ok, err := l.Contains("two")
				assert.NoError(t, err)
				assert.True(t, ok)
				ok, err = l.HasPrefix("on")
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
