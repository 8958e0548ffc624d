package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/lexicon"
)

// abc3 is the 3×3 board
//
//	A B C
//	D E F
//	G H I
var abc3 = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

func mustBoard(t testing.TB, tiles ...string) *board.Board {
	t.Helper()
	b, err := board.New(tiles)
	require.NoError(t, err)

	return b
}

// failingDict returns err from every query; used to check error propagation.
type failingDict struct{ err error }

func (d failingDict) Contains(string) (bool, error)  { return false, d.err }
func (d failingDict) HasPrefix(string) (bool, error) { return false, d.err }

// containsFails answers prefixes from the wrapped lexicon but fails Contains.
type containsFails struct {
	*lexicon.Lexicon
	err error
}

func (d containsFails) Contains(string) (bool, error) { return false, d.err }

var errBoom = errors.New("boom")

// bruteOnBoard reports whether word can be traced on b without any
// dictionary pruning. It is an independent oracle for AllWords/FindPath.
func bruteOnBoard(b *board.Board, word string) bool {
	tiles := b.Tiles()
	visited := make([]bool, len(tiles))
	var dfs func(idx int, rest string) bool
	dfs = func(idx int, rest string) bool {
		t := tiles[idx]
		if len(t) > len(rest) || rest[:len(t)] != t {
			return false
		}
		rest = rest[len(t):]
		if rest == "" {
			return true
		}
		visited[idx] = true
		defer func() { visited[idx] = false }()
		for j := range tiles {
			if !visited[j] && b.Adjacent(idx, j) && dfs(j, rest) {
				return true
			}
		}

		return false
	}
	for i := range tiles {
		if dfs(i, word) {
			return true
		}
	}

	return false
}
