package search

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/wordgrid/board"
)

// AllWords returns every distinct dictionary word of at least minLength
// characters that can be traced as a simple path of adjacent tiles on b.
// Words are uppercase and sorted ascending; the result is rebuilt on every
// call and is empty (not nil) when nothing matches.
//
// Behavior:
//  1. Validate minLength and collaborators.
//  2. Walk from every cell in row-major order.
//  3. At each step, record the accumulated string if it is a word and long
//     enough; always keep expanding (longer words may share the prefix).
//
// Returns ErrInvalidMinLength, ErrNilBoard, ErrNilDictionary, or a wrapped
// dictionary error such as lexicon.ErrNotLoaded.
func AllWords(b *board.Board, dict Dictionary, minLength int, opts ...Option) ([]string, Stats, error) {
	if minLength < 1 {
		return nil, Stats{}, ErrInvalidMinLength
	}
	if b == nil {
		return nil, Stats{}, ErrNilBoard
	}

	starts := make([]int, b.Len())
	for i := range starts {
		starts[i] = i
	}

	found := make(map[string]struct{})
	stats, err := Walk(b, dict, starts, func(s Step) (Decision, error) {
		if utf8.RuneCountInString(s.Word) < minLength {
			return Continue, nil
		}
		ok, err := dict.Contains(s.Word)
		if err != nil {
			return Stop, fmt.Errorf("search: Contains(%q): %w", s.Word, err)
		}
		if ok {
			found[strings.ToUpper(s.Word)] = struct{}{}
		}

		return Continue, nil
	}, opts...)
	if err != nil {
		return nil, stats, err
	}

	words := slices.AppendSeq(make([]string, 0, len(found)), maps.Keys(found))
	slices.Sort(words)

	return words, stats, nil
}
