package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/wordgrid/board"
)

// FindPath returns one path of row-major indices whose tiles, concatenated
// in order, spell word (ignoring case). It returns an empty, non-nil slice
// when no such path exists.
//
// Behavior:
//  1. Lowercase the target; reject the empty string.
//  2. Candidate start cells are those whose tile begins with the target's
//     first character, in row-major order.
//  3. Walk from each candidate. Branches whose string is not a prefix of the
//     target are skipped; the first step whose string equals the target
//     stops the whole search and its path is returned.
//
// The dictionary still prunes every step, so a word none of whose prefixes
// the dictionary knows is never found.
// Returns ErrEmptyWord, ErrNilBoard, ErrNilDictionary, or a wrapped
// dictionary error such as lexicon.ErrNotLoaded.
func FindPath(b *board.Board, dict Dictionary, word string, opts ...Option) ([]int, Stats, error) {
	if word == "" {
		return nil, Stats{}, ErrEmptyWord
	}
	if b == nil {
		return nil, Stats{}, ErrNilBoard
	}
	target := cases.Lower(language.Und).String(word)
	first, _ := utf8.DecodeRuneInString(target)

	// 1. Candidate start cells
	tiles := b.Tiles()
	starts := make([]int, 0, len(tiles))
	for i, t := range tiles {
		if r, _ := utf8.DecodeRuneInString(t); t != "" && r == first {
			starts = append(starts, i)
		}
	}

	// 2. Search, stopping at the first full match
	found := []int{}
	stats, err := Walk(b, dict, starts, func(s Step) (Decision, error) {
		if !strings.HasPrefix(target, s.Word) {
			return Skip, nil
		}
		if len(s.Word) == len(target) {
			found = append(found, s.Path...)

			return Stop, nil
		}

		return Continue, nil
	}, opts...)
	if err != nil {
		return nil, stats, err
	}

	return found, stats, nil
}
