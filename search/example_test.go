package search_test

import (
	"fmt"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/lexicon"
	"github.com/katalvlaran/wordgrid/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: AllWords
////////////////////////////////////////////////////////////////////////////////

// ExampleAllWords enumerates the words of at least three letters on a 3×3
// board and scores them.
//
//	C A T
//	O R E
//	W S N
func ExampleAllWords() {
	b, _ := board.New([]string{"C", "A", "T", "O", "R", "E", "W", "S", "N"})
	lex := lexicon.FromWords("cat", "car", "care", "core", "cores", "crow", "rat", "tea", "ten", "zebra")

	words, _, _ := search.AllWords(b, lex, 3)
	score, _ := search.Score(words, 3)
	fmt.Println(words)
	fmt.Println("score:", score)

	// Output:
	// [CAR CARE CAT CORE CORES CROW RAT TEA TEN]
	// score: 14
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath locates one path for a word and shows that an unreachable
// arrangement yields an empty path.
func ExampleFindPath() {
	b, _ := board.New([]string{"C", "A", "T", "O", "R", "E", "W", "S", "N"})
	lex := lexicon.FromWords("cores", "ton")

	path, _, _ := search.FindPath(b, lex, "CORES")
	spelled, _ := b.Spell(path)
	fmt.Println(path, spelled)

	path, _, _ = search.FindPath(b, lex, "ton")
	fmt.Println(path)

	// Output:
	// [0 3 4 5 7] cores
	// []
}
