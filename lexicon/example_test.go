package lexicon_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgrid/lexicon"
)

// ExampleLexicon_HasPrefix loads a small word list and runs both queries.
// Only the first token of each line counts.
func ExampleLexicon_HasPrefix() {
	l := lexicon.New()
	_ = l.Load(strings.NewReader("TREE 4\ntrees\ntrek\n"))

	isWord, _ := l.Contains("Tree")
	tre, _ := l.HasPrefix("tre")
	trt, _ := l.HasPrefix("trt")
	fmt.Println(l.Words(), isWord, tre, trt)

	// Output:
	// [tree trees trek] true true false
}
