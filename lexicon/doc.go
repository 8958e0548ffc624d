// Package lexicon holds a sorted, deduplicated set of lowercase words and
// answers the two questions a board search asks of a dictionary: is this
// string a word, and does any word start with it.
//
// What:
//
//   - Load reads line-delimited text; the first whitespace-separated token
//     of each line is a word and the rest of the line is ignored.
//   - Contains is a case-insensitive exact membership test.
//   - HasPrefix is a ceiling query: binary-search for the smallest stored
//     word ≥ p and check whether it starts with p. If any word has prefix p,
//     the smallest such word is also the smallest word ≥ p.
//
// Complexity:
//
//   - Load:      O(W log W) for W tokens (sort + dedup).
//   - Contains:  O(log W · L).
//   - HasPrefix: O(log W · L).
//
// Errors:
//
//   - ErrNotLoaded:  a query ran before any successful Load.
//   - ErrUnreadable: the word source could not be opened or read.
//
// A Lexicon is safe for concurrent use. Load swaps the whole word set under
// a write lock, so readers observe either the old or the new contents.
package lexicon
