package search

import "unicode/utf8"

// Score returns the total points for words: each word earns one point for
// reaching minLength and one more per character beyond it, i.e.
// (len(word) - minLength) + 1. Lengths count characters, not bytes.
// Words are not re-checked against any board or dictionary.
// Returns ErrInvalidMinLength if minLength < 1.
func Score(words []string, minLength int) (int, error) {
	if minLength < 1 {
		return 0, ErrInvalidMinLength
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w) - minLength + 1
	}

	return total, nil
}
