package lexicon

import (
	"errors"
	"sync"
)

// Sentinel errors for lexicon operations.
var (
	// ErrNotLoaded indicates a query against a lexicon that was never loaded.
	ErrNotLoaded = errors.New("lexicon: not loaded")
	// ErrUnreadable indicates the word source could not be opened or read.
	ErrUnreadable = errors.New("lexicon: word source unreadable")
)

// Lexicon is an immutable-after-load sorted word set.
//
// mu guards words and loaded; Load replaces both wholesale.
type Lexicon struct {
	mu     sync.RWMutex
	words  []string // sorted ascending, unique, lowercase
	loaded bool
}
