package search

import (
	"errors"
)

// Sentinel errors for search operations.
var (
	// ErrNilBoard is returned when a nil *board.Board is passed in.
	ErrNilBoard = errors.New("search: board is nil")
	// ErrNilDictionary is returned when a nil Dictionary is passed in.
	ErrNilDictionary = errors.New("search: dictionary is nil")
	// ErrInvalidMinLength indicates a minimum word length below 1.
	ErrInvalidMinLength = errors.New("search: minimum word length must be at least 1")
	// ErrEmptyWord indicates FindPath was asked for the empty string.
	ErrEmptyWord = errors.New("search: target word is empty")
)

// Dictionary is the query surface the engine needs from a word list.
// Both methods are case-insensitive. *lexicon.Lexicon implements it.
type Dictionary interface {
	// Contains reports whether word is a dictionary word.
	Contains(word string) (bool, error)
	// HasPrefix reports whether some dictionary word begins with prefix.
	HasPrefix(prefix string) (bool, error)
}

// Decision tells the engine what to do after a step.
type Decision int

const (
	// Continue expands the current cell's unvisited neighbors.
	Continue Decision = iota
	// Skip backtracks without expanding the current cell.
	Skip
	// Stop ends the whole walk, across all remaining start cells.
	Stop
)

// Step describes the engine's position after entering a cell.
//
// Path aliases the engine's internal buffer: it is valid only for the
// duration of the callback and must be copied to be kept.
type Step struct {
	// Word is the concatenation of tiles along Path.
	Word string
	// Path holds the row-major indices of the cells visited so far.
	Path []int
}

// StepFunc is called once per accepted step (after prefix pruning).
// Returning an error aborts the walk with that error.
type StepFunc func(s Step) (Decision, error)

// Stats reports how much of the search space a walk touched.
type Stats struct {
	// Nodes counts steps that passed prefix pruning.
	Nodes int
	// Pruned counts steps abandoned because no dictionary word had the prefix.
	Pruned int
}

// Option configures optional behavior of a walk.
type Option func(*Options)

// Options holds configurable parameters for Walk, AllWords and FindPath.
type Options struct {
	// OnVisit, if non-nil, observes every step that passed prefix pruning,
	// before the mode's StepFunc runs.
	OnVisit func(s Step)

	// MaxDepth, if positive, caps the number of cells in a path.
	// Default is -1 (bounded only by the board, N² cells).
	MaxDepth int
}

// DefaultOptions returns Options with no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit installs fn as an observer of accepted steps.
func WithOnVisit(fn func(s Step)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth caps paths at limit cells. Values below 1 disable the cap.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 1 {
			limit = -1
		}
		o.MaxDepth = limit
	}
}
