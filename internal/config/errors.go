package config

import "errors"

// Sentinel errors for configuration loading and validation.
var (
	// ErrInvalidMinLength indicates a minimum word length below 1.
	ErrInvalidMinLength = errors.New("config: min length must be at least 1")
	// ErrInvalidOutput indicates an unknown output format.
	ErrInvalidOutput = errors.New("config: output must be one of table, plain, json")
	// ErrMissingBoard indicates a puzzle without board tiles.
	ErrMissingBoard = errors.New("config: puzzle has no board")
	// ErrMissingLexicon indicates a puzzle without a lexicon path.
	ErrMissingLexicon = errors.New("config: puzzle has no lexicon")
)
