package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Puzzle is a board together with the lexicon and rules to solve it.
type Puzzle struct {
	// Board holds the tiles in row-major order.
	Board []string
	// Lexicon is the word list path, resolved against the puzzle's directory.
	Lexicon string
	// MinLength is the minimum word length; defaults to DefaultMinLength.
	MinLength int
	// Source is the file the puzzle was read from.
	Source string
}

// LoadPuzzle reads a YAML puzzle file:
//
//	board: "cat ore wsn"     # or a list of tiles
//	lexicon: words.txt
//	min_length: 3
func LoadPuzzle(path string) (*Puzzle, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load puzzle %s: %w", path, err)
	}

	var raw struct {
		Lexicon   string `koanf:"lexicon"`
		MinLength int    `koanf:"min_length"`
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("config: decode puzzle %s: %w", path, err)
	}

	tiles, err := boardTiles(k.Get("board"))
	if err != nil {
		return nil, fmt.Errorf("config: puzzle %s: %w", path, err)
	}

	p := &Puzzle{
		Board:     tiles,
		Lexicon:   raw.Lexicon,
		MinLength: raw.MinLength,
		Source:    path,
	}
	p.ApplyDefaults()
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("config: puzzle %s: %w", path, err)
	}

	return p, nil
}

// ApplyDefaults fills in the minimum length and resolves a relative lexicon
// path against the puzzle file's directory.
func (p *Puzzle) ApplyDefaults() {
	if p.MinLength == 0 {
		p.MinLength = DefaultMinLength
	}
	if p.Lexicon != "" && p.Source != "" && !filepath.IsAbs(p.Lexicon) {
		p.Lexicon = filepath.Join(filepath.Dir(p.Source), p.Lexicon)
	}
}

// Validate checks that the puzzle is solvable in principle. Board shape is
// left to board.New.
func (p *Puzzle) Validate() error {
	switch {
	case len(p.Board) == 0:
		return ErrMissingBoard
	case p.Lexicon == "":
		return ErrMissingLexicon
	case p.MinLength < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidMinLength, p.MinLength)
	}

	return nil
}

// boardTiles converts the raw "board" value of a puzzle file to tiles.
func boardTiles(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrMissingBoard
	case string:
		return ParseTiles([]string{t}), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, strings.TrimSpace(fmt.Sprint(e)))
		}

		return out, nil
	case []string:
		return ParseTiles(t), nil
	default:
		return nil, fmt.Errorf("%w: unsupported board value of type %T", ErrMissingBoard, v)
	}
}

// ParseTiles turns command-line style board input into tiles.
// Several arguments are used as-is, one tile each. A single argument is
// split on commas when it contains any; otherwise its whitespace is dropped
// and each remaining character becomes a tile.
func ParseTiles(args []string) []string {
	if len(args) != 1 {
		return args
	}
	s := args[0]
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}

		return out
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, string(r))
		}
	}

	return out
}
