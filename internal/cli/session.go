package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/game"
	"github.com/katalvlaran/wordgrid/internal/config"
)

var (
	errNoBoard   = errors.New("cli: no board: pass tiles or --puzzle")
	errNoLexicon = errors.New("cli: no lexicon: pass --lexicon or --puzzle")
)

// need tells openSession which parts of a game a command requires.
type need int

const (
	needLexicon need = 1 << iota
	needBoard
)

// session is one loaded game plus the rules it is played with.
type session struct {
	game      *game.Game
	minLength int
	output    string
}

// openSession builds a game from settings, the optional puzzle file and
// tile arguments. Explicit --lexicon and --min-length flags and tile
// arguments take precedence over the puzzle. Parts not in needs are still
// loaded when available.
func openSession(cmd *cobra.Command, tileArgs []string, needs need) (*session, error) {
	ctx := cmd.Context()
	s := settingsFrom(ctx)
	logger := loggerFrom(ctx)

	lexPath, minLength := s.Lexicon, s.MinLength
	var tiles []string

	if s.Puzzle != "" {
		p, err := config.LoadPuzzle(s.Puzzle)
		if err != nil {
			return nil, err
		}
		tiles = p.Board
		if !cmd.Flags().Changed("lexicon") {
			lexPath = p.Lexicon
		}
		if !cmd.Flags().Changed("min-length") {
			minLength = p.MinLength
		}
	}
	if len(tileArgs) > 0 {
		tiles = config.ParseTiles(tileArgs)
	}

	if needs&needLexicon != 0 && lexPath == "" {
		return nil, errNoLexicon
	}
	if needs&needBoard != 0 && len(tiles) == 0 {
		return nil, errNoBoard
	}

	g := game.New(game.WithLogger(logger))
	if lexPath != "" {
		if err := g.LoadLexiconFile(lexPath); err != nil {
			return nil, err
		}
	}
	if len(tiles) > 0 {
		if err := g.SetBoard(tiles); err != nil {
			return nil, err
		}
	}
	logger.Debug("session ready", "lexicon", lexPath, "min_length", minLength)

	return &session{game: g, minLength: minLength, output: s.Output}, nil
}

// puzzleSession builds a session straight from a puzzle, ignoring flags.
func puzzleSession(cmd *cobra.Command, p *config.Puzzle) (*session, error) {
	g := game.New(game.WithLogger(loggerFrom(cmd.Context())))
	if err := g.LoadLexiconFile(p.Lexicon); err != nil {
		return nil, err
	}
	if err := g.SetBoard(p.Board); err != nil {
		return nil, fmt.Errorf("cli: puzzle %s: %w", p.Source, err)
	}

	return &session{
		game:      g,
		minLength: p.MinLength,
		output:    settingsFrom(cmd.Context()).Output,
	}, nil
}
