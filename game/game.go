package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/lexicon"
	"github.com/katalvlaran/wordgrid/search"
)

// Sentinel errors for game operations.
var (
	// ErrNotLoaded indicates the lexicon has not been loaded yet.
	ErrNotLoaded = fmt.Errorf("game: %w", lexicon.ErrNotLoaded)
	// ErrBoardNotSet indicates no board has been set yet.
	ErrBoardNotSet = errors.New("game: board not set")
)

// Option configures a Game before first use.
type Option func(*Game)

// WithLogger sets the logger used for per-call diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLexicon installs an already loaded lexicon.
func WithLexicon(l *lexicon.Lexicon) Option {
	return func(g *Game) {
		if l != nil {
			g.lex = l
		}
	}
}

// Game holds the current lexicon and board of one solving session.
//
// mu guards lex and board; both are replaced, never mutated, by the Game.
type Game struct {
	mu     sync.RWMutex
	lex    *lexicon.Lexicon
	board  *board.Board
	logger *slog.Logger
}

// New returns a Game with an empty lexicon and no board.
func New(opts ...Option) *Game {
	g := &Game{
		lex:    lexicon.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// LoadLexicon reads a word list from r and replaces the current lexicon.
// On error the previous lexicon stays in place; read failures wrap
// lexicon.ErrUnreadable.
func (g *Game) LoadLexicon(r io.Reader) error {
	fresh := lexicon.New()
	if err := fresh.Load(r); err != nil {
		return fmt.Errorf("game: load lexicon: %w", err)
	}
	g.installLexicon(fresh)

	return nil
}

// LoadLexiconFile is LoadLexicon for a file path.
func (g *Game) LoadLexiconFile(path string) error {
	fresh := lexicon.New()
	if err := fresh.LoadFile(path); err != nil {
		return fmt.Errorf("game: load lexicon: %w", err)
	}
	g.installLexicon(fresh)

	return nil
}

func (g *Game) installLexicon(l *lexicon.Lexicon) {
	g.mu.Lock()
	g.lex = l
	g.mu.Unlock()
	g.logger.Debug("lexicon loaded", "words", l.Len())
}

// SetBoard replaces the board with one built from tiles, a flat row-major
// slice whose length must be a perfect square. On error the previous board
// is kept.
func (g *Game) SetBoard(tiles []string) error {
	b, err := board.New(tiles)
	if err != nil {
		return fmt.Errorf("game: set board: %w", err)
	}
	g.mu.Lock()
	g.board = b
	g.mu.Unlock()
	g.logger.Debug("board set", "size", b.Size(), "tiles", b.Render())

	return nil
}

// CurrentBoard returns the current board, or nil before SetBoard.
func (g *Game) CurrentBoard() *board.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.board
}

// Board returns the row-major concatenation of all tiles.
func (g *Game) Board() (string, error) {
	b := g.CurrentBoard()
	if b == nil {
		return "", ErrBoardNotSet
	}

	return b.Render(), nil
}

// snapshot returns the current lexicon and board after checking that the
// lexicon is loaded and, when needBoard is set, that a board exists.
func (g *Game) snapshot(needBoard bool) (*lexicon.Lexicon, *board.Board, error) {
	g.mu.RLock()
	lex, b := g.lex, g.board
	g.mu.RUnlock()

	if !lex.Loaded() {
		return nil, nil, ErrNotLoaded
	}
	if needBoard && b == nil {
		return nil, nil, ErrBoardNotSet
	}

	return lex, b, nil
}

// AllValidWords returns every lexicon word of at least minLength characters
// that can be traced on the board, uppercase and sorted.
func (g *Game) AllValidWords(minLength int) ([]string, error) {
	if minLength < 1 {
		return nil, search.ErrInvalidMinLength
	}
	lex, b, err := g.snapshot(true)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	words, stats, err := search.AllWords(b, lex, minLength)
	if err != nil {
		return nil, fmt.Errorf("game: all valid words: %w", err)
	}
	g.logger.Debug("all valid words",
		"min_length", minLength,
		"found", len(words),
		"nodes", stats.Nodes,
		"pruned", stats.Pruned,
		"dur", time.Since(start),
	)

	return words, nil
}

// IsOnBoard returns the row-major indices of one path spelling word, or an
// empty slice when the word cannot be traced.
func (g *Game) IsOnBoard(word string) ([]int, error) {
	if word == "" {
		return nil, search.ErrEmptyWord
	}
	lex, b, err := g.snapshot(true)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	path, stats, err := search.FindPath(b, lex, word)
	if err != nil {
		return nil, fmt.Errorf("game: is on board: %w", err)
	}
	g.logger.Debug("is on board",
		"word", word,
		"path", path,
		"nodes", stats.Nodes,
		"pruned", stats.Pruned,
		"dur", time.Since(start),
	)

	return path, nil
}

// ScoreForWords scores words without re-validating them; callers pass
// words already confirmed by AllValidWords.
func (g *Game) ScoreForWords(words []string, minLength int) (int, error) {
	if minLength < 1 {
		return 0, search.ErrInvalidMinLength
	}
	if _, _, err := g.snapshot(false); err != nil {
		return 0, err
	}

	return search.Score(words, minLength)
}

// IsValidWord reports whether word is in the lexicon, ignoring case.
func (g *Game) IsValidWord(word string) (bool, error) {
	lex, _, err := g.snapshot(false)
	if err != nil {
		return false, err
	}

	return lex.Contains(word)
}

// IsValidPrefix reports whether some lexicon word begins with prefix,
// ignoring case.
func (g *Game) IsValidPrefix(prefix string) (bool, error) {
	lex, _, err := g.snapshot(false)
	if err != nil {
		return false, err
	}

	return lex.HasPrefix(prefix)
}
