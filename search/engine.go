package search

import (
	"fmt"

	"github.com/katalvlaran/wordgrid/board"
)

// walker owns the mutable state of a single Walk call.
type walker struct {
	board   *board.Board
	tiles   []string // row-major snapshot of board tiles
	dict    Dictionary
	step    StepFunc
	opts    Options
	visited []bool // true while the cell is on the current path
	path    []int  // current path, row-major indices
	stats   Stats
}

// Walk runs the backtracking engine from each index in starts, in order,
// until every subtree is exhausted or fn returns Stop.
// The dictionary is probed once up front, so an unloaded dictionary fails
// even when starts is empty.
// Returns ErrNilBoard, ErrNilDictionary, board.ErrOutOfBounds for a bad start
// index, or any error from the dictionary or fn.
func Walk(b *board.Board, dict Dictionary, starts []int, fn StepFunc, opts ...Option) (Stats, error) {
	// 1. Validate collaborators
	if b == nil {
		return Stats{}, ErrNilBoard
	}
	if dict == nil {
		return Stats{}, ErrNilDictionary
	}
	if _, err := dict.HasPrefix(""); err != nil {
		return Stats{}, fmt.Errorf("search: dictionary: %w", err)
	}
	for _, s := range starts {
		if _, err := b.Tile(s); err != nil {
			return Stats{}, fmt.Errorf("search: start cell: %w", err)
		}
	}

	if fn == nil {
		fn = func(Step) (Decision, error) { return Continue, nil }
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, opt := range opts {
		opt(&wopts)
	}

	// 3. Per-call state
	w := &walker{
		board:   b,
		tiles:   b.Tiles(),
		dict:    dict,
		step:    fn,
		opts:    wopts,
		visited: make([]bool, b.Len()),
		path:    make([]int, 0, b.Len()),
	}

	// 4. One depth-first tree per start cell
	for _, s := range starts {
		stop, err := w.walk(s, "")
		if err != nil {
			return w.stats, err
		}
		if stop {
			break
		}
	}

	return w.stats, nil
}

// walk enters cell idx with the string accumulated so far and explores its
// subtree. It reports whether the search must stop entirely.
// The visited flag and path are restored before returning.
func (w *walker) walk(idx int, prefix string) (bool, error) {
	word := prefix + w.tiles[idx]

	// 1. Prefix pruning
	ok, err := w.dict.HasPrefix(word)
	if err != nil {
		return false, fmt.Errorf("search: HasPrefix(%q): %w", word, err)
	}
	if !ok {
		w.stats.Pruned++

		return false, nil
	}

	// 2. Enter the cell; undo on return
	w.visited[idx] = true
	w.path = append(w.path, idx)
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.visited[idx] = false
	}()
	w.stats.Nodes++

	// 3. Hooks and the mode decision
	s := Step{Word: word, Path: w.path}
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(s)
	}
	dec, err := w.step(s)
	if err != nil {
		return false, err
	}
	switch dec {
	case Stop:
		return true, nil
	case Skip:
		return false, nil
	}
	if w.opts.MaxDepth > 0 && len(w.path) >= w.opts.MaxDepth {
		return false, nil
	}

	// 4. Expand unvisited neighbors in Offsets order
	row, col := w.board.Coordinate(idx)
	for _, d := range board.Offsets() {
		r, c := row+d[0], col+d[1]
		if !w.board.InBounds(r, c) {
			continue
		}
		next := w.board.Index(r, c)
		if w.visited[next] {
			continue
		}
		stop, err := w.walk(next, word)
		if err != nil || stop {
			return stop, err
		}
	}

	return false, nil
}
