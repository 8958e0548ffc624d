package board

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// New builds a Board from a flat row-major slice of N² tiles.
// It deep-copies and lowercases the input, so later changes to tiles
// do not affect the Board.
// Returns ErrEmptyBoard for an empty slice and ErrNotSquare when
// len(tiles) is not a perfect square.
// Complexity: O(N²) time and memory.
func New(tiles []string) (*Board, error) {
	// 1. Validate shape
	if len(tiles) == 0 {
		return nil, ErrEmptyBoard
	}
	n := isqrt(len(tiles))
	if n*n != len(tiles) {
		return nil, fmt.Errorf("%w: got %d tiles", ErrNotSquare, len(tiles))
	}

	// 2. Copy with case normalization
	lower := cases.Lower(language.Und)
	cells := make([]string, len(tiles))
	for i, t := range tiles {
		cells[i] = lower.String(t)
	}

	return &Board{size: n, tiles: cells}, nil
}

// isqrt returns floor(sqrt(v)) for v ≥ 0, corrected for float rounding.
func isqrt(v int) int {
	n := int(math.Sqrt(float64(v)))
	for n*n > v {
		n--
	}
	for (n+1)*(n+1) <= v {
		n++
	}

	return n
}

// Size returns N, the number of rows (and columns).
func (b *Board) Size() int {
	return b.size
}

// Len returns the number of cells, N².
func (b *Board) Len() int {
	return len(b.tiles)
}

// InBounds reports whether (row,col) lies on the board.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Index maps (row,col) to its row-major index row*N + col.
// The caller is responsible for bounds; see InBounds.
func (b *Board) Index(row, col int) int {
	return row*b.size + col
}

// Coordinate converts a row-major index back to (row,col).
func (b *Board) Coordinate(idx int) (row, col int) {
	return idx / b.size, idx % b.size
}

// TileAt returns the tile at (row,col), or ErrOutOfBounds.
// Complexity: O(1).
func (b *Board) TileAt(row, col int) (string, error) {
	if !b.InBounds(row, col) {
		return "", fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}

	return b.tiles[b.Index(row, col)], nil
}

// Tile returns the tile at row-major index idx, or ErrOutOfBounds.
func (b *Board) Tile(idx int) (string, error) {
	if idx < 0 || idx >= len(b.tiles) {
		return "", fmt.Errorf("%w: index %d on %dx%d board", ErrOutOfBounds, idx, b.size, b.size)
	}

	return b.tiles[idx], nil
}

// Tiles returns a copy of the tiles in row-major order.
func (b *Board) Tiles() []string {
	out := make([]string, len(b.tiles))
	copy(out, b.tiles)

	return out
}

// Neighbors returns the cells at Chebyshev distance 1 from (row,col),
// clipped to the board, in Offsets order.
// Returns ErrOutOfBounds if (row,col) itself is off the board.
// Complexity: O(1).
func (b *Board) Neighbors(row, col int) ([]Cell, error) {
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) {
			out = append(out, Cell{Row: r, Col: c})
		}
	}

	return out, nil
}

// Adjacent reports whether two distinct row-major indices are 8-neighbors.
// Indices off the board are never adjacent.
func (b *Board) Adjacent(i, j int) bool {
	if i == j || i < 0 || j < 0 || i >= len(b.tiles) || j >= len(b.tiles) {
		return false
	}
	ri, ci := b.Coordinate(i)
	rj, cj := b.Coordinate(j)

	return abs(ri-rj) <= 1 && abs(ci-cj) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Spell concatenates the tiles along path after checking that it is a
// simple walk of 8-adjacent cells. An empty path spells "".
// Returns ErrOutOfBounds for indices off the board and ErrInvalidPath for
// repeated or non-adjacent steps.
// Complexity: O(L) for a path of length L.
func (b *Board) Spell(path []int) (string, error) {
	var sb strings.Builder
	seen := make(map[int]struct{}, len(path))
	for i, idx := range path {
		tile, err := b.Tile(idx)
		if err != nil {
			return "", err
		}
		if _, dup := seen[idx]; dup {
			return "", fmt.Errorf("%w: index %d repeats", ErrInvalidPath, idx)
		}
		if i > 0 && !b.Adjacent(path[i-1], idx) {
			return "", fmt.Errorf("%w: %d and %d are not adjacent", ErrInvalidPath, path[i-1], idx)
		}
		seen[idx] = struct{}{}
		sb.WriteString(tile)
	}

	return sb.String(), nil
}

// Render concatenates all tiles in row-major order.
func (b *Board) Render() string {
	return strings.Join(b.tiles, "")
}

// String renders the board as N lines of space-separated tiles.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(b.tiles[r*b.size:(r+1)*b.size], " "))
	}

	return sb.String()
}
