package board

import (
	"errors"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyBoard indicates the input tile slice is empty.
	ErrEmptyBoard = errors.New("board: at least one tile is required")
	// ErrNotSquare indicates the tile count is not a perfect square.
	ErrNotSquare = errors.New("board: tile count must be a perfect square")
	// ErrOutOfBounds indicates a row, column or index outside [0,N).
	ErrOutOfBounds = errors.New("board: position out of bounds")
	// ErrInvalidPath indicates a path that is not a simple 8-adjacent walk.
	ErrInvalidPath = errors.New("board: path is not a simple adjacent walk")
)

// offsets lists the relative (row, col) steps to the 8 neighbors of a cell
// in visiting order: the row above left to right, then left and right on the
// same row, then the row below left to right.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Offsets returns the relative (row, col) steps to the 8 neighbors of a
// cell in the order Neighbors and every search visit them.
// The result is a copy.
func Offsets() [8][2]int {
	return offsets
}

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// Board is an immutable N×N grid of lowercase tiles stored in row-major order.
type Board struct {
	size  int      // N
	tiles []string // len == N*N, tiles[row*N+col]
}
