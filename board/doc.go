// Package board models a square grid of letter tiles as the playing surface
// of a word search game.
//
// What:
//
//   - Board wraps a flat, row-major []string of N² tiles (N ≥ 1).
//   - Tiles are lowercased on construction and may hold more than one
//     character (for example "qu").
//   - Cells are addressed by (row, col) or by the row-major index row*N + col.
//   - Neighbors enumerates the up-to-8 cells at Chebyshev distance 1,
//     clipped to the board (no wraparound), in the fixed order returned by Offsets.
//
// Why:
//
//   - Word search engines need cheap, deterministic adjacency so that two
//     runs over the same board visit cells in the same order.
//   - Paths are exchanged as row-major indices, so Index, Coordinate,
//     Adjacent and Spell convert between the two views.
//
// Complexity:
//
//   - New:       O(N²) time and memory (deep copy of the input).
//   - TileAt:    O(1).
//   - Neighbors: O(1) (at most 8 cells).
//   - Spell:     O(L) for a path of L cells.
//
// Errors:
//
//   - ErrEmptyBoard:  input slice has no tiles.
//   - ErrNotSquare:   input length is not a perfect square.
//   - ErrOutOfBounds: row, column or index outside the board.
//   - ErrInvalidPath: a path repeats a cell or steps between non-adjacent cells.
//
// A Board is immutable once built and is safe for concurrent readers.
package board
