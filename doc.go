// Package wordgrid finds dictionary words on a square board of letter
// tiles, the way Boggle-style word games are scored.
//
// 🚀 What is wordgrid?
//
//	A small, thread-safe engine that brings together:
//		• Lexicon: sorted word list with exact and prefix lookups
//		• Board: N×N immutable tile grid, 8-neighbour adjacency
//		• Search: prefix-pruned depth-first walk with per-call state
//		• Game: one lexicon + one board, safe to query concurrently
//
// Under the hood, everything is organized under four packages:
//
//	lexicon/: word list loading, Contains, HasPrefix
//	board/:   tiles, coordinates, neighbours, path spelling
//	search/:  Walk, AllWords, FindPath, Score
//	game/:    the session facade used by the wordgrid command
//
// Quick ASCII example (minimum length 3):
//
//	C A T
//	O R E     →  CAR CARE CAT CORE CORES CROW RAT TEA TEN   (score 14)
//	W S N
//
// A word is traced by stepping between horizontally, vertically or
// diagonally adjacent cells, using each cell at most once. Tiles may hold
// several letters ("qu").
//
//	go install github.com/katalvlaran/wordgrid/cmd/wordgrid@latest
package wordgrid
