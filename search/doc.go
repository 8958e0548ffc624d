// Package search implements the board word search: a backtracking walk over
// simple paths of 8-adjacent tiles, pruned by a dictionary prefix query, and
// the three operations built on it.
//
// What:
//
//   - Walk: the shared engine. From each start cell it extends the current
//     path one unvisited neighbor at a time, abandoning a branch as soon as
//     no dictionary word begins with the accumulated string. A StepFunc
//     decides per step whether to keep expanding, skip the subtree, or stop.
//   - AllWords: every distinct dictionary word of at least a minimum length
//     that can be traced on the board, uppercase, sorted.
//   - FindPath: one path of row-major indices spelling a target word, or an
//     empty path.
//   - Score: (len(word) - minLength) + 1 points per word.
//
// Determinism:
//
//   - Start cells are tried in row-major order.
//   - Neighbors are expanded in board.Offsets order.
//   - FindPath returns the first complete match in that depth-first order;
//     it makes no claim about shortest or lexicographically first paths.
//
// Concurrency:
//
//   - Every call allocates its own visitation slice and path buffer, so
//     concurrent calls over the same Board and Dictionary are safe as long as
//     the Dictionary itself is (lexicon.Lexicon is).
//
// Complexity:
//
//   - Worst case exponential in N² (simple paths on the board); in practice
//     bounded by the branching of the dictionary's prefix tree.
//   - Memory: O(N²) for visitation state and recursion depth.
//
// Errors:
//
//   - ErrNilBoard, ErrNilDictionary: missing collaborators.
//   - ErrInvalidMinLength: minLength < 1 for AllWords or Score.
//   - ErrEmptyWord: FindPath with an empty target.
//   - lexicon.ErrNotLoaded and other dictionary errors, wrapped.
package search
