// Package game is the session-level query surface of a word search game:
// it owns the current lexicon and board and answers the questions a game
// shell asks.
//
// Operations:
//
//   - LoadLexicon / LoadLexiconFile: load (or wholesale replace) the lexicon.
//   - SetBoard: install a new N×N board from a flat row-major tile slice.
//   - AllValidWords: every traceable lexicon word of at least a minimum length.
//   - IsOnBoard: one path of row-major indices spelling a word, or empty.
//   - ScoreForWords: points for a set of words already known to be valid.
//   - IsValidWord / IsValidPrefix: lexicon queries.
//
// Errors:
//
//   - ErrNotLoaded:   a query needing the lexicon ran before LoadLexicon.
//     It wraps lexicon.ErrNotLoaded.
//   - ErrBoardNotSet: a board query ran before SetBoard.
//   - search.ErrInvalidMinLength, search.ErrEmptyWord, board.ErrNotSquare,
//     board.ErrEmptyBoard, lexicon.ErrUnreadable: invalid input or an
//     unreadable source, passed through.
//
// A Game is safe for concurrent use. Loads and SetBoard swap whole values
// under a lock; queries take a snapshot of the current board and lexicon,
// so a reload never disturbs an in-flight search and earlier results stay
// valid.
package game
