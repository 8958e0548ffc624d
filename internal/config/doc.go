// Package config loads wordgrid configuration from two sources:
//
//   - Settings: CLI-wide options resolved by viper with the precedence
//     flags > WORDGRID_* environment variables > .wordgrid.yaml > defaults.
//   - Puzzle: a YAML puzzle file (board, lexicon path, minimum word length)
//     read with koanf.
//
// Board tiles may be given as a YAML list (["qu", "i", "t", "e"]) or as a
// single string. A string containing commas is split on them ("qu,i,t,e");
// any other string has its whitespace removed and contributes one tile per
// character ("cat ore wsn").
package config
