package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words [tiles...]",
		Short: "List every valid word on the board with its score",
		Example: `  wordgrid words -l words.txt catorewsn
  wordgrid words -l words.txt qu,i,e,s,t,a,x,x,x
  wordgrid words --puzzle puzzle.yaml -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, args, needLexicon|needBoard)
			if err != nil {
				return err
			}

			return solve(cmd.OutOrStdout(), sess)
		},
	}
}

// solve prints all valid words of the session's board with their score.
func solve(w io.Writer, sess *session) error {
	words, err := sess.game.AllValidWords(sess.minLength)
	if err != nil {
		return err
	}
	score, err := sess.game.ScoreForWords(words, sess.minLength)
	if err != nil {
		return err
	}

	return renderWords(w, sess.output, wordsResult{
		Words:     words,
		Count:     len(words),
		Score:     score,
		MinLength: sess.minLength,
	})
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path WORD [tiles...]",
		Short: "Show one path that spells WORD on the board",
		Long: `Show one path that spells WORD on the board, as row-major cell indices.
The word does not have to be in the lexicon.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, args[1:], needLexicon|needBoard)
			if err != nil {
				return err
			}
			path, err := sess.game.IsOnBoard(args[0])
			if err != nil {
				return err
			}

			return renderPath(cmd.OutOrStdout(), sess.output, sess.game.CurrentBoard(), pathResult{
				Word:  args[0],
				Found: len(path) > 0,
				Path:  path,
			})
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score WORD...",
		Short: "Score the given words without checking them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, nil, needLexicon)
			if err != nil {
				return err
			}
			total, err := sess.game.ScoreForWords(args, sess.minLength)
			if err != nil {
				return err
			}

			return renderScore(cmd.OutOrStdout(), sess.output, args, sess.minLength, total)
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD",
		Short: "Report whether WORD is a lexicon word and a lexicon prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, nil, needLexicon)
			if err != nil {
				return err
			}
			isWord, err := sess.game.IsValidWord(args[0])
			if err != nil {
				return err
			}
			isPrefix, err := sess.game.IsValidPrefix(args[0])
			if err != nil {
				return err
			}

			return renderCheck(cmd.OutOrStdout(), sess.output, checkResult{
				Word:        args[0],
				ValidWord:   isWord,
				ValidPrefix: isPrefix,
			})
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board [tiles...]",
		Short: "Render the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, args, needBoard)
			if err != nil {
				return err
			}

			return renderBoard(cmd.OutOrStdout(), sess.output, sess.game.CurrentBoard())
		},
	}
}
