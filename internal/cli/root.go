// Package cli provides the wordgrid command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/internal/config"
	"github.com/katalvlaran/wordgrid/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

type settingsKey struct{}

type loggerKey struct{}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wordgrid",
		Short: "Find words on a square letter board",
		Long: `wordgrid finds every dictionary word that can be traced on an N×N board
of letter tiles by moving between 8-adjacent cells without reusing a cell.

The board is given as arguments ("catorewsn", "qu,i,e,s" or one tile per
argument) or through a puzzle file (--puzzle).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			s, err := config.LoadSettings(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  s.LogLevel,
				Format: s.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if s.ConfigFile != "" {
				logger.Debug("using config file", "path", s.ConfigFile)
			}

			ctx := context.WithValue(cmd.Context(), settingsKey{}, s)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./.wordgrid.yaml or ~/.wordgrid.yaml)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (text|json)")
	pf.StringP("lexicon", "l", "", "word list file, one word per line")
	pf.IntP("min-length", "m", config.DefaultMinLength, "minimum word length")
	pf.StringP("output", "o", config.DefaultOutput, "output format (table|plain|json)")
	pf.StringP("puzzle", "p", "", "puzzle file with board, lexicon and min_length")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "plain", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newWordsCmd(),
		newPathCmd(),
		newScoreCmd(),
		newCheckCmd(),
		newBoardCmd(),
		newWatchCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return err
	}

	return nil
}

// settingsFrom returns the settings stored by the root command, or the
// defaults when the command ran without them.
func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok {
		return s
	}

	return &config.Settings{
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		MinLength: config.DefaultMinLength,
		Output:    config.DefaultOutput,
	}
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
