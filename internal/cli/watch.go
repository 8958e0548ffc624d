package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/internal/config"
)

const defaultDebounce = 200 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch PUZZLE",
		Short: "Re-solve a puzzle whenever it or its lexicon changes",
		Long: `Solve the puzzle file and solve it again each time the puzzle or the
lexicon it names is written. Every change reloads both from scratch.
Stops on SIGINT or SIGTERM.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := newPuzzleWatcher(args[0], debounce, loggerFrom(ctx), func(p *config.Puzzle) error {
				sess, err := puzzleSession(cmd, p)
				if err != nil {
					return err
				}

				return solve(cmd.OutOrStdout(), sess)
			})
			if err != nil {
				return err
			}

			return w.run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before re-solving")

	return cmd
}

// puzzleWatcher re-runs solve for a puzzle file after changes to the file
// or to its lexicon settle for the debounce period.
type puzzleWatcher struct {
	puzzle   string
	debounce time.Duration
	logger   *slog.Logger
	solve    func(*config.Puzzle) error

	fw      *fsnotify.Watcher
	files   map[string]struct{} // absolute paths that trigger a reload
	dirs    map[string]struct{} // directories added to fw
	lexicon string              // lexicon of the last loaded puzzle
}

func newPuzzleWatcher(path string, debounce time.Duration, logger *slog.Logger, solve func(*config.Puzzle) error) (*puzzleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cli: watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &puzzleWatcher{
		puzzle:   abs,
		debounce: debounce,
		logger:   logger,
		solve:    solve,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}, nil
}

// run solves once, then blocks until ctx is done. Only the first solve's
// error is returned; later failures are logged and watching goes on.
func (w *puzzleWatcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cli: create watcher: %w", err)
	}
	defer fw.Close()
	w.fw = fw

	// Directories are watched instead of files so that editors that
	// replace a file on save keep triggering events.
	if err = w.track(w.puzzle); err != nil {
		return err
	}
	if err = w.reload(); err != nil {
		return err
	}
	w.logger.Info("watching", "puzzle", w.puzzle, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		case <-timer.C:
			if err := w.reload(); err != nil {
				w.logger.Error("reload failed", "err", err)
			}
		}
	}
}

// reload reads the puzzle again, moves tracking to its lexicon and solves.
func (w *puzzleWatcher) reload() error {
	p, err := config.LoadPuzzle(w.puzzle)
	if err != nil {
		return err
	}
	lex, err := filepath.Abs(p.Lexicon)
	if err != nil {
		return fmt.Errorf("cli: watch %s: %w", p.Lexicon, err)
	}
	if lex != w.lexicon {
		if w.lexicon != "" && w.lexicon != w.puzzle {
			delete(w.files, w.lexicon)
		}
		if err = w.track(lex); err != nil {
			return err
		}
		w.lexicon = lex
	}

	return w.solve(p)
}

// track registers path as a trigger and watches its directory.
func (w *puzzleWatcher) track(path string) error {
	w.files[path] = struct{}{}
	dir := filepath.Dir(path)
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("cli: watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}

	return nil
}

func (w *puzzleWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.files[filepath.Clean(ev.Name)]

	return ok
}
