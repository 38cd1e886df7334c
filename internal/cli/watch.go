package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler"
	"github.com/syssam/objcgen/compiler/load"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	var (
		flags    genFlags
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch [schema-path]",
		Short: "Regenerate managers whenever a schema file changes",
		Long: `Generate the managers once, then watch the schema files and regenerate
on every change until interrupted. Generation errors are logged and do not
stop the watcher.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd, true)
			if err != nil {
				return err
			}
			w, err := NewWatcher(schemaPath(args), debounce, cfg.Log(), func(ctx context.Context) error {
				return compiler.Generate(ctx, schemaPath(args), cfg)
			})
			if err != nil {
				return err
			}
			return w.Watch(cmd.Context())
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "quiet period before regenerating")
	return cmd
}

// Watcher runs a function on start and after every burst of changes to the
// schema files of a path.
type Watcher struct {
	dir      string
	match    func(string) bool
	debounce time.Duration
	log      *slog.Logger
	run      func(context.Context) error
}

// NewWatcher returns a watcher of path, a schema file or a directory.
func NewWatcher(path string, debounce time.Duration, log *slog.Logger, run func(context.Context) error) (*Watcher, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{dir: path, match: load.IsSchemaFile, debounce: debounce, log: log, run: run}
	if !fi.IsDir() {
		file := filepath.Clean(path)
		w.dir = filepath.Dir(file)
		w.match = func(name string) bool { return filepath.Clean(name) == file }
	}
	return w, nil
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.runOnce(ctx)
	w.log.Info("watching schema files", "dir", w.dir)

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !w.match(ev.Name) {
				continue
			}
			w.log.Debug("schema changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.AfterFunc(w.debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch failed", "err", err)
		case <-fire:
			w.runOnce(ctx)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	start := time.Now()
	if err := w.run(ctx); err != nil {
		w.log.Error(err.Error())
		return
	}
	w.log.Debug("regenerated", "took", time.Since(start).Round(time.Millisecond))
}
