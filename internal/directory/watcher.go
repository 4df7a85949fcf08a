package directory

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// Reloader is the part of Store the watcher drives.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads the directory when its file changes on disk. The parent
// directory is watched so that atomic rename-over saves are seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	target   string
	reloader Reloader
	logger   *slog.Logger
	debounce time.Duration
}

// NewWatcher starts watching path immediately; events that arrive before Run
// is called are not lost. Run must be called (or Close) to release resources.
func NewWatcher(path string, reloader Reloader, logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		fsw:      fsw,
		target:   filepath.Clean(path),
		reloader: reloader,
		logger:   logger,
		debounce: debounce,
	}, nil
}

// Run processes file events until ctx is cancelled. It always returns nil on
// cancellation so it can sit inside an errgroup next to the HTTP server.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	w.logger.InfoContext(ctx, "watching directory file", "path", w.target)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.DebugContext(ctx, "directory file changed", "op", event.Op.String())
			fire = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "directory watcher error", "error", err)

		case <-fire:
			fire = nil
			// Reload logs its own failures and keeps the previous snapshot.
			_ = w.reloader.Reload(ctx)
		}
	}
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
