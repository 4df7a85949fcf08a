package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrEmpty is reported by Check when the snapshot holds no countries.
var ErrEmpty = errors.New("directory is empty")

// Store holds the process-wide directory snapshot. Readers never block and
// always see a complete snapshot; Reload swaps in a new one atomically.
type Store struct {
	loader   Loader
	logger   *slog.Logger
	metrics  *Metrics
	snapshot atomic.Pointer[Directory]
}

// Option configures a Store.
type Option func(*Store)

func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// NewStore performs the initial load. A failed initial load leaves the
// store serving an empty directory.
func NewStore(ctx context.Context, loader Loader, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{loader: loader, logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	dir := Load(ctx, loader, logger)
	s.publish(dir)
	logger.InfoContext(ctx, "directory loaded",
		"countries", len(dir),
		"representatives", dir.Size(),
	)
	return s
}

// Snapshot returns the current directory. Callers must not mutate it.
func (s *Store) Snapshot() Directory {
	return *s.snapshot.Load()
}

// Countries returns the sorted country names of the current snapshot.
func (s *Store) Countries() []string {
	return s.Snapshot().Countries()
}

// Representatives returns the records for country in source order.
func (s *Store) Representatives(country string) ([]Representative, bool) {
	reps, ok := s.Snapshot()[country]
	return reps, ok
}

// Reload re-reads the resource. On failure the previous snapshot is kept
// and the error is returned.
func (s *Store) Reload(ctx context.Context) error {
	dir, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.incrementReload("failure")
		s.logger.WarnContext(ctx, "directory reload failed, keeping previous snapshot", "error", err)
		return err
	}
	if dir == nil {
		dir = Directory{}
	}

	s.publish(dir)
	s.metrics.incrementReload("success")
	s.logger.InfoContext(ctx, "directory reloaded",
		"countries", len(dir),
		"representatives", dir.Size(),
	)
	return nil
}

// Check is a readiness probe that fails while the directory is empty.
func (s *Store) Check(context.Context) error {
	if len(s.Snapshot()) == 0 {
		return ErrEmpty
	}
	return nil
}

func (s *Store) publish(dir Directory) {
	s.snapshot.Store(&dir)
	s.metrics.observeSnapshot(dir)
}
