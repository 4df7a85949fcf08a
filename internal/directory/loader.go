package directory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	dErrors "writeyourmep/pkg/domain-errors"
)

// Loader produces a full directory snapshot.
type Loader interface {
	Load(ctx context.Context) (Directory, error)
}

// FileLoader reads the resource from a path on disk.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load returns a CodeNotFound error when the file is absent and a
// CodeInternal error when it cannot be parsed.
func (l *FileLoader) Load(ctx context.Context) (Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("directory file not found at %s", l.Path))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, fmt.Sprintf("read directory file %s", l.Path))
	}

	dir, err := Parse(raw)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("parse directory file %s", l.Path))
	}
	return dir, nil
}

// StaticLoader serves a fixed in-memory directory.
type StaticLoader struct {
	Directory Directory
	Err       error
}

func (l StaticLoader) Load(context.Context) (Directory, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Directory, nil
}

// Load never fails: any loader error is logged and an empty directory is
// returned in its place.
func Load(ctx context.Context, loader Loader, logger *slog.Logger) Directory {
	dir, err := loader.Load(ctx)
	if err != nil {
		logLoadFailure(ctx, logger, err)
		return Directory{}
	}
	if dir == nil {
		return Directory{}
	}
	return dir
}

func logLoadFailure(ctx context.Context, logger *slog.Logger, err error) {
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		logger.ErrorContext(ctx, "directory resource not found", "error", err)
	case dErrors.HasCode(err, dErrors.CodeInternal):
		logger.ErrorContext(ctx, "directory resource could not be parsed", "error", err)
	default:
		logger.ErrorContext(ctx, "directory resource could not be loaded", "error", err)
	}
}
