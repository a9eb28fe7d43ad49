// Package files reads and writes the text documents moved between worlds
package files

//go:generate mockgen -destination=mock/mock_store.go -package=filesmock github.com/KirkDiggler/rpg-porter/internal/pkg/files Store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// Store is where exported documents are written and imported documents read
type Store interface {
	// WriteText writes content to filename inside dir, creating dir as
	// needed, and returns the full path written.
	// Returns InvalidArgument for an empty or path-like filename.
	WriteText(ctx context.Context, dir, filename string, content []byte) (string, error)

	// ReadText returns the content at path.
	// Returns NotFound when nothing exists there.
	ReadText(ctx context.Context, path string) ([]byte, error)
}

// LocalConfig configures the local filesystem store
type LocalConfig struct {
	// Root is the directory relative paths resolve against
	Root string
}

// Validate validates the configuration
func (c *LocalConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", c.Root, vb)
	return vb.Build()
}

type local struct {
	root string
}

// NewLocal creates a store over the local filesystem
func NewLocal(cfg *LocalConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &local{root: cfg.Root}, nil
}

func (s *local) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

func (s *local) WriteText(_ context.Context, dir, filename string, content []byte) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", errors.InvalidArgumentf("invalid filename %q", filename)
	}

	target := s.resolve(dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", target)
	}

	path := filepath.Join(target, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

func (s *local) ReadText(_ context.Context, path string) ([]byte, error) {
	full := s.resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("file %s not found", full)
		}
		return nil, errors.Wrapf(err, "failed to read %s", full)
	}
	return data, nil
}
