// Package local implements the artifact store for data already on the
// local filesystem. Downloads without an explicit destination return
// the existing path directly; with a destination the data is copied.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the empty and "file" schemes.
type Store struct{}

// NewStore creates a local filesystem store.
func NewStore() *Store {
	return &Store{}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "LocalArtifactStore"
}

// Download materializes a local reference. Without a destination the
// existing absolute path is returned as-is; with one, the file or
// directory is copied underneath it.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	path := domain.LocalPathFromURI(uri)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("local dataset %q: %w", uri, err)
	}

	if destDir == "" {
		return filepath.Abs(path)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, filepath.Base(path))
	if info.IsDir() {
		err = copyDir(ctx, path, dest)
	} else {
		err = copyFile(path, dest)
	}
	if err != nil {
		return "", fmt.Errorf("copy %q: %w", path, err)
	}
	return dest, nil
}

// copyDir recursively copies a directory tree.
func copyDir(ctx context.Context, src, dest string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// copyFile copies a single file, creating parent directories as needed.
func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
