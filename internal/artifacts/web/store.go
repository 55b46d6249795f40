// Package web implements the artifact store for plain http and https
// downloads.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 5 * time.Minute

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "http" and "https" schemes.
type Store struct {
	client *http.Client
}

// NewStore creates a web store with the default HTTP client.
func NewStore() *Store {
	return NewStoreWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewStoreWithClient creates a web store with a custom HTTP client.
// Useful for testing and for clients that handle authentication.
func NewStoreWithClient(client *http.Client) *Store {
	return &Store{client: client}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "HTTPArtifactStore"
}

// Download fetches the URI into destDir and returns the file path.
// An empty destDir downloads into a fresh uniquely-named directory.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %q: unexpected status %d", uri, resp.StatusCode)
	}

	dest, err := destPath(uri, destDir)
	if err != nil {
		return "", err
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

// destPath picks the local file path for a download. The filename comes
// from the last URL path segment, falling back to "dataset" for bare
// host URIs.
func destPath(uri string, destDir string) (string, error) {
	if destDir == "" {
		destDir = filepath.Join(os.TempDir(), "trove-"+uuid.NewString())
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	name := "dataset"
	if u, err := url.Parse(uri); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			name = base
		}
	}
	return filepath.Join(destDir, name), nil
}
