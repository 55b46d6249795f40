// Package gdrive implements the artifact store for datasets kept in
// Google Drive, addressed as gdrive://<fileID> or gdrive://<fileID>/<name>.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "gdrive" scheme. Google Drive always requires a token.
type Store struct {
	svc           *drive.Service
	tokenProvider driven.TokenProvider
}

// NewStore creates a Google Drive store.
func NewStore(tokenProvider driven.TokenProvider) *Store {
	return &Store{tokenProvider: tokenProvider}
}

// NewStoreWithService creates a Google Drive store around an existing
// Drive service. Useful for testing.
func NewStoreWithService(svc *drive.Service) *Store {
	return &Store{svc: svc}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "GdriveArtifactStore"
}

// ensureService initializes the Drive service if not already done.
func (s *Store) ensureService(ctx context.Context) error {
	if s.svc != nil {
		return nil
	}

	token, err := s.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("gdrive: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return fmt.Errorf("gdrive: %w", err)
	}
	s.svc = svc
	return nil
}

// Download fetches the referenced file into destDir and returns its
// local path. An empty destDir downloads into a fresh uniquely-named
// directory.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	fileID, name, err := parseURI(uri)
	if err != nil {
		return "", err
	}

	if err := s.ensureService(ctx); err != nil {
		return "", err
	}

	if name == "" {
		meta, err := s.svc.Files.Get(fileID).Fields("name").Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("download %q: %w", uri, err)
		}
		name = meta.Name
	}

	resp, err := s.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %q: unexpected status %d", uri, resp.StatusCode)
	}

	if destDir == "" {
		destDir = filepath.Join(os.TempDir(), "trove-"+uuid.NewString())
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, name)
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

// parseURI splits a gdrive:// URI into the file ID and optional name.
func parseURI(uri string) (fileID, name string, err error) {
	rest, ok := strings.CutPrefix(uri, "gdrive://")
	if !ok {
		return "", "", fmt.Errorf("not a gdrive reference: %q", uri)
	}

	fileID, name, _ = strings.Cut(rest, "/")
	if fileID == "" {
		return "", "", fmt.Errorf("gdrive reference %q: missing file ID", uri)
	}
	return fileID, name, nil
}
