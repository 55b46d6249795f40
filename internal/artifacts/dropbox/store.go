// Package dropbox implements the artifact store for datasets kept in
// Dropbox, addressed as dropbox:///path/to/file.
package dropbox

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/google/uuid"

	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "dropbox" scheme. Dropbox always requires a token.
type Store struct {
	client        files.Client
	tokenProvider driven.TokenProvider
}

// NewStore creates a Dropbox store.
func NewStore(tokenProvider driven.TokenProvider) *Store {
	return &Store{tokenProvider: tokenProvider}
}

// NewStoreWithClient creates a Dropbox store around an existing files
// client. Useful for testing.
func NewStoreWithClient(client files.Client) *Store {
	return &Store{client: client}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "DropboxArtifactStore"
}

// ensureClient initializes the Dropbox client if not already done.
func (s *Store) ensureClient(ctx context.Context) error {
	if s.client != nil {
		return nil
	}

	token, err := s.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("dropbox: %w", err)
	}

	s.client = files.New(dropbox.Config{Token: token})
	return nil
}

// Download fetches the referenced file into destDir and returns its
// local path. An empty destDir downloads into a fresh uniquely-named
// directory.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	dropboxPath, err := pathFromURI(uri)
	if err != nil {
		return "", err
	}

	if err := s.ensureClient(ctx); err != nil {
		return "", err
	}

	meta, content, err := s.client.Download(files.NewDownloadArg(dropboxPath))
	if err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	defer content.Close()

	if destDir == "" {
		destDir = filepath.Join(os.TempDir(), "trove-"+uuid.NewString())
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, meta.Name)
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

// pathFromURI converts a dropbox:// URI into an API path, which must
// start with "/".
func pathFromURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "dropbox://")
	if !ok {
		return "", fmt.Errorf("not a dropbox reference: %q", uri)
	}
	rest = strings.TrimLeft(rest, "/")
	if rest == "" {
		return "", fmt.Errorf("dropbox reference %q: empty path", uri)
	}
	return "/" + rest, nil
}
