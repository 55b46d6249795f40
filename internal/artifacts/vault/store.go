// Package vault implements the artifact store for the vault scheme.
// Vault data is mounted into the local filesystem, so the store maps
// both access forms — vault:/ URIs and /vault mount paths — onto the
// mount point and serves them like local data.
package vault

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/trovelabs/trove-cli/internal/artifacts/local"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// DefaultMount is the conventional vault mount point.
const DefaultMount = "/vault"

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "vault" scheme through the local mount.
type Store struct {
	mount string
	local *local.Store
}

// NewStore creates a vault store over the given mount point.
// An empty mount falls back to DefaultMount.
func NewStore(mount string) *Store {
	if mount == "" {
		mount = DefaultMount
	}
	return &Store{
		mount: mount,
		local: local.NewStore(),
	}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "VaultArtifactStore"
}

// Download materializes a vault reference via the mount.
// Accepts both vault:/path URIs and /vault/path mount paths.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	path, err := s.mountPath(uri)
	if err != nil {
		return "", err
	}
	return s.local.Download(ctx, path, destDir)
}

// mountPath translates either vault access form into a path under the
// mount point.
func (s *Store) mountPath(uri string) (string, error) {
	switch {
	case strings.HasPrefix(uri, "vault:"):
		rel := strings.TrimLeft(strings.TrimPrefix(uri, "vault:"), "/")
		return filepath.Join(s.mount, rel), nil
	case uri == DefaultMount:
		return s.mount, nil
	case strings.HasPrefix(uri, DefaultMount+"/"):
		rel := strings.TrimPrefix(uri, DefaultMount+"/")
		return filepath.Join(s.mount, rel), nil
	default:
		return "", fmt.Errorf("not a vault reference: %q", uri)
	}
}
