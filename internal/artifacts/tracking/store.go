// Package tracking implements the artifact store for the logical
// schemes owned by the tracking server: runs:/, models:/, and
// trove-artifacts:/. These references name no physical location; the
// tracking server resolves them and proxies the bytes back over HTTP.
package tracking

import (
	"context"
	"fmt"
	"strings"

	"github.com/trovelabs/trove-cli/internal/artifacts/web"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "runs", "models", and "trove-artifacts" schemes by
// proxying through the configured tracking server.
type Store struct {
	baseURL string
	web     *web.Store
}

// NewStore creates a tracking store pointed at a tracking server.
// An empty baseURL is allowed; downloads then fail with a clear error.
func NewStore(baseURL string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		web:     web.NewStore(),
	}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "TrackingArtifactStore"
}

// Download resolves the logical reference through the tracking server.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("download %q: no tracking server configured", uri)
	}

	scheme, rest, ok := strings.Cut(uri, ":")
	if !ok {
		return "", fmt.Errorf("not a tracking reference: %q", uri)
	}
	rest = strings.TrimLeft(rest, "/")

	var proxyURL string
	switch scheme {
	case "runs":
		proxyURL = fmt.Sprintf("%s/api/artifacts/runs/%s", s.baseURL, rest)
	case "models":
		proxyURL = fmt.Sprintf("%s/api/artifacts/models/%s", s.baseURL, rest)
	case "trove-artifacts":
		proxyURL = fmt.Sprintf("%s/api/artifacts/%s", s.baseURL, rest)
	default:
		return "", fmt.Errorf("not a tracking reference: %q", uri)
	}

	return s.web.Download(ctx, proxyURL, destDir)
}
