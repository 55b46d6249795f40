// Package github implements the artifact store for datasets kept in
// GitHub repositories, addressed as github://owner/repo/blob/ref/path.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec).
	ProactiveRate = 1.2
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store serves the "github" scheme.
type Store struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	limiter       *rate.Limiter
}

// NewStore creates a GitHub store. The token provider may report
// domain.ErrAuthRequired, in which case requests go out
// unauthenticated and only public repositories are reachable.
func NewStore(tokenProvider driven.TokenProvider) *Store {
	return &Store{
		tokenProvider: tokenProvider,
		limiter:       rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Name returns the store implementation name.
func (s *Store) Name() string {
	return "GitHubArtifactStore"
}

// ensureClient initializes the go-github client if not already done.
// Called lazily so the token is read only when a download happens.
func (s *Store) ensureClient(ctx context.Context) error {
	if s.gh != nil {
		return nil
	}

	token, err := s.tokenProvider.GetToken(ctx)
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		s.gh = gh.NewClient(nil)
		return nil
	case err != nil:
		return fmt.Errorf("get token: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	s.gh = gh.NewClient(tc)
	return nil
}

// Download fetches the referenced file into destDir and returns its
// local path. An empty destDir downloads into a fresh uniquely-named
// directory.
func (s *Store) Download(ctx context.Context, uri string, destDir string) (string, error) {
	ref, err := ParseURI(uri)
	if err != nil {
		return "", err
	}

	if err := s.ensureClient(ctx); err != nil {
		return "", err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref.Ref}
	rc, _, err := s.gh.Repositories.DownloadContents(ctx, ref.Owner, ref.Repo, ref.Path, opts)
	if err != nil {
		return "", wrapError(err, uri)
	}
	defer rc.Close()

	if destDir == "" {
		destDir = filepath.Join(os.TempDir(), "trove-"+uuid.NewString())
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, filepath.Base(ref.Path))
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("download %q: %w", uri, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

// wrapError converts go-github errors to readable download errors.
func wrapError(err error, uri string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return fmt.Errorf("download %q: github API error %d: %s",
			uri, ghErr.Response.StatusCode, ghErr.Message)
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("download %q: github rate limit exceeded, resets at %s",
			uri, rateErr.Rate.Reset.Format(time.RFC3339))
	}

	return fmt.Errorf("download %q: %w", uri, err)
}
