package artifacts

import (
	"github.com/trovelabs/trove-cli/internal/adapters/driven/auth"
	"github.com/trovelabs/trove-cli/internal/artifacts/dropbox"
	"github.com/trovelabs/trove-cli/internal/artifacts/gdrive"
	"github.com/trovelabs/trove-cli/internal/artifacts/github"
	"github.com/trovelabs/trove-cli/internal/artifacts/local"
	"github.com/trovelabs/trove-cli/internal/artifacts/tracking"
	"github.com/trovelabs/trove-cli/internal/artifacts/vault"
	"github.com/trovelabs/trove-cli/internal/artifacts/web"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Config keys consumed by the builtin stores.
const (
	// KeyTrackingURL is the tracking server base URL.
	KeyTrackingURL = "tracking_url"

	// KeyVaultMount overrides the vault mount point.
	KeyVaultMount = "vault_mount"

	// KeyGitHubToken is the GitHub personal access token.
	KeyGitHubToken = "github_token"

	// KeyDropboxToken is the Dropbox access token.
	KeyDropboxToken = "dropbox_token"

	// KeyGdriveToken is the Google Drive access token.
	KeyGdriveToken = "gdrive_token"
)

// DefaultRegistry builds the store directory with every builtin store,
// configured from cfg. Registration order is fixed: local first, then
// the mounted, tracking-owned, and remote schemes.
func DefaultRegistry(cfg driven.ConfigStore) *Registry {
	r := NewRegistry()

	localStore := local.NewStore()
	register(r, "", localStore)
	register(r, "file", localStore)

	register(r, "vault", vault.NewStore(cfg.GetString(KeyVaultMount)))

	webStore := web.NewStore()
	register(r, "http", webStore)
	register(r, "https", webStore)

	trackingStore := tracking.NewStore(cfg.GetString(KeyTrackingURL))
	register(r, "runs", trackingStore)
	register(r, "models", trackingStore)
	register(r, "trove-artifacts", trackingStore)

	register(r, "github", github.NewStore(auth.NewConfigTokenProvider(cfg, KeyGitHubToken)))
	register(r, "dropbox", dropbox.NewStore(auth.NewConfigTokenProvider(cfg, KeyDropboxToken)))
	register(r, "gdrive", gdrive.NewStore(auth.NewConfigTokenProvider(cfg, KeyGdriveToken)))

	return r
}

// register adds a builtin store; builtin schemes are distinct by
// construction, so a failure here would be a programming error.
func register(r *Registry, scheme string, store driven.ArtifactStore) {
	if err := r.Register(scheme, store); err != nil {
		panic(err)
	}
}
