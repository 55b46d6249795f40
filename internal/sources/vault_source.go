package sources

import (
	"context"
	"strings"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// VaultTypeName is the name of the hand-written vault dataset source type.
const VaultTypeName = "VaultDatasetSource"

// Ensure vaultSource implements the interface.
var _ driven.SourceType = (*vaultSource)(nil)

// vaultSource is the hand-written dataset source type for the vault
// scheme. Vault data is addressable two ways: as a vault:/ URI and as a
// path under the local /vault mount. A store-generated type would only
// round-trip the URI form, so the scheme is excluded from generation
// and both access forms are handled here. The reference is stored
// verbatim in whichever form it arrived; the two forms are never
// rewritten into each other.
type vaultSource struct {
	store driven.ArtifactStore
}

// NewVaultSource builds the vault dataset source type around a vault store.
func NewVaultSource(store driven.ArtifactStore) driven.SourceType {
	return &vaultSource{store: store}
}

// Name returns the dataset source type name.
func (s *vaultSource) Name() string { return VaultTypeName }

// Scheme returns the URI scheme the type serves.
func (s *vaultSource) Scheme() string { return "vault" }

// Kind classifies the type.
func (s *vaultSource) Kind() domain.SourceKind { return "vault" }

// Doc returns the one-line description.
func (s *vaultSource) Doc() string {
	return "Represents a dataset stored in the vault, as a vault:/ URI or a /vault mount path."
}

// CanResolve accepts both vault access forms. It must be registered
// ahead of the local source type so mount paths land here first.
func (s *vaultSource) CanResolve(raw string) bool {
	if strings.HasPrefix(raw, "vault:/") {
		return true
	}
	return raw == "/vault" || strings.HasPrefix(raw, "/vault/")
}

// Resolve binds the raw reference to this type, verbatim.
func (s *vaultSource) Resolve(raw string) *domain.DatasetSource {
	return &domain.DatasetSource{TypeName: VaultTypeName, URI: raw}
}

// FromJSON reads a serialized dataset source produced by this type.
func (s *vaultSource) FromJSON(data []byte) (*domain.DatasetSource, error) {
	return domain.UnmarshalDatasetSource(VaultTypeName, data)
}

// Download delegates to the vault store, which understands both forms.
func (s *vaultSource) Download(ctx context.Context, src *domain.DatasetSource, destDir string) (string, error) {
	return s.store.Download(ctx, src.URI, destDir)
}
