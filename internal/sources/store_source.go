package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure storeSource implements the interface.
var _ driven.SourceType = (*storeSource)(nil)

// storeSource is the generic dataset source type generated for an
// artifact store. It is a plain immutable value: scheme, name, and the
// store's download capability as data, with shared predicate and
// serialization logic. No per-scheme types are synthesized.
type storeSource struct {
	scheme string
	name   string
	kind   domain.SourceKind
	doc    string
	store  driven.ArtifactStore
}

// ForStore builds the dataset source type for a scheme backed by the
// given artifact store. typeName must be non-empty; it becomes the
// type's identity in the resolution table and in error messages.
func ForStore(scheme, typeName string, store driven.ArtifactStore) (driven.SourceType, error) {
	if store == nil {
		return nil, fmt.Errorf("scheme %q has no artifact store: %w", scheme, domain.ErrInvalidInput)
	}
	if typeName == "" {
		return nil, fmt.Errorf("scheme %q derived an empty type name: %w", scheme, domain.ErrInvalidInput)
	}

	kind := domain.KindForScheme(scheme)

	displayScheme := scheme
	if kind.IsLocal() {
		displayScheme = "file"
	}

	return &storeSource{
		scheme: displayScheme,
		name:   typeName,
		kind:   kind,
		doc:    docForKind(kind),
		store:  store,
	}, nil
}

// Name returns the dataset source type name.
func (s *storeSource) Name() string { return s.name }

// Scheme returns the URI scheme the type serves.
func (s *storeSource) Scheme() string { return s.scheme }

// Kind classifies the type.
func (s *storeSource) Kind() domain.SourceKind { return s.kind }

// Doc returns the one-line description.
func (s *storeSource) Doc() string { return s.doc }

// CanResolve reports whether the raw reference belongs to this type.
// Local types accept bare paths and file:// URIs but never tracking or
// registry URIs; every other type requires an exact scheme match.
// Malformed references are not a match.
func (s *storeSource) CanResolve(raw string) bool {
	if s.kind.IsLocal() {
		return domain.IsLocalURI(raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == s.scheme
}

// Resolve binds the raw reference to this type, verbatim.
func (s *storeSource) Resolve(raw string) *domain.DatasetSource {
	return &domain.DatasetSource{TypeName: s.name, URI: raw}
}

// FromJSON reads a serialized dataset source produced by this type.
func (s *storeSource) FromJSON(data []byte) (*domain.DatasetSource, error) {
	return domain.UnmarshalDatasetSource(s.name, data)
}

// Download passes the source URI straight through to the artifact store.
func (s *storeSource) Download(ctx context.Context, src *domain.DatasetSource, destDir string) (string, error) {
	return s.store.Download(ctx, src.URI, destDir)
}
