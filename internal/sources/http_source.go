package sources

import (
	"context"
	"net/url"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// HTTPTypeName is the name of the hand-written HTTP dataset source type.
const HTTPTypeName = "HTTPDatasetSource"

// Ensure httpSource implements the interface.
var _ driven.SourceType = (*httpSource)(nil)

// httpSource is the hand-written dataset source type for plain web
// downloads. The http and https schemes are excluded from store-backed
// generation because those schemes otherwise denote remote tracking
// endpoints; this type covers the one case where an http(s) URI really
// is a dataset: a directly downloadable file.
type httpSource struct {
	store driven.ArtifactStore
}

// NewHTTPSource builds the HTTP dataset source type around a web store.
func NewHTTPSource(store driven.ArtifactStore) driven.SourceType {
	return &httpSource{store: store}
}

// Name returns the dataset source type name.
func (s *httpSource) Name() string { return HTTPTypeName }

// Scheme returns the primary scheme; https is matched as well.
func (s *httpSource) Scheme() string { return "http" }

// Kind classifies the type.
func (s *httpSource) Kind() domain.SourceKind { return "http" }

// Doc returns the one-line description.
func (s *httpSource) Doc() string {
	return "Represents a dataset downloadable over HTTP or HTTPS."
}

// CanResolve accepts http and https references.
func (s *httpSource) CanResolve(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Resolve binds the raw reference to this type, verbatim.
func (s *httpSource) Resolve(raw string) *domain.DatasetSource {
	return &domain.DatasetSource{TypeName: HTTPTypeName, URI: raw}
}

// FromJSON reads a serialized dataset source produced by this type.
func (s *httpSource) FromJSON(data []byte) (*domain.DatasetSource, error) {
	return domain.UnmarshalDatasetSource(HTTPTypeName, data)
}

// Download delegates to the web store.
func (s *httpSource) Download(ctx context.Context, src *domain.DatasetSource, destDir string) (string, error) {
	return s.store.Download(ctx, src.URI, destDir)
}
