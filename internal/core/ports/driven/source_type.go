package driven

import (
	"context"

	"github.com/trovelabs/trove-cli/internal/core/domain"
)

// SourceType is one entry in the dataset source resolution table.
// Implementations are immutable after construction and safe for
// concurrent use; CanResolve and Resolve are pure.
type SourceType interface {
	// Name returns the unique dataset source type name, e.g. "S3DatasetSource".
	Name() string

	// Scheme returns the primary URI scheme this type serves.
	Scheme() string

	// Kind classifies the type (local or scheme-named).
	Kind() domain.SourceKind

	// Doc returns a one-line description of the type.
	Doc() string

	// CanResolve reports whether the raw reference belongs to this type.
	// It never fails: malformed input is simply not a match.
	CanResolve(raw string) bool

	// Resolve binds the raw reference to this type. It performs no
	// validation; callers are expected to consult CanResolve first.
	Resolve(raw string) *domain.DatasetSource

	// FromJSON reads a serialized dataset source produced by this type.
	FromJSON(data []byte) (*domain.DatasetSource, error)

	// Download materializes the source locally and returns the local path.
	// Errors from the underlying store are returned verbatim.
	Download(ctx context.Context, src *domain.DatasetSource, destDir string) (string, error)
}
