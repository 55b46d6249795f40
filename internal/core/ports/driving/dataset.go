package driving

import (
	"context"

	"github.com/trovelabs/trove-cli/internal/core/domain"
)

// DatasetResolver turns raw dataset references into canonical dataset
// sources and materializes them locally.
type DatasetResolver interface {
	// Resolve matches the raw reference against the registered source
	// types and returns the first match.
	// Returns domain.ErrNoMatchingSource if nothing recognises it.
	Resolve(raw string) (*domain.DatasetSource, error)

	// Fetch resolves the reference and downloads it under destDir
	// (store-chosen destination when destDir is empty). Returns the
	// local path and the resolved source.
	Fetch(ctx context.Context, raw string, destDir string) (string, *domain.DatasetSource, error)

	// FromJSON reads a serialized dataset source back for the named type.
	// Returns domain.ErrUnsupportedType if the type is not registered.
	FromJSON(typeName string, data []byte) (*domain.DatasetSource, error)

	// SourceTypes lists the registered source types in resolution order.
	SourceTypes() []domain.SourceTypeInfo
}
