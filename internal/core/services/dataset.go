package services

import (
	"context"
	"fmt"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driving"
	"github.com/trovelabs/trove-cli/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetResolver = (*DatasetService)(nil)

// DatasetService resolves raw dataset references against the source
// registry and materializes resolved sources through their stores.
type DatasetService struct {
	registry *SourceRegistry
}

// NewDatasetService creates a dataset service over a populated registry.
func NewDatasetService(registry *SourceRegistry) *DatasetService {
	return &DatasetService{registry: registry}
}

// Resolve matches the raw reference against the registered source types.
func (s *DatasetService) Resolve(raw string) (*domain.DatasetSource, error) {
	src, err := s.registry.Resolve(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved %q as %s", raw, src.TypeName)
	return src, nil
}

// Fetch resolves the reference and downloads it under destDir.
// Download errors come back verbatim from the artifact store.
func (s *DatasetService) Fetch(ctx context.Context, raw string, destDir string) (string, *domain.DatasetSource, error) {
	src, err := s.Resolve(raw)
	if err != nil {
		return "", nil, err
	}

	st, err := s.registry.Get(src.TypeName)
	if err != nil {
		return "", nil, err
	}

	path, err := st.Download(ctx, src, destDir)
	if err != nil {
		return "", nil, fmt.Errorf("fetch %q: %w", raw, err)
	}

	logger.Info("fetched %q to %s", raw, path)
	return path, src, nil
}

// FromJSON reads a serialized dataset source back for the named type.
func (s *DatasetService) FromJSON(typeName string, data []byte) (*domain.DatasetSource, error) {
	st, err := s.registry.Get(typeName)
	if err != nil {
		return nil, err
	}
	return st.FromJSON(data)
}

// SourceTypes lists the registered source types in resolution order.
func (s *DatasetService) SourceTypes() []domain.SourceTypeInfo {
	types := s.registry.List()
	out := make([]domain.SourceTypeInfo, 0, len(types))
	for _, st := range types {
		out = append(out, domain.SourceTypeInfo{
			Name:   st.Name(),
			Scheme: st.Scheme(),
			Kind:   st.Kind(),
			Doc:    st.Doc(),
		})
	}
	return out
}
