package cli

import (
	"context"

	"github.com/trovelabs/trove-cli/internal/core/services"
	"github.com/trovelabs/trove-cli/internal/sources"
)

// stubArtifactStore returns a canned download path.
type stubArtifactStore struct {
	name string
	path string
}

func (s *stubArtifactStore) Name() string { return s.name }

func (s *stubArtifactStore) Download(_ context.Context, _, _ string) (string, error) {
	return s.path, nil
}

// memConfig is an in-memory config store for command tests.
type memConfig map[string]string

func (m memConfig) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memConfig) GetString(key string) string { return m[key] }

func (m memConfig) Set(key string, value any) error {
	m[key] = value.(string)
	return nil
}

func (m memConfig) Save() error { return nil }

// setupTestServices installs a dataset service over stub stores so
// command tests never touch the real config directory or the network.
func setupTestServices() func() {
	oldService := datasetService
	oldConfig := configStore

	stub := &stubArtifactStore{name: "StubArtifactStore", path: "/tmp/trove-test/data.csv"}

	reg := services.NewSourceRegistry()
	_ = reg.Register(sources.NewHTTPSource(stub))
	_ = reg.Register(sources.NewVaultSource(stub))
	if local, err := sources.ForStore("file", "LocalDatasetSource", stub); err == nil {
		_ = reg.Register(local)
	}
	if s3, err := sources.ForStore("s3", "S3DatasetSource", stub); err == nil {
		_ = reg.Register(s3)
	}

	datasetService = services.NewDatasetService(reg)
	configStore = memConfig{}

	return func() {
		datasetService = oldService
		configStore = oldConfig
	}
}
