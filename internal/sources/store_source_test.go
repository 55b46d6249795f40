package sources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trovelabs/trove-cli/internal/core/domain"
)

// fakeStore records the download it was asked for and returns a canned path.
type fakeStore struct {
	name    string
	gotURI  string
	gotDest string
	path    string
	err     error
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) Download(_ context.Context, uri, destDir string) (string, error) {
	f.gotURI = uri
	f.gotDest = destDir
	return f.path, f.err
}

func TestForStore_Validation(t *testing.T) {
	_, err := ForStore("s3", "S3DatasetSource", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ForStore("s3", "", &fakeStore{name: "S3ArtifactStore"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestForStore_LocalDisplayScheme(t *testing.T) {
	st, err := ForStore("", "LocalDatasetSource", &fakeStore{name: "LocalArtifactStore"})

	require.NoError(t, err)
	assert.Equal(t, "file", st.Scheme())
	assert.Equal(t, domain.KindLocal, st.Kind())
}

func TestStoreSource_CanResolve(t *testing.T) {
	s3, err := ForStore("s3", "S3DatasetSource", &fakeStore{name: "S3ArtifactStore"})
	require.NoError(t, err)
	local, err := ForStore("file", "LocalDatasetSource", &fakeStore{name: "LocalArtifactStore"})
	require.NoError(t, err)

	tests := []struct {
		name string
		st   string
		raw  string
		want bool
	}{
		{name: "s3 accepts its scheme", st: "s3", raw: "s3://bucket/key", want: true},
		{name: "s3 rejects https", st: "s3", raw: "https://example.com/data", want: false},
		{name: "s3 rejects bare path", st: "s3", raw: "/tmp/data", want: false},
		{name: "s3 rejects malformed", st: "s3", raw: "://oops", want: false},
		{name: "local accepts bare path", st: "local", raw: "/tmp/data", want: true},
		{name: "local accepts file URI", st: "local", raw: "file:///tmp/data", want: true},
		{name: "local rejects runs URI", st: "local", raw: "runs:/abc/data", want: false},
		{name: "local rejects https", st: "local", raw: "https://example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := s3
			if tt.st == "local" {
				st = local
			}
			assert.Equal(t, tt.want, st.CanResolve(tt.raw))
		})
	}
}

func TestStoreSource_ResolveKeepsRawVerbatim(t *testing.T) {
	st, err := ForStore("s3", "S3DatasetSource", &fakeStore{name: "S3ArtifactStore"})
	require.NoError(t, err)

	src := st.Resolve("s3://bucket/path/to/data.csv")

	assert.Equal(t, "S3DatasetSource", src.TypeName)
	assert.Equal(t, "s3://bucket/path/to/data.csv", src.URI)
}

func TestStoreSource_FromJSON(t *testing.T) {
	st, err := ForStore("s3", "S3DatasetSource", &fakeStore{name: "S3ArtifactStore"})
	require.NoError(t, err)

	src, err := st.FromJSON([]byte(`{"uri": "s3://b/k"}`))
	require.NoError(t, err)
	assert.Equal(t, "S3DatasetSource", src.TypeName)
	assert.Equal(t, "s3://b/k", src.URI)

	_, err = st.FromJSON([]byte(`{}`))
	require.Error(t, err)
	assert.True(t, domain.IsInvalidParameter(err))
	assert.Contains(t, err.Error(), "S3DatasetSource")
}

func TestStoreSource_DownloadDelegates(t *testing.T) {
	store := &fakeStore{name: "S3ArtifactStore", path: "/tmp/out/data.csv"}
	st, err := ForStore("s3", "S3DatasetSource", store)
	require.NoError(t, err)

	src := st.Resolve("s3://bucket/data.csv")
	path, err := st.Download(context.Background(), src, "/tmp/out")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/data.csv", path)
	assert.Equal(t, "s3://bucket/data.csv", store.gotURI)
	assert.Equal(t, "/tmp/out", store.gotDest)
}
