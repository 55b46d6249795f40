package services

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
	"github.com/trovelabs/trove-cli/internal/logger"
)

// fakeArtifactStore is a store directory entry for coordinator tests.
type fakeArtifactStore struct {
	name string
}

func (f *fakeArtifactStore) Name() string { return f.name }

func (f *fakeArtifactStore) Download(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

// fakeDirectory returns its entries verbatim, duplicates included.
type fakeDirectory struct {
	entries []driven.StoreEntry
}

func (f *fakeDirectory) Stores() []driven.StoreEntry { return f.entries }

func (f *fakeDirectory) Get(scheme string) (driven.ArtifactStore, bool) {
	for _, e := range f.entries {
		if e.Scheme == scheme {
			return e.Store, e.Store != nil
		}
	}
	return nil, false
}

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestRegisterStoreSources(t *testing.T) {
	buf := captureWarnings(t)
	reg := NewSourceRegistry()
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "file", Store: &fakeArtifactStore{name: "LocalArtifactStore"}},
		{Scheme: "s3", Store: &fakeArtifactStore{name: "S3ArtifactStore"}},
		{Scheme: "runs", Store: &fakeArtifactStore{name: "TrackingArtifactStore"}},
	}}

	RegisterStoreSources(reg, dir)

	types := reg.List()
	require.Len(t, types, 2)
	assert.Equal(t, "LocalDatasetSource", types[0].Name())
	assert.Equal(t, "S3DatasetSource", types[1].Name())
	assert.Empty(t, buf.String())

	// The excluded tracking scheme must not resolve, the generated ones must.
	src, err := reg.Resolve("s3://bucket/key")
	require.NoError(t, err)
	assert.Equal(t, "S3DatasetSource", src.TypeName)
	assert.Equal(t, "s3://bucket/key", src.URI)

	_, err = reg.Resolve("runs:/abc/data")
	assert.Error(t, err)
}

func TestRegisterStoreSources_ExcludedSchemes(t *testing.T) {
	captureWarnings(t)
	reg := NewSourceRegistry()
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "http", Store: &fakeArtifactStore{name: "WebArtifactStore"}},
		{Scheme: "https", Store: &fakeArtifactStore{name: "WebArtifactStore"}},
		{Scheme: "runs", Store: &fakeArtifactStore{name: "TrackingArtifactStore"}},
		{Scheme: "models", Store: &fakeArtifactStore{name: "TrackingArtifactStore"}},
		{Scheme: "trove-artifacts", Store: &fakeArtifactStore{name: "TrackingArtifactStore"}},
		{Scheme: "vault", Store: &fakeArtifactStore{name: "VaultArtifactStore"}},
	}}

	RegisterStoreSources(reg, dir)

	assert.Empty(t, reg.List())
}

func TestRegisterStoreSources_FailureIsolation(t *testing.T) {
	buf := captureWarnings(t)
	reg := NewSourceRegistry()
	// The nil store in the middle must not block gs registration.
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "s3", Store: &fakeArtifactStore{name: "S3ArtifactStore"}},
		{Scheme: "broken", Store: nil},
		{Scheme: "gs", Store: &fakeArtifactStore{name: "GCSArtifactStore"}},
	}}

	RegisterStoreSources(reg, dir)

	types := reg.List()
	require.Len(t, types, 2)
	assert.Equal(t, "S3DatasetSource", types[0].Name())
	assert.Equal(t, "GCSDatasetSource", types[1].Name())

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), `scheme "broken"`)
}

func TestRegisterStoreSources_DuplicateSchemeTriedOnce(t *testing.T) {
	buf := captureWarnings(t)
	reg := NewSourceRegistry()
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "broken", Store: nil},
		{Scheme: "broken", Store: nil},
	}}

	RegisterStoreSources(reg, dir)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("[WARN]")))
}

func TestRegisterStoreSources_SecondPassIsIdempotent(t *testing.T) {
	buf := captureWarnings(t)
	reg := NewSourceRegistry()
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "s3", Store: &fakeArtifactStore{name: "S3ArtifactStore"}},
	}}

	RegisterStoreSources(reg, dir)
	RegisterStoreSources(reg, dir)

	assert.Len(t, reg.List(), 1)
	assert.Empty(t, buf.String())
}

func TestRegisterStoreSources_EmptyAndFileAreOneClaim(t *testing.T) {
	captureWarnings(t)
	reg := NewSourceRegistry()
	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "", Store: &fakeArtifactStore{name: "LocalArtifactStore"}},
		{Scheme: "file", Store: &fakeArtifactStore{name: "LocalArtifactStore"}},
	}}

	RegisterStoreSources(reg, dir)

	types := reg.List()
	require.Len(t, types, 1)
	assert.Equal(t, "LocalDatasetSource", types[0].Name())
	assert.Equal(t, "file", types[0].Scheme())
}

func TestRegisterStoreSources_HandWrittenTypesKeepPriority(t *testing.T) {
	captureWarnings(t)
	reg := NewSourceRegistry()
	require.NoError(t, reg.Register(&fakeSourceType{name: "VaultDatasetSource", scheme: "vault", prefix: "/vault"}))

	dir := &fakeDirectory{entries: []driven.StoreEntry{
		{Scheme: "file", Store: &fakeArtifactStore{name: "LocalArtifactStore"}},
	}}
	RegisterStoreSources(reg, dir)

	// Mount paths hit the earlier vault entry, plain paths fall through
	// to the generated local type.
	src, err := reg.Resolve("/vault/datasets/train.csv")
	require.NoError(t, err)
	assert.Equal(t, "VaultDatasetSource", src.TypeName)

	src, err = reg.Resolve("/tmp/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "LocalDatasetSource", src.TypeName)
}
