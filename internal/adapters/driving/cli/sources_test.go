package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcesCmd_Use(t *testing.T) {
	assert.Equal(t, "sources", sourcesCmd.Use)
}

func TestSourcesCmd_ListsInResolutionOrder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "HTTPDatasetSource")
	assert.Contains(t, out, "VaultDatasetSource")
	assert.Contains(t, out, "LocalDatasetSource")
	assert.Contains(t, out, "S3DatasetSource")

	// Hand-written types come before the generated ones.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("VaultDatasetSource")),
		bytes.Index(buf.Bytes(), []byte("LocalDatasetSource")))
}
