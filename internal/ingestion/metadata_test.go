package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	metadata := NewMetadata("description body", "https://example.com/job")

	assert.Equal(t, "https://example.com/job", metadata.URL)
	assert.Equal(t, computeHash("description body"), metadata.Hash)
	assert.Len(t, metadata.Hash, 64)

	parsed, err := time.Parse(time.RFC3339, metadata.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestNewMetadata_FileIngestionHasNoURL(t *testing.T) {
	metadata := NewMetadata("description body", "")

	assert.Empty(t, metadata.URL)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
}

func TestMetadata_ToJSON(t *testing.T) {
	metadata := &Metadata{
		URL:       "https://example.com/job",
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		Platform:  "lever",
	}

	data, err := metadata.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *metadata, decoded)

	// Pretty-printed for sidecar files a human may open
	assert.Contains(t, string(data), "\n  ")
}

func TestMetadata_OmitsEmptyOptionalFields(t *testing.T) {
	metadata := &Metadata{Timestamp: "2024-01-01T00:00:00Z", Hash: "abcd1234"}

	data, err := metadata.ToJSON()
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"url"`)
	assert.NotContains(t, string(data), `"platform"`)
}

func TestComputeHash(t *testing.T) {
	first := computeHash("test content")
	second := computeHash("different content")

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, computeHash("test content"))
}
