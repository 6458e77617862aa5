package ingestion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures under testdata mirror the document shapes the analyzer
// receives in practice: plain text, markdown-ish formatting, and saved
// job-board HTML.

func TestIngestion_FileAndURLAgree(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join("testdata", "sample_job_html.html"))
	}))
	defer server.Close()

	fromFile, _, err := IngestFromFile(filepath.Join("testdata", "sample_job_html.html"))
	require.NoError(t, err)

	fromURL, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	// Both paths run the same extraction and cleaning
	assert.Equal(t, fromFile, fromURL)
}

func TestIngestion_MarkdownStructureSurvives(t *testing.T) {
	text, _, err := IngestFromFile(filepath.Join("testdata", "sample_job_markdown.txt"))
	require.NoError(t, err)

	assert.Contains(t, text, "#")
	assert.NotContains(t, text, "\n\n\n")
}

func TestIngestion_LeverFixture(t *testing.T) {
	text, _, err := IngestFromFile(filepath.Join("testdata", "sample_job_lever.html"))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "Sidebar")
	assert.NotContains(t, text, "Ad content")
}

func TestIngestion_MetadataRoundTrip(t *testing.T) {
	_, metadata, err := IngestFromFile(filepath.Join("testdata", "sample_job_plain.txt"))
	require.NoError(t, err)

	data, err := metadata.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, metadata.Hash, decoded.Hash)
	assert.Equal(t, metadata.Timestamp, decoded.Timestamp)
}

func TestIngestion_SameContentSameHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	_, first, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	_, second, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
}
