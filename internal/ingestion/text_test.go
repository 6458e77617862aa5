package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	cleaned := CleanText("Line one\r\nLine two\rLine three")

	assert.Equal(t, "Line one\nLine two\nLine three", cleaned)
}

func TestCleanText_KeepsHeadings(t *testing.T) {
	cleaned := CleanText("  # Senior Software Engineer\n   ## Responsibilities")

	assert.Contains(t, cleaned, "# Senior Software Engineer")
	assert.Contains(t, cleaned, "## Responsibilities")
}

func TestCleanText_KeepsBullets(t *testing.T) {
	cleaned := CleanText("- Go experience\n* Distributed systems\n  - Nested item")

	assert.Contains(t, cleaned, "- Go experience")
	assert.Contains(t, cleaned, "* Distributed systems")
	assert.Contains(t, cleaned, "  - Nested item")
}

func TestCleanText_CollapsesRepeatedSpaces(t *testing.T) {
	cleaned := CleanText("Strong   Python    and  AWS   skills")

	assert.Equal(t, "Strong Python and AWS skills", cleaned)
}

func TestCleanText_LimitsBlankLines(t *testing.T) {
	cleaned := CleanText("Summary\n\n\n\n\nExperience")

	assert.Equal(t, "Summary\n\nExperience", cleaned)
}

func TestCleanText_TrimsDocument(t *testing.T) {
	cleaned := CleanText("\n\n  Job description  \n\n")

	assert.Equal(t, "Job description", cleaned)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestIngestFromFile_PlainText(t *testing.T) {
	text, metadata, err := IngestFromFile(filepath.Join("testdata", "sample_job_plain.txt"))
	require.NoError(t, err)

	assert.NotEmpty(t, text)
	require.NotNil(t, metadata)
	assert.NotEmpty(t, metadata.Hash)
	assert.Empty(t, metadata.URL)
}

func TestIngestFromFile_ComplexFormatting(t *testing.T) {
	text, _, err := IngestFromFile(filepath.Join("testdata", "complex_formatting.txt"))
	require.NoError(t, err)

	assert.Contains(t, text, "# Senior Software Engineer")
	assert.Contains(t, text, "- Go experience")
	assert.NotContains(t, text, "\n\n\n")
	// Prose lines have repeated spaces collapsed
	assert.NotContains(t, text, "We are   looking")
}

func TestIngestFromFile_HTMLExtension(t *testing.T) {
	text, _, err := IngestFromFile(filepath.Join("testdata", "sample_job_html.html"))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "Requirements")
	// Page chrome is stripped before cleaning
	assert.NotContains(t, text, "<html>")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join("testdata", "does_not_exist.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_HashIsStable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python and AWS engineer"), 0644))

	_, first, err := IngestFromFile(path)
	require.NoError(t, err)
	_, second, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
}
