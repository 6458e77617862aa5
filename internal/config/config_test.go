package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"job_url": "https://example.com/job",
		"model": "gemini-2.5-pro",
		"augment_timeout": 90,
		"port": 8080,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 90, cfg.AugmentTimeout)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			path:    func(t *testing.T) string { return writeConfig(t, `{ invalid json }`) },
			wantErr: "failed to parse config JSON",
		},
		{
			name:    "missing file",
			path:    func(_ *testing.T) string { return "/nonexistent/path/config.json" },
			wantErr: "failed to read config file",
		},
		{
			name:    "empty path",
			path:    func(_ *testing.T) string { return "" },
			wantErr: "config path is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{JobURL: "https://example.com/job", AugmentTimeout: 60, Port: 8080},
		},
		{
			name:    "job file and job URL together",
			cfg:     Config{Job: "job.txt", JobURL: "https://example.com/job"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "negative timeout",
			cfg:     Config{AugmentTimeout: -1},
			wantErr: "augment_timeout",
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: 70000},
			wantErr: "port",
		},
		{
			name:    "resume file missing",
			cfg:     Config{Resume: "/nonexistent/resume.txt"},
			wantErr: "resume file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:         "default-key",
		Model:          "gemini-2.5-flash",
		AugmentTimeout: 60,
		Port:           8080,
	}
	partial := Config{
		Model:  "gemini-2.5-pro",
		JobURL: "https://example.com/job",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Explicit values win over defaults
	assert.Equal(t, "gemini-2.5-pro", merged.Model)
	assert.Equal(t, "https://example.com/job", merged.JobURL)

	// Zero-valued fields pick up defaults
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 60, merged.AugmentTimeout)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Job: "job.txt", Model: "gemini-2.5-flash"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
}
