// Package config loads optional CLI configuration from a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config mirrors the CLI flags that may be preset in a config file. Every
// field is optional; CLI flags override whatever the file provides.
type Config struct {
	Resume string `json:"resume,omitempty"`
	Job    string `json:"job,omitempty"`
	JobURL string `json:"job_url,omitempty"`

	APIKey         string `json:"api_key,omitempty"`
	Model          string `json:"model,omitempty"`
	AugmentTimeout int    `json:"augment_timeout,omitempty"` // seconds
	UseBrowser     bool   `json:"use_browser,omitempty"`
	Verbose        bool   `json:"verbose,omitempty"`

	Port int `json:"port,omitempty"`
}

// LoadConfig reads and parses a JSON config file. Relative paths are
// resolved against the working directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values for consistency. Required fields are not
// checked here; that happens after CLI flags are merged in.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.AugmentTimeout < 0 {
		return fmt.Errorf("config error: 'augment_timeout' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	return nil
}

// MergeWithDefaults fills zero-valued fields from defaults and returns the
// merged copy. Booleans are never merged: an unset bool is indistinguishable
// from false, so CLI flags always win for them.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	merged := *c

	if merged.Resume == "" {
		merged.Resume = defaults.Resume
	}
	if merged.Job == "" {
		merged.Job = defaults.Job
	}
	if merged.JobURL == "" {
		merged.JobURL = defaults.JobURL
	}
	if merged.APIKey == "" {
		merged.APIKey = defaults.APIKey
	}
	if merged.Model == "" {
		merged.Model = defaults.Model
	}
	if merged.AugmentTimeout == 0 {
		merged.AugmentTimeout = defaults.AugmentTimeout
	}
	if merged.Port == 0 {
		merged.Port = defaults.Port
	}

	return merged
}
