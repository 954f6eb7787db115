// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume  string `json:"resume,omitempty"`  // Path to resume text file
	Job     string `json:"job,omitempty"`     // Path to job description text file
	Profile string `json:"profile,omitempty"` // Path to resume profile JSON file

	// Analysis
	JobTitle        string `json:"job_title,omitempty"`         // Target job title for role classification
	SuggestionLimit int    `json:"suggestion_limit,omitempty"`  // Maximum skill suggestions returned
	SimilarTitles   int    `json:"similar_titles,omitempty"`    // Maximum similar titles returned
	CacheSize       int    `json:"cache_size,omitempty"`        // Entry bound for classifier and scorer caches
	StripJobHTML    bool   `json:"strip_job_html,omitempty"`    // Treat the job description as HTML and strip tags
	Verbose         bool   `json:"verbose,omitempty"`           // Print detailed analysis breakdowns
	MaxConcurrency  int    `json:"max_concurrency,omitempty"`   // Parallel workers for batch scoring
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SuggestionLimit < 0 {
		return fmt.Errorf("config error: 'suggestion_limit' must be non-negative")
	}
	if c.SimilarTitles < 0 {
		return fmt.Errorf("config error: 'similar_titles' must be non-negative")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config error: 'max_concurrency' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job, "profile": c.Profile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}

	if result.SuggestionLimit == 0 {
		result.SuggestionLimit = defaults.SuggestionLimit
	}
	if result.SimilarTitles == 0 {
		result.SimilarTitles = defaults.SimilarTitles
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}
	if result.MaxConcurrency == 0 {
		result.MaxConcurrency = defaults.MaxConcurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
