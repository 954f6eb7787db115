// Package main provides the entry point for the resume analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer CLI",
	Long:  "Resume Analyzer scores resumes against job descriptions with TF-IDF keyword analysis, recommends skills from resume profiles, and classifies job titles into role categories.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to optional JSON config file with flag defaults")
}

// loadCommandConfig merges an optional config file under the given flag-derived
// values. Flag values win; the config file only fills what the caller left
// empty.
func loadCommandConfig(flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
