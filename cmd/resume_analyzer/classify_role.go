package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var classifyRoleCmd = &cobra.Command{
	Use:   "classify-role",
	Short: "Classify a job title into a role category",
	Long:  "Classifies a job title into one of the known role categories using TF-IDF similarity against known titles, and lists the closest known titles in that category.",
	RunE:  runClassifyRole,
}

var (
	classifyRoleTitle   string
	classifyRoleOutput  string
	classifyRoleSimilar int
	classifyRoleVerbose bool
)

func init() {
	classifyRoleCmd.Flags().StringVarP(&classifyRoleTitle, "title", "t", "", "Job title to classify (required)")
	classifyRoleCmd.Flags().StringVarP(&classifyRoleOutput, "out", "o", "", "Path to output RoleMatch JSON file (defaults to stdout)")
	classifyRoleCmd.Flags().IntVarP(&classifyRoleSimilar, "similar", "s", 0, "Maximum number of similar titles returned")
	classifyRoleCmd.Flags().BoolVarP(&classifyRoleVerbose, "verbose", "v", false, "Print a formatted classification summary")

	if err := classifyRoleCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyRoleCmd)
}

func runClassifyRole(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(config.Config{
		JobTitle:      classifyRoleTitle,
		SimilarTitles: classifyRoleSimilar,
		Verbose:       classifyRoleVerbose,
	})
	if err != nil {
		return err
	}

	match := classifyTitle(cfg.JobTitle, cfg.SimilarTitles, cfg.CacheSize)

	jsonOutput, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal role match to JSON: %w", err)
	}

	if cfg.Verbose || classifyRoleVerbose {
		observability.NewPrinter(os.Stdout).PrintRoleMatch(match)
	}

	if classifyRoleOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeOutputFile(classifyRoleOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully classified %q as %s to %s\n", cfg.JobTitle, match.Category, classifyRoleOutput)
	return nil
}

// classifyTitle runs classification plus similar-title lookup for one title.
func classifyTitle(title string, similarLimit, cacheSize int) *types.RoleMatch {
	classifier := roles.NewClassifier(classifierCache(cacheSize))
	category := classifier.Classify(title)

	return &types.RoleMatch{
		Title:         title,
		Category:      category,
		SimilarTitles: classifier.SimilarTitles(category, title, similarLimit),
	}
}
