package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Suggest skills for a resume profile",
	Long:  "Reads a ResumeProfile JSON file and produces ranked skill suggestions drawn from experience descriptions, job titles, education fields, the summary, and the skill relationship graph.",
	RunE:  runSuggestSkills,
}

var (
	suggestSkillsProfile string
	suggestSkillsOutput  string
	suggestSkillsLimit   int
	suggestSkillsVerbose bool
)

func init() {
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsProfile, "profile", "p", "", "Path to input ResumeProfile JSON file (required)")
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsOutput, "out", "o", "", "Path to output suggestions JSON file (defaults to stdout)")
	suggestSkillsCmd.Flags().IntVarP(&suggestSkillsLimit, "limit", "l", 0, "Maximum number of suggestions returned")
	suggestSkillsCmd.Flags().BoolVarP(&suggestSkillsVerbose, "verbose", "v", false, "Print a formatted suggestion summary")

	if err := suggestSkillsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestSkillsCmd)
}

func runSuggestSkills(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(config.Config{
		Profile:         suggestSkillsProfile,
		SuggestionLimit: suggestSkillsLimit,
		Verbose:         suggestSkillsVerbose,
	})
	if err != nil {
		return err
	}

	profile, err := loadResumeProfile(cfg.Profile)
	if err != nil {
		return err
	}

	suggestions := skills.Recommend(profile, cfg.SuggestionLimit)

	jsonOutput, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions to JSON: %w", err)
	}

	if cfg.Verbose || suggestSkillsVerbose {
		observability.NewPrinter(os.Stdout).PrintSuggestions(suggestions)
	}

	if suggestSkillsOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeOutputFile(suggestSkillsOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote %d suggestions to %s\n", len(suggestions), suggestSkillsOutput)
	return nil
}

// loadResumeProfile reads and unmarshals a ResumeProfile JSON file,
// validating it against the profile schema when the schema file is
// resolvable.
func loadResumeProfile(path string) (*types.ResumeProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/resume_profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("profile validation failed: %w", err)
		}
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	return &profile, nil
}
