package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Scores a resume text file against a job description for a target job title, producing an ATS report JSON with keyword matches, missing keywords, and skill recommendations.",
	RunE:  runScore,
}

var (
	scoreResume    string
	scoreJob       string
	scoreTitle     string
	scoreOutput    string
	scoreStripHTML bool
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVarP(&scoreTitle, "title", "t", "", "Target job title for role classification")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ATS report JSON file (defaults to stdout)")
	scoreCmd.Flags().BoolVar(&scoreStripHTML, "strip-html", false, "Treat the job description as HTML and strip tags before analysis")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted report summary")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(config.Config{
		Resume:       scoreResume,
		Job:          scoreJob,
		JobTitle:     scoreTitle,
		StripJobHTML: scoreStripHTML,
		Verbose:      scoreVerbose,
	})
	if err != nil {
		return err
	}

	report, err := scoreFiles(cfg)
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ATS report to JSON: %w", err)
	}

	if cfg.Verbose || scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintATSReport(report)
	}

	if scoreOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeOutputFile(scoreOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored resume (%d/100) to %s\n", report.Score, scoreOutput)
	return nil
}

// scoreFiles loads the resume and job description from cfg and runs a full
// scoring pass.
func scoreFiles(cfg config.Config) (*types.ATSReport, error) {
	resumeContent, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
	}

	jobContent, err := os.ReadFile(cfg.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file %s: %w", cfg.Job, err)
	}

	jobText := string(jobContent)
	if cfg.StripJobHTML {
		jobText = parsing.StripHTML(jobText)
	}

	req := types.ScoreRequest{
		ResumeText:     string(resumeContent),
		JobDescription: jobText,
		JobTitle:       cfg.JobTitle,
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid score request: %w", err)
	}

	scorer := newScorer(cfg.CacheSize)
	report, err := scorer.Score(req.ResumeText, req.JobDescription, req.JobTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}
	return report, nil
}

// newScorer builds a scorer whose classifier and report caches honor the
// configured entry bound.
func newScorer(cacheSize int) *ats.Scorer {
	return ats.NewScorer(roles.NewClassifier(classifierCache(cacheSize)), reportCache(cacheSize))
}

func classifierCache(cacheSize int) *cache.TTL[string] {
	return cache.NewTTL[string](cacheSize, roles.ClassifyTTL)
}

func reportCache(cacheSize int) *cache.TTL[*types.ATSReport] {
	return cache.NewTTL[*types.ATSReport](cacheSize, ats.ScoreTTL)
}

// writeOutputFile writes data to path, creating parent directories as needed.
func writeOutputFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
