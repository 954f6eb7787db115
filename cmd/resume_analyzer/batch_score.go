package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var batchScoreCmd = &cobra.Command{
	Use:   "batch-score",
	Short: "Score a directory of resumes against one job description",
	Long:  "Scores every .txt resume in a directory against a single job description in parallel, producing a combined JSON report sorted by score descending.",
	RunE:  runBatchScore,
}

var (
	batchScoreDir         string
	batchScoreJob         string
	batchScoreTitle       string
	batchScoreOutput      string
	batchScoreStripHTML   bool
	batchScoreConcurrency int
)

// defaultBatchConcurrency bounds parallel scoring workers when the flag and
// config leave it unset.
const defaultBatchConcurrency = 4

// BatchResult pairs one resume file with its ATS report.
type BatchResult struct {
	File   string           `json:"file"`
	Report *types.ATSReport `json:"report"`
}

func init() {
	batchScoreCmd.Flags().StringVarP(&batchScoreDir, "dir", "d", "", "Path to directory of resume .txt files (required)")
	batchScoreCmd.Flags().StringVarP(&batchScoreJob, "job", "j", "", "Path to job description text file (required)")
	batchScoreCmd.Flags().StringVarP(&batchScoreTitle, "title", "t", "", "Target job title for role classification")
	batchScoreCmd.Flags().StringVarP(&batchScoreOutput, "out", "o", "", "Path to output combined JSON file (defaults to stdout)")
	batchScoreCmd.Flags().BoolVar(&batchScoreStripHTML, "strip-html", false, "Treat the job description as HTML and strip tags before analysis")
	batchScoreCmd.Flags().IntVar(&batchScoreConcurrency, "max-concurrency", 0, "Maximum parallel scoring workers")

	if err := batchScoreCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}
	if err := batchScoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(batchScoreCmd)
}

func runBatchScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(config.Config{
		Job:            batchScoreJob,
		JobTitle:       batchScoreTitle,
		StripJobHTML:   batchScoreStripHTML,
		MaxConcurrency: batchScoreConcurrency,
	})
	if err != nil {
		return err
	}

	results, err := batchScoreDirectory(context.Background(), batchScoreDir, cfg)
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
	}

	if batchScoreOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeOutputFile(batchScoreOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d resumes to %s\n", len(results), batchScoreOutput)
	return nil
}

// batchScoreDirectory scores every .txt file in dir against the configured job
// description. Each worker owns its own Scorer because a Scorer is not safe
// for concurrent use. Results are sorted by score descending, then by file
// name for stability.
func batchScoreDirectory(ctx context.Context, dir string, cfg config.Config) ([]BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, entry.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .txt resume files found in %s", dir)
	}

	jobContent, err := os.ReadFile(cfg.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file %s: %w", cfg.Job, err)
	}
	jobText := string(jobContent)
	if cfg.StripJobHTML {
		jobText = parsing.StripHTML(jobText)
	}

	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	results := make([]BatchResult, 0, len(files))

	for _, name := range files {
		name := name
		g.Go(func() error {
			path := filepath.Join(dir, name)
			resumeContent, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume file %s: %w", path, err)
			}

			req := types.ScoreRequest{
				ResumeText:     string(resumeContent),
				JobDescription: jobText,
				JobTitle:       cfg.JobTitle,
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid score request for %s: %w", name, err)
			}

			scorer := newScorer(cfg.CacheSize)
			report, err := scorer.Score(req.ResumeText, req.JobDescription, req.JobTitle)
			if err != nil {
				return fmt.Errorf("failed to score %s: %w", name, err)
			}

			mu.Lock()
			results = append(results, BatchResult{File: name, Report: report})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Report.Score != results[j].Report.Score {
			return results[i].Report.Score > results[j].Report.Score
		}
		return results[i].File < results[j].File
	})

	return results, nil
}
