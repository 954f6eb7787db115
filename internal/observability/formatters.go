// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintATSReport outputs a human-readable summary of an ATS scoring run.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:     %d / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", report.RoleCategory))
	sb.WriteString(fmt.Sprintf("Keywords:  %d matched of %d\n",
		len(report.Analysis.MatchedKeywords), report.Analysis.TotalKeywords))

	if len(report.Analysis.MatchedKeywords) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(report.Analysis.MatchedKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.Analysis.MatchedKeywords[i]
			sb.WriteString(fmt.Sprintf("  • %s (x%d)\n", m.Keyword, m.Frequency))
		}
		if len(report.Analysis.MatchedKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Analysis.MatchedKeywords)-maxItemsToShow))
		}
	}

	if len(report.KeywordSuggestions) > 0 {
		sb.WriteString("\nConsider adding:\n")
		count := min(len(report.KeywordSuggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.KeywordSuggestions[i]))
		}
	}

	p.printBox("ATS REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs ranked skill suggestions with their sources.
func (p *Printer) PrintSuggestions(suggestions []types.SkillSuggestion) {
	if len(suggestions) == 0 {
		p.printBox("SKILL SUGGESTIONS", "No suggestions")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Name))
		sb.WriteString(fmt.Sprintf("    Confidence: %d (%s)", s.Confidence, s.Source))
		if s.BasedOn != "" {
			sb.WriteString(fmt.Sprintf(" via %s", s.BasedOn))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("SKILL SUGGESTIONS", sb.String())
}

// PrintRoleMatch outputs a role classification result.
func (p *Printer) PrintRoleMatch(match *types.RoleMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", match.Title))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", match.Category))

	if len(match.SimilarTitles) > 0 {
		sb.WriteString("\nSimilar titles:\n")
		for _, title := range match.SimilarTitles {
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
	}

	p.printBox("ROLE CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}
