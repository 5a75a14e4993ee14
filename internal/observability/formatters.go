// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/hirelens/internal/evaluation"
	"github.com/jonathan/hirelens/internal/types"
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

// PrintEvaluationResult outputs a human-readable summary of one evaluation.
func (p *Printer) PrintEvaluationResult(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:  %.2f\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Verdict:      %s", result.Verdict))
	if result.Degraded {
		sb.WriteString("  (semantic degraded)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Hard Match:   %.2f\n", result.HardMatchScore))
	sb.WriteString(fmt.Sprintf("Soft Match:   %.2f\n", result.SoftMatchScore))
	sb.WriteString(fmt.Sprintf("Coverage:     %.2f%%\n", result.SkillCoverage))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		count := min(len(result.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MatchedSkills[i]))
		}
		if len(result.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedSkills)-maxItemsToShow))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingSkills[i]))
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
	}

	if result.Diagnostic != "" {
		sb.WriteString(fmt.Sprintf("\n⚠ %s\n", result.Diagnostic))
	}

	p.printBox("EVALUATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchBreakdown outputs the per-component scores of a match result.
func (p *Printer) PrintMatchBreakdown(title string, result *types.MatchResult) {
	if result == nil || len(result.Components) == 0 {
		return
	}

	names := make([]string, 0, len(result.Components))
	for name := range result.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.2f\n\n", result.OverallScore))
	for _, name := range names {
		cs := result.Components[name]
		sb.WriteString(fmt.Sprintf("%-20s %6.2f  (w=%.2f)\n", cs.Name, cs.Score, cs.Weight))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs aggregate statistics for a batch run.
func (p *Printer) PrintBatchSummary(summary *evaluation.Summary) {
	if summary == nil || summary.TotalCandidates == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:    %d\n", summary.TotalCandidates))
	sb.WriteString(fmt.Sprintf("Average Score: %.2f\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Max Score:     %.2f\n", summary.MaxScore))
	sb.WriteString(fmt.Sprintf("Min Score:     %.2f\n", summary.MinScore))
	sb.WriteString("\nVerdicts:\n")

	for _, verdict := range []types.Verdict{types.VerdictHigh, types.VerdictMedium, types.VerdictLow, types.VerdictError} {
		if count, ok := summary.VerdictCounts[verdict]; ok {
			sb.WriteString(fmt.Sprintf("%-7s %3d  (%.1f%%)\n", verdict, count, summary.VerdictPercentages[verdict]))
		}
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
