// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/analyzer"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of a score report.
func (p *Printer) PrintReport(report *types.ScoreReport, band string) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %.2f (%s)\n", report.OverallScore, band))
	sb.WriteString(fmt.Sprintf("Base:        %.2f  Bonus: +%.2f\n", report.BaseScore, report.ContextualBonus))
	sb.WriteString(fmt.Sprintf("Role:        %s\n", report.JobRoleIdentified))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n", report.ConfidenceLevel))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills:      %.2f  (%d found)\n", report.DetailedScores.Skills, report.TotalSkillsCount))
	sb.WriteString(fmt.Sprintf("Experience:  %.2f  (max %d years)\n", report.DetailedScores.Experience, report.ExperienceInfo.MaxYears))
	sb.WriteString(fmt.Sprintf("Education:   %.2f\n", report.DetailedScores.Education))
	if report.DetailedScores.JobFit != nil {
		sb.WriteString(fmt.Sprintf("Job fit:     %.2f\n", *report.DetailedScores.JobFit))
	}

	p.printBox("Score Report", strings.TrimRight(sb.String(), "\n"))

	p.printSkills(&report.SkillsFound)
	p.printContextual(&report.ContextualAnalysis)
	p.printRecommendations(report.Recommendations)
}

func (p *Printer) printSkills(skills *types.ExtractedSkills) {
	if skills == nil || len(skills.Categories) == 0 {
		return
	}

	categories := make([]string, 0, len(skills.Categories))
	for name := range skills.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, category := range categories {
		all := skills.Categories[category].AllSkills()
		shown := all
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("%s: %s", category, strings.Join(shown, ", ")))
		if len(all) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(all)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}
	p.printBox("Skills Found", strings.TrimRight(sb.String(), "\n"))
}

func (p *Printer) printContextual(analysis *types.ContextualAnalysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match level: %s (%.0f%%)\n", analysis.MatchLevel, analysis.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Bonus:       +%.2f\n", analysis.BonusPoints))
	if len(analysis.MatchedCategories) > 0 {
		sb.WriteString(fmt.Sprintf("Categories:  %s\n", strings.Join(analysis.MatchedCategories, ", ")))
	}
	sb.WriteString(analysis.Reasoning)
	p.printBox("Contextual Analysis", sb.String())
}

func (p *Printer) printRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}
	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}
	p.printBox("Recommendations", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs a batch ranking table, best candidate first.
func (p *Printer) PrintRanking(ranked []analyzer.BatchResult) {
	var sb strings.Builder
	for i, result := range ranked {
		sb.WriteString(fmt.Sprintf("%2d. %-30s %.2f (%s)\n",
			i+1, result.Name, result.Report.OverallScore, result.Report.JobRoleIdentified))
	}
	p.printBox("Batch Ranking", strings.TrimRight(sb.String(), "\n"))
}
