// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aditya57958/AgenticHire/internal/ats"
	"github.com/Aditya57958/AgenticHire/internal/pipeline"
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

// PrintAnalysis outputs a human-readable summary of the keyword analysis.
func (p *Printer) PrintAnalysis(analysis *ats.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Match:    %d%%\n", analysis.MatchPercent))
	sb.WriteString("\n")

	if len(analysis.Matched) > 0 {
		sb.WriteString("Matched Keywords:\n")
		count := min(len(analysis.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Matched[i]))
		}
		if len(analysis.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Matched)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Missing) > 0 {
		sb.WriteString("Missing Keywords:\n")
		count := min(len(analysis.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Missing[i]))
		}
		if len(analysis.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Missing)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(analysis.Summary)

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs the optimization report with section ratings and
// missing skills.
func (p *Printer) PrintOptimization(opt *ats.Optimization) {
	if opt == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Updated Score: %d/100\n\n", opt.UpdatedScore))

	sb.WriteString("Section Ratings:\n")
	for _, section := range ats.SectionNames {
		rating := opt.SectionRatings[section]
		name := section
		if len(name) > 35 {
			name = name[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %-36s %d/10\n", name, rating))
	}
	sb.WriteString("\n")

	if len(opt.MissingTechnical) > 0 {
		sb.WriteString(fmt.Sprintf("Missing Technical: %s\n", strings.Join(opt.MissingTechnical, ", ")))
	}
	if len(opt.MissingSoft) > 0 {
		sb.WriteString(fmt.Sprintf("Missing Soft:      %s\n", strings.Join(opt.MissingSoft, ", ")))
	}

	if len(opt.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range opt.Suggestions {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("RESUME OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKit outputs the generated application kit with the warning banner
// when the heuristic fallback produced it.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintKit(out *pipeline.Outputs) {
	if out == nil {
		return
	}

	if out.Warning != "" {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ "+out.Warning)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Email:     %d chars\n", len(out.Email)))
	sb.WriteString(fmt.Sprintf("Questions: %d\n", len(out.Questions)))

	count := min(len(out.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := out.Questions[i]
		if len(q) > 50 {
			q = q[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  #%d %s\n", i+1, q))
	}
	if len(out.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(out.Questions)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nRewritten resume: %d chars", len(out.ModifiedResume)))

	p.printBox("GENERATED APPLICATION KIT", sb.String())
}
