// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display per list
	maxSkillsToShow = 15
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

// PrintPersonalInfo outputs a human-readable summary of the extracted
// candidate details, falling back to the raw model reply when the
// structured record is unavailable.
func (p *Printer) PrintPersonalInfo(info *types.PersonalInfo, raw string) {
	if info == nil {
		if raw != "" {
			p.printBox("Personal Information (raw)", raw)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(info.Name)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(info.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orDash(info.Phone)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(info.Location)))
	sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", orDash(info.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:    %s\n", orDash(info.GitHub)))
	sb.WriteString(fmt.Sprintf("Portfolio: %s", orDash(info.Portfolio)))

	p.printBox("Personal Information", sb.String())
}

// PrintSkills outputs a titled skill list, truncated past maxSkillsToShow.
func (p *Printer) PrintSkills(title string, skills []string) {
	if len(skills) == 0 {
		p.printBox(title, "(none found)")
		return
	}

	shown := skills
	var footer string
	if len(shown) > maxSkillsToShow {
		footer = fmt.Sprintf("\n... and %d more", len(shown)-maxSkillsToShow)
		shown = shown[:maxSkillsToShow]
	}

	var sb strings.Builder
	for i, s := range shown {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + s)
	}
	sb.WriteString(footer)

	p.printBox(title, sb.String())
}

// PrintScore outputs the final match score box.
func (p *Printer) PrintScore(score float64) {
	p.printBox("Match Score", fmt.Sprintf("Resume <-> JD skill match: %.2f%%", score))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
