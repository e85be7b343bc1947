// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
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

// PrintProfile outputs a human-readable summary of a parsed resume profile.
func (p *Printer) PrintProfile(rp *profile.ResumeProfile) {
	if rp == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", rp.Name))
	sb.WriteString(fmt.Sprintf("Role:    %s\n", rp.CurrentRole))
	sb.WriteString(fmt.Sprintf("Tenure:  %.1f years\n", rp.YearsExperience))

	if len(rp.Companies) > 0 {
		sb.WriteString(fmt.Sprintf("Company: %s\n", strings.Join(rp.Companies, ", ")))
	}
	if rp.ContactInfo.Email != "" || rp.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Contact: %s %s\n", rp.ContactInfo.Email, rp.ContactInfo.Phone))
	}

	if len(rp.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(rp.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rp.Skills[i]))
		}
		if len(rp.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rp.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAchievements outputs scored achievements with their impact levels.
func (p *Printer) PrintAchievements(achievements []profile.Achievement) {
	if len(achievements) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total achievements: %d\n\n", len(achievements)))

	count := min(len(achievements), maxItemsToShow)
	for i := 0; i < count; i++ {
		a := achievements[i]
		sb.WriteString(fmt.Sprintf("#%d  [%s] score %d\n", i+1, a.ImpactLevel, a.Score))

		text := a.Text
		if len(text) > 48 {
			text = text[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", text))

		if cat := a.PrimaryCategory(); cat != "" {
			sb.WriteString(fmt.Sprintf("    Category: %s\n", cat))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCORED ACHIEVEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScript outputs a generated video script section by section.
func (p *Printer) PrintScript(script string) {
	if strings.TrimSpace(script) == "" {
		return
	}
	p.printBox("GENERATED SCRIPT", strings.TrimSpace(script))
}
