package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

var degreeRe = regexp.MustCompile(`(?:Bachelor(?:'s)?|Master(?:'s)?|PhD|Ph\.D|B\.[A-Z][a-z]*\.?|M\.[A-Z][a-z]*\.?|Associate(?:'s)?)(?:\s+(?:of|in|degree\s+in)\s+[^\n,]+)?`)

// ExtractEducation collects degree lines from the education section. Each
// matched degree phrase becomes one entry, deduplicated in order.
func ExtractEducation(text string) []profile.Education {
	section := LocateSection(text, SectionEducation)
	if section == "" {
		return nil
	}

	var entries []profile.Education
	seen := make(map[string]struct{})
	for _, line := range strings.Split(section, "\n") {
		m := degreeRe.FindString(line)
		if m == "" {
			continue
		}
		m = strings.TrimSpace(m)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		entries = append(entries, profile.Education{Degree: m})
	}
	return entries
}
