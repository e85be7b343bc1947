package parser

import (
	"regexp"
	"strings"
)

// Section identifies a labeled region of a resume.
type Section int

const (
	SectionExperience Section = iota
	SectionSkills
	SectionProfile
	SectionEducation
)

// A header line is either the bare header token (optionally followed by a
// colon) or the token, a colon, and inline content. "Experienced manager ..."
// must not count as an Experience header, which is why inline content
// requires the colon.
var sectionHeaderRes = map[Section]*regexp.Regexp{
	SectionExperience: regexp.MustCompile(`(?i)^(?:work\s+history|employment(?:\s+history)?|(?:professional\s+)?experience)\s*(?::\s*(.*))?$`),
	SectionSkills:     regexp.MustCompile(`(?i)^(?:skills(?:\s*&\s*abilities)?|expertise|proficiencies)\s*(?::\s*(.*))?$`),
	SectionProfile:    regexp.MustCompile(`(?i)^(?:profile|(?:professional\s+)?summary)\s*(?::\s*(.*))?$`),
	SectionEducation:  regexp.MustCompile(`(?i)^(?:education|academic(?:\s+background)?|qualifications)\s*(?::\s*(.*))?$`),
}

// LocateSection returns the content of the named section: the text from just
// after its header line to the next blank line or the next header of any
// section. A missing section yields "".
func LocateSection(text string, section Section) string {
	re, ok := sectionHeaderRes[section]
	if !ok {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		var content []string
		if len(m) > 1 && m[1] != "" {
			content = append(content, m[1])
		}
		for _, following := range lines[i+1:] {
			trimmed := strings.TrimSpace(following)
			if trimmed == "" || isSectionHeader(trimmed) {
				break
			}
			content = append(content, trimmed)
		}
		return strings.Join(content, "\n")
	}
	return ""
}

func isSectionHeader(line string) bool {
	for _, re := range sectionHeaderRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
