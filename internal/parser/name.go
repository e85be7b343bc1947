package parser

import (
	"regexp"
	"strings"
)

var resumeMetaWords = []string{"resume", "cv", "curriculum vitae"}

// ExtractName scans the first three lines for a candidate name: at least two
// words, every word starting with an uppercase letter, and not a document
// header. The first qualifying line wins.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 {
			continue
		}
		if !allCapitalized(words) {
			continue
		}
		if containsAny(strings.ToLower(line), resumeMetaWords) {
			continue
		}
		return line
	}
	return ""
}

var emailLocalRe = regexp.MustCompile(`(^|\|)\s*([^@\s|]+)@`)

// ExtractNameFromEmail derives a display name from an email local part on the
// document's first line. "m.riley@company.com" becomes "M. Riley"; a single
// alphabetic local part capitalizes as a bare name. Anything else yields "".
func ExtractNameFromEmail(text string) string {
	firstLine, _, _ := strings.Cut(text, "\n")
	m := emailLocalRe.FindStringSubmatch(firstLine)
	if m == nil {
		return ""
	}

	local := strings.TrimSpace(m[2])
	parts := strings.Split(local, ".")
	switch len(parts) {
	case 1:
		if isAlpha(parts[0]) {
			return capitalize(parts[0])
		}
	case 2:
		first, last := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if isAlpha(first) && isAlpha(last) {
			return strings.ToUpper(first[:1]) + ". " + capitalize(last)
		}
	}
	return ""
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
