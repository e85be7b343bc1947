package parser

import (
	"regexp"
	"strings"
)

const maxCompanies = 3

// Company candidates come from three pattern families: explicit labels, legal
// suffixes, and "at/with/for X" phrases. Matches are collected in pattern
// order, deduplicated preserving first appearance, and capped at three. Every
// accepted value is a verbatim substring of the source text.
var companyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)company:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)employer:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)organization:\s*([^\n]+)`),
	regexp.MustCompile(`\b[A-Z][a-zA-Z\s&]+(?:Inc\.|LLC|Ltd\.|Corp\.|Corporation|Company)\b`),
	regexp.MustCompile(`(?i)(?:^|\n)(?:at|with|for)\s+([A-Z][a-zA-Z\s&]+?)(?:\s+as\b|\s+in\b|\s+from\b|\n|$)`),
}

// Candidates containing resume boilerplate are never company names.
var companyRejectWords = []string{"resume", "cv", "summary", "profile", "experience"}

// ExtractCompanies finds up to three employer names in the document.
func ExtractCompanies(text string) []string {
	var companies []string
	seen := make(map[string]struct{})

	for _, re := range companyRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := m[0]
			if len(m) > 1 {
				candidate = m[1]
			}
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if containsAny(strings.ToLower(candidate), companyRejectWords) {
				continue
			}
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			companies = append(companies, candidate)
			if len(companies) == maxCompanies {
				return companies
			}
		}
	}
	return companies
}
