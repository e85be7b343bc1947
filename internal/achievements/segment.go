// Package achievements scores and ranks achievement sentences in resume
// text. Sentences are segmented, filtered, scored against category, metric,
// keyword, and recency tables, then ranked and formatted for presentation.
package achievements

import (
	"regexp"
	"strings"
)

const minSentenceWords = 4

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Action verbs a sentence must contain to be considered an achievement.
var actionVerbs = []string{
	"led", "managed", "created", "developed", "implemented",
	"improved", "increased", "reduced", "achieved", "delivered",
	"launched", "designed", "established", "streamlined", "optimized",
}

// Sentences matching these look like contact or address boilerplate.
var contactInfoRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	regexp.MustCompile(`\b\d{5}(?:[-\s]\d{4})?\b`),
	regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Place|Pl)\b`),
	regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-zA-Z0-9-]+(?:\.[a-zA-Z]{2,})+/?\b`),
	regexp.MustCompile(`(?i)\b(?:linkedin\.com|github\.com|twitter\.com)/[\w-]+\b`),
}

// Sentences matching these look like employment date lines or role titles.
var dateOrRoleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{4}\s*[-–]\s*(?:Present|Current|Now|\d{4})\b`),
	regexp.MustCompile(`\b(?:Senior|Junior|Lead|Principal|Associate|Assistant)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Manager|Director|Specialist|Analyst|Engineer|Developer|Consultant)\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+\|\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`),
}

var educationTerms = []string{"bachelor", "master", "phd", "degree", "university", "college"}

// splitSentences segments normalized text on sentence punctuation.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// skip reports whether a sentence can never be an achievement: too short, a
// shouted header, contact boilerplate, a date or role line, education prose,
// or free of any action verb.
func skip(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) < minSentenceWords {
		return true
	}
	if isUpper(sentence) {
		return true
	}
	for _, re := range contactInfoRes {
		if re.MatchString(sentence) {
			return true
		}
	}
	for _, re := range dateOrRoleRes {
		if re.MatchString(sentence) {
			return true
		}
	}
	lower := strings.ToLower(sentence)
	for _, term := range educationTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return false
		}
	}
	return true
}

// isUpper reports whether a sentence contains letters and all of them are
// uppercase, the signature of a section header.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
