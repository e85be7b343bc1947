package achievements

import (
	"regexp"
	"strings"
)

var (
	pipeRe      = regexp.MustCompile(`\s*\|\s*`)
	dashRe      = regexp.MustCompile(`\s*[-–]\s*`)
	monthDateRe = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}\b`)
	yearRangeRe = regexp.MustCompile(`\b\d{4}\s*(?:to)\s*(?:Present|Current|Now|\d{4})\b`)
	multiWSRe   = regexp.MustCompile(`\s{2,}`)
)

// CleanSentence rewrites resume markup into prose: pipes become " at ",
// dashes become " to ", absolute month-year and year-range tokens are
// stripped, and leftover whitespace collapses. Dashes are rewritten before
// year ranges are stripped, so "2019 – 2021" is matched in its "2019 to
// 2021" form.
func CleanSentence(sentence string) string {
	cleaned := pipeRe.ReplaceAllString(sentence, " at ")
	cleaned = dashRe.ReplaceAllString(cleaned, " to ")
	cleaned = monthDateRe.ReplaceAllString(cleaned, "")
	cleaned = yearRangeRe.ReplaceAllString(cleaned, "")
	cleaned = multiWSRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
