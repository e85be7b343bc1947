package parser

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Explicit "N+ years of experience" phrasings, checked before any date math.
var explicitYearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)experience:\s*(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(?:^|\n)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s+(?:in|of|as)\b`),
}

// ExtractYearsExperience determines total professional tenure. An explicit
// "N years experience" claim wins; otherwise tenure is summed from the
// month-year ranges found inside the experience section, with open-ended
// ranges closed at now. No usable data yields 0.
func ExtractYearsExperience(text string, now time.Time) float64 {
	for _, re := range explicitYearsRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if years, err := strconv.ParseFloat(m[1], 64); err == nil {
				return roundTenth(years)
			}
		}
	}

	section := LocateSection(text, SectionExperience)
	if section == "" {
		section = text
	}
	return roundTenth(tenureFromDates(extractDateTokens(section, now)))
}

// tenureFromDates pairs consecutive date tokens into start/end ranges and
// sums their spans. An unpaired trailing token contributes nothing.
func tenureFromDates(tokens []monthYear) float64 {
	total := 0.0
	for i := 0; i+1 < len(tokens); i += 2 {
		total += yearsBetween(tokens[i], tokens[i+1])
	}
	return total
}

func roundTenth(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v*10) / 10
}
