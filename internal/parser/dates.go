package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var monthYearRe = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s,]+(20\d{2}|19\d{2})\b`)

var presentRe = regexp.MustCompile(`(?i)\b(?:Present|Current)\b`)

var dateTokenRe = regexp.MustCompile(monthYearRe.String() + `|` + presentRe.String())

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// monthYear is a resolved employment date token.
type monthYear struct {
	year  int
	month time.Month
}

func (m monthYear) date() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// parseMonthYear resolves a single date token. "Present" and "Current" map to
// the supplied current time. Returns false for anything unparseable; callers
// treat that as missing data, never as an error.
func parseMonthYear(token string, now time.Time) (monthYear, bool) {
	token = strings.TrimSpace(strings.TrimRight(token, "."))
	if presentRe.MatchString(token) {
		return monthYear{year: now.Year(), month: now.Month()}, true
	}

	m := monthYearRe.FindStringSubmatch(token)
	if m == nil {
		return monthYear{}, false
	}
	month, ok := monthIndex[strings.ToLower(m[1][:3])]
	if !ok {
		return monthYear{}, false
	}
	year := 0
	for _, r := range m[2] {
		year = year*10 + int(r-'0')
	}
	return monthYear{year: year, month: month}, true
}

// extractDateTokens finds all month-year tokens in order of appearance,
// including Present/Current markers.
func extractDateTokens(text string, now time.Time) []monthYear {
	var tokens []monthYear
	for _, raw := range dateTokenRe.FindAllString(text, -1) {
		token, ok := parseMonthYear(raw, now)
		if !ok {
			log.Debug().Str("token", raw).Msg("skipping unparseable date token")
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// yearsBetween computes fractional years from start to end per the tenure
// formula (end.year-start.year) + (end.month-start.month)/12, clamped to >= 0.
func yearsBetween(start, end monthYear) float64 {
	years := float64(end.year-start.year) + float64(int(end.month)-int(start.month))/12
	if years < 0 {
		return 0
	}
	return years
}
