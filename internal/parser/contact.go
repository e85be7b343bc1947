package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Phone patterns in precedence order: bare US format, parenthesized area
// code, international. The first pattern that matches wins.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
	regexp.MustCompile(`\+\d{1,2}\s*\d{3}[-.]?\d{3}[-.]?\d{4}`),
}

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	areaCodeRe = regexp.MustCompile(`\(\d{3}\)`)
)

// ExtractContactInfo finds the first email and first phone number in the
// text. The two fields are independent; either may come back empty.
func ExtractContactInfo(text string) profile.ContactInfo {
	info := profile.ContactInfo{}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}

	for _, re := range phoneRes {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		if formatted := formatPhone(m); formatted != "" {
			info.Phone = formatted
			break
		}
	}

	return info
}

// formatPhone reduces a match to digits and renders the canonical
// "(AAA) BBB-CCCC" display form from its last ten digits.
func formatPhone(match string) string {
	digits := nonDigitRe.ReplaceAllString(match, "")
	if len(digits) < 10 {
		return ""
	}
	last10 := digits[len(digits)-10:]
	return fmt.Sprintf("(%s) %s-%s", last10[:3], last10[3:6], last10[6:])
}

// ExtractContactFromHeader parses the template variant's delimited first
// line, e.g. "m.riley@company.com | (555) 123-4567 | Some City". Phone
// numbers here render in the template's AAA-BBB-CCCC form.
func ExtractContactFromHeader(text string) profile.ContactInfo {
	info := profile.ContactInfo{}
	firstLine, _, _ := strings.Cut(text, "\n")

	for _, part := range strings.Split(firstLine, "|") {
		part = strings.TrimSpace(part)
		if info.Email == "" {
			if m := emailRe.FindString(part); m != "" {
				info.Email = m
				continue
			}
		}
		if info.Phone == "" && areaCodeRe.MatchString(part) {
			digits := nonDigitRe.ReplaceAllString(part, "")
			if len(digits) == 10 {
				info.Phone = fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:6], digits[6:])
			}
		}
	}
	return info
}
