package parser

import (
	"regexp"
	"strings"
)

// Role titles are built from a seniority vocabulary crossed with a domain
// vocabulary, e.g. "Senior" + "HR Manager".
const (
	seniorityTokens = `(?:senior|lead|principal|staff|chief|head|director|vp|junior|associate|assistant)`
	domainTokens    = `(?:software|systems|data|product|project|program|business|marketing|sales|hr|human\s+resources|operations|finance|recruitment|restaurant|retail|store|general)`
	titleTokens     = `(?:manager|director|specialist|analyst|coordinator|consultant|generalist|engineer|developer|designer|administrator|supervisor|officer)`
)

// roleRule is one step of the role cascade. Rules run in order and the first
// candidate that survives trimming and length validation wins.
type roleRule struct {
	name    string
	extract func(text string) string
}

var roleRules = []roleRule{
	{name: "experience_date_adjacent", extract: roleNearDateRange},
	{name: "domain_keyword_phrase", extract: roleFromDomainPhrase},
	{name: "labeled_line", extract: roleFromLabel},
	{name: "achievement_mention", extract: roleFromAchievementMention},
}

// ExtractRole runs the role cascade over the document. Each candidate has
// trailing "at X"/"with X" clauses stripped and must land between 2 and 6
// words; a rejected candidate lets the cascade continue. Returns "" when no
// rule yields a valid title.
func ExtractRole(text string) string {
	for _, rule := range roleRules {
		candidate := cleanRoleCandidate(rule.extract(text))
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Rule 1: a role line adjacent to a date range inside the experience section,
// e.g. "Jan 2020 - Present" followed by the title on the next line.
var dateAdjacentRoleRe = regexp.MustCompile(`(?i)(?:^|\n)(?:20\d{2}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*(?:\s+20\d{2})?)\s*[-–]\s*(?:Present|Current|20\d{2})\s*\n([^\n|]+)`)

func roleNearDateRange(text string) string {
	section := LocateSection(text, SectionExperience)
	if section == "" {
		return ""
	}
	if m := dateAdjacentRoleRe.FindStringSubmatch(section); m != nil {
		return m[1]
	}
	return ""
}

// Rule 2: an explicit seniority + domain title phrase anywhere in the text.
var domainPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\n|\s)(` + seniorityTokens + `\s+` + domainTokens + `\s+` + titleTokens + `)(?:\s|$|\n|\.)`),
	regexp.MustCompile(`(?i)(?:^|\n|\s)(` + seniorityTokens + `\s+` + titleTokens + `)(?:\s|$|\n|\.)`),
	regexp.MustCompile(`(?i)(?:^|\n|\s)(` + domainTokens + `\s+` + titleTokens + `)(?:\s|$|\n|\.)`),
}

func roleFromDomainPhrase(text string) string {
	for _, re := range domainPhraseRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// Rule 3: a generic labeled line like "Current Role: ..." or "Title: ...".
var labeledRoleRe = regexp.MustCompile(`(?i)(?:^|\n)(?:current\s+)?(?:role|position|title):\s*([^\n]+)`)

func roleFromLabel(text string) string {
	if m := labeledRoleRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Rule 4: a role mentioned inside achievement or responsibility prose,
// e.g. "as a Training Manager I ...".
var achievementRoleRe = regexp.MustCompile(`(?i)as\s+(?:a|an)\s+([A-Z][a-zA-Z\s]*` + titleTokens + `)`)

func roleFromAchievementMention(text string) string {
	if m := achievementRoleRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

var trailingClauseRe = regexp.MustCompile(`(?i)\s+(?:at|with|for|in)\s+.*$`)

// cleanRoleCandidate strips trailing employer clauses and punctuation, then
// validates the 2-6 word length bound. Returns "" for rejects.
func cleanRoleCandidate(candidate string) string {
	candidate = trailingClauseRe.ReplaceAllString(strings.TrimSpace(candidate), "")
	candidate = strings.Trim(candidate, " .,|")
	words := len(strings.Fields(candidate))
	if words < 2 || words > 6 {
		return ""
	}
	return candidate
}
