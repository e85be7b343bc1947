package parser

import (
	"regexp"
	"sort"
	"strings"
)

// Skill list caps per variant.
const (
	MaxSkillsGeneral  = 10
	MaxSkillsTemplate = 5
)

var (
	skillSplitRe = regexp.MustCompile(`[•\n]`)

	// Free-form capture phrasings like "proficient in X" or "knowledge of X".
	skillCaptureRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:proficient|skilled|experienced)\s+(?:in|with)\s+([^.,;\n]+)`),
		regexp.MustCompile(`(?i)expertise\s+(?:in|with)\s+([^.,;\n]+)`),
		regexp.MustCompile(`(?i)knowledge\s+of\s+([^.,;\n]+)`),
	}

	// Compound suffixes that make an unlisted skills-section entry plausible.
	compoundSkillTerms = []string{"management", "development", "analysis", "planning"}
)

// ExtractSkills unions skills from three sources: explicit skills-section
// entries, a whole-document scan against every dictionary, and free-form
// "proficient in X" captures. Results rank by category priority then brevity
// and truncate to limit.
func ExtractSkills(text string, dict *Dictionaries, limit int) []string {
	found := make(map[string]struct{})

	// Source 1: explicit entries in the skills section.
	if section := LocateSection(text, SectionSkills); section != "" {
		for _, entry := range skillSplitRe.Split(section, -1) {
			entry = strings.ToLower(strings.TrimSpace(entry))
			if entry == "" {
				continue
			}
			if dict.Category(entry) != nil {
				found[entry] = struct{}{}
				continue
			}
			if containsAny(entry, compoundSkillTerms) && !dict.IsIrrelevant(entry) {
				found[entry] = struct{}{}
			}
		}
	}

	// Source 2: whole-document substring scan against every dictionary.
	lower := strings.ToLower(text)
	for _, category := range dict.Categories {
		for term := range category.Terms {
			if strings.Contains(lower, term) {
				found[term] = struct{}{}
			}
		}
	}

	// Source 3: free-form captures, accepted when short and not stoplisted.
	for _, re := range skillCaptureRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			phrase := strings.ToLower(strings.TrimSpace(m[1]))
			if phrase == "" || len(strings.Fields(phrase)) > 3 {
				continue
			}
			if dict.IsIrrelevant(phrase) {
				continue
			}
			found[phrase] = struct{}{}
		}
	}

	return rankSkills(found, dict, limit)
}

// rankSkills orders skills by category priority (descending) then phrase
// length (ascending), with the phrase itself as the final tiebreak so output
// is deterministic.
func rankSkills(found map[string]struct{}, dict *Dictionaries, limit int) []string {
	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool {
		pi, pj := dict.PriorityOf(skills[i]), dict.PriorityOf(skills[j])
		if pi != pj {
			return pi > pj
		}
		if len(skills[i]) != len(skills[j]) {
			return len(skills[i]) < len(skills[j])
		}
		return skills[i] < skills[j]
	})
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

// ExtractIndustrySkills is the template variant's skill source: the fixed
// industry phrase list matched against the Profile and Skills & Abilities
// sections, plus comma-separated extras from the skills section. Output is
// title-cased, sorted, and capped.
func ExtractIndustrySkills(text string, limit int) []string {
	found := make(map[string]struct{})

	sections := []string{
		strings.ToLower(LocateSection(text, SectionProfile)),
		strings.ToLower(LocateSection(text, SectionSkills)),
	}
	for _, section := range sections {
		if section == "" {
			continue
		}
		for _, skill := range IndustrySkills {
			if strings.Contains(section, skill) {
				found[titleWords(skill)] = struct{}{}
			}
		}
	}

	// Comma-separated extras listed under Skills & Abilities.
	if section := LocateSection(text, SectionSkills); section != "" {
		for _, entry := range strings.Split(strings.ToLower(section), ",") {
			entry = strings.TrimSpace(strings.Trim(entry, "•-"))
			entry = strings.TrimSpace(entry)
			if entry != "" && len(strings.Fields(entry)) <= 4 {
				found[titleWords(entry)] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
