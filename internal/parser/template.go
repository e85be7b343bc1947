package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-profiler/internal/achievements"
	"github.com/jonathan/resume-profiler/internal/profile"
)

// TemplateParser handles resumes that follow a fixed delimited convention: a
// contact header on the first line ("email | phone | city") and experience
// rows of the form "Role | Company | January 2020 – Present".
type TemplateParser struct {
	opts   Options
	scorer *achievements.Scorer
}

// NewTemplateParser builds the template-variant parser.
func NewTemplateParser(opts Options) *TemplateParser {
	return &TemplateParser{
		opts:   opts.withDefaults(),
		scorer: newScorer(achievements.MaxAchievementsTemplate),
	}
}

// Variant implements Parser.
func (p *TemplateParser) Variant() string { return VariantTemplate }

// Parse implements Parser.
func (p *TemplateParser) Parse(sourceText string) *profile.ResumeProfile {
	now := p.opts.Now()

	role := p.extractRole(sourceText)
	if role == "" {
		role = p.opts.DefaultRole
	}

	result := &profile.ResumeProfile{
		Name:            ExtractNameFromEmail(sourceText),
		CurrentRole:     role,
		Companies:       p.extractCompanies(sourceText),
		YearsExperience: ExtractYearsExperience(sourceText, now),
		Skills:          ExtractIndustrySkills(sourceText, MaxSkillsTemplate),
		Achievements:    p.scorer.Extract(sourceText),
		ContactInfo:     ExtractContactFromHeader(sourceText),
		Education:       ExtractEducation(sourceText),
	}

	log.Debug().
		Str("variant", p.Variant()).
		Str("name", result.Name).
		Str("role", result.CurrentRole).
		Int("companies", len(result.Companies)).
		Int("skills", len(result.Skills)).
		Int("achievements", len(result.Achievements)).
		Float64("years_experience", result.YearsExperience).
		Msg("parsed resume")

	return result
}

// The current position row: "Role | Company | Start – Present".
var templateRoleRe = regexp.MustCompile(`([^|\n]+)\|\s*([^|\n]+)\|\s*([^–\-\n]+)(?:–|-)\s*(?:Present|Current)`)

func (p *TemplateParser) extractRole(text string) string {
	section := LocateSection(text, SectionExperience)
	if section == "" {
		return ""
	}
	if m := templateRoleRe.FindStringSubmatch(section); m != nil {
		return cleanRoleCandidate(m[1])
	}
	return ""
}

// Company cells sit between pipes, directly before a month name. Cells
// containing a year are dates, not companies.
var (
	templateCompanyRe = regexp.MustCompile(`\|\s*([^|\n]+?)\s*\|\s*(?:January|February|March|April|May|June|July|August|September|October|November|December)`)
	bareYearRe        = regexp.MustCompile(`\b\d{4}\b`)
)

func (p *TemplateParser) extractCompanies(text string) []string {
	section := LocateSection(text, SectionExperience)
	if section == "" {
		return nil
	}

	var companies []string
	seen := make(map[string]struct{})
	for _, m := range templateCompanyRe.FindAllStringSubmatch(section, -1) {
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || bareYearRe.MatchString(candidate) {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		companies = append(companies, candidate)
		if len(companies) == maxCompanies {
			break
		}
	}
	return companies
}
