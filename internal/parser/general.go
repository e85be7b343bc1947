package parser

import (
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-profiler/internal/achievements"
	"github.com/jonathan/resume-profiler/internal/profile"
)

// GeneralParser handles free-form, ATS-style resumes: broad vocabulary,
// tolerant of varied layout.
type GeneralParser struct {
	opts   Options
	scorer *achievements.Scorer
}

// NewGeneralParser builds the general-variant parser.
func NewGeneralParser(opts Options) *GeneralParser {
	return &GeneralParser{
		opts:   opts.withDefaults(),
		scorer: newScorer(achievements.MaxAchievementsGeneral),
	}
}

// Variant implements Parser.
func (p *GeneralParser) Variant() string { return VariantGeneral }

// Parse implements Parser. Every extractor is individually fault tolerant:
// whatever it cannot find comes back as the zero value, so the returned
// profile is always complete, if possibly sparse.
func (p *GeneralParser) Parse(sourceText string) *profile.ResumeProfile {
	now := p.opts.Now()

	role := ExtractRole(sourceText)
	if role == "" {
		role = p.opts.DefaultRole
	}

	result := &profile.ResumeProfile{
		Name:            ExtractName(sourceText),
		CurrentRole:     role,
		Companies:       ExtractCompanies(sourceText),
		YearsExperience: ExtractYearsExperience(sourceText, now),
		Skills:          ExtractSkills(sourceText, p.opts.Dictionaries, MaxSkillsGeneral),
		Achievements:    p.scorer.Extract(sourceText),
		ContactInfo:     ExtractContactInfo(sourceText),
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
