package script

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-profiler/internal/llm"
	"github.com/jonathan/resume-profiler/internal/profile"
	"github.com/jonathan/resume-profiler/internal/prompts"
)

// GeminiGenerator asks an LLM for a richer script, validating the result
// against the six-section structure and falling back to the deterministic
// base script whenever the model output is unusable.
type GeminiGenerator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGeminiGenerator wraps an LLM client as a script generator.
func NewGeminiGenerator(client llm.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client, tier: llm.TierStandard}
}

// Generate produces a script via the LLM. Model errors and structurally
// incomplete output degrade to the base script rather than failing the run.
func (g *GeminiGenerator) Generate(ctx context.Context, p *profile.ResumeProfile) (string, error) {
	base := BaseScript(p)

	out, err := g.client.GenerateContent(ctx, buildPrompt(p, base), g.tier)
	if err != nil {
		log.Warn().Err(err).Msg("script generation failed, using base template")
		return base, nil
	}

	start := strings.Index(out, "1. Introduction")
	if start < 0 {
		log.Warn().Msg("generated script missing sections, using base template")
		return base, nil
	}

	out = out[start:]
	if !Complete(out) {
		log.Warn().Msg("generated script incomplete, using base template")
		return base, nil
	}

	return postProcess(out, p), nil
}

// Close releases the underlying LLM client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func buildPrompt(p *profile.ResumeProfile, baseScript string) string {
	achievement := ""
	if len(p.Achievements) > 0 {
		achievement = p.Achievements[0].Text
	}

	contact := p.ContactInfo.Email
	if p.ContactInfo.Phone != "" {
		contact += ", " + p.ContactInfo.Phone
	}

	template := prompts.MustGet("script.json", "generate-script")
	return prompts.Format(template, map[string]string{
		"Industry":    DetectIndustry(p),
		"Name":        p.Name,
		"CurrentRole": p.CurrentRole,
		"Years":       formatYears(p.YearsExperience),
		"Companies":   strings.Join(p.Companies, ", "),
		"Skills":      strings.Join(p.Skills, ", "),
		"Achievement": achievement,
		"Contact":     contact,
		"BaseScript":  baseScript,
	})
}

// postProcess fills leftover placeholders and trims the model output.
func postProcess(script string, p *profile.ResumeProfile) string {
	script = strings.ReplaceAll(script, "[Name]", p.Name)
	script = strings.ReplaceAll(script, "[Email]", p.ContactInfo.Email)
	script = strings.ReplaceAll(script, "[Phone]", p.ContactInfo.Phone)
	return strings.TrimSpace(script)
}
