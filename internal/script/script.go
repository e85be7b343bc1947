// Package script turns a parsed resume profile into a six-section video
// script (Introduction, Experience, Skills, Achievement, Goals, Contact).
// A deterministic template generator always works; a Gemini-backed generator
// produces richer text and falls back to the template when its output does
// not contain all six sections.
package script

import (
	"context"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

// Industry labels used to pick a script template.
const (
	IndustryRestaurant = "restaurant"
	IndustryIT         = "it"
	IndustryHealthcare = "healthcare"
)

// requiredSections must all appear, in order, for a script to be usable.
var requiredSections = []string{
	"1. Introduction",
	"2. Experience",
	"3. Skills",
	"4. Achievement",
	"5. Goals",
	"6. Contact",
}

// Generator produces a video script from a parsed profile.
type Generator interface {
	Generate(ctx context.Context, p *profile.ResumeProfile) (string, error)
}

var restaurantRoleWords = []string{"restaurant", "food", "hospitality", "chef"}

var itSkillWords = []string{
	"python", "java", "javascript", "react", "angular", "node", "aws", "cloud",
	"devops", "developer", "software", "engineering", "programming", "fullstack",
	"backend", "frontend", "web", "mobile", "app", "development",
}

// DetectIndustry classifies a profile for template selection. Role keywords
// win over skill keywords; healthcare is the default.
func DetectIndustry(p *profile.ResumeProfile) string {
	role := strings.ToLower(p.CurrentRole)
	for _, w := range restaurantRoleWords {
		if strings.Contains(role, w) {
			return IndustryRestaurant
		}
	}

	skills := strings.ToLower(strings.Join(p.Skills, " "))
	for _, w := range itSkillWords {
		if strings.Contains(skills, w) {
			return IndustryIT
		}
	}

	return IndustryHealthcare
}

// Complete reports whether the script contains all six sections in order.
func Complete(script string) bool {
	pos := 0
	for _, section := range requiredSections {
		idx := strings.Index(script[pos:], section)
		if idx < 0 {
			return false
		}
		pos += idx + len(section)
	}
	return true
}
