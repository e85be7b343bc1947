package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-profiler/internal/achievements"
	"github.com/jonathan/resume-profiler/internal/profile"
)

// industryTemplate holds the per-industry audio lines and visual directions.
type industryTemplate struct {
	introAudio       func(name, role string, years float64) string
	experienceAudio  func(company string) string
	skillsAudio      func(topSkills string) string
	fallbackAudio    string
	goalsAudio       string
	introVisual      string
	experienceVisual string
	skillsVisual     string
	achieveVisual    string
	goalsVisual      string
}

var industryTemplates = map[string]industryTemplate{
	IndustryRestaurant: {
		introAudio: func(name, role string, years float64) string {
			return fmt.Sprintf("Meet %s, an experienced %s with %s years in the restaurant industry.", name, role, formatYears(years))
		},
		experienceAudio: func(company string) string {
			return fmt.Sprintf("At %s, I have demonstrated expertise in restaurant operations, staff management, and customer service excellence.", company)
		},
		skillsAudio: func(topSkills string) string {
			return fmt.Sprintf("My core competencies include %s, enabling me to deliver exceptional dining experiences.", topSkills)
		},
		fallbackAudio:    "Led successful initiatives that improved efficiency and customer satisfaction.",
		goalsAudio:       "I am passionate about creating exceptional dining experiences and developing high-performing restaurant teams.",
		introVisual:      "Professional headshot transitioning to dynamic restaurant environment scenes",
		experienceVisual: "Animated timeline showcasing restaurant management achievements",
		skillsVisual:     "Interactive display of restaurant management skills and expertise",
		achieveVisual:    "Data visualization of operational improvements and metrics",
		goalsVisual:      "Forward-looking imagery of modern restaurant operations",
	},
	IndustryHealthcare: {
		introAudio: func(name, role string, years float64) string {
			return fmt.Sprintf("Meet %s, a seasoned %s with %s years of experience in healthcare.", name, role, formatYears(years))
		},
		experienceAudio: func(company string) string {
			return fmt.Sprintf("At %s, I have demonstrated expertise in HR operations, recruitment, and process improvement.", company)
		},
		skillsAudio: func(topSkills string) string {
			return fmt.Sprintf("My core competencies include %s, enabling me to drive organizational excellence.", topSkills)
		},
		fallbackAudio:    "Successfully implemented initiatives that improved efficiency and compliance.",
		goalsAudio:       "I am passionate about leveraging modern HR practices to transform healthcare talent acquisition.",
		introVisual:      "Professional headshot transitioning to modern healthcare workplace scenes",
		experienceVisual: "Animated timeline showcasing healthcare HR achievements",
		skillsVisual:     "Interactive display of healthcare HR competencies",
		achieveVisual:    "Data visualization of recruitment and HR metrics",
		goalsVisual:      "Forward-looking imagery of healthcare innovation",
	},
	IndustryIT: {
		introAudio: func(name, role string, years float64) string {
			return fmt.Sprintf("Meet %s, an innovative %s with %s years of experience in software development.", name, role, formatYears(years))
		},
		experienceAudio: func(company string) string {
			return fmt.Sprintf("At %s, I have demonstrated expertise in building scalable solutions, leading technical teams, and delivering high-impact projects.", company)
		},
		skillsAudio: func(topSkills string) string {
			return fmt.Sprintf("My technical stack includes %s, enabling me to architect and deliver robust solutions.", topSkills)
		},
		fallbackAudio:    "Successfully delivered multiple high-impact projects that improved system performance and user experience.",
		goalsAudio:       "I am passionate about leveraging cutting-edge technologies to solve complex problems and drive innovation.",
		introVisual:      "Professional headshot transitioning to modern tech workspace with code displays",
		experienceVisual: "Dynamic timeline showcasing technical projects and achievements",
		skillsVisual:     "Interactive visualization of tech stack and programming languages",
		achieveVisual:    "Data visualization of project metrics and system improvements",
		goalsVisual:      "Forward-looking imagery of emerging technologies and innovation",
	},
}

// TemplateGenerator renders the base script deterministically. It never
// fails, which makes it the fallback behind every other generator.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a deterministic template-based generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate renders the six-section base script for the profile's industry.
func (g *TemplateGenerator) Generate(_ context.Context, p *profile.ResumeProfile) (string, error) {
	return BaseScript(p), nil
}

// BaseScript renders the deterministic six-section script for a profile.
func BaseScript(p *profile.ResumeProfile) string {
	tpl := industryTemplates[DetectIndustry(p)]

	company := "current company"
	if len(p.Companies) > 0 {
		company = p.Companies[0]
	}

	topSkills := strings.Join(firstN(p.Skills, 3), ", ")

	achievement := tpl.fallbackAudio
	if len(p.Achievements) > 0 {
		achievement = achievements.Format(&p.Achievements[0])
	}

	contactAudio := fmt.Sprintf("Contact me at %s", p.ContactInfo.Email)
	if p.ContactInfo.Phone != "" {
		contactAudio += fmt.Sprintf(" or %s", p.ContactInfo.Phone)
	}

	var b strings.Builder
	section := func(header, caption, audio, visual string) {
		fmt.Fprintf(&b, "%s\n- Caption: %s\n- Audio: %s\n- Visual: %s\n\n", header, caption, audio, visual)
	}

	section("1. Introduction",
		fmt.Sprintf("%s | %s", p.Name, p.CurrentRole),
		tpl.introAudio(p.Name, p.CurrentRole, p.YearsExperience),
		tpl.introVisual)
	section("2. Experience",
		"Professional Excellence",
		tpl.experienceAudio(company),
		tpl.experienceVisual)
	section("3. Skills",
		"Core Competencies",
		tpl.skillsAudio(topSkills),
		tpl.skillsVisual)
	section("4. Achievement",
		"Key Impact",
		achievement,
		tpl.achieveVisual)
	section("5. Goals",
		"Future Vision",
		tpl.goalsAudio,
		tpl.goalsVisual)
	section("6. Contact",
		"Let's Connect",
		contactAudio,
		"Professional contact display with modern industry-themed background")

	return strings.TrimSpace(b.String())
}

// formatYears renders tenure without a trailing ".0" for whole years.
func formatYears(years float64) string {
	s := fmt.Sprintf("%.1f", years)
	return strings.TrimSuffix(s, ".0")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
