package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateSection(t *testing.T) {
	text := "JORDAN SMITH\n\nExperience:\nAcme Retail\nStore operations\n\nEducation:\nBachelor of Science"

	assert.Equal(t, "Acme Retail\nStore operations", LocateSection(text, SectionExperience))
	assert.Equal(t, "Bachelor of Science", LocateSection(text, SectionEducation))
}

func TestLocateSection_InlineContent(t *testing.T) {
	text := "Skills: Python, SQL\n\nother text"

	assert.Equal(t, "Python, SQL", LocateSection(text, SectionSkills))
}

func TestLocateSection_StopsAtNextHeader(t *testing.T) {
	text := "Experience\nStore Manager role\nEducation\nBachelor of Arts"

	assert.Equal(t, "Store Manager role", LocateSection(text, SectionExperience))
}

func TestLocateSection_HeaderAliases(t *testing.T) {
	assert.Equal(t, "Acme", LocateSection("Work History\nAcme", SectionExperience))
	assert.Equal(t, "Acme", LocateSection("EMPLOYMENT HISTORY\nAcme", SectionExperience))
	assert.Equal(t, "detail", LocateSection("Professional Summary\ndetail", SectionProfile))
	assert.Equal(t, "listed", LocateSection("Skills & Abilities:\nlisted", SectionSkills))
}

func TestLocateSection_ProseIsNotAHeader(t *testing.T) {
	// "Experienced manager ..." must not count as an Experience header.
	assert.Empty(t, LocateSection("Experienced manager grew regional sales", SectionExperience))
}

func TestLocateSection_Missing(t *testing.T) {
	assert.Empty(t, LocateSection("no sections at all", SectionEducation))
}
