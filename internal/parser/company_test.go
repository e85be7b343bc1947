package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCompanies_LabeledLine(t *testing.T) {
	got := ExtractCompanies("Company: Acme Robotics\nEmployer: Harbor Grill")

	assert.Equal(t, []string{"Acme Robotics", "Harbor Grill"}, got)
}

func TestExtractCompanies_LegalSuffix(t *testing.T) {
	got := ExtractCompanies("Experience:\nAcme Retail Inc.\nStore operations")

	assert.Equal(t, []string{"Acme Retail Inc."}, got)
}

func TestExtractCompanies_PrepositionPhrase(t *testing.T) {
	got := ExtractCompanies("Experience:\nat Bright Harbor as lead trainer")

	assert.Equal(t, []string{"Bright Harbor"}, got)
}

func TestExtractCompanies_DedupeAndCap(t *testing.T) {
	text := "Company: Acme Robotics\n" +
		"Company: Acme Robotics\n" +
		"Company: Harbor Grill\n" +
		"Company: Fresh Bites\n" +
		"Company: North Supply"

	got := ExtractCompanies(text)

	assert.Equal(t, []string{"Acme Robotics", "Harbor Grill", "Fresh Bites"}, got)
}

func TestExtractCompanies_RejectsBoilerplate(t *testing.T) {
	assert.Empty(t, ExtractCompanies("Company: Resume Services\nEmployer: Profile Experts"))
}

func TestExtractCompanies_VerbatimSubstrings(t *testing.T) {
	text := "Company: Acme Robotics\nExperience:\nHarbor Grill LLC\nat Fresh Bites as manager"

	got := ExtractCompanies(text)
	require.NotEmpty(t, got)
	for _, company := range got {
		assert.True(t, strings.Contains(text, company), "company %q must appear verbatim in the source", company)
	}
}
