package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRole_DateAdjacent(t *testing.T) {
	text := "Experience:\nJan 2020 - Present\nRestaurant Manager\nRan daily operations"

	assert.Equal(t, "Restaurant Manager", ExtractRole(text))
}

func TestExtractRole_DomainPhrase(t *testing.T) {
	assert.Equal(t, "senior data analyst", ExtractRole("She is a senior data analyst by trade"))
}

func TestExtractRole_LabeledLine(t *testing.T) {
	assert.Equal(t, "Store Manager", ExtractRole("Title: Store Manager\nother details"))
}

func TestExtractRole_AchievementMention(t *testing.T) {
	assert.Equal(t, "Training Manager", ExtractRole("Worked as a Training Manager overseeing onboarding"))
}

func TestExtractRole_Empty(t *testing.T) {
	assert.Empty(t, ExtractRole("no title information anywhere"))
}

func TestCleanRoleCandidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips employer clause",
			in:   "Operations Manager at Acme Retail",
			want: "Operations Manager",
		},
		{
			name: "strips punctuation",
			in:   "  Restaurant Manager. ",
			want: "Restaurant Manager",
		},
		{
			name: "single word rejected",
			in:   "Manager",
			want: "",
		},
		{
			name: "too long rejected",
			in:   "One Two Three Four Five Six Seven",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanRoleCandidate(tt.in))
		})
	}
}
