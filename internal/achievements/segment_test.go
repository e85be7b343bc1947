package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Led the team. Improved the process! Shipped it?")
	assert.Equal(t, []string{"Led the team", "Improved the process", "Shipped it"}, got)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, splitSentences(""))
	assert.Empty(t, splitSentences("...  !!"))
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     bool
	}{
		{
			name:     "qualifying achievement",
			sentence: "Led a team of twelve people across regions",
			want:     false,
		},
		{
			name:     "too short",
			sentence: "Led growth",
			want:     true,
		},
		{
			name:     "all caps header",
			sentence: "PROFESSIONAL EXPERIENCE AND SKILLS SUMMARY",
			want:     true,
		},
		{
			name:     "email boilerplate",
			sentence: "Reach me at john.doe@example.com for more details",
			want:     true,
		},
		{
			name:     "employment date line",
			sentence: "Senior positions held from January 2020 onward at the firm",
			want:     true,
		},
		{
			name:     "education prose",
			sentence: "Studied toward a bachelor degree while working full time",
			want:     true,
		},
		{
			name:     "no action verb",
			sentence: "Attended many meetings with the team every week",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skip(tt.sentence))
		})
	}
}

func TestIsUpper(t *testing.T) {
	assert.True(t, isUpper("WORK HISTORY"))
	assert.False(t, isUpper("Work History"))
	assert.False(t, isUpper("12345"))
}
