package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/profile"
)

func TestScoreSentence_CompositeScore(t *testing.T) {
	a, ok := ScoreSentence("Led a team of 50 employees and increased revenue by 30% across 5 locations")
	require.True(t, ok)

	// Leadership at the medium tier (3), "30%" as a medium percentage (3),
	// and three small quantities (50, 30, 5) at one point each.
	assert.Equal(t, 9, a.Score)
	assert.Equal(t, profile.ImpactMedium, a.ImpactLevel)
	assert.Equal(t, map[string]int{profile.CategoryLeadership: 3}, a.CategoryScores)
	assert.Equal(t, []string{"30%"}, a.Metrics[profile.MetricPercentage][profile.TierMedium])
	assert.Equal(t, []string{"50", "30", "5"}, a.Metrics[profile.MetricQuantity][profile.TierLow])
	assert.Equal(t, "Led a team of 50 employees and increased revenue by 30% across 5 locations", a.Text)
}

func TestScoreSentence_HighImpact(t *testing.T) {
	a, ok := ScoreSentence("Led global initiatives and generated $5m in savings this year")
	require.True(t, ok)

	// leadership high (5) + impact high (5) + $5m money high (5) +
	// quantity low (1) + "global" keyword (5) + "this year" recency (3).
	assert.Equal(t, 24, a.Score)
	assert.Equal(t, profile.ImpactHigh, a.ImpactLevel)
}

func TestScoreSentence_ZeroScoreDropped(t *testing.T) {
	_, ok := ScoreSentence("Attended meetings every single week")
	assert.False(t, ok)
}

func TestScoreSentence_TextIsCleaned(t *testing.T) {
	a, ok := ScoreSentence("Led a team | Acme Corp and improved retention by 12%")
	require.True(t, ok)

	assert.Equal(t, "Led a team at Acme Corp and improved retention by 12%", a.Text)
}

func TestExtract_RankedDescending(t *testing.T) {
	text := "Led a team of 50 employees and increased revenue by 30% across 5 locations. " +
		"Led a team to improved handoffs. " +
		"Helped with office supplies ordering for everyone."

	scorer := NewScorer(Options{})
	got := scorer.Extract(text)

	require.Len(t, got, 3)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.Greater(t, got[1].Score, got[2].Score)
	assert.Contains(t, got[0].Text, "increased revenue")
}

func TestExtract_CapsResults(t *testing.T) {
	text := "Led a team of 50 employees and increased revenue by 30% across 5 locations. " +
		"Led a team to improved handoffs. " +
		"Helped with office supplies ordering for everyone."

	scorer := NewScorer(Options{MaxAchievements: 2})
	got := scorer.Extract(text)

	require.Len(t, got, 2)
	assert.Contains(t, got[0].Text, "increased revenue")
}

func TestExtract_SkipsNonAchievements(t *testing.T) {
	text := "WORK HISTORY. Reach me at jane@example.com today. Graduated from a top university."

	scorer := NewScorer(Options{})
	assert.Empty(t, scorer.Extract(text))
}

func TestNewScorer_DefaultCap(t *testing.T) {
	s := NewScorer(Options{})
	assert.Equal(t, MaxAchievementsGeneral, s.maxAchievements)

	s = NewScorer(Options{MaxAchievements: MaxAchievementsTemplate})
	assert.Equal(t, MaxAchievementsTemplate, s.maxAchievements)
}
