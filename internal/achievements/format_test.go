package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-profiler/internal/profile"
)

func TestFormat_LeadInAndEmphasis(t *testing.T) {
	a := &profile.Achievement{
		Text:        "Raised conversion by 150% over 12 weeks",
		Score:       16,
		ImpactLevel: profile.ImpactHigh,
		CategoryScores: map[string]int{
			profile.CategoryGrowth: 5,
		},
		Metrics: map[string]map[string][]string{
			profile.MetricPercentage: {profile.TierHigh: {"150%"}},
			profile.MetricQuantity:   {profile.TierLow: {"12"}},
		},
	}

	got := Format(a)
	assert.Equal(t, "Delivering exceptional growth - Raised conversion by **150%** over 12 weeks", got)
}

func TestFormat_MediumTierEmphasis(t *testing.T) {
	a := &profile.Achievement{
		Text:        "Improved retention by 40% in the region",
		Score:       8,
		ImpactLevel: profile.ImpactMedium,
		CategoryScores: map[string]int{
			profile.CategoryEfficiency: 3,
		},
		Metrics: map[string]map[string][]string{
			profile.MetricPercentage: {profile.TierMedium: {"40%"}},
		},
	}

	got := Format(a)
	assert.Equal(t, "Substantially improving efficiency - Improved retention by *40%* in the region", got)
}

func TestFormat_LowTierUnmarked(t *testing.T) {
	a := &profile.Achievement{
		Text:        "Trained 8 new hires on the workflow",
		Score:       2,
		ImpactLevel: profile.ImpactLow,
		CategoryScores: map[string]int{
			profile.CategoryLeadership: 1,
		},
		Metrics: map[string]map[string][]string{
			profile.MetricQuantity: {profile.TierLow: {"8"}},
		},
	}

	got := Format(a)
	assert.Equal(t, "Supporting leadership initiatives - Trained 8 new hires on the workflow", got)
}

func TestFormat_NoCategoryNoLeadIn(t *testing.T) {
	a := &profile.Achievement{
		Text:        "Shipped the redesign ahead of schedule",
		Score:       1,
		ImpactLevel: profile.ImpactLow,
	}

	assert.Equal(t, "Shipped the redesign ahead of schedule", Format(a))
}
