package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-profiler/internal/profile"
)

func TestScoreMetrics_PercentageTiers(t *testing.T) {
	_, found := scoreMetrics("Cut churn by 5% and grew signups by 40%")

	pct := found[profile.MetricPercentage]
	assert.Equal(t, []string{"40%"}, pct[profile.TierMedium])
	assert.Equal(t, []string{"5%"}, pct[profile.TierLow])
}

func TestScoreMetrics_HigherTierMasksLower(t *testing.T) {
	score, found := scoreMetrics("Cut costs by 150%")

	pct := found[profile.MetricPercentage]
	assert.Equal(t, []string{"150%"}, pct[profile.TierHigh])
	// The "50%" inside "150%" must not be recounted at a lower tier.
	assert.NotContains(t, pct, profile.TierMedium)
	assert.NotContains(t, pct, profile.TierLow)

	// 150% at the high tier plus "150" as a medium quantity.
	assert.Equal(t, 8, score)
	assert.Equal(t, []string{"150"}, found[profile.MetricQuantity][profile.TierMedium])
}

func TestScoreMetrics_Money(t *testing.T) {
	_, found := scoreMetrics("Generated $2.5m in new revenue")

	money := found[profile.MetricMoney]
	assert.Equal(t, []string{"$2.5m"}, money[profile.TierHigh])
}

func TestScoreMetrics_TimeAndQuantity(t *testing.T) {
	score, found := scoreMetrics("Delivered the program 6 months ahead of schedule")

	assert.Equal(t, []string{"6 months"}, found[profile.MetricTime][profile.TierMedium])
	assert.Equal(t, []string{"6"}, found[profile.MetricQuantity][profile.TierLow])
	assert.Equal(t, 4, score)
}

func TestScoreMetrics_Scale(t *testing.T) {
	_, found := scoreMetrics("Grew traffic 10x in two quarters")

	assert.Equal(t, []string{"10x"}, found[profile.MetricScale][profile.TierHigh])
}

func TestScoreMetrics_NoMetrics(t *testing.T) {
	score, found := scoreMetrics("Led the regional expansion effort")

	assert.Zero(t, score)
	assert.Nil(t, found)
}

func TestMaskSpans(t *testing.T) {
	masked := maskSpans("abc 150% def", [][]int{{4, 8}})
	assert.Equal(t, "abc      def", masked)
}
