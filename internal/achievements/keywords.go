package achievements

import "strings"

// impactKeywords maps significance keywords to weights. A sentence takes the
// single highest weight present, not a sum.
var impactKeywords = map[string]int{
	// High tier
	"global": 5, "enterprise": 5, "company-wide": 5,
	"revolutionary": 5, "breakthrough": 5, "transformative": 5,
	"first-ever": 5, "groundbreaking": 5, "pioneering": 5,
	// Medium tier
	"significant": 3, "substantial": 3, "important": 3,
	"valuable": 3, "key": 3, "major": 3, "critical": 3,
	"essential": 3, "strategic": 3,
	// Low tier
	"improved": 1, "enhanced": 1, "supported": 1,
	"assisted": 1, "helped": 1, "contributed": 1,
}

// scoreImpactKeywords returns the weight of the strongest significance
// keyword in a lower-cased sentence, 0 if none appears.
func scoreImpactKeywords(lowerSentence string) int {
	best := 0
	for keyword, weight := range impactKeywords {
		if weight > best && strings.Contains(lowerSentence, keyword) {
			best = weight
		}
	}
	return best
}

// recencyBonuses are temporal cues in priority order; only the first cue
// found contributes, so "current" beats any later mention of "previously".
var recencyBonuses = []struct {
	keyword string
	bonus   int
}{
	{"current", 5},
	{"recently", 4},
	{"this year", 3},
	{"last year", 2},
	{"previously", 1},
}

// scoreRecency returns the bonus of the highest-priority temporal cue in a
// lower-cased sentence, 0 if none appears.
func scoreRecency(lowerSentence string) int {
	for _, rb := range recencyBonuses {
		if strings.Contains(lowerSentence, rb.keyword) {
			return rb.bonus
		}
	}
	return 0
}
