// Package profile defines the structured output model produced by resume parsing.
package profile

// Impact levels for achievements, derived from the composite score.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Score thresholds for impact classification.
const (
	HighImpactThreshold   = 15
	MediumImpactThreshold = 8
)

// Achievement categories recognized by the scorer.
const (
	CategoryLeadership = "leadership"
	CategoryGrowth     = "growth"
	CategoryInnovation = "innovation"
	CategoryEfficiency = "efficiency"
	CategoryImpact     = "impact"
)

// Metric types recognized by the scorer.
const (
	MetricPercentage = "percentage"
	MetricMoney      = "money"
	MetricScale      = "scale"
	MetricTime       = "time"
	MetricQuantity   = "quantity"
)

// Match tiers used to weight category and metric matches.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// ContactInfo holds extracted contact details. Either field may be empty.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Education holds a single extracted education entry.
type Education struct {
	Degree string `json:"degree"`
}

// Achievement is one scored achievement sentence. Metrics maps metric type to
// tier to the literal values matched in the sentence, retained so the
// formatter can highlight them later.
type Achievement struct {
	Text           string                         `json:"text"`
	CategoryScores map[string]int                 `json:"category_scores,omitempty"`
	Metrics        map[string]map[string][]string `json:"metrics,omitempty"`
	Score          int                            `json:"score"`
	ImpactLevel    string                         `json:"impact_level"`
}

// PrimaryCategory returns the category with the highest recorded score, or ""
// if no category matched. Ties break on category name so the result is
// deterministic.
func (a *Achievement) PrimaryCategory() string {
	best := ""
	bestScore := 0
	for category, score := range a.CategoryScores {
		if score > bestScore || (score == bestScore && best != "" && category < best) {
			best = category
			bestScore = score
		}
	}
	return best
}

// ImpactLevelForScore classifies a composite score into an impact level.
func ImpactLevelForScore(score int) string {
	switch {
	case score >= HighImpactThreshold:
		return ImpactHigh
	case score >= MediumImpactThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// ResumeProfile is the structured result of parsing one resume. It is built
// once per parse and never mutated afterwards. Missing data is represented by
// the field's zero value rather than an error.
type ResumeProfile struct {
	Name            string        `json:"name"`
	CurrentRole     string        `json:"current_role"`
	Companies       []string      `json:"companies"`
	YearsExperience float64       `json:"years_experience"`
	Skills          []string      `json:"skills"`
	Achievements    []Achievement `json:"achievements"`
	ContactInfo     ContactInfo   `json:"contact_info"`
	Education       []Education   `json:"education"`
}
