package achievements

import (
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

// leadIns are the narrative openers prepended to a formatted achievement,
// indexed by impact level then primary category.
var leadIns = map[string]map[string]string{
	profile.ImpactHigh: {
		profile.CategoryLeadership: "Through transformative leadership",
		profile.CategoryGrowth:     "Delivering exceptional growth",
		profile.CategoryEfficiency: "Dramatically improving efficiency",
		profile.CategoryInnovation: "Pioneering innovative solutions",
		profile.CategoryImpact:     "Creating transformative impact",
	},
	profile.ImpactMedium: {
		profile.CategoryLeadership: "Through effective leadership",
		profile.CategoryGrowth:     "Driving significant growth",
		profile.CategoryEfficiency: "Substantially improving efficiency",
		profile.CategoryInnovation: "Implementing innovative solutions",
		profile.CategoryImpact:     "Delivering meaningful impact",
	},
	profile.ImpactLow: {
		profile.CategoryLeadership: "Supporting leadership initiatives",
		profile.CategoryGrowth:     "Contributing to growth",
		profile.CategoryEfficiency: "Improving efficiency",
		profile.CategoryInnovation: "Supporting innovation",
		profile.CategoryImpact:     "Making positive impact",
	},
}

// emphasis markers by tier.
func emphasize(value, tier string) string {
	switch tier {
	case profile.TierHigh:
		return "**" + value + "**"
	case profile.TierMedium:
		return "*" + value + "*"
	default:
		return value
	}
}

// Format renders an achievement for presentation: a lead-in chosen by impact
// level and primary category, then the cleaned sentence with each matched
// metric literal wrapped in its tier's emphasis marker.
//
// The same literal can be recorded under more than one metric type (a bare
// number is both a quantity and part of a percentage). Replacement follows
// the fixed priority percentage > money > scale > time > quantity, high tier
// before low, and a literal is replaced only once, so output is
// deterministic.
func Format(a *profile.Achievement) string {
	text := a.Text

	replaced := make(map[string]struct{})
	for _, table := range metricTables {
		tiers, ok := a.Metrics[table.name]
		if !ok {
			continue
		}
		for _, t := range table.tiers {
			for _, value := range tiers[t.tier] {
				if _, done := replaced[value]; done {
					continue
				}
				replaced[value] = struct{}{}
				if marked := emphasize(value, t.tier); marked != value {
					text = strings.ReplaceAll(text, value, marked)
				}
			}
		}
	}

	if primary := a.PrimaryCategory(); primary != "" {
		if leadIn, ok := leadIns[a.ImpactLevel][primary]; ok {
			text = leadIn + " - " + text
		}
	}

	return text
}
