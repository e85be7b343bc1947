package achievements

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

// metricTier is one magnitude tier of a metric type.
type metricTier struct {
	tier string
	re   *regexp.Regexp
}

// metricTable tiers numeric mentions of one metric type by magnitude.
// Unlike categories, every distinct match adds its tier's weight, and the
// matched literals are retained for highlighting.
type metricTable struct {
	name  string
	tiers []metricTier // high to low
}

func mt(tier, pattern string) metricTier {
	return metricTier{tier: tier, re: regexp.MustCompile(`(?i)` + pattern)}
}

// metricTables is the fixed metric scoring configuration: five metric types,
// three magnitude tiers each. Table order fixes the highlight-replacement
// priority: percentage > money > scale > time > quantity.
var metricTables = []metricTable{
	{name: profile.MetricPercentage, tiers: []metricTier{
		mt(profile.TierHigh, `\d{3,}(?:\.\d+)?(?:%|\spercent)`),
		mt(profile.TierMedium, `\d{2}(?:\.\d+)?(?:%|\spercent)`),
		mt(profile.TierLow, `\d(?:\.\d+)?(?:%|\spercent)`),
	}},
	{name: profile.MetricMoney, tiers: []metricTier{
		mt(profile.TierHigh, `[\$£€](?:\d+(?:\.\d+)?m|\d{7,})`),
		mt(profile.TierMedium, `[\$£€](?:\d+(?:\.\d+)?k|\d{4,6})`),
		mt(profile.TierLow, `[\$£€]\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
	}},
	{name: profile.MetricScale, tiers: []metricTier{
		mt(profile.TierHigh, `\d{2,}(?:x\b|\stimes)`),
		mt(profile.TierMedium, `\d+\.\d+(?:x\b|\stimes)`),
		mt(profile.TierLow, `\d+(?:\.\d+)?(?:x\b|\stimes)`),
	}},
	{name: profile.MetricTime, tiers: []metricTier{
		mt(profile.TierHigh, `\d+\+?\s+years?`),
		mt(profile.TierMedium, `\d+\s+(?:month|quarter)s?`),
		mt(profile.TierLow, `\d+\s+(?:day|week)s?`),
	}},
	{name: profile.MetricQuantity, tiers: []metricTier{
		mt(profile.TierHigh, `\d{5,}\+?`),
		mt(profile.TierMedium, `\d{3,4}\+?`),
		mt(profile.TierLow, `\d{1,2}\+?`),
	}},
}

// scoreMetrics finds every tiered numeric mention in a sentence. It returns
// the total weight added and the matched literals per type and tier. Within
// one metric type, tiers are evaluated high to low and a span claimed by a
// higher tier is masked out so a lower tier cannot recount a fragment of it
// (e.g. the "50%" inside "150%").
func scoreMetrics(sentence string) (int, map[string]map[string][]string) {
	total := 0
	found := make(map[string]map[string][]string)

	for _, table := range metricTables {
		remaining := sentence
		var tiers map[string][]string

		for _, t := range table.tiers {
			spans := t.re.FindAllStringIndex(remaining, -1)
			if len(spans) == 0 {
				continue
			}
			if tiers == nil {
				tiers = make(map[string][]string)
			}
			for _, span := range spans {
				tiers[t.tier] = append(tiers[t.tier], remaining[span[0]:span[1]])
			}
			total += tierWeights[t.tier] * len(spans)
			remaining = maskSpans(remaining, spans)
		}

		if tiers != nil {
			found[table.name] = tiers
		}
	}

	if len(found) == 0 {
		return 0, nil
	}
	return total, found
}

// maskSpans blanks out claimed character ranges, preserving offsets.
func maskSpans(s string, spans [][]int) string {
	b := []byte(s)
	for _, span := range spans {
		copy(b[span[0]:span[1]], strings.Repeat(" ", span[1]-span[0]))
	}
	return string(b)
}
