package achievements

import (
	"regexp"

	"github.com/jonathan/resume-profiler/internal/profile"
)

// Tier weights shared by category and metric scoring.
var tierWeights = map[string]int{
	profile.TierHigh:   5,
	profile.TierMedium: 3,
	profile.TierLow:    1,
}

// tierPatterns holds the compiled phrase patterns for one tier of one
// category. Patterns match against the lower-cased sentence.
type tierPatterns struct {
	tier     string
	patterns []*regexp.Regexp
}

type categoryTable struct {
	name  string
	tiers []tierPatterns // high to low
}

func compileTier(tier string, patterns ...string) tierPatterns {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`\b` + p + `\b`)
	}
	return tierPatterns{tier: tier, patterns: res}
}

// categoryTables is the fixed category scoring configuration: five
// categories, three tiers each. A sentence scores each category at the
// weight of the highest tier it matches.
var categoryTables = []categoryTable{
	{name: profile.CategoryLeadership, tiers: []tierPatterns{
		compileTier(profile.TierHigh,
			`led\s+(?:global|enterprise|company-wide)`,
			`directed\s+(?:strategic|major|key)`,
			`spearheaded\s+(?:transformation|initiative)`,
			`transformed\s+(?:organization|department)`,
			`established\s+(?:new|innovative)\s+(?:division|department)`,
		),
		compileTier(profile.TierMedium,
			`managed\s+(?:team|project|program)`,
			`led\s+(?:a\s+)?team`,
			`supervised\s+(?:staff|employees)`,
			`coordinated\s+(?:efforts|activities)`,
			`guided\s+(?:implementation|development)`,
			`mentored\s+(?:team|staff|employees)`,
		),
		compileTier(profile.TierLow,
			`assisted\s+(?:in|with)`,
			`supported\s+(?:team|project)`,
			`participated\s+(?:in|as)`,
			`contributed\s+to`,
			`helped\s+(?:with|in)`,
		),
	}},
	{name: profile.CategoryGrowth, tiers: []tierPatterns{
		compileTier(profile.TierHigh,
			`doubled|tripled|quadrupled`,
			`increased\s+(?:\d+(?:\.\d+)?x|\d{3,}%)`,
			`grew\s+(?:revenue|sales|profit)\s+by\s+(?:\d{3,}%|\$\d+m)`,
			`expanded\s+(?:globally|internationally)`,
			`scaled\s+(?:operations|business)\s+(?:\d+x|\d{3,}%)`,
		),
		compileTier(profile.TierMedium,
			`increased\s+by\s+(?:\d{2,3}%|\$\d+k)`,
			`improved\s+(?:performance|efficiency)\s+by\s+\d{2,3}%`,
			`enhanced\s+(?:productivity|output)\s+by\s+\d{2,3}%`,
			`boosted\s+(?:sales|revenue)\s+by\s+\d{2,3}%`,
			`grew\s+(?:team|department)\s+by\s+\d{2,3}%`,
		),
		compileTier(profile.TierLow,
			`increased\s+by\s+(?:\d{1,2}%|\$\d+)`,
			`improved\s+(?:slightly|marginally)`,
			`enhanced\s+(?:somewhat|partially)`,
			`contributed\s+to\s+growth`,
			`supported\s+growth\s+initiatives`,
		),
	}},
	{name: profile.CategoryInnovation, tiers: []tierPatterns{
		compileTier(profile.TierHigh,
			`pioneered\s+(?:revolutionary|groundbreaking|first-ever)`,
			`invented\s+(?:new|novel|innovative)`,
			`developed\s+(?:patent|proprietary)`,
			`created\s+(?:revolutionary|breakthrough)`,
			`designed\s+(?:award-winning|innovative)`,
		),
		compileTier(profile.TierMedium,
			`implemented\s+(?:new|improved)`,
			`redesigned\s+(?:process|system)`,
			`modernized\s+(?:approach|method)`,
			`enhanced\s+(?:technology|system)`,
			`upgraded\s+(?:platform|infrastructure)`,
		),
		compileTier(profile.TierLow,
			`assisted\s+(?:in|with)\s+development`,
			`supported\s+(?:implementation|rollout)`,
			`helped\s+(?:develop|create)`,
			`participated\s+in\s+(?:development|design)`,
			`contributed\s+to\s+(?:project|initiative)`,
		),
	}},
	{name: profile.CategoryEfficiency, tiers: []tierPatterns{
		compileTier(profile.TierHigh,
			`reduced\s+(?:costs|expenses)\s+by\s+(?:\d{3,}%|\$\d+m)`,
			`automated\s+(?:\d{2,}|multiple)\s+processes`,
			`eliminated\s+(?:\d{2,}%|major)\s+(?:waste|redundancy)`,
			`optimized\s+(?:enterprise|company-wide)\s+operations`,
			`streamlined\s+(?:critical|key)\s+(?:processes|operations)`,
		),
		compileTier(profile.TierMedium,
			`reduced\s+(?:time|costs)\s+by\s+\d{2,3}%`,
			`reduc(?:ed|ing)\s+\w+\s+by\s+\d{2,3}%`,
			`improved\s+efficiency\s+by\s+\d{2,3}%`,
			`automated\s+(?:process|workflow)`,
			`streamlined\s+(?:operations|procedures)`,
			`optimized\s+(?:workflow|process)`,
		),
		compileTier(profile.TierLow,
			`reduced\s+(?:time|costs)\s+by\s+\d{1,2}%`,
			`improved\s+(?:slightly|somewhat)`,
			`helped\s+streamline`,
			`assisted\s+with\s+optimization`,
			`supported\s+efficiency\s+initiatives`,
		),
	}},
	{name: profile.CategoryImpact, tiers: []tierPatterns{
		compileTier(profile.TierHigh,
			`generated\s+(?:\$\d+m|\d{3,}%)`,
			`saved\s+(?:\$\d+m|\d{3,}%)`,
			`impacted\s+(?:company-wide|enterprise)`,
			`transformed\s+(?:industry|market)`,
			`revolutionized\s+(?:approach|method)`,
		),
		compileTier(profile.TierMedium,
			`generated\s+(?:\$\d+k|\d{2,3}%)`,
			`saved\s+(?:\$\d+k|\d{2,3}%)`,
			`improved\s+(?:key|important)`,
			`enhanced\s+(?:significant|substantial)`,
			`delivered\s+(?:significant|substantial)`,
		),
		compileTier(profile.TierLow,
			`generated\s+(?:\$\d+|\d{1,2}%)`,
			`saved\s+(?:\$\d+|\d{1,2}%)`,
			`improved\s+(?:minor|small)`,
			`contributed\s+to`,
			`supported\s+(?:efforts|initiatives)`,
		),
	}},
}

// scoreCategories evaluates every category against a lower-cased sentence.
// Each category contributes the weight of its highest matching tier; the map
// only records categories that matched.
func scoreCategories(lowerSentence string) map[string]int {
	scores := make(map[string]int)
	for _, table := range categoryTables {
		for _, tier := range table.tiers {
			if matchesAny(tier.patterns, lowerSentence) {
				scores[table.name] = tierWeights[tier.tier]
				break // tiers are ordered high to low
			}
		}
	}
	if len(scores) == 0 {
		return nil
	}
	return scores
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
