package achievements

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-profiler/internal/profile"
)

// Achievement list caps per variant.
const (
	MaxAchievementsGeneral  = 5
	MaxAchievementsTemplate = 3
)

// Options configures a Scorer.
type Options struct {
	// MaxAchievements caps the ranked result list. Zero means the general
	// variant's cap.
	MaxAchievements int
}

// Scorer extracts, scores, and ranks achievement sentences. It holds only
// immutable configuration, so one instance is safe for concurrent use.
type Scorer struct {
	maxAchievements int
}

// NewScorer builds a Scorer.
func NewScorer(opts Options) *Scorer {
	limit := opts.MaxAchievements
	if limit <= 0 {
		limit = MaxAchievementsGeneral
	}
	return &Scorer{maxAchievements: limit}
}

// Extract segments the text, scores every qualifying sentence, and returns
// the highest-scoring achievements in descending score order, up to the
// configured cap. An input with no qualifying sentences yields an empty
// list, never an error.
func (s *Scorer) Extract(text string) []profile.Achievement {
	var scored []profile.Achievement
	for _, sentence := range splitSentences(text) {
		if skip(sentence) {
			continue
		}
		if a, ok := ScoreSentence(sentence); ok {
			scored = append(scored, a)
		}
	}

	// Stable sort so equal scores keep document order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.maxAchievements {
		scored = scored[:s.maxAchievements]
	}
	return scored
}

// ScoreSentence runs the full scoring pipeline over one sentence: category
// scores, metric scores, the single best impact keyword, and the recency
// bonus. A sentence is retained only when its composite score is positive.
func ScoreSentence(sentence string) (profile.Achievement, bool) {
	lower := strings.ToLower(sentence)

	a := profile.Achievement{
		Text:        sentence,
		ImpactLevel: profile.ImpactLow,
	}

	a.CategoryScores = scoreCategories(lower)
	for _, score := range a.CategoryScores {
		a.Score += score
	}

	metricScore, metrics := scoreMetrics(sentence)
	a.Score += metricScore
	a.Metrics = metrics

	a.Score += scoreImpactKeywords(lower)
	a.Score += scoreRecency(lower)

	a.ImpactLevel = profile.ImpactLevelForScore(a.Score)

	if a.Score <= 0 {
		return profile.Achievement{}, false
	}

	a.Text = CleanSentence(sentence)
	return a, true
}
