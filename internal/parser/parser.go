// Package parser implements the resume extraction engine: section location,
// field extractors, and the two parsing variants that turn normalized resume
// text into a structured profile.
package parser

import (
	"time"

	"github.com/jonathan/resume-profiler/internal/achievements"
	"github.com/jonathan/resume-profiler/internal/profile"
)

// Variant names accepted by New.
const (
	VariantGeneral  = "general"
	VariantTemplate = "template"
)

// Parser is the shared parse contract. A parser holds no state across calls:
// Parse operates only on its input and returns a fresh profile, so a single
// instance is safe for concurrent use.
type Parser interface {
	// Variant reports which parsing strategy this parser implements.
	Variant() string
	// Parse extracts a structured profile from normalized resume text.
	// It never fails: missing fields are zero values in the result.
	Parse(sourceText string) *profile.ResumeProfile
}

// Options configures a parser. The zero value is usable.
type Options struct {
	// Now supplies the current time for tenure computed against open-ended
	// date ranges ("Present"). Defaults to time.Now; tests inject a fixed
	// clock for determinism.
	Now func() time.Time

	// DefaultRole is used when no role can be extracted. Empty by default.
	DefaultRole string

	// Dictionaries are the skill category tables. Defaults to
	// DefaultDictionaries.
	Dictionaries *Dictionaries
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Dictionaries == nil {
		o.Dictionaries = DefaultDictionaries()
	}
	return o
}

// New returns the parser for the named variant, or nil if the variant is
// unknown. Variant selection is the caller's decision based on the document
// convention; it is never inferred from the text.
func New(variant string, opts Options) Parser {
	switch variant {
	case VariantGeneral:
		return NewGeneralParser(opts)
	case VariantTemplate:
		return NewTemplateParser(opts)
	default:
		return nil
	}
}

func newScorer(limit int) *achievements.Scorer {
	return achievements.NewScorer(achievements.Options{MaxAchievements: limit})
}
