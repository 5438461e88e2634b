// Package types provides type definitions for structured data used throughout the talentrank system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Weights is the (lexical, semantic, skill) weight vector used for fusion.
// The ranking engine applies the weights exactly as given; callers that want
// a score in [0,1] normalize them first.
type Weights struct {
	Lexical  float64 `json:"lexical" yaml:"lexical" koanf:"lexical" validate:"gte=0"`
	Semantic float64 `json:"semantic" yaml:"semantic" koanf:"semantic" validate:"gte=0"`
	Skill    float64 `json:"skill" yaml:"skill" koanf:"skill" validate:"gte=0"`
}

// DefaultWeights returns the default ensemble weights: semantic-heavy with
// smaller keyword and skill-coverage contributions.
func DefaultWeights() Weights {
	return Weights{Lexical: 0.20, Semantic: 0.65, Skill: 0.15}
}

// Sum returns the total of the three weights.
func (w Weights) Sum() float64 {
	return w.Lexical + w.Semantic + w.Skill
}

// IsZero reports whether all weights are zero.
func (w Weights) IsZero() bool {
	return w.Lexical == 0 && w.Semantic == 0 && w.Skill == 0
}

// Normalized returns the weights scaled to sum to 1.
// An all-zero (or non-positive sum) vector falls back to DefaultWeights.
func (w Weights) Normalized() Weights {
	s := w.Sum()
	if s <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Lexical:  w.Lexical / s,
		Semantic: w.Semantic / s,
		Skill:    w.Skill / s,
	}
}
