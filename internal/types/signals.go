// Package types provides type definitions for structured data used throughout the talentrank system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Signals holds the independently computed relevance signals and robustness
// factors for one (candidate, query) pair, before weights are applied.
type Signals struct {
	Lexical         float64
	Semantic        float64
	SkillOverlap    float64
	CandidateSkills []string
	QuerySkills     []string
	StuffingPenalty float64
	LengthFactor    float64
}

// SignalBreakdown is the per-signal view of a score used in leaderboards.
type SignalBreakdown struct {
	Lexical      float64 `json:"lexical"`
	Semantic     float64 `json:"semantic"`
	SkillOverlap float64 `json:"skill_overlap"`
}

// Document is a candidate text paired with the identifier it is reported under.
type Document struct {
	Identifier string `json:"identifier"`
	Text       string `json:"text"`
}
