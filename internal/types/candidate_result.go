// Package types provides type definitions for structured data used throughout the talentrank system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Decision is the categorical screening outcome assigned to a candidate.
type Decision string

const (
	DecisionShortlist Decision = "SHORTLIST"
	DecisionReview    Decision = "REVIEW"
	DecisionReject    Decision = "REJECT"
)

// CandidateResult is the scored outcome of one candidate against one query.
// Values are produced once by the ranking engine and must be treated as read-only.
type CandidateResult struct {
	Identifier      string   `json:"identifier"`
	Overall         float64  `json:"overall"`
	Lexical         float64  `json:"lexical"`
	Semantic        float64  `json:"semantic"`
	SkillOverlap    float64  `json:"skill_overlap"`
	StuffingPenalty float64  `json:"stuffing_penalty"`
	LengthFactor    float64  `json:"length_factor"`
	CandidateSkills []string `json:"candidate_skills"`
	QuerySkills     []string `json:"query_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Decision        Decision `json:"decision"`
}

// NewCandidateResult builds a CandidateResult from fused scores and skill sets.
// Skill sets are copied, sorted and deduplicated; MissingSkills is always
// derived as QuerySkills minus CandidateSkills.
func NewCandidateResult(identifier string, overall float64, signals Signals, decision Decision) CandidateResult {
	candidate := sortedSet(signals.CandidateSkills)
	query := sortedSet(signals.QuerySkills)

	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[s] = struct{}{}
	}
	missing := make([]string, 0, len(query))
	for _, s := range query {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}

	return CandidateResult{
		Identifier:      identifier,
		Overall:         overall,
		Lexical:         signals.Lexical,
		Semantic:        signals.Semantic,
		SkillOverlap:    signals.SkillOverlap,
		StuffingPenalty: signals.StuffingPenalty,
		LengthFactor:    signals.LengthFactor,
		CandidateSkills: candidate,
		QuerySkills:     query,
		MissingSkills:   missing,
		Decision:        decision,
	}
}

// Breakdown returns the raw signal scores of the result.
func (r CandidateResult) Breakdown() SignalBreakdown {
	return SignalBreakdown{
		Lexical:      r.Lexical,
		Semantic:     r.Semantic,
		SkillOverlap: r.SkillOverlap,
	}
}

func sortedSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
