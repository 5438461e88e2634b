package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/talentrank/internal/types"
)

// Notes creates a brief explanation of a result.
func Notes(r types.CandidateResult) string {
	var parts []string

	matched := len(r.QuerySkills) - len(r.MissingSkills)
	switch {
	case len(r.QuerySkills) == 0:
		parts = append(parts, "No skills detected in query")
	case r.SkillOverlap >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%d/%d)", matched, len(r.QuerySkills)))
	case r.SkillOverlap >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%d/%d)", matched, len(r.QuerySkills)))
	case r.SkillOverlap > 0:
		parts = append(parts, fmt.Sprintf("Weak skill match (%d/%d)", matched, len(r.QuerySkills)))
	default:
		parts = append(parts, "No skill matches")
	}

	if len(r.MissingSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Missing %d skills", len(r.MissingSkills)))
	}

	if r.Semantic >= 0.6 {
		parts = append(parts, "High semantic similarity")
	} else if r.Semantic >= 0.3 {
		parts = append(parts, "Some semantic similarity")
	}

	if r.StuffingPenalty < 1 {
		parts = append(parts, fmt.Sprintf("Keyword repetition penalty x%.2f", r.StuffingPenalty))
	}
	if r.LengthFactor < 1 {
		parts = append(parts, fmt.Sprintf("Length adjustment x%.2f", r.LengthFactor))
	}

	return strings.Join(parts, ". ")
}
