// Package ranking fuses relevance signals into a single score and decision,
// and orders candidates by that score.
package ranking

import "github.com/jonathan/talentrank/internal/types"

// Default decision thresholds.
const (
	DefaultShortlistThreshold = 0.75
	DefaultReviewThreshold    = 0.55
)

// Thresholds is the decision policy: overall >= Shortlist is SHORTLIST,
// overall >= Review is REVIEW, anything lower is REJECT.
type Thresholds struct {
	Shortlist float64 `json:"shortlist" yaml:"shortlist" koanf:"shortlist" validate:"gte=0,lte=1,gtefield=Review"`
	Review    float64 `json:"review" yaml:"review" koanf:"review" validate:"gte=0,lte=1"`
}

// DefaultThresholds returns the standard decision policy.
func DefaultThresholds() Thresholds {
	return Thresholds{Shortlist: DefaultShortlistThreshold, Review: DefaultReviewThreshold}
}

// Decide classifies an overall score.
func (t Thresholds) Decide(overall float64) types.Decision {
	switch {
	case overall >= t.Shortlist:
		return types.DecisionShortlist
	case overall >= t.Review:
		return types.DecisionReview
	default:
		return types.DecisionReject
	}
}
