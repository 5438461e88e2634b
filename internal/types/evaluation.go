// Package types provides type definitions for structured data used throughout the talentrank system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EvalItem is a candidate text with a human relevance grade
// (0 = bad, 1 = ok, 2 = good).
type EvalItem struct {
	Identifier string `json:"identifier"`
	Text       string `json:"text"`
	Label      int    `json:"label"`
}

// MetricRow is one row of the model comparison table.
type MetricRow struct {
	Model        string  `json:"model"`
	K            int     `json:"k"`
	PrecisionAtK float64 `json:"precision_at_k"`
	NDCGAtK      float64 `json:"ndcg_at_k"`
}

// LeaderboardEntry is one ranked item in a model's leaderboard.
type LeaderboardEntry struct {
	Rank           int             `json:"rank"`
	Identifier     string          `json:"identifier"`
	PredictedScore float64         `json:"predicted_score"`
	Signals        SignalBreakdown `json:"signal_breakdown"`
	Decision       Decision        `json:"decision"`
	TrueLabel      int             `json:"true_label"`
	LabelName      string          `json:"label_name"`
}

// ModelEvaluation is the outcome of one weight configuration over a labeled set.
type ModelEvaluation struct {
	Model       string             `json:"model"`
	Weights     Weights            `json:"weights"`
	Metrics     []MetricRow        `json:"metrics"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// EvaluationReport compares several weight configurations over the same labeled set.
type EvaluationReport struct {
	RunID        string                        `json:"run_id"`
	QuerySkills  []string                      `json:"query_skills"`
	Models       []string                      `json:"models"`
	KValues      []int                         `json:"k_values"`
	Metrics      []MetricRow                   `json:"metrics"`
	Leaderboards map[string][]LeaderboardEntry `json:"leaderboards"`
}

// LabelName maps a relevance grade to its display name.
func LabelName(label int) string {
	switch label {
	case 0:
		return "Bad"
	case 1:
		return "OK"
	case 2:
		return "Good"
	default:
		return "Unknown"
	}
}
