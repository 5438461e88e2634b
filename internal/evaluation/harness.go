package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/talentrank/internal/metrics"
	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/types"
)

// DefaultKValues are the cutoffs used when none are given.
var DefaultKValues = []int{3, 5, 10}

// relevantLabel is the minimum grade counted as relevant for precision.
const relevantLabel = 1

// Harness evaluates weight configurations with a ranking engine.
type Harness struct {
	engine *ranking.Engine
	logger *slog.Logger
}

// NewHarness returns a Harness backed by engine.
func NewHarness(engine *ranking.Engine, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{engine: engine, logger: logger}
}

type scoredItem struct {
	result types.CandidateResult
	label  int
}

// Run evaluates a single configuration.
func (h *Harness) Run(ctx context.Context, query string, items []types.EvalItem, config ModelConfig, ks []int) (*types.ModelEvaluation, error) {
	if len(ks) == 0 {
		ks = DefaultKValues
	}
	signals, err := h.signals(ctx, query, items)
	if err != nil {
		return nil, err
	}
	eval := h.evaluate(signals, items, config, ks)
	return &eval, nil
}

// Compare evaluates every configuration over the same items. The report holds
// len(configs) × len(ks) metric rows and one leaderboard per configuration.
func (h *Harness) Compare(ctx context.Context, query string, items []types.EvalItem, configs []ModelConfig, ks []int) (*types.EvaluationReport, error) {
	if err := ValidateSweep(configs); err != nil {
		return nil, err
	}
	if len(ks) == 0 {
		ks = DefaultKValues
	}

	signals, err := h.signals(ctx, query, items)
	if err != nil {
		return nil, err
	}

	report := &types.EvaluationReport{
		RunID:        uuid.New().String(),
		QuerySkills:  h.engine.Dictionary().Extract(query),
		Models:       make([]string, 0, len(configs)),
		KValues:      append([]int(nil), ks...),
		Metrics:      make([]types.MetricRow, 0, len(configs)*len(ks)),
		Leaderboards: make(map[string][]types.LeaderboardEntry, len(configs)),
	}
	for _, cfg := range configs {
		eval := h.evaluate(signals, items, cfg, ks)
		report.Models = append(report.Models, cfg.Name)
		report.Metrics = append(report.Metrics, eval.Metrics...)
		report.Leaderboards[cfg.Name] = eval.Leaderboard
	}

	h.logger.Info("evaluation complete",
		"run_id", report.RunID,
		"items", len(items),
		"models", len(configs))
	return report, nil
}

// signals computes each item's signals once; they do not depend on weights.
func (h *Harness) signals(ctx context.Context, query string, items []types.EvalItem) ([]types.Signals, error) {
	out := make([]types.Signals, len(items))
	for i, it := range items {
		s, err := h.engine.Signals(ctx, it.Text, query)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", it.Identifier, err)
		}
		out[i] = s
	}
	return out, nil
}

func (h *Harness) evaluate(signals []types.Signals, items []types.EvalItem, cfg ModelConfig, ks []int) types.ModelEvaluation {
	scored := make([]scoredItem, len(items))
	for i, it := range items {
		scored[i] = scoredItem{
			result: h.engine.Fuse(it.Identifier, signals[i], cfg.Weights),
			label:  it.Label,
		}
	}
	// Ties keep input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].result.Overall > scored[j].result.Overall
	})

	grades := make([]int, len(scored))
	board := make([]types.LeaderboardEntry, len(scored))
	for i, s := range scored {
		grades[i] = s.label
		board[i] = types.LeaderboardEntry{
			Rank:           i + 1,
			Identifier:     s.result.Identifier,
			PredictedScore: s.result.Overall,
			Signals:        s.result.Breakdown(),
			Decision:       s.result.Decision,
			TrueLabel:      s.label,
			LabelName:      types.LabelName(s.label),
		}
	}
	flags := metrics.Binarize(grades, relevantLabel)

	rows := make([]types.MetricRow, 0, len(ks))
	for _, k := range ks {
		rows = append(rows, types.MetricRow{
			Model:        cfg.Name,
			K:            k,
			PrecisionAtK: metrics.PrecisionAtK(flags, k),
			NDCGAtK:      metrics.NDCGAtK(grades, k),
		})
	}

	return types.ModelEvaluation{
		Model:       cfg.Name,
		Weights:     cfg.Weights,
		Metrics:     rows,
		Leaderboard: board,
	}
}
