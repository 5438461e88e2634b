package evaluation

import (
	"context"
	"testing"

	"github.com/jonathan/talentrank/internal/metrics"
	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/semantic"
	"github.com/jonathan/talentrank/internal/semantic/semantictest"
	"github.com/jonathan/talentrank/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evalQuery = "Machine learning engineer: Python, PyTorch, SQL, Docker, AWS"

func evalItems() []types.EvalItem {
	return []types.EvalItem{
		{Identifier: "chef.txt", Text: "Pastry chef with ten years in fine dining", Label: 0},
		{Identifier: "mle.txt", Text: "Machine learning engineer using Python, PyTorch, SQL, Docker on AWS", Label: 2},
		{Identifier: "analyst.txt", Text: "Data analyst with SQL and Python dashboards", Label: 1},
		{Identifier: "blank.txt", Text: "", Label: 0},
		{Identifier: "devops.txt", Text: "DevOps engineer running Docker and Kubernetes on AWS", Label: 1},
	}
}

func newHarness(t *testing.T) *Harness {
	t.Helper()
	model := semantic.NewModelFromEncoder(semantictest.NewHashingEncoder(128))
	return NewHarness(ranking.NewEngine(model, nil), nil)
}

func TestCompare_Shape(t *testing.T) {
	h := newHarness(t)
	items := evalItems()
	ks := []int{1, 3, 5}

	report, err := h.Compare(context.Background(), evalQuery, items, DefaultSweep(types.DefaultWeights()), ks)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{ModelLexical, ModelSemantic, ModelSkill, ModelEnsemble}, report.Models)
	assert.Len(t, report.Metrics, 4*len(ks))
	assert.Len(t, report.Leaderboards, 4)
	for _, name := range report.Models {
		board := report.Leaderboards[name]
		require.Len(t, board, len(items))
		for i, e := range board {
			assert.Equal(t, i+1, e.Rank)
			if i > 0 {
				assert.GreaterOrEqual(t, board[i-1].PredictedScore, e.PredictedScore)
			}
		}
	}
	assert.Contains(t, report.QuerySkills, "pytorch")
}

func TestCompare_MetricsMatchLeaderboard(t *testing.T) {
	h := newHarness(t)
	ks := []int{2, 4}

	report, err := h.Compare(context.Background(), evalQuery, evalItems(), DefaultSweep(types.DefaultWeights()), ks)
	require.NoError(t, err)

	for _, row := range report.Metrics {
		board := report.Leaderboards[row.Model]
		grades := make([]int, len(board))
		for i, e := range board {
			grades[i] = e.TrueLabel
		}
		assert.Equal(t, metrics.PrecisionAtK(metrics.Binarize(grades, 1), row.K), row.PrecisionAtK)
		assert.Equal(t, metrics.NDCGAtK(grades, row.K), row.NDCGAtK)
	}
}

func TestCompare_SkillOnlyRanksByCoverage(t *testing.T) {
	h := newHarness(t)

	report, err := h.Compare(context.Background(), evalQuery, evalItems(), DefaultSweep(types.DefaultWeights()), []int{1})
	require.NoError(t, err)

	board := report.Leaderboards[ModelSkill]
	assert.Equal(t, "mle.txt", board[0].Identifier)
	assert.Equal(t, 2, board[0].TrueLabel)
	assert.Equal(t, "Good", board[0].LabelName)
	assert.InDelta(t, 1.0, board[0].Signals.SkillOverlap, 1e-9)
}

func TestCompare_StableTies(t *testing.T) {
	h := newHarness(t)
	items := []types.EvalItem{
		{Identifier: "first", Text: "", Label: 0},
		{Identifier: "second", Text: "", Label: 2},
		{Identifier: "third", Text: "", Label: 1},
	}

	report, err := h.Compare(context.Background(), evalQuery, items, DefaultSweep(types.DefaultWeights()), []int{3})
	require.NoError(t, err)

	board := report.Leaderboards[ModelEnsemble]
	assert.Equal(t, "first", board[0].Identifier)
	assert.Equal(t, "second", board[1].Identifier)
	assert.Equal(t, "third", board[2].Identifier)
}

func TestCompare_MatchesDirectScoring(t *testing.T) {
	model := semantic.NewModelFromEncoder(semantictest.NewHashingEncoder(128))
	engine := ranking.NewEngine(model, nil)
	h := NewHarness(engine, nil)
	items := evalItems()
	w := types.Weights{Lexical: 0.3, Semantic: 0.3, Skill: 0.4}

	report, err := h.Compare(context.Background(), evalQuery, items, []ModelConfig{{Name: "custom", Weights: w}}, []int{3})
	require.NoError(t, err)

	byID := make(map[string]float64)
	for _, e := range report.Leaderboards["custom"] {
		byID[e.Identifier] = e.PredictedScore
	}
	for _, it := range items {
		r, err := engine.Score(context.Background(), it.Text, evalQuery, it.Identifier, w)
		require.NoError(t, err)
		assert.Equal(t, r.Overall, byID[it.Identifier])
	}
}

func TestCompare_ModelFailure(t *testing.T) {
	model := semantic.NewModel(semantictest.FailingLoader(nil), nil)
	h := NewHarness(ranking.NewEngine(model, nil), nil)

	_, err := h.Compare(context.Background(), evalQuery, evalItems(), DefaultSweep(types.DefaultWeights()), []int{3})
	assert.Error(t, err)
}

func TestCompare_InvalidSweep(t *testing.T) {
	h := newHarness(t)

	_, err := h.Compare(context.Background(), evalQuery, evalItems(), nil, []int{3})
	assert.Error(t, err)

	_, err = h.Compare(context.Background(), evalQuery, evalItems(), []ModelConfig{
		{Name: "a", Weights: types.Weights{Lexical: 1}},
		{Name: "a", Weights: types.Weights{Semantic: 1}},
	}, []int{3})
	assert.Error(t, err)
}

func TestRun_SingleConfiguration(t *testing.T) {
	h := newHarness(t)

	eval, err := h.Run(context.Background(), evalQuery, evalItems(), ModelConfig{Name: ModelEnsemble, Weights: types.DefaultWeights()}, nil)
	require.NoError(t, err)
	assert.Len(t, eval.Metrics, len(DefaultKValues))
	assert.Len(t, eval.Leaderboard, 5)
	assert.Equal(t, types.DefaultWeights(), eval.Weights)
}
