package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentrank/internal/lexical"
	"github.com/jonathan/talentrank/internal/robustness"
	"github.com/jonathan/talentrank/internal/semantic"
	"github.com/jonathan/talentrank/internal/skills"
	"github.com/jonathan/talentrank/internal/types"
)

// Engine scores candidate texts against a query.
// It holds only read-only state plus the shared semantic model, so one Engine
// may score many candidates concurrently.
type Engine struct {
	model       *semantic.Model
	dict        *skills.Dictionary
	thresholds  Thresholds
	policy      robustness.Policy
	logger      *slog.Logger
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithThresholds sets the decision thresholds.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// WithRobustness sets the stuffing and length policy.
func WithRobustness(p robustness.Policy) Option {
	return func(e *Engine) { e.policy = robustness.NewPolicy(p.Stuffing, p.Length) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConcurrency bounds the number of candidates scored in parallel by ScoreBatch.
// Values below 1 mean sequential scoring.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

// NewEngine builds an Engine around a semantic model and skill dictionary.
// A nil dictionary selects the built-in one.
func NewEngine(model *semantic.Model, dict *skills.Dictionary, opts ...Option) *Engine {
	if dict == nil {
		dict = skills.Default()
	}
	e := &Engine{
		model:       model,
		dict:        dict,
		thresholds:  DefaultThresholds(),
		policy:      robustness.DefaultPolicy(),
		logger:      slog.Default(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dictionary returns the skill dictionary used by the engine.
func (e *Engine) Dictionary() *skills.Dictionary {
	return e.dict
}

// Thresholds returns the active decision policy.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Signals computes the raw signals and robustness factors for one pair.
// Degenerate input degrades the affected signal to zero; only a semantic
// model failure returns an error.
func (e *Engine) Signals(ctx context.Context, candidate, query string) (types.Signals, error) {
	sem, err := e.model.Similarity(ctx, candidate, query)
	if err != nil {
		return types.Signals{}, err
	}

	candidateSkills := e.dict.Extract(candidate)
	querySkills := e.dict.Extract(query)

	return types.Signals{
		Lexical:         lexical.Similarity(candidate, query),
		Semantic:        sem,
		SkillOverlap:    skills.Overlap(candidateSkills, querySkills),
		CandidateSkills: candidateSkills,
		QuerySkills:     querySkills,
		StuffingPenalty: e.policy.StuffingPenalty(candidate, querySkills),
		LengthFactor:    e.policy.LengthFactor(candidate),
	}, nil
}

// Fuse combines precomputed signals under weights. Weights are applied as
// given; normalizing them is the caller's job.
func (e *Engine) Fuse(identifier string, s types.Signals, w types.Weights) types.CandidateResult {
	base := w.Lexical*s.Lexical + w.Semantic*s.Semantic + w.Skill*s.SkillOverlap
	overall := base * s.StuffingPenalty * s.LengthFactor
	return types.NewCandidateResult(identifier, overall, s, e.thresholds.Decide(overall))
}

// Score computes the result for one candidate against query.
func (e *Engine) Score(ctx context.Context, candidate, query, identifier string, w types.Weights) (types.CandidateResult, error) {
	s, err := e.Signals(ctx, candidate, query)
	if err != nil {
		return types.CandidateResult{}, fmt.Errorf("failed to score %s: %w", identifier, err)
	}
	return e.Fuse(identifier, s, w), nil
}

// ScoreBatch scores every document against query and returns the results
// ordered by overall score, ties kept in input order. Any failure aborts the
// whole batch.
func (e *Engine) ScoreBatch(ctx context.Context, query string, docs []types.Document, w types.Weights) ([]types.CandidateResult, error) {
	start := time.Now()
	results := make([]types.CandidateResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	limit := e.concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, doc := range docs {
		g.Go(func() error {
			r, err := e.Score(gctx, doc.Text, query, doc.Identifier, w)
			if err != nil {
				return err
			}
			results[i] = r
			e.logger.Debug("candidate scored",
				"identifier", r.Identifier,
				"overall", r.Overall,
				"decision", r.Decision)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortByOverall(results)
	e.logger.Info("batch scored",
		"candidates", len(results),
		"duration", time.Since(start))
	return results, nil
}
