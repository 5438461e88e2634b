// Package filter selects candidate results with CEL expressions such as
//
//	r.decision == "SHORTLIST" && "python" in r.candidate_skills
//	r.overall >= 0.5 && size(r.missing_skills) <= 2
package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/jonathan/talentrank/internal/types"
)

var (
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func env() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("r", cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return celEnv, celEnvErr
}

// Filter is a compiled boolean expression over a result, bound to the variable r.
type Filter struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr. An empty expression matches everything.
func Compile(expr string) (*Filter, error) {
	if expr == "" {
		return &Filter{}, nil
	}
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := e.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error in %q: %w", expr, issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression %q must return bool, got %s", expr, out)
	}
	prg, err := e.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error in %q: %w", expr, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter against r.
func (f *Filter) Match(r types.CandidateResult) (bool, error) {
	if f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{"r": activation(r)})
	if err != nil {
		return false, fmt.Errorf("eval error in %q: %w", f.expr, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q must return bool, got %T", f.expr, out.Value())
	}
	return matched, nil
}

// Apply returns the results that match, preserving order.
func (f *Filter) Apply(results []types.CandidateResult) ([]types.CandidateResult, error) {
	out := make([]types.CandidateResult, 0, len(results))
	for _, r := range results {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func activation(r types.CandidateResult) map[string]any {
	return map[string]any{
		"identifier":       r.Identifier,
		"overall":          r.Overall,
		"lexical":          r.Lexical,
		"semantic":         r.Semantic,
		"skill_overlap":    r.SkillOverlap,
		"stuffing_penalty": r.StuffingPenalty,
		"length_factor":    r.LengthFactor,
		"candidate_skills": r.CandidateSkills,
		"query_skills":     r.QuerySkills,
		"missing_skills":   r.MissingSkills,
		"decision":         string(r.Decision),
	}
}
