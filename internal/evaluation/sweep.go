// Package evaluation runs weight configurations over human-labeled candidates
// and compares their ranking quality.
package evaluation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/talentrank/internal/schemas"
	"github.com/jonathan/talentrank/internal/types"
	embedded "github.com/jonathan/talentrank/schemas"
)

// Model names of the default sweep.
const (
	ModelLexical  = "lexical-only"
	ModelSemantic = "semantic-only"
	ModelSkill    = "skill-only"
	ModelEnsemble = "ensemble"
)

// ModelConfig is a named weight configuration.
type ModelConfig struct {
	Name    string        `json:"name" yaml:"name" validate:"required"`
	Weights types.Weights `json:"weights" yaml:"weights"`
}

// DefaultSweep returns the three single-signal configurations followed by the ensemble.
func DefaultSweep(ensemble types.Weights) []ModelConfig {
	return []ModelConfig{
		{Name: ModelLexical, Weights: types.Weights{Lexical: 1}},
		{Name: ModelSemantic, Weights: types.Weights{Semantic: 1}},
		{Name: ModelSkill, Weights: types.Weights{Skill: 1}},
		{Name: ModelEnsemble, Weights: ensemble},
	}
}

type sweepFile struct {
	Models []ModelConfig `yaml:"models"`
}

// LoadSweep reads named weight configurations from a YAML file:
//
//	models:
//	  - name: keyword-heavy
//	    weights: {lexical: 0.6, semantic: 0.3, skill: 0.1}
//
// The document is checked against the model sweep schema before decoding.
func LoadSweep(path string) ([]ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sweep file %s: %w", path, err)
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sweep file %s: %w", path, err)
	}
	if err := schemas.ValidateValue(embedded.ModelSweep, raw); err != nil {
		return nil, fmt.Errorf("invalid sweep file %s: %w", path, err)
	}
	var f sweepFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sweep file %s: %w", path, err)
	}
	if err := ValidateSweep(f.Models); err != nil {
		return nil, fmt.Errorf("invalid sweep file %s: %w", path, err)
	}
	return f.Models, nil
}

// ValidateSweep checks that configurations are named uniquely and carry non-negative weights.
func ValidateSweep(configs []ModelConfig) error {
	if len(configs) == 0 {
		return fmt.Errorf("at least one model configuration is required")
	}
	seen := make(map[string]bool, len(configs))
	for _, c := range configs {
		if c.Name == "" {
			return fmt.Errorf("model configuration name is required")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate model configuration %q", c.Name)
		}
		seen[c.Name] = true
		if c.Weights.Lexical < 0 || c.Weights.Semantic < 0 || c.Weights.Skill < 0 {
			return fmt.Errorf("model configuration %q has negative weights", c.Name)
		}
	}
	return nil
}
