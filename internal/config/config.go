// Package config provides configuration loading and validation for the CLI.
// It uses koanf to merge an optional YAML or JSON file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/robustness"
	"github.com/jonathan/talentrank/internal/types"
)

// Environment variables that override file values.
const (
	EnvOrtLibrary    = "TALENTRANK_ORT_LIBRARY"
	EnvModelPath     = "TALENTRANK_MODEL_PATH"
	EnvTokenizerPath = "TALENTRANK_TOKENIZER_PATH"
	EnvSkillsPath    = "TALENTRANK_SKILLS_PATH"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the scoring policy and model locations.
type Config struct {
	Weights     types.Weights      `koanf:"weights"`
	Thresholds  ranking.Thresholds `koanf:"thresholds"`
	Robustness  robustness.Policy  `koanf:"robustness"`
	KValues     []int              `koanf:"k_values" validate:"dive,gt=0"`
	SkillsPath  string             `koanf:"skills_path"`
	Concurrency int                `koanf:"concurrency" validate:"gte=0"`
	Model       ModelConfig        `koanf:"model"`
}

// ModelConfig locates the sentence-embedding model.
type ModelConfig struct {
	LibraryPath   string `koanf:"library_path"`
	ModelPath     string `koanf:"model_path"`
	TokenizerPath string `koanf:"tokenizer_path"`
	ModelID       string `koanf:"model_id"`
	MaxSeqLen     int    `koanf:"max_seq_len" validate:"gte=0"`
	HiddenSize    int    `koanf:"hidden_size" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Weights:    types.DefaultWeights(),
		Thresholds: ranking.DefaultThresholds(),
		Robustness: robustness.DefaultPolicy(),
		KValues:    []int{3, 5, 10},
	}
}

// Load reads configuration from an optional file, fills unset values with
// defaults, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults(k)

	cfg.Model.LibraryPath = getEnvOrDefault(EnvOrtLibrary, cfg.Model.LibraryPath)
	cfg.Model.ModelPath = getEnvOrDefault(EnvModelPath, cfg.Model.ModelPath)
	cfg.Model.TokenizerPath = getEnvOrDefault(EnvTokenizerPath, cfg.Model.TokenizerPath)
	cfg.SkillsPath = getEnvOrDefault(EnvSkillsPath, cfg.SkillsPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills every policy field the loaded keys do not set.
// A tier list given in the file replaces the default list as a whole.
func (c *Config) applyDefaults(k *koanf.Koanf) {
	d := Default()
	fill := func(key string, dst *float64, def float64) {
		if !k.Exists(key) {
			*dst = def
		}
	}
	fill("weights.lexical", &c.Weights.Lexical, d.Weights.Lexical)
	fill("weights.semantic", &c.Weights.Semantic, d.Weights.Semantic)
	fill("weights.skill", &c.Weights.Skill, d.Weights.Skill)
	if c.Weights.IsZero() {
		c.Weights = d.Weights
	}
	fill("thresholds.shortlist", &c.Thresholds.Shortlist, d.Thresholds.Shortlist)
	fill("thresholds.review", &c.Thresholds.Review, d.Thresholds.Review)

	if !k.Exists("robustness.stuffing") {
		c.Robustness.Stuffing = d.Robustness.Stuffing
	}
	if !k.Exists("robustness.length") {
		c.Robustness.Length = d.Robustness.Length
	}
	if len(c.KValues) == 0 {
		c.KValues = d.KValues
	}
}

var validate = validator.New()

// Validate rejects negative weights, non-positive cutoffs, thresholds
// outside [0,1] or out of order, and tier factors outside (0,1].
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func getEnvOrDefault(envKey, current string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return current
}
