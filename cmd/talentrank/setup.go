package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentrank/internal/config"
	"github.com/jonathan/talentrank/internal/observability"
	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/semantic"
	"github.com/jonathan/talentrank/internal/skills"
)

var (
	configPath string
	verbose    bool
	wLexical   float64
	wSemantic  float64
	wSkill     float64
)

// appConfig is populated by the root command before any subcommand runs.
var appConfig *config.Config

// modelLoader builds the embedding model loader; tests replace it.
var modelLoader = func(cfg *config.Config) semantic.Loader {
	return semantic.OrtLoader(semantic.OrtConfig{
		LibraryPath:   cfg.Model.LibraryPath,
		ModelPath:     cfg.Model.ModelPath,
		TokenizerPath: cfg.Model.TokenizerPath,
		ModelID:       cfg.Model.ModelID,
		MaxSeqLen:     cfg.Model.MaxSeqLen,
		HiddenSize:    cfg.Model.HiddenSize,
	})
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to YAML or JSON config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.Float64Var(&wLexical, "w-lexical", 0, "Lexical (TF-IDF) signal weight, overriding the configured value")
	flags.Float64Var(&wSemantic, "w-semantic", 0, "Semantic (embedding) signal weight, overriding the configured value")
	flags.Float64Var(&wSkill, "w-skill", 0, "Skill coverage signal weight, overriding the configured value")
}

// loadAppConfig merges the config file with weight flags. Each weight flag
// given overrides only its own configured weight; the resulting weights are
// normalized to sum to 1.
func loadAppConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"w-lexical", wLexical, &cfg.Weights.Lexical},
		{"w-semantic", wSemantic, &cfg.Weights.Semantic},
		{"w-skill", wSkill, &cfg.Weights.Skill},
	}
	changed := false
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.src
			changed = true
		}
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cfg.Weights = cfg.Weights.Normalized()

	appConfig = cfg
	return nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return observability.NewLogger(cmd.ErrOrStderr(), verbose)
}

// buildEngine wires the skill dictionary, lazily loaded model and policy from appConfig.
func buildEngine(logger *slog.Logger) (*ranking.Engine, *semantic.Model, error) {
	dict, err := loadDictionary()
	if err != nil {
		return nil, nil, err
	}

	model := semantic.NewModel(modelLoader(appConfig), logger)
	opts := []ranking.Option{
		ranking.WithThresholds(appConfig.Thresholds),
		ranking.WithRobustness(appConfig.Robustness),
		ranking.WithLogger(logger),
	}
	if appConfig.Concurrency > 0 {
		opts = append(opts, ranking.WithConcurrency(appConfig.Concurrency))
	}
	return ranking.NewEngine(model, dict, opts...), model, nil
}

// loadDictionary returns the configured skill dictionary, or the built-in one.
func loadDictionary() (*skills.Dictionary, error) {
	if appConfig.SkillsPath == "" {
		return skills.Default(), nil
	}
	return skills.LoadDictionary(appConfig.SkillsPath)
}

// writeJSON writes v as indented JSON, creating the parent directory.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
