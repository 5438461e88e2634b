package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentrank/internal/evaluation"
	"github.com/jonathan/talentrank/internal/observability"
	"github.com/jonathan/talentrank/internal/schemas"
	embedded "github.com/jonathan/talentrank/schemas"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compare weight configurations on a labeled dataset",
	Long:  "Runs lexical-only, semantic-only, skill-only and ensemble weight configurations (or those in --models) over a labeled dataset and reports Precision@K and NDCG@K with per-model leaderboards.",
	RunE:  runEvaluate,
}

var (
	evaluateDataset string
	evaluateModels  string
	evaluateK       string
	evaluateOutput  string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateDataset, "dataset", "d", "", "Path to labeled dataset JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateModels, "models", "m", "", "Path to YAML file of named weight configurations")
	evaluateCmd.Flags().StringVar(&evaluateK, "k", "", "Comma-separated K cutoffs, e.g. 3,5,10")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output report JSON file")

	if err := evaluateCmd.MarkFlagRequired("dataset"); err != nil {
		panic(fmt.Sprintf("failed to mark dataset flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ds, err := evaluation.LoadDataset(evaluateDataset)
	if err != nil {
		return err
	}

	// Precedence: --k, then the dataset, then config.
	ks := appConfig.KValues
	if len(ds.KValues) > 0 {
		ks = ds.KValues
	}
	if evaluateK != "" {
		ks, err = parseKValues(evaluateK)
		if err != nil {
			return err
		}
	}

	sweep := evaluation.DefaultSweep(appConfig.Weights)
	if evaluateModels != "" {
		sweep, err = evaluation.LoadSweep(evaluateModels)
		if err != nil {
			return err
		}
	}

	logger := newLogger(cmd)
	engine, model, err := buildEngine(logger)
	if err != nil {
		return err
	}
	defer func() { _ = model.Close() }()

	report, err := evaluation.NewHarness(engine, logger).Compare(cmd.Context(), ds.Query, ds.Items, sweep, ks)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintMetricsTable(report.Metrics)
	printer.PrintLeaderboards(report.Models, report.Leaderboards)

	if evaluateOutput == "" {
		return nil
	}
	if err := writeJSON(evaluateOutput, report); err != nil {
		return err
	}
	if err := schemas.ValidateFile(embedded.EvaluationReport, evaluateOutput); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote evaluation report to %s\n", evaluateOutput)
	return nil
}

// parseKValues parses a comma-separated list of positive integers.
func parseKValues(s string) ([]int, error) {
	var ks []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil || k < 1 {
			return nil, fmt.Errorf("invalid K value %q: must be a positive integer", part)
		}
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("no K values given")
	}
	return ks, nil
}
