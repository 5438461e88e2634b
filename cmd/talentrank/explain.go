package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentrank/internal/ingestion"
	"github.com/jonathan/talentrank/internal/observability"
	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/sections"
	"github.com/jonathan/talentrank/internal/suggestions"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain one candidate's score",
	Long:  "Scores a single candidate against the query and prints its signal breakdown, matched and missing skills, detected sections and improvement suggestions.",
	RunE:  runExplain,
}

var (
	explainQuery     string
	explainCandidate string
)

func init() {
	explainCmd.Flags().StringVarP(&explainQuery, "query", "q", "", "Path to query text file (required)")
	explainCmd.Flags().StringVarP(&explainCandidate, "candidate", "f", "", "Path to candidate text file (required)")

	if err := explainCmd.MarkFlagRequired("query"); err != nil {
		panic(fmt.Sprintf("failed to mark query flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	query, err := ingestion.LoadFile(explainQuery)
	if err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}
	candidate, err := ingestion.LoadFile(explainCandidate)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	engine, model, err := buildEngine(newLogger(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = model.Close() }()

	result, err := engine.Score(cmd.Context(), candidate, query, filepath.Base(explainCandidate), appConfig.Weights)
	if err != nil {
		return err
	}

	secs := sections.Split(candidate)
	tips := suggestions.Generate(result.MissingSkills, secs)
	observability.NewPrinter(cmd.OutOrStdout()).PrintCandidateDetail(result, ranking.Notes(result), secs, tips)
	return nil
}
