package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentrank/internal/filter"
	"github.com/jonathan/talentrank/internal/ingestion"
	"github.com/jonathan/talentrank/internal/observability"
	"github.com/jonathan/talentrank/internal/ranking"
	"github.com/jonathan/talentrank/internal/schemas"
	"github.com/jonathan/talentrank/internal/types"
	embedded "github.com/jonathan/talentrank/schemas"
)

var rankCmd = &cobra.Command{
	Use:   "rank --query FILE CANDIDATE...",
	Short: "Rank candidate documents against a query",
	Long:  "Scores every candidate file (or supported file inside a candidate directory) against the query, prints the ranked candidates and optionally writes them as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankQuery  string
	rankTop    int
	rankWhere  string
	rankOutput string
)

func init() {
	rankCmd.Flags().StringVarP(&rankQuery, "query", "q", "", "Path to query text file (required)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "k", 0, "Show and write only the top N candidates (0 = all)")
	rankCmd.Flags().StringVar(&rankWhere, "where", "", `CEL filter over each result, e.g. 'r.decision != "REJECT"'`)
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file")

	if err := rankCmd.MarkFlagRequired("query"); err != nil {
		panic(fmt.Sprintf("failed to mark query flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

type rankedResult struct {
	types.CandidateResult
	Notes string `json:"notes"`
}

type rankOutputFile struct {
	QuerySkills []string       `json:"query_skills"`
	Weights     types.Weights  `json:"weights"`
	Results     []rankedResult `json:"results"`
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankTop < 0 {
		return fmt.Errorf("--top must be non-negative")
	}
	where, err := filter.Compile(rankWhere)
	if err != nil {
		return err
	}

	query, err := ingestion.LoadFile(rankQuery)
	if err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}
	docs, err := ingestion.LoadDocuments(args)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported candidate files found")
	}

	logger := newLogger(cmd)
	engine, model, err := buildEngine(logger)
	if err != nil {
		return err
	}
	defer func() { _ = model.Close() }()

	results, err := engine.ScoreBatch(cmd.Context(), query, docs, appConfig.Weights)
	if err != nil {
		return err
	}
	results, err = where.Apply(results)
	if err != nil {
		return err
	}
	results = ranking.Top(results, rankTop)

	observability.NewPrinter(cmd.OutOrStdout()).PrintRankedCandidates(results)

	if rankOutput == "" {
		return nil
	}
	out := rankOutputFile{
		QuerySkills: engine.Dictionary().Extract(query),
		Weights:     appConfig.Weights,
		Results:     make([]rankedResult, len(results)),
	}
	for i, r := range results {
		out.Results[i] = rankedResult{CandidateResult: r, Notes: ranking.Notes(r)}
	}
	if err := writeJSON(rankOutput, out); err != nil {
		return err
	}

	// Output validation is a safety check, not a requirement
	if err := schemas.ValidateFile(embedded.CandidateResults, rankOutput); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully ranked %d candidates to %s\n", len(results), rankOutput)
	return nil
}
