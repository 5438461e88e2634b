// Package main provides the talentrank CLI for ranking candidate documents
// against a query and evaluating ranking quality against human labels.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "talentrank",
	Short:         "Explainable candidate ranking and ranking evaluation",
	Long:          "talentrank scores candidate documents against a query by fusing lexical, semantic and skill-coverage signals, assigns a screening decision, and evaluates ranking quality against human relevance labels.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadAppConfig(cmd)
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
