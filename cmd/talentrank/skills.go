package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentrank/internal/ingestion"
	"github.com/jonathan/talentrank/internal/observability"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill dictionary or the skills found in a file",
	RunE:  runSkills,
}

var skillsText string

func init() {
	skillsCmd.Flags().StringVarP(&skillsText, "text", "t", "", "Path to a text file to extract skills from")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if skillsText == "" {
		printer.PrintSkills("SKILL DICTIONARY", dict.Terms())
		return nil
	}

	text, err := ingestion.LoadFile(skillsText)
	if err != nil {
		return fmt.Errorf("failed to load text: %w", err)
	}
	printer.PrintSkills("SKILLS FOUND", dict.Extract(text))
	return nil
}
