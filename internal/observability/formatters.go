// Package observability provides formatted output and logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jonathan/talentrank/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
	// missingPreview caps how many missing skills a row view lists
	missingPreview = 10
)

// Printer handles formatted output for human readers
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func pad(s string, n int) string {
	if w := len([]rune(s)); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// ResultRow is the flattened table view of a CandidateResult: scores as
// percentages rounded to two decimals and a short missing-skills preview.
type ResultRow struct {
	Identifier      string         `json:"identifier"`
	OverallPct      float64        `json:"overall_pct"`
	LexicalPct      float64        `json:"lexical_pct"`
	SemanticPct     float64        `json:"semantic_pct"`
	SkillOverlapPct float64        `json:"skill_overlap_pct"`
	MissingPreview  string         `json:"missing_skills_preview"`
	Decision        types.Decision `json:"decision"`
}

// Row builds the table view of r.
func Row(r types.CandidateResult) ResultRow {
	preview := strings.Join(r.MissingSkills[:min(len(r.MissingSkills), missingPreview)], ", ")
	if len(r.MissingSkills) > missingPreview {
		preview += " ..."
	}
	return ResultRow{
		Identifier:      r.Identifier,
		OverallPct:      percent(r.Overall),
		LexicalPct:      percent(r.Lexical),
		SemanticPct:     percent(r.Semantic),
		SkillOverlapPct: percent(r.SkillOverlap),
		MissingPreview:  preview,
		Decision:        r.Decision,
	}
}

func percent(v float64) float64 {
	return math.Round(v*100*100) / 100
}

// PrintRankedCandidates outputs the top ranked candidates with their signal breakdown.
func (p *Printer) PrintRankedCandidates(results []types.CandidateResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := Row(results[i])
		sb.WriteString(fmt.Sprintf("#%d  %s  [%s]\n", i+1, row.Identifier, row.Decision))
		sb.WriteString(fmt.Sprintf("    Overall: %.2f%%  (lexical %.2f%%, semantic %.2f%%, skills %.2f%%)\n",
			row.OverallPct, row.LexicalPct, row.SemanticPct, row.SkillOverlapPct))
		if row.MissingPreview != "" {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", row.MissingPreview))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateDetail outputs one result with notes, detected sections and tips.
func (p *Printer) PrintCandidateDetail(r types.CandidateResult, notes string, sections map[string]string, tips []string) {
	var sb strings.Builder
	row := Row(r)

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", r.Identifier))
	sb.WriteString(fmt.Sprintf("Decision:  %s\n", r.Decision))
	sb.WriteString(fmt.Sprintf("Overall:   %.2f%%\n\n", row.OverallPct))
	sb.WriteString(fmt.Sprintf("Lexical:   %.2f%%\n", row.LexicalPct))
	sb.WriteString(fmt.Sprintf("Semantic:  %.2f%%\n", row.SemanticPct))
	sb.WriteString(fmt.Sprintf("Skills:    %.2f%%\n", row.SkillOverlapPct))
	sb.WriteString(fmt.Sprintf("Penalties: stuffing x%.2f, length x%.2f\n\n", r.StuffingPenalty, r.LengthFactor))

	if notes != "" {
		sb.WriteString(notes + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("Matched skills: %s\n", joinOrNone(matched(r))))
	sb.WriteString(fmt.Sprintf("Missing skills: %s\n", joinOrNone(r.MissingSkills)))

	if len(sections) > 0 {
		var found []string
		for _, name := range []string{"skills", "experience", "projects", "education"} {
			if strings.TrimSpace(sections[name]) != "" {
				found = append(found, name)
			}
		}
		sb.WriteString(fmt.Sprintf("Sections:       %s\n", joinOrNone(found)))
	}

	if len(tips) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, tip := range tips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox("CANDIDATE DETAIL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetricsTable outputs the model comparison table.
func (p *Printer) PrintMetricsTable(rows []types.MetricRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %4s %12s %10s\n", "Model", "K", "Precision@K", "NDCG@K"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %4d %12.4f %10.4f\n", truncate(r.Model, 20), r.K, r.PrecisionAtK, r.NDCGAtK))
	}

	p.printBox("MODEL COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLeaderboards outputs one leaderboard per model, in the given model order.
func (p *Printer) PrintLeaderboards(models []string, boards map[string][]types.LeaderboardEntry) {
	for _, model := range models {
		board := boards[model]
		if len(board) == 0 {
			continue
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%-4s %-24s %8s %8s %8s %8s %s\n", "Rank", "Identifier", "Score", "Lex", "Sem", "Skill", "Label"))
		count := min(len(board), maxItemsToShow)
		for _, e := range board[:count] {
			sb.WriteString(fmt.Sprintf("%-4d %-24s %8.4f %8.4f %8.4f %8.4f %s\n",
				e.Rank, truncate(e.Identifier, 24), e.PredictedScore,
				e.Signals.Lexical, e.Signals.Semantic, e.Signals.SkillOverlap, e.LabelName))
		}
		if len(board) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(board)-maxItemsToShow))
		}

		p.printBox("LEADERBOARD: "+model, strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintSkills outputs a list of skill terms.
func (p *Printer) PrintSkills(title string, skills []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d skills\n\n", len(skills)))
	line := ""
	for _, s := range skills {
		next := s
		if line != "" {
			next = line + ", " + s
		}
		if len([]rune(next)) > boxWidth-4 {
			sb.WriteString(line + ",\n")
			next = s
		}
		line = next
	}
	sb.WriteString(line)

	p.printBox(title, sb.String())
}

func matched(r types.CandidateResult) []string {
	missing := make(map[string]bool, len(r.MissingSkills))
	for _, m := range r.MissingSkills {
		missing[m] = true
	}
	var out []string
	for _, q := range r.QuerySkills {
		if !missing[q] {
			out = append(out, q)
		}
	}
	return out
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
