// Package suggestions produces improvement tips for a candidate document
// from its missing skills and detected sections.
package suggestions

import (
	"fmt"
	"strings"

	"github.com/jonathan/talentrank/internal/sections"
)

// maxMissingListed caps how many missing skills one tip names.
const maxMissingListed = 8

var generalTips = []string{
	"Use numbers: latency reduced by X%, accuracy improved by Y%, users served, requests/sec, etc.",
	"Mirror the job description language (same keywords) but keep it honest.",
	"Keep bullets action-driven: Built / Designed / Deployed / Optimized / Automated.",
}

// Generate returns tips in a fixed order: skill coverage, missing sections,
// then general writing advice.
func Generate(missing []string, secs map[string]string) []string {
	var tips []string

	if len(missing) > 0 {
		top := missing[:min(len(missing), maxMissingListed)]
		tips = append(tips,
			fmt.Sprintf("Add or highlight these missing keywords (if you truly have them): %s", strings.Join(top, ", ")),
			"If you don't have some missing skills, build a small project to demonstrate them.")
	} else {
		tips = append(tips, "Good coverage of the required skills. Focus on stronger impact statements and metrics.")
	}

	if strings.TrimSpace(secs[sections.Projects]) == "" {
		tips = append(tips, "Add a Projects section with 2-3 projects, each with tech stack and measurable results.")
	}
	if strings.TrimSpace(secs[sections.Experience]) == "" {
		tips = append(tips, "Add an Experience section (internship/freelance/volunteer) or describe relevant work-like tasks.")
	}
	if strings.TrimSpace(secs[sections.Skills]) == "" {
		tips = append(tips, "Add a Skills section grouped by categories (Languages, Frameworks, Tools, Cloud).")
	}

	return append(tips, generalTips...)
}
