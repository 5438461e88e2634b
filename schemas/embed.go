// Package schemas holds the JSON Schema files for datasets and reports.
package schemas

import "embed"

// Schema file names.
const (
	EvalDataset      = "eval_dataset.schema.json"
	CandidateResults = "candidate_results.schema.json"
	EvaluationReport = "evaluation_report.schema.json"
	ModelSweep       = "model_sweep.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Names lists the embedded schema files.
var Names = []string{EvalDataset, CandidateResults, EvaluationReport, ModelSweep}
