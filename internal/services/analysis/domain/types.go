// Package domain defines the analysis service's input and output shapes
package domain

import (
	"guidecheck/internal/core/analysis"
	"guidecheck/internal/core/classify"
)

// AnalyzeInput is one analysis request. Sequences are normalized before
// validation, so lowercase input is accepted
type AnalyzeInput struct {
	Guide  string `json:"guide_sequence"  validate:"required,len=23,dnaseq"`
	Target string `json:"target_sequence" validate:"required,len=23,dnaseq"`

	// AssertedLabel is the caller's claimed outcome. Advisory only; the
	// PAM-derived label is authoritative and disagreement is logged
	AssertedLabel int `json:"asserted_label" validate:"oneof=0 1"`

	// ModelLabel and ModelConfidence come from an external predictor
	ModelLabel      int     `json:"model_label"      validate:"oneof=0 1"`
	ModelConfidence float64 `json:"model_confidence" validate:"gte=0,lte=1"`

	// UserID tags the persisted record; empty means anonymous
	UserID string `json:"user_id,omitempty"`

	// DryRun skips persistence and returns the analysis only
	DryRun bool `json:"dry_run,omitempty"`
}

// AnalyzeResult pairs the full pipeline result with its classification
// and the id of the persisted record (empty on dry runs)
type AnalyzeResult struct {
	analysis.Result

	Classification classify.Outcome `json:"classification"`
	RecordID       string           `json:"record_id,omitempty"`
}
