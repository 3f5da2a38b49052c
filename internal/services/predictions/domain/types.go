// Package domain defines the core types and interfaces for the predictions service
package domain

import (
	"time"

	"guidecheck/internal/core/classify"
)

// Record is one categorized prediction, the minimal shape the stats
// aggregator needs. ID and CreatedAt are filled by the writer when empty
type Record struct {
	ID              string
	UserID          string // optional; empty means anonymous
	Guide           string // required, validated 23-mer
	Target          string // required, validated 23-mer
	AssertedLabel   int    // caller-asserted outcome, advisory only
	ModelLabel      int    // external model's predicted label
	PAMLabel        int    // PAM-derived ground truth
	ModelConfidence float64
	Category        classify.Category // required, one of the four buckets
	CreatedAt       time.Time
}
