package domain

import (
	"context"

	"guidecheck/internal/core/confusion"
)

// StatsPort aggregates stored predictions into confusion-matrix metrics
type StatsPort interface {
	// Summarize counts stored predictions in the window and derives metrics
	Summarize(ctx context.Context, w Window) (*Summary, error)

	// FromCounts derives metrics from already-known counts, no storage hit
	FromCounts(c confusion.Counts) (*Summary, error)
}

// CountsRepo is the SQL surface the service binds per Queryer
type CountsRepo interface {
	CountByCategory(ctx context.Context, w Window) (confusion.Counts, error)
}
