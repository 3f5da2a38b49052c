// Package service derives confusion-matrix metrics from stored predictions
package service

import (
	"context"

	"guidecheck/internal/core/confusion"
	"guidecheck/internal/modkit/repokit"
	"guidecheck/internal/services/stats/domain"
)

// Svc implements domain.StatsPort
type Svc struct {
	Repo domain.CountsRepo
}

// New constructs a stats service bound to db
func New(db repokit.TxRunner, binder repokit.Binder[domain.CountsRepo]) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// Summarize counts stored predictions inside the window and derives
// percentage metrics. An empty window yields zeroed metrics, not an error
func (s *Svc) Summarize(ctx context.Context, w domain.Window) (*domain.Summary, error) {
	c, err := s.Repo.CountByCategory(ctx, w)
	if err != nil {
		return nil, err
	}
	m, err := confusion.Aggregate(c)
	if err != nil {
		return nil, err
	}
	return &domain.Summary{Window: w, Counts: c, Metrics: m}, nil
}

// FromCounts derives metrics from counts supplied by the caller
func (s *Svc) FromCounts(c confusion.Counts) (*domain.Summary, error) {
	m, err := confusion.Aggregate(c)
	if err != nil {
		return nil, err
	}
	return &domain.Summary{Counts: c, Metrics: m}, nil
}
