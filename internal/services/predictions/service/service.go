// Package service implements the predictions persistence workflows
package service

import (
	"context"
	"time"

	"guidecheck/internal/modkit/repokit"
	perr "guidecheck/internal/platform/errors"
	"guidecheck/internal/platform/logger"
	"guidecheck/internal/platform/store"
	"guidecheck/internal/services/predictions/domain"

	"github.com/google/uuid"
)

// eventsTable is the clickhouse analytics table mirrored on write
const eventsTable = "prediction_events"

// Svc implements domain.WriterPort
type Svc struct {
	Repo   domain.StorageRepo
	binder repokit.Binder[domain.StorageRepo]
	db     repokit.TxRunner
	ch     store.Clickhouse // optional analytics sink, nil when disabled
}

// New constructs a predictions service
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("predictions.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("predictions.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, ch: ch}
}

// WriteBatch persists records, filling ids and timestamps where empty.
// Records with an invalid category are rejected before any write
func (s *Svc) WriteBatch(ctx context.Context, xs []domain.Record) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for i := range xs {
		if !xs[i].Category.Valid() {
			return 0, perr.InvalidArgf("unknown prediction category %q", xs[i].Category)
		}
		if xs[i].ID == "" {
			xs[i].ID = uuid.NewString()
		}
		if xs[i].CreatedAt.IsZero() {
			xs[i].CreatedAt = now
		}
	}

	n, err := s.Repo.InsertBatch(ctx, xs)
	if err != nil {
		return 0, err
	}

	s.mirror(ctx, xs)
	return n, nil
}

// WriteOne persists a single record
func (s *Svc) WriteOne(ctx context.Context, x domain.Record) error {
	_, err := s.WriteBatch(ctx, []domain.Record{x})
	return err
}

// mirror streams categorized events into the analytics sink, best effort.
// a failed mirror never fails the write; postgres stays the system of record
func (s *Svc) mirror(ctx context.Context, xs []domain.Record) {
	if s.ch == nil {
		return
	}
	rows := make([][]any, 0, len(xs))
	for _, r := range xs {
		rows = append(rows, []any{r.ID, r.UserID, string(r.Category), r.ModelConfidence, r.CreatedAt})
	}
	if err := s.ch.Insert(ctx, eventsTable, rows); err != nil {
		logger.C(ctx).Warn().Err(err).Int("rows", len(rows)).Msg("prediction event mirror failed")
	}
}
