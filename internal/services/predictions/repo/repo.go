// Package repo provides repository implementations for the predictions service
package repo

import (
	"context"
	"fmt"
	"strings"

	"guidecheck/internal/modkit/repokit"
	perr "guidecheck/internal/platform/errors"
	"guidecheck/internal/services/predictions/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// InsertBatch writes a batch of prediction records; ignores duplicate ids
func (s *pg) InsertBatch(ctx context.Context, xs []domain.Record) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO predictions
		(id, user_id, guide_sequence, target_sequence,
		 asserted_label, model_label, pam_label, model_confidence, category, created_at)
		VALUES `)
	args := make([]any, 0, len(xs)*10)
	for i, r := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*10 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9)
		args = append(args,
			r.ID, r.UserID, r.Guide, r.Target,
			r.AssertedLabel, r.ModelLabel, r.PAMLabel, r.ModelConfidence, string(r.Category), r.CreatedAt)
	}
	sb.WriteString(` ON CONFLICT (id) DO NOTHING`)
	ct, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, perr.FromPostgres(err, "insert predictions")
	}
	return int(ct.RowsAffected()), nil
}
