// Package repo provides the stats service's read-side repository
package repo

import (
	"context"
	"fmt"
	"strings"

	"guidecheck/internal/core/classify"
	"guidecheck/internal/core/confusion"
	"guidecheck/internal/modkit/repokit"
	perr "guidecheck/internal/platform/errors"
	"guidecheck/internal/services/stats/domain"
)

type binder struct{}

// NewPG returns a Postgres binder for domain.CountsRepo
func NewPG() repokit.Binder[domain.CountsRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.CountsRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// CountByCategory groups stored predictions by category inside the window
func (s *pg) CountByCategory(ctx context.Context, w domain.Window) (confusion.Counts, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT category, COUNT(*) FROM predictions WHERE TRUE`)
	var args []any
	if !w.Since.IsZero() {
		args = append(args, w.Since)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if !w.Until.IsZero() {
		args = append(args, w.Until)
		fmt.Fprintf(&sb, " AND created_at < $%d", len(args))
	}
	if w.UserID != "" {
		args = append(args, w.UserID)
		fmt.Fprintf(&sb, " AND user_id = $%d", len(args))
	}
	sb.WriteString(` GROUP BY category`)

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return confusion.Counts{}, perr.FromPostgres(err, "count predictions")
	}
	defer rows.Close()

	var c confusion.Counts
	for rows.Next() {
		var cat string
		var n int64
		if err := rows.Scan(&cat, &n); err != nil {
			return confusion.Counts{}, perr.FromPostgres(err, "scan prediction counts")
		}
		c.Add(classify.Category(cat), int(n))
	}
	return c, rows.Err()
}
