package repokit

import (
	"context"
	"testing"

	"guidecheck/internal/platform/testkit"
)

type fakeRepo struct{ q Queryer }

type nopQueryer struct{}

func (nopQueryer) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (nopQueryer) Query(context.Context, string, ...any) (Rows, error)     { return nil, nil }
func (nopQueryer) QueryRow(context.Context, string, ...any) Row            { return nil }

func TestBindFunc(t *testing.T) {
	t.Parallel()

	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })
	q := nopQueryer{}

	r := b.Bind(q)
	if r.q != Queryer(q) {
		t.Fatal("queryer not threaded through")
	}
}

func TestMustBind_NilQueryerPanics(t *testing.T) {
	t.Parallel()

	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })
	testkit.MustPanic(t, func() { MustBind[*fakeRepo](b, nil) })
}

func TestRequireQueryer(t *testing.T) {
	t.Parallel()

	q := nopQueryer{}
	if got := RequireQueryer(q); got != Queryer(q) {
		t.Fatal("valid queryer should pass through")
	}
	testkit.MustPanic(t, func() { RequireQueryer(nil) })
}
