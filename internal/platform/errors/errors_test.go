package errors

import (
	stderrs "errors"
	"testing"
)

func TestNewAndCodeOf(t *testing.T) {
	t.Parallel()

	err := New(ErrorCodeValidation, "bad input")
	if CodeOf(err) != ErrorCodeValidation {
		t.Fatalf("code=%v", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeValidation) || IsCode(err, ErrorCodeNotFound) {
		t.Fatal("IsCode misbehaving")
	}
	if err.Error() != "bad input" {
		t.Fatalf("message=%q", err.Error())
	}

	// foreign errors map to unknown
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign error should be unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil should be unknown")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("root cause")
	err := Wrap(cause, ErrorCodeDB, "query failed")

	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("Root=%v want cause", Root(err))
	}
	if got := err.Error(); got != "query failed: root cause" {
		t.Fatalf("message=%q", got)
	}
}

func TestWrapIf(t *testing.T) {
	t.Parallel()

	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatal("nil in, nil out")
	}
	if err := WrapIf(stderrs.New("e"), ErrorCodeDB, "x"); !IsCode(err, ErrorCodeDB) {
		t.Fatalf("got %v", err)
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	t.Parallel()

	base := New(ErrorCodeValidation, "invalid")
	tagged := WithField(base, "guide_sequence")

	e, ok := As(tagged)
	if !ok || e.Field() != "guide_sequence" {
		t.Fatalf("field not attached: %v", tagged)
	}

	// original untouched
	b, _ := As(base)
	if b.Field() != "" {
		t.Fatal("copy-on-write violated")
	}

	// non-project errors pass through unchanged
	plain := stderrs.New("plain")
	if WithField(plain, "f") != plain {
		t.Fatal("foreign error should pass through")
	}
}

func TestWithOp(t *testing.T) {
	t.Parallel()

	err := WithOp(New(ErrorCodeDB, "x"), "predictions.insert")
	e, ok := As(err)
	if !ok || e.Op() != "predictions.insert" {
		t.Fatalf("op not attached: %v", err)
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	w := WireFrom(WithField(New(ErrorCodeValidation, "invalid sequence"), "target_sequence"))
	if w.Code != ErrorCodeValidation || w.Field != "target_sequence" || w.Message != "invalid sequence" {
		t.Fatalf("wire=%+v", w)
	}

	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("wire=%+v", w)
	}

	if WireFrom(nil) != (Wire{}) {
		t.Fatal("nil should produce zero wire")
	}
}

func TestSugar(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("missing %s", "row"), ErrorCodeNotFound},
		{InvalidArgf("bad %s", "arg"), ErrorCodeInvalidArgument},
		{Validationf("invalid"), ErrorCodeValidation},
		{DuplicateKeyf("dup"), ErrorCodeDuplicateKey},
		{DBf("db"), ErrorCodeDB},
		{Unavailablef("down"), ErrorCodeUnavailable},
		{Internalf("oops"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.want {
			t.Errorf("%v: code=%v want %v", c.err, CodeOf(c.err), c.want)
		}
	}
}
