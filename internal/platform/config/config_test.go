package config

import "testing"

func TestMayString(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("CFGTEST_S", " value ")
	if got := c.MayString("S", "def"); got != "value" {
		t.Fatalf("got %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	if got := c.MayInt("MISSING", 3); got != 3 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CFGTEST_N", "-12") // signed ints are fine here, unlike raw
	if got := c.MayInt("N", 3); got != -12 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CFGTEST_N", "nope")
	if got := c.MayInt("N", 3); got != 3 {
		t.Fatalf("invalid should fall back: %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	t.Setenv("CFGTEST_B", "true")
	if !c.MayBool("B", false) {
		t.Fatal("want true")
	}
	t.Setenv("CFGTEST_B", "whatever")
	if !c.MayBool("B", true) {
		t.Fatal("invalid should fall back to default")
	}
}

func TestMayFloat64(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	t.Setenv("CFGTEST_F", "0.85")
	if got := c.MayFloat64("F", 0); got != 0.85 {
		t.Fatalf("got %v", got)
	}
	if got := c.MayFloat64("UNSET", 0.5); got != 0.5 {
		t.Fatalf("got %v", got)
	}
}

func TestMustString_PanicsOnMissing(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	defer func() {
		if recover() == nil {
			t.Fatal("want panic for missing required env")
		}
	}()
	_ = c.MustString("DEFINITELY_MISSING")
}
