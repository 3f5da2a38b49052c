package raw

import "testing"

func TestGet_DefaultAndTrim(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("missing key: got %q", got)
	}

	t.Setenv("RAWTEST_VAL", "  hello  ")
	if got := c.Get("VAL", "x"); got != "hello" {
		t.Fatalf("trim failed: %q", got)
	}

	// whitespace-only counts as empty
	t.Setenv("RAWTEST_BLANK", "   ")
	if got := c.Get("BLANK", "d"); got != "d" {
		t.Fatalf("blank should fall back: %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	cases := []struct {
		val  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"no", false},
		{"banana", false},
	}
	for _, cse := range cases {
		t.Setenv("RAWTEST_B", cse.val)
		if got := c.GetBool("B", !cse.want); got != cse.want {
			t.Errorf("GetBool(%q)=%v want %v", cse.val, got, cse.want)
		}
	}

	if !c.GetBool("RAWTEST_UNSET", true) {
		t.Fatal("unset should return default")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	t.Setenv("RAWTEST_N", "42")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("got %d want 42", got)
	}

	t.Setenv("RAWTEST_N", "-3") // negatives are not accepted here
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("negative should fall back: %d", got)
	}

	t.Setenv("RAWTEST_N", "abc")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("garbage should fall back: %d", got)
	}
}

func TestPrefix_Composes(t *testing.T) {
	t.Setenv("A_B_KEY", "v")
	c := New().Prefix("A_").Prefix("B_")
	if got := c.Get("KEY", ""); got != "v" {
		t.Fatalf("composed prefix lookup failed: %q", got)
	}
}
