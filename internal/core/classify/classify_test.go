package classify

import (
	"testing"
)

const (
	refGuide     = "ATCGATCGATCGATCGATCAGGG"
	refTarget    = "ATCGATCGATCGATCGATCAGGG"
	badPAMTarget = "ATCGATCGATCGATCGATCTGGA" // ends GA, non-canonical
)

func TestDecide_AllQuadrants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pam, model int
		want       Category
	}{
		{1, 1, CategoryTruePositive},
		{1, 0, CategoryFalseNegative},
		{0, 1, CategoryFalsePositive},
		{0, 0, CategoryTrueNegative},
	}
	for _, c := range cases {
		if got := Decide(c.pam, c.model); got != c.want {
			t.Errorf("Decide(%d,%d)=%s want %s", c.pam, c.model, got, c.want)
		}
	}
}

func TestCategory_WireLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cat  Category
		want string
	}{
		{CategoryTruePositive, "correct_predicted_correct"},
		{CategoryFalseNegative, "correct_predicted_wrong"},
		{CategoryFalsePositive, "wrong_predicted_correct"},
		{CategoryTrueNegative, "wrong_predicted_wrong"},
	}
	for _, c := range cases {
		if string(c.cat) != c.want {
			t.Errorf("label %s want %s", c.cat, c.want)
		}
		if !c.cat.Valid() {
			t.Errorf("%s should be valid", c.cat)
		}
	}
	if Category("nonsense").Valid() {
		t.Error("unknown label should be invalid")
	}
}

func TestClassify_CanonicalAgreement(t *testing.T) {
	t.Parallel()

	out, err := Classify(1, 1, refGuide, refTarget)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if out.Category != CategoryTruePositive {
		t.Fatalf("category=%s want true positive", out.Category)
	}
	if out.PAMLabel != 1 || out.AssertedDisagrees {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestClassify_PAMOverridesAssertedLabel(t *testing.T) {
	t.Parallel()

	// caller asserts failure, model predicts success, PAM is broken:
	// ground truth comes from the PAM, so this is a false positive
	out, err := Classify(0, 1, refGuide, badPAMTarget)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if out.Category != CategoryFalsePositive {
		t.Fatalf("category=%s want false positive", out.Category)
	}
	if out.PAMLabel != 0 {
		t.Fatalf("pam label=%d want 0", out.PAMLabel)
	}
	if out.AssertedDisagrees {
		t.Fatalf("asserted 0 agrees with pam 0: %+v", out)
	}

	// asserted success against a broken PAM is flagged, never applied
	out, err = Classify(1, 0, refGuide, badPAMTarget)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if out.Category != CategoryTrueNegative || !out.AssertedDisagrees {
		t.Fatalf("want flagged true negative: %+v", out)
	}
}

func TestClassify_Purity(t *testing.T) {
	t.Parallel()

	a, err := Classify(1, 1, refGuide, badPAMTarget)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	b, err := Classify(1, 1, refGuide, badPAMTarget)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if a != b {
		t.Fatalf("identical inputs diverged: %+v vs %+v", a, b)
	}
}

func TestClassify_RejectsInvalidSequences(t *testing.T) {
	t.Parallel()

	if _, err := Classify(1, 1, "ATCG", refTarget); err == nil {
		t.Fatal("short guide should fail")
	}
	if _, err := Classify(1, 1, refGuide, ""); err == nil {
		t.Fatal("missing target should fail")
	}
}
