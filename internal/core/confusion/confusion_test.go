package confusion

import (
	"testing"

	"guidecheck/internal/core/classify"
	perr "guidecheck/internal/platform/errors"
)

func TestCounts_Add(t *testing.T) {
	t.Parallel()

	var c Counts
	c.Add(classify.CategoryTruePositive, 3)
	c.Add(classify.CategoryTrueNegative, 2)
	c.Add(classify.CategoryFalsePositive, 1)
	c.Add(classify.CategoryFalseNegative, 1)
	c.Add(classify.Category("garbage"), 5) // silently ignored

	if c.TP != 3 || c.TN != 2 || c.FP != 1 || c.FN != 1 {
		t.Fatalf("counts wrong: %+v", c)
	}
	if c.Total() != 7 {
		t.Fatalf("total=%d want 7", c.Total())
	}
}

func TestAggregate_KnownCounts(t *testing.T) {
	t.Parallel()

	// tp=3 tn=2 fp=1 fn=1, total 7
	m, err := Aggregate(Counts{TP: 3, TN: 2, FP: 1, FN: 1})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"accuracy", m.Accuracy, 71.43},     // 5/7
		{"precision", m.Precision, 75},      // 3/4
		{"recall", m.Recall, 75},            // 3/4
		{"f1", m.F1, 75},                    // harmonic mean of equal p/r
		{"success_rate", m.SuccessRate, 57.14}, // (tp+fp)/total
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s=%v want %v", c.name, c.got, c.want)
		}
	}
	if m.TotalPredictions != 7 {
		t.Fatalf("total=%d want 7", m.TotalPredictions)
	}
}

func TestAggregate_ZeroSafe(t *testing.T) {
	t.Parallel()

	// empty input is a valid aggregation, not an error
	m, err := Aggregate(Counts{})
	if err != nil {
		t.Fatalf("zero counts should not error: %v", err)
	}
	if m != (Metrics{}) {
		t.Fatalf("zero counts should yield zero metrics: %+v", m)
	}

	// degenerate denominators stay zero instead of NaN
	m, err = Aggregate(Counts{TN: 5})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if m.Precision != 0 || m.Recall != 0 || m.F1 != 0 {
		t.Fatalf("degenerate denominators must be zero: %+v", m)
	}
	if m.Accuracy != 100 {
		t.Fatalf("all-tn accuracy=%v want 100", m.Accuracy)
	}
	if m.SuccessRate != 0 {
		t.Fatalf("all-tn success rate=%v want 0", m.SuccessRate)
	}
}

func TestAggregate_NegativeCounts(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(Counts{TP: -1})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestAggregate_Rounding(t *testing.T) {
	t.Parallel()

	// 1/3 -> 33.33, exercises the two-decimal rounding
	m, err := Aggregate(Counts{TP: 1, FN: 2})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if m.Recall != 33.33 {
		t.Fatalf("recall=%v want 33.33", m.Recall)
	}
	if m.Accuracy != 33.33 {
		t.Fatalf("accuracy=%v want 33.33", m.Accuracy)
	}
}
