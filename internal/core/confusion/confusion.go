// Package confusion reduces confusion-matrix counts to standard prediction
// quality metrics. All outputs are percentages rounded to two decimals;
// degenerate denominators yield explicit zeros, never NaN
package confusion

import (
	"math"

	"guidecheck/internal/core/classify"
	perr "guidecheck/internal/platform/errors"
)

// Counts is a multiset of categorized records
type Counts struct {
	TP int `json:"tp"`
	TN int `json:"tn"`
	FP int `json:"fp"`
	FN int `json:"fn"`
}

// Add increments the bucket for one category
func (c *Counts) Add(cat classify.Category, n int) {
	switch cat {
	case classify.CategoryTruePositive:
		c.TP += n
	case classify.CategoryFalseNegative:
		c.FN += n
	case classify.CategoryFalsePositive:
		c.FP += n
	case classify.CategoryTrueNegative:
		c.TN += n
	}
}

// Total is the number of records counted
func (c Counts) Total() int { return c.TP + c.TN + c.FP + c.FN }

// Metrics are the aggregated prediction quality figures, as percentages
type Metrics struct {
	Accuracy         float64 `json:"accuracy"`
	Precision        float64 `json:"precision"`
	Recall           float64 `json:"recall"`
	F1               float64 `json:"f1_score"`
	SuccessRate      float64 `json:"success_rate"`
	TotalPredictions int     `json:"total_predictions"`
}

// Aggregate computes metrics from counts. Negative counts are a contract
// violation; a zero total returns all-zero metrics without error
func Aggregate(c Counts) (Metrics, error) {
	if c.TP < 0 || c.TN < 0 || c.FP < 0 || c.FN < 0 {
		return Metrics{}, perr.New(perr.ErrorCodeInvalidArgument, "category counts must be non-negative")
	}

	total := c.Total()
	if total == 0 {
		return Metrics{}, nil
	}

	accuracy := float64(c.TP+c.TN) / float64(total)
	precision := ratio(c.TP, c.TP+c.FP)
	recall := ratio(c.TP, c.TP+c.FN)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	successRate := float64(c.TP+c.FP) / float64(total)

	return Metrics{
		Accuracy:         pct(accuracy),
		Precision:        pct(precision),
		Recall:           pct(recall),
		F1:               pct(f1),
		SuccessRate:      pct(successRate),
		TotalPredictions: total,
	}, nil
}

// ratio divides with a zero default for empty denominators
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// pct converts a fraction to a percentage rounded to two decimals
func pct(f float64) float64 {
	return math.Round(f*10000) / 100
}
