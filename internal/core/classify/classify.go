// Package classify maps labels onto confusion-matrix categories using the
// PAM-derived label as ground truth
package classify

import (
	"guidecheck/internal/core/pam"
	"guidecheck/internal/core/seq"
)

// Category is a confusion-matrix bucket. The wire labels come from the
// system this replaces and are preserved for compatibility with stored data
type Category string

const (
	// CategoryTruePositive is ground truth 1, model 1
	CategoryTruePositive Category = "correct_predicted_correct"
	// CategoryFalseNegative is ground truth 1, model 0
	CategoryFalseNegative Category = "correct_predicted_wrong"
	// CategoryFalsePositive is ground truth 0, model 1
	CategoryFalsePositive Category = "wrong_predicted_correct"
	// CategoryTrueNegative is ground truth 0, model 0
	CategoryTrueNegative Category = "wrong_predicted_wrong"
)

// Valid reports whether c is one of the four known buckets
func (c Category) Valid() bool {
	switch c {
	case CategoryTruePositive, CategoryFalseNegative, CategoryFalsePositive, CategoryTrueNegative:
		return true
	}
	return false
}

// Decide maps (PAM-derived ground truth, model label) to a category.
// Pure: identical inputs always yield the identical category
func Decide(pamLabel, modelLabel int) Category {
	switch {
	case pamLabel == 1 && modelLabel == 1:
		return CategoryTruePositive
	case pamLabel == 1:
		return CategoryFalseNegative
	case modelLabel == 1:
		return CategoryFalsePositive
	default:
		return CategoryTrueNegative
	}
}

// Outcome is a classification with its supporting labels
type Outcome struct {
	Category Category `json:"category"`
	PAMLabel int      `json:"pam_label"`
	// AssertedDisagrees flags a caller-asserted label that contradicts the
	// PAM-derived ground truth. The PAM label is deliberately authoritative
	// (more reliable than user input); the disagreement is reported for the
	// caller to log, never applied
	AssertedDisagrees bool `json:"asserted_disagrees,omitempty"`
}

// Classify recomputes the PAM-derived ground truth from the sequences and
// categorizes the model's prediction against it. The asserted label is
// advisory only
func Classify(assertedLabel, modelLabel int, guide, target string) (Outcome, error) {
	if err := seq.ValidatePair(guide, target); err != nil {
		return Outcome{}, err
	}
	pamLabel := pam.Check(guide, target).Label()
	return Outcome{
		Category:          Decide(pamLabel, modelLabel),
		PAMLabel:          pamLabel,
		AssertedDisagrees: assertedLabel != pamLabel,
	}, nil
}
