// Package pam checks the 3'-terminal protospacer-adjacent motif for canonical
// NGG compatibility. Cas9 requires both strands to end in GG; the N position
// is informative but not prohibitive
package pam

import (
	"guidecheck/internal/core/seq"
	"guidecheck/internal/core/sensitivity"
)

// Analysis is the PAM compatibility verdict for a guide/target pair
type Analysis struct {
	GuidePAM       string            `json:"guide_pam"`
	TargetPAM      string            `json:"target_pam"`
	Canonical      bool              `json:"canonical"`
	NPositionMatch bool              `json:"n_position_match"`
	Severity       sensitivity.Level `json:"severity"`
	Explanation    string            `json:"explanation"`
}

// Check extracts the final 3 characters of each sequence and grades the pair.
// Inputs must already satisfy seq.Validate
func Check(guide, target string) Analysis {
	gp := guide[seq.Length-3:]
	tp := target[seq.Length-3:]

	a := Analysis{
		GuidePAM:       gp,
		TargetPAM:      tp,
		Canonical:      gp[1:] == "GG" && tp[1:] == "GG",
		NPositionMatch: gp[0] == tp[0],
	}

	switch {
	case !a.Canonical:
		a.Severity = sensitivity.LevelHigh
		a.Explanation = "non-canonical PAM prevents or severely limits Cas9 binding"
	case !a.NPositionMatch:
		a.Severity = sensitivity.LevelMedium
		a.Explanation = "canonical GG pair with a position 21 mismatch, informative but not prohibitive"
	default:
		a.Severity = sensitivity.LevelLow
		a.Explanation = "fully canonical NGG PAM on both strands"
	}
	return a
}

// Label collapses the PAM check to the 0/1 ground-truth label the classifier
// uses: 1 only when both strands end in GG and the N positions agree
func (a Analysis) Label() int {
	if a.Canonical && a.NPositionMatch {
		return 1
	}
	return 0
}
