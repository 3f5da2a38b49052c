// Package explain derives the single primary scientific reason for a
// predicted outcome and compiles the named risk factors. The reason selector
// is an ordered rule chain: first match wins, exactly one reason per analysis
package explain

import (
	"guidecheck/internal/core/pam"
	"guidecheck/internal/core/sensitivity"
	"guidecheck/internal/core/seq"
)

// Confidence grades how certain the selected explanation is
type Confidence string

const (
	// ConfidenceMedium marks explanations with partial research support
	ConfidenceMedium Confidence = "medium"
	// ConfidenceHigh marks well supported explanations
	ConfidenceHigh Confidence = "high"
	// ConfidenceVeryHigh marks explanations backed by dominant single-site effects
	ConfidenceVeryHigh Confidence = "very_high"
)

// ReasonKind identifies the selected rule
type ReasonKind string

const (
	// ReasonNonCanonicalPAM wins over everything else
	ReasonNonCanonicalPAM ReasonKind = "non_canonical_pam"
	// ReasonPosition14Mismatch is the dominant single-mismatch effect
	ReasonPosition14Mismatch ReasonKind = "position_14_mismatch"
	// ReasonCriticalIndel is a bulge graded critical by zone rules
	ReasonCriticalIndel ReasonKind = "critical_indel"
	// ReasonMultipleSeedMismatches is two or more mismatches in positions 13-20
	ReasonMultipleSeedMismatches ReasonKind = "multiple_seed_mismatches"
	// ReasonCriticalGAMismatch is a research-flagged G-A combination
	ReasonCriticalGAMismatch ReasonKind = "critical_ga_mismatch"
	// ReasonPAMDistalAnomaly is any mismatch at positions 1-3
	ReasonPAMDistalAnomaly ReasonKind = "pam_distal_anomaly"
	// ReasonSeedRegionMismatch is any single seed-region mismatch
	ReasonSeedRegionMismatch ReasonKind = "seed_region_mismatch"
	// ReasonCanonicalTarget means nothing flagged dominates
	ReasonCanonicalTarget ReasonKind = "canonical_target"
)

// Reason is the single primary explanation for an analysis
type Reason struct {
	Kind       ReasonKind `json:"kind"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	Basis      string     `json:"basis"`
}

// Findings bundles the selector inputs
type Findings struct {
	PAM        pam.Analysis
	Mismatches []sensitivity.Mismatch
	Indels     []sensitivity.Indel
}

// reasonRule pairs a predicate with the reason it produces.
// Rules are evaluated in order; the first match wins
type reasonRule struct {
	match func(Findings) bool
	build func(Findings) Reason
}

var reasonChain = []reasonRule{
	{
		match: func(f Findings) bool { return !f.PAM.Canonical },
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonNonCanonicalPAM,
				Confidence: ConfidenceHigh,
				Reason:     "the target lacks a canonical NGG PAM, so Cas9 cannot stably engage the site",
				Basis:      "PAM recognition precedes R-loop formation; without GG at positions 22-23 binding is prevented or severely limited",
			}
		},
	},
	{
		match: func(f Findings) bool { return hasMismatchAt(f, 14) },
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonPosition14Mismatch,
				Confidence: ConfidenceVeryHigh,
				Reason:     "a mismatch sits at position 14, the most sensitive position observed",
				Basis:      "position 14 dominates single-mismatch activity loss across published mismatch tolerance datasets",
			}
		},
	},
	{
		match: func(f Findings) bool {
			for _, in := range f.Indels {
				if in.Sensitivity.Level == sensitivity.LevelCritical {
					return true
				}
			}
			return false
		},
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonCriticalIndel,
				Confidence: ConfidenceHigh,
				Reason:     "a bulge falls in an indel-intolerant zone and is expected to abolish cleavage",
				Basis:      "bulge tolerance is confined to the middle zone; intolerant-zone bulges disrupt the heteroduplex geometry Cas9 requires",
			}
		},
	},
	{
		match: func(f Findings) bool { return countSeedMismatches(f) >= 2 },
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonMultipleSeedMismatches,
				Confidence: ConfidenceHigh,
				Reason:     "two or more mismatches fall inside the seed region (positions 13-20)",
				Basis:      "seed mismatches compound; multiple seed-region mismatches reliably suppress cleavage",
			}
		},
	},
	{
		match: func(f Findings) bool {
			for _, m := range f.Mismatches {
				if m.TypeSensitivity.Critical && m.GuideBase == 'G' && m.TargetBase == 'A' {
					return true
				}
			}
			return false
		},
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonCriticalGAMismatch,
				Confidence: ConfidenceHigh,
				Reason:     "a G-A mismatch occurs at one of its research-flagged critical positions",
				Basis:      "rG:dA wobble pairing at positions 1, 2 and 16 disrupts R-loop formation despite the general distal tolerance",
			}
		},
	},
	{
		match: func(f Findings) bool {
			for _, m := range f.Mismatches {
				if m.Position <= 3 {
					return true
				}
			}
			return false
		},
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonPAMDistalAnomaly,
				Confidence: ConfidenceMedium,
				Reason:     "a mismatch sits in the PAM-distal-most positions (1-3), which are unexpectedly sensitive",
				Basis:      "off-target screens show positions 1-3 contribute more to specificity than the classical distal-tolerance model predicts",
			}
		},
	},
	{
		match: func(f Findings) bool { return countSeedMismatches(f) >= 1 },
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonSeedRegionMismatch,
				Confidence: ConfidenceMedium,
				Reason:     "a mismatch falls inside the seed region (positions 13-20)",
				Basis:      "seed-region pairing drives target discrimination; even single seed mismatches measurably reduce activity",
			}
		},
	},
	{
		match: func(Findings) bool { return true },
		build: func(Findings) Reason {
			return Reason{
				Kind:       ReasonCanonicalTarget,
				Confidence: ConfidenceHigh,
				Reason:     "the PAM is canonical and no flagged mismatches or indels dominate the outcome",
				Basis:      "with an intact NGG PAM and no intolerant-site deviations, efficient editing is the expected outcome",
			}
		},
	},
}

// SelectReason applies the ordered decision chain and returns exactly one
// primary reason. Deterministic: identical findings yield the identical reason
func SelectReason(f Findings) Reason {
	for _, r := range reasonChain {
		if r.match(f) {
			return r.build(f)
		}
	}
	// unreachable: the last rule always matches
	return Reason{Kind: ReasonCanonicalTarget, Confidence: ConfidenceHigh}
}

func hasMismatchAt(f Findings, pos int) bool {
	for _, m := range f.Mismatches {
		if m.Position == pos {
			return true
		}
	}
	return false
}

func countSeedMismatches(f Findings) int {
	n := 0
	for _, m := range f.Mismatches {
		if m.Region == seq.RegionSeed {
			n++
		}
	}
	return n
}
