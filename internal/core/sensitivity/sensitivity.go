// Package sensitivity is the static knowledge base mapping sequence position
// and mismatch type to a biological sensitivity verdict. Tables are data, not
// control flow, so new research findings slot in without touching logic
package sensitivity

import "guidecheck/internal/core/seq"

// Level grades how strongly a deviation at a site affects Cas9 activity
type Level int8

// Levels are ordered; comparisons like l >= LevelVeryHigh are meaningful
const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
	LevelVeryHigh
	LevelCritical
)

// String implements fmt.Stringer with stable wire labels
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very_high"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText makes Level JSON-friendly
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Verdict is a sensitivity lookup result. Critical marks the
// research-identified mismatch-type exceptions (distinct from LevelCritical,
// which grades positions)
type Verdict struct {
	Level    Level  `json:"level"`
	Critical bool   `json:"critical,omitempty"`
	Reason   string `json:"reason"`
}

// positionTable encodes per-position sensitivity across the 23-mer.
// Derived from mismatch tolerance profiling of SpCas9 off-target data
var positionTable = map[int]Verdict{
	1:  {Level: LevelVeryHigh, Reason: "unexpectedly sensitive PAM-distal-most position"},
	2:  {Level: LevelVeryHigh, Reason: "unexpectedly sensitive PAM-distal-most position"},
	3:  {Level: LevelVeryHigh, Reason: "unexpectedly sensitive PAM-distal-most position"},
	4:  {Level: LevelMedium, Reason: "moderately tolerant PAM-distal position"},
	5:  {Level: LevelMedium, Reason: "moderately tolerant PAM-distal position"},
	6:  {Level: LevelMedium, Reason: "moderately tolerant PAM-distal position"},
	7:  {Level: LevelMedium, Reason: "moderately tolerant PAM-distal position"},
	8:  {Level: LevelHigh, Reason: "strong positive contribution, research anomaly"},
	9:  {Level: LevelHigh, Reason: "elevated sensitivity approaching the seed"},
	10: {Level: LevelHigh, Reason: "elevated sensitivity approaching the seed"},
	11: {Level: LevelHigh, Reason: "elevated sensitivity approaching the seed"},
	12: {Level: LevelHigh, Reason: "elevated sensitivity approaching the seed"},
	13: {Level: LevelVeryHigh, Reason: "seed region boundary, strong specificity determinant"},
	14: {Level: LevelCritical, Reason: "most sensitive position observed"},
	15: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	16: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	17: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	18: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	19: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	20: {Level: LevelVeryHigh, Reason: "seed region, strong specificity determinant"},
	21: {Level: LevelVeryHigh, Reason: "first PAM base, informative"},
	22: {Level: LevelCritical, Reason: "PAM G position, essential for recognition"},
	23: {Level: LevelCritical, Reason: "PAM G position, essential for recognition"},
}

// typeKey indexes the mismatch-type exception table
type typeKey struct {
	mType string // "<guideBase>-<targetBase>"
	pos   int
}

// typeTable holds research-identified mismatch-type exceptions.
// Everything else falls back to defaultTypeVerdict
var typeTable = map[typeKey]Verdict{
	{"G-A", 1}:  {Level: LevelVeryHigh, Critical: true, Reason: "rG:dA wobble pairing disrupts R-loop formation at this position"},
	{"G-A", 2}:  {Level: LevelVeryHigh, Critical: true, Reason: "rG:dA wobble pairing disrupts R-loop formation at this position"},
	{"G-A", 16}: {Level: LevelVeryHigh, Critical: true, Reason: "rG:dA wobble pairing disrupts R-loop formation at this position"},
	{"G-C", 1}:  {Level: LevelHigh, Critical: true, Reason: "rG:dC transversion poorly tolerated at the distal terminus"},
	{"G-T", 1}:  {Level: LevelHigh, Critical: true, Reason: "rG:dT transversion poorly tolerated at the distal terminus"},
	{"T-C", 8}:  {Level: LevelHigh, Critical: true, Reason: "rT:dC mismatch breaks the position 8 positive contribution"},
}

// Position returns the sensitivity verdict for a 1-based position.
// Unmapped positions fall back to a documented medium default so no record
// is ever left unannotated
func Position(pos int) Verdict {
	if v, ok := positionTable[pos]; ok {
		return v
	}
	return Verdict{Level: LevelMedium, Reason: "no position-specific data, default tolerance"}
}

// MismatchType returns the verdict for a mismatch type at a position.
// Combinations outside the exception table get the generic default
func MismatchType(guideBase, targetBase byte, pos int) Verdict {
	k := typeKey{mType: string([]byte{guideBase, '-', targetBase}), pos: pos}
	if v, ok := typeTable[k]; ok {
		return v
	}
	return defaultTypeVerdict(pos)
}

// defaultTypeVerdict grades unexceptional combinations: low in tolerant
// regions, medium elsewhere
func defaultTypeVerdict(pos int) Verdict {
	if seq.RegionOf(pos) == seq.RegionMiddle {
		return Verdict{Level: LevelLow, Reason: "mismatch type without position-specific effect"}
	}
	return Verdict{Level: LevelMedium, Reason: "mismatch type without position-specific effect"}
}

// IndelSensitivity grades a bulge by zone. Positions 1-4 and 17-20 are the
// indel intolerant zones; the PAM itself tolerates no bulges; the middle
// zone (5-16) generally does. A DNA bulge opposite dA exactly at position 11
// is always critical regardless of zone
func IndelSensitivity(in seq.Indel) Verdict {
	if in.Kind == seq.KindDNABulge && in.Position == 11 && in.TargetBase == 'A' {
		return Verdict{Level: LevelCritical, Reason: "DNA bulge opposite dA at position 11, intolerant despite the tolerant middle zone"}
	}
	switch {
	case in.Position <= 4:
		return Verdict{Level: LevelVeryHigh, Reason: "PAM-distal indel intolerant zone (1-4)"}
	case in.Position >= 21:
		return Verdict{Level: LevelCritical, Reason: "bulge inside the PAM abolishes recognition"}
	case in.Position >= 17:
		return Verdict{Level: LevelCritical, Reason: "seed-proximal indel intolerant zone (17-20)"}
	default:
		return Verdict{Level: LevelLow, Reason: "middle zone (5-16) generally tolerates single-base bulges"}
	}
}
