// Package seq provides the 23-mer sequence contract and positional alignment
// over guide (sgRNA) and target (DNA) sequences
package seq

import (
	"strings"

	perr "guidecheck/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// Length is the fixed sequence length for Cas9 guide/target pairs
// (20 nt protospacer + 3 nt PAM)
const Length = 23

// Gap marks an indel slot in an aligned sequence
const Gap = '-'

// Region buckets a 1-based position into its biological neighborhood
type Region string

const (
	// RegionPAMDistal covers positions 1-3, farthest from the PAM
	RegionPAMDistal Region = "pam_distal"
	// RegionMiddle covers positions 4-12
	RegionMiddle Region = "middle"
	// RegionSeed covers positions 13-20, PAM-proximal and specificity critical
	RegionSeed Region = "seed"
	// RegionPAM covers positions 21-23, the NGG motif itself
	RegionPAM Region = "pam"
)

// RegionOf returns the region for a 1-based position
func RegionOf(pos int) Region {
	switch {
	case pos <= 3:
		return RegionPAMDistal
	case pos <= 12:
		return RegionMiddle
	case pos <= 20:
		return RegionSeed
	default:
		return RegionPAM
	}
}

// Normalize folds and uppercases raw input so sequences pasted from rich
// text sources (full width letters, stray whitespace) validate cleanly.
// It does not validate; callers follow up with Validate
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(s)))
}

// Validate enforces the sequence contract: non-empty, exactly Length
// characters, alphabet {A,T,C,G,-}. The dash is a legal indel slot; the
// stricter [ATCG]-only contract of an earlier route variant is superseded
func Validate(s string) error {
	if s == "" {
		return perr.New(perr.ErrorCodeInvalidArgument, "missing sequence")
	}
	if len(s) != Length {
		return perr.Newf(perr.ErrorCodeValidation, "invalid sequence length: got %d, want %d", len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'T', 'C', 'G', Gap:
		default:
			return perr.Newf(perr.ErrorCodeValidation, "invalid nucleotide %q at position %d", s[i], i+1)
		}
	}
	return nil
}

// ValidatePair validates guide and target together, tagging the offending
// argument so callers can surface which input failed
func ValidatePair(guide, target string) error {
	if err := Validate(guide); err != nil {
		return perr.WithField(err, "guide_sequence")
	}
	if err := Validate(target); err != nil {
		return perr.WithField(err, "target_sequence")
	}
	return nil
}
