package seq

// IndelKind distinguishes which strand carries the bulge
type IndelKind string

const (
	// KindDNABulge means the guide carries the gap (extra base on the DNA side)
	KindDNABulge IndelKind = "dna_bulge"
	// KindRNABulge means the target carries the gap (extra base on the RNA side)
	KindRNABulge IndelKind = "rna_bulge"
)

// Mismatch is an aligned position where both bases are real nucleotides and differ.
// Positions are 1-based
type Mismatch struct {
	Position   int
	GuideBase  byte
	TargetBase byte
	Region     Region
}

// Type returns the canonical mismatch-type key, e.g. "G-A" for guide G vs target A
func (m Mismatch) Type() string {
	return string([]byte{m.GuideBase, '-', m.TargetBase})
}

// Indel is an aligned position where either base is the gap character.
// The non-gap side keeps its base so downstream rules can inspect it
type Indel struct {
	Position   int
	Kind       IndelKind
	GuideBase  byte
	TargetBase byte
}

// Comparison holds the positional diff of a guide/target pair
type Comparison struct {
	Mismatches []Mismatch
	Indels     []Indel

	// MatchedPositions counts aligned positions where both bases are real
	// nucleotides and equal
	MatchedPositions int
}

// Compare positionally aligns two validated sequences and emits mismatch and
// indel records. Pure function of its inputs; inputs must already satisfy
// Validate (Compare re-checks and fails fast rather than truncating)
func Compare(guide, target string) (Comparison, error) {
	if err := ValidatePair(guide, target); err != nil {
		return Comparison{}, err
	}

	var c Comparison
	for i := 0; i < Length; i++ {
		g, t := guide[i], target[i]
		pos := i + 1
		switch {
		case g == Gap || t == Gap:
			kind := KindRNABulge
			if g == Gap {
				kind = KindDNABulge
			}
			c.Indels = append(c.Indels, Indel{Position: pos, Kind: kind, GuideBase: g, TargetBase: t})
		case g != t:
			c.Mismatches = append(c.Mismatches, Mismatch{
				Position:   pos,
				GuideBase:  g,
				TargetBase: t,
				Region:     RegionOf(pos),
			})
		default:
			c.MatchedPositions++
		}
	}
	return c, nil
}
