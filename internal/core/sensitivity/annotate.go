package sensitivity

import "guidecheck/internal/core/seq"

// Mismatch is a comparator mismatch annotated with both sensitivity verdicts
type Mismatch struct {
	seq.Mismatch
	PositionSensitivity Verdict `json:"position_sensitivity"`
	TypeSensitivity     Verdict `json:"type_sensitivity"`
}

// Indel is a comparator indel annotated with its zone verdict
type Indel struct {
	seq.Indel
	Sensitivity Verdict `json:"sensitivity"`
}

// Annotate attaches sensitivity verdicts to every comparator finding.
// Every record comes back annotated; the tables guarantee a non-zero verdict
func Annotate(c seq.Comparison) ([]Mismatch, []Indel) {
	ms := make([]Mismatch, 0, len(c.Mismatches))
	for _, m := range c.Mismatches {
		ms = append(ms, Mismatch{
			Mismatch:            m,
			PositionSensitivity: Position(m.Position),
			TypeSensitivity:     MismatchType(m.GuideBase, m.TargetBase, m.Position),
		})
	}
	ins := make([]Indel, 0, len(c.Indels))
	for _, in := range c.Indels {
		ins = append(ins, Indel{Indel: in, Sensitivity: IndelSensitivity(in)})
	}
	return ms, ins
}
