package explain

import "guidecheck/internal/core/sensitivity"

// RiskFactor is one named contributor to predicted failure. Factors are not
// mutually exclusive and carry no priority order
type RiskFactor struct {
	Name        string            `json:"name"`
	Impact      sensitivity.Level `json:"impact"`
	Count       int               `json:"count,omitempty"`
	Description string            `json:"description"`
}

// Risks compiles the risk factor list from the same findings the reason
// selector sees. Independent of SelectReason; an empty list is a valid result
// for a fully canonical pair
func Risks(f Findings) []RiskFactor {
	var out []RiskFactor

	if !f.PAM.Canonical {
		out = append(out, RiskFactor{
			Name:        "Non-canonical PAM",
			Impact:      sensitivity.LevelVeryHigh,
			Description: "target does not end in the GG dinucleotide Cas9 requires",
		})
	}

	critical := 0
	for _, m := range f.Mismatches {
		if m.PositionSensitivity.Level == sensitivity.LevelCritical || m.TypeSensitivity.Critical {
			critical++
		}
	}
	if critical > 0 {
		out = append(out, RiskFactor{
			Name:        "Critical position mismatches",
			Impact:      sensitivity.LevelVeryHigh,
			Count:       critical,
			Description: "mismatches at critical positions or of research-flagged types",
		})
	}

	if n := len(f.Indels); n > 0 {
		out = append(out, RiskFactor{
			Name:        "Insertions/Deletions",
			Impact:      sensitivity.LevelHigh,
			Count:       n,
			Description: "bulges distort the guide-target heteroduplex",
		})
	}

	return out
}
