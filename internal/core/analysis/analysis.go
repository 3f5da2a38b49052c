// Package analysis is the pure facade over the guide/target compatibility
// pipeline: compare, annotate, PAM check, anomaly scan, reason selection and
// risk compilation in one referentially transparent call. No I/O, no shared
// state; safe to run concurrently
package analysis

import (
	"guidecheck/internal/core/anomaly"
	"guidecheck/internal/core/explain"
	"guidecheck/internal/core/pam"
	"guidecheck/internal/core/sensitivity"
	"guidecheck/internal/core/seq"
)

// Rule confidence mirrors the original predictor's PAM-rule scoring: high
// for both outcomes, boosted when the external model agrees
const (
	confidencePAMSuccess = 0.95
	confidencePAMFailure = 0.85
	agreementBoost       = 0.05
	confidenceCeiling    = 0.98

	// SourcePAMRule labels a prediction resolved by the PAM rule alone
	SourcePAMRule = "pam_rule"
	// SourcePAMRuleAgreement labels a PAM-rule prediction the model agrees with
	SourcePAMRuleAgreement = "pam_rule+model_agreement"
)

// Input carries one analysis request. The external model's label and
// confidence are already-resolved values from an opaque collaborator
type Input struct {
	Guide           string
	Target          string
	ModelLabel      int
	ModelConfidence float64
}

// Result is the immutable aggregate of one analysis. Produced fresh per call
// and never mutated afterwards; all records are owned by this result
type Result struct {
	Guide  string       `json:"guide_sequence"`
	Target string       `json:"target_sequence"`
	PAM    pam.Analysis `json:"pam_analysis"`

	Mismatches       []sensitivity.Mismatch `json:"mismatches"`
	Indels           []sensitivity.Indel    `json:"indels"`
	MatchedPositions int                    `json:"matched_positions"`

	Anomalies []anomaly.Record     `json:"anomalies"`
	Reason    explain.Reason       `json:"primary_reason"`
	Risks     []explain.RiskFactor `json:"risk_factors"`

	PAMLabel         int     `json:"pam_label"`
	RuleConfidence   float64 `json:"rule_confidence"`
	PredictionSource string  `json:"prediction_source"`
	ModelLabel       int     `json:"model_label"`
	ModelConfidence  float64 `json:"model_confidence"`
}

// Analyze runs the full pipeline. Validation failures surface before any
// analysis logic runs; no partial result is ever returned
func Analyze(in Input) (*Result, error) {
	cmp, err := seq.Compare(in.Guide, in.Target)
	if err != nil {
		return nil, err
	}

	ms, ins := sensitivity.Annotate(cmp)
	pa := pam.Check(in.Guide, in.Target)
	f := explain.Findings{PAM: pa, Mismatches: ms, Indels: ins}

	res := &Result{
		Guide:            in.Guide,
		Target:           in.Target,
		PAM:              pa,
		Mismatches:       ms,
		Indels:           ins,
		MatchedPositions: cmp.MatchedPositions,
		Anomalies:        anomaly.Detect(ms, ins),
		Reason:           explain.SelectReason(f),
		Risks:            explain.Risks(f),
		PAMLabel:         pa.Label(),
		ModelLabel:       in.ModelLabel,
		ModelConfidence:  in.ModelConfidence,
	}

	res.RuleConfidence, res.PredictionSource = ruleConfidence(res.PAMLabel, in.ModelLabel)
	return res, nil
}

func ruleConfidence(pamLabel, modelLabel int) (float64, string) {
	conf := confidencePAMFailure
	if pamLabel == 1 {
		conf = confidencePAMSuccess
	}
	if modelLabel == pamLabel {
		conf += agreementBoost
		if conf > confidenceCeiling {
			conf = confidenceCeiling
		}
		return conf, SourcePAMRuleAgreement
	}
	return conf, SourcePAMRule
}
