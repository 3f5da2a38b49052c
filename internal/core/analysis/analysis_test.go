package analysis

import (
	"encoding/json"
	"testing"

	"guidecheck/internal/core/explain"
)

const ref = "ATCGATCGATCGATCGATCAGGG"

func mutate(s string, pos int, b byte) string {
	bs := []byte(s)
	bs[pos-1] = b
	return string(bs)
}

func TestAnalyze_CanonicalPair(t *testing.T) {
	t.Parallel()

	res, err := Analyze(Input{Guide: ref, Target: ref, ModelLabel: 1, ModelConfidence: 0.9})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if res.PAMLabel != 1 {
		t.Fatalf("pam label=%d want 1", res.PAMLabel)
	}
	if res.MatchedPositions != 23 || len(res.Mismatches) != 0 || len(res.Indels) != 0 {
		t.Fatalf("identical pair should be fully matched: %+v", res)
	}
	if res.Reason.Kind != explain.ReasonCanonicalTarget {
		t.Fatalf("reason=%s want canonical_target", res.Reason.Kind)
	}
	if len(res.Anomalies) != 0 || len(res.Risks) != 0 {
		t.Fatalf("clean pair should carry no anomalies or risks: %+v", res)
	}

	// pam success with model agreement: 0.95 + 0.05 capped at 0.98
	if res.RuleConfidence != confidenceCeiling {
		t.Fatalf("confidence=%v want %v", res.RuleConfidence, confidenceCeiling)
	}
	if res.PredictionSource != SourcePAMRuleAgreement {
		t.Fatalf("source=%q want %q", res.PredictionSource, SourcePAMRuleAgreement)
	}
}

func TestAnalyze_BrokenPAMWithFindings(t *testing.T) {
	t.Parallel()

	target := mutate(mutate(ref, 23, 'A'), 14, 'G')
	res, err := Analyze(Input{Guide: ref, Target: target, ModelLabel: 1, ModelConfidence: 0.7})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if res.PAMLabel != 0 {
		t.Fatalf("pam label=%d want 0", res.PAMLabel)
	}
	if res.Reason.Kind != explain.ReasonNonCanonicalPAM {
		t.Fatalf("reason=%s want non_canonical_pam", res.Reason.Kind)
	}
	if len(res.Risks) == 0 || len(res.Anomalies) == 0 {
		t.Fatalf("expected anomalies and risks: %+v", res)
	}

	// pam failure, model disagrees: plain rule confidence
	if res.RuleConfidence != confidencePAMFailure {
		t.Fatalf("confidence=%v want %v", res.RuleConfidence, confidencePAMFailure)
	}
	if res.PredictionSource != SourcePAMRule {
		t.Fatalf("source=%q want %q", res.PredictionSource, SourcePAMRule)
	}
}

func TestRuleConfidence_Grid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pam, model int
		wantConf   float64
		wantSrc    string
	}{
		{1, 1, 0.98, SourcePAMRuleAgreement}, // 0.95+0.05 capped
		{1, 0, 0.95, SourcePAMRule},
		{0, 0, 0.90, SourcePAMRuleAgreement}, // 0.85+0.05 under the cap
		{0, 1, 0.85, SourcePAMRule},
	}
	for _, c := range cases {
		conf, src := ruleConfidence(c.pam, c.model)
		if conf != c.wantConf || src != c.wantSrc {
			t.Errorf("ruleConfidence(%d,%d)=(%v,%q) want (%v,%q)",
				c.pam, c.model, conf, src, c.wantConf, c.wantSrc)
		}
	}
}

func TestAnalyze_ValidationFailsFast(t *testing.T) {
	t.Parallel()

	if _, err := Analyze(Input{Guide: "ATCG", Target: ref}); err == nil {
		t.Fatal("short guide should fail before analysis")
	}
	if _, err := Analyze(Input{Guide: ref, Target: ""}); err == nil {
		t.Fatal("missing target should fail before analysis")
	}
}

func TestResult_JSONShape(t *testing.T) {
	t.Parallel()

	res, err := Analyze(Input{Guide: ref, Target: mutate(ref, 14, 'G'), ModelLabel: 0, ModelConfidence: 0.6})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"guide_sequence", "target_sequence", "pam_analysis", "mismatches",
		"indels", "matched_positions", "anomalies", "primary_reason",
		"risk_factors", "pam_label", "rule_confidence", "prediction_source",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing json key %q", key)
		}
	}
}
