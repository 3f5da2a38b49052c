package explain

import (
	"testing"

	"guidecheck/internal/core/pam"
	"guidecheck/internal/core/sensitivity"
	"guidecheck/internal/core/seq"
)

const ref = "ATCGATCGATCGATCGATCAGGG"

func findings(t *testing.T, guide, target string) Findings {
	t.Helper()
	c, err := seq.Compare(guide, target)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	ms, ins := sensitivity.Annotate(c)
	return Findings{PAM: pam.Check(guide, target), Mismatches: ms, Indels: ins}
}

func mutate(s string, pos int, b byte) string {
	bs := []byte(s)
	bs[pos-1] = b
	return string(bs)
}

func TestSelectReason_PriorityOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		guide, target string
		want          ReasonKind
	}{
		{
			// non-canonical PAM wins even with a position 14 mismatch present
			"pam_beats_position14",
			ref,
			mutate(mutate(ref, 14, 'G'), 23, 'A'),
			ReasonNonCanonicalPAM,
		},
		{
			"position14_beats_seed",
			ref,
			mutate(mutate(ref, 14, 'G'), 15, 'T'),
			ReasonPosition14Mismatch,
		},
		{
			// critical-zone bulge beats multiple seed mismatches
			"critical_indel_beats_seed",
			mutate(ref, 18, '-'),
			mutate(mutate(ref, 13, 'T'), 15, 'T'),
			ReasonCriticalIndel,
		},
		{
			"multiple_seed_mismatches",
			ref,
			mutate(mutate(ref, 13, 'T'), 15, 'T'),
			ReasonMultipleSeedMismatches,
		},
		{
			// G-A at 16 is the research-flagged combination; one seed mismatch
			// alone would rank lower
			"critical_ga",
			mutate(ref, 16, 'G'),
			mutate(ref, 16, 'A'),
			ReasonCriticalGAMismatch,
		},
		{
			"pam_distal_anomaly",
			ref,
			mutate(ref, 2, 'A'),
			ReasonPAMDistalAnomaly,
		},
		{
			"single_seed_mismatch",
			ref,
			mutate(ref, 17, 'G'),
			ReasonSeedRegionMismatch,
		},
		{
			"canonical_fallback",
			ref,
			ref,
			ReasonCanonicalTarget,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := SelectReason(findings(t, c.guide, c.target))
			if got.Kind != c.want {
				t.Fatalf("reason=%s want %s", got.Kind, c.want)
			}
			if got.Reason == "" || got.Basis == "" || got.Confidence == "" {
				t.Fatalf("reason missing narrative: %+v", got)
			}
		})
	}
}

func TestSelectReason_Deterministic(t *testing.T) {
	t.Parallel()

	f := findings(t, ref, mutate(ref, 14, 'G'))
	a := SelectReason(f)
	b := SelectReason(f)
	if a != b {
		t.Fatalf("same findings produced different reasons: %+v vs %+v", a, b)
	}
	if a.Confidence != ConfidenceVeryHigh {
		t.Fatalf("position 14 confidence=%s want very_high", a.Confidence)
	}
}

func TestRisks_CleanPairIsEmpty(t *testing.T) {
	t.Parallel()

	if got := Risks(findings(t, ref, ref)); len(got) != 0 {
		t.Fatalf("canonical identical pair should have no risk factors: %+v", got)
	}
}

func TestRisks_Compilation(t *testing.T) {
	t.Parallel()

	// non-canonical PAM + critical position mismatches (14 and 23) + a bulge
	guide := mutate(ref, 10, '-')
	target := mutate(mutate(ref, 14, 'G'), 23, 'A')
	got := Risks(findings(t, guide, target))

	byName := map[string]RiskFactor{}
	for _, r := range got {
		byName[r.Name] = r
	}

	if r, ok := byName["Non-canonical PAM"]; !ok || r.Impact != sensitivity.LevelVeryHigh {
		t.Fatalf("missing non-canonical PAM factor: %+v", got)
	}
	if r, ok := byName["Critical position mismatches"]; !ok || r.Count != 2 {
		t.Fatalf("missing critical mismatch factor: %+v", got)
	}
	if r, ok := byName["Insertions/Deletions"]; !ok || r.Count != 1 || r.Impact != sensitivity.LevelHigh {
		t.Fatalf("missing indel factor: %+v", got)
	}
}
