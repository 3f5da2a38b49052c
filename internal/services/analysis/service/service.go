// Package service orchestrates the analysis workflow: validate, run the
// pure pipeline, classify against the PAM-derived label, persist
package service

import (
	"context"

	"guidecheck/internal/core/analysis"
	"guidecheck/internal/core/classify"
	"guidecheck/internal/core/seq"
	"guidecheck/internal/platform/logger"
	"guidecheck/internal/platform/validate"
	"guidecheck/internal/services/analysis/domain"
	preddomain "guidecheck/internal/services/predictions/domain"
)

// Svc implements domain.AnalyzerPort
type Svc struct {
	writer preddomain.WriterPort // nil disables persistence
	log    *logger.Logger
}

// New constructs an analysis service. A nil writer turns every request
// into a dry run
func New(writer preddomain.WriterPort, log *logger.Logger) *Svc {
	if log == nil {
		log = logger.Named("analysis")
	}
	return &Svc{writer: writer, log: log}
}

// Core runs validation and the pure pipeline without classification or
// persistence. Useful for callers that only need the analysis
func (s *Svc) Core(in domain.AnalyzeInput) (*analysis.Result, error) {
	in.Guide = seq.Normalize(in.Guide)
	in.Target = seq.Normalize(in.Target)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return analysis.Analyze(analysis.Input{
		Guide:           in.Guide,
		Target:          in.Target,
		ModelLabel:      in.ModelLabel,
		ModelConfidence: in.ModelConfidence,
	})
}

// Analyze validates the input, runs the compatibility pipeline, classifies
// the model's prediction and persists the categorized record unless DryRun
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (*domain.AnalyzeResult, error) {
	in.Guide = seq.Normalize(in.Guide)
	in.Target = seq.Normalize(in.Target)

	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	res, err := analysis.Analyze(analysis.Input{
		Guide:           in.Guide,
		Target:          in.Target,
		ModelLabel:      in.ModelLabel,
		ModelConfidence: in.ModelConfidence,
	})
	if err != nil {
		return nil, err
	}

	out := classify.Outcome{
		Category:          classify.Decide(res.PAMLabel, in.ModelLabel),
		PAMLabel:          res.PAMLabel,
		AssertedDisagrees: in.AssertedLabel != res.PAMLabel,
	}
	if out.AssertedDisagrees {
		s.log.Warn().
			Int("asserted_label", in.AssertedLabel).
			Int("pam_label", res.PAMLabel).
			Str("category", string(out.Category)).
			Msg("asserted label disagrees with PAM rule; PAM label used")
	}

	ar := &domain.AnalyzeResult{Result: *res, Classification: out}

	if in.DryRun || s.writer == nil {
		return ar, nil
	}

	rec := preddomain.Record{
		UserID:          in.UserID,
		Guide:           in.Guide,
		Target:          in.Target,
		AssertedLabel:   in.AssertedLabel,
		ModelLabel:      in.ModelLabel,
		PAMLabel:        res.PAMLabel,
		ModelConfidence: in.ModelConfidence,
		Category:        out.Category,
	}
	recs := []preddomain.Record{rec}
	if _, err := s.writer.WriteBatch(ctx, recs); err != nil {
		return nil, err
	}
	ar.RecordID = recs[0].ID
	return ar, nil
}
