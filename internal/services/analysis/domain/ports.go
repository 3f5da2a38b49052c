package domain

import "context"

// AnalyzerPort runs the full analyze-classify-persist workflow
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*AnalyzeResult, error)
}
