package provider

import (
	"context"

	"doc-insight/internal/analyze"
)

// RuleBased is the terminal fallback: deterministic in-process analysis.
// It is always available and its operations never fail, which guarantees
// the fallback chain terminates in a success for any non-empty document.
type RuleBased struct{}

func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

func (*RuleBased) Name() string { return "rule-based" }

func (*RuleBased) Available() bool { return true }

func (*RuleBased) Summarize(_ context.Context, text string) (string, error) {
	return analyze.Summarize(text), nil
}

func (*RuleBased) Tag(_ context.Context, text string) ([]string, error) {
	return analyze.Tags(text), nil
}

func (*RuleBased) Answer(_ context.Context, text, question string) (string, error) {
	return analyze.Answer(text, question), nil
}
