// Package pipeline orchestrates content-intelligence providers: each
// operation walks an ordered fallback chain and returns the first success,
// normalized into one Result contract. With the rule-based provider wired
// last the chain cannot exhaust for a non-empty document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"doc-insight/internal/analyze"
	"doc-insight/internal/provider"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Fixed messages for precondition failures and chain exhaustion.
const (
	MsgNoContent       = "no readable text content to process"
	MsgMissingQuestion = "a question is required"
	MsgAllFailed       = "all providers failed"
)

const topicCount = 5

// Analysis is the full-analysis bundle: scalar stats plus topical metadata.
type Analysis struct {
	analyze.DocumentStats
	ContentType string   `json:"content_type"`
	KeyTopics   []string `json:"key_topics"`
}

// Result is the single outcome contract for every operation. Payload fields
// are populated only on success; Message carries the failure reason.
type Result struct {
	Status   Status   `json:"status"`
	Provider string   `json:"provider,omitempty"`
	Message  string   `json:"message,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Answer   string   `json:"answer,omitempty"`

	Analysis *Analysis `json:"analysis,omitempty"`
	// Per-field producers for the composite full-analysis operation.
	SummaryProvider string `json:"summary_provider,omitempty"`
	TagsProvider    string `json:"tags_provider,omitempty"`
}

// Chain holds the ordered provider list per capability. Built once at
// startup and read-only afterwards; safe for concurrent use.
type Chain struct {
	Summarize []provider.Provider
	Tag       []provider.Provider
	Answer    []provider.Provider
}

// NewChain applies the same priority order to every capability.
func NewChain(providers ...provider.Provider) Chain {
	return Chain{Summarize: providers, Tag: providers, Answer: providers}
}

type Pipeline struct {
	log     *slog.Logger
	chain   Chain
	maxTags int
}

func New(log *slog.Logger, chain Chain, maxTags int) *Pipeline {
	if maxTags <= 0 {
		maxTags = 5
	}
	return &Pipeline{log: log, chain: chain, maxTags: maxTags}
}

func (p *Pipeline) Summarize(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Status: StatusError, Message: MsgNoContent}
	}
	for _, pr := range p.chain.Summarize {
		if !pr.Available() {
			continue
		}
		summary, err := safeCall(func() (string, error) { return pr.Summarize(ctx, text) })
		if err != nil || strings.TrimSpace(summary) == "" {
			p.failover("summarize", pr, err)
			continue
		}
		p.log.Info("summary generated", "provider", pr.Name())
		return Result{Status: StatusSuccess, Provider: pr.Name(), Summary: summary}
	}
	return Result{Status: StatusError, Message: MsgAllFailed}
}

func (p *Pipeline) Tags(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Status: StatusError, Message: MsgNoContent}
	}
	for _, pr := range p.chain.Tag {
		if !pr.Available() {
			continue
		}
		tags, err := safeCall(func() ([]string, error) { return pr.Tag(ctx, text) })
		if err != nil || len(tags) == 0 {
			p.failover("tag", pr, err)
			continue
		}
		p.log.Info("tags generated", "provider", pr.Name(), "count", len(tags))
		return Result{Status: StatusSuccess, Provider: pr.Name(), Tags: dedupeTags(tags, p.maxTags)}
	}
	return Result{Status: StatusError, Message: MsgAllFailed, Tags: []string{}}
}

func (p *Pipeline) AnswerQuestion(ctx context.Context, text, question string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Status: StatusError, Message: MsgNoContent}
	}
	if strings.TrimSpace(question) == "" {
		return Result{Status: StatusError, Message: MsgMissingQuestion}
	}
	for _, pr := range p.chain.Answer {
		if !pr.Available() {
			continue
		}
		answer, err := safeCall(func() (string, error) { return pr.Answer(ctx, text, question) })
		if err != nil || strings.TrimSpace(answer) == "" {
			p.failover("answer", pr, err)
			continue
		}
		p.log.Info("question answered", "provider", pr.Name())
		return Result{Status: StatusSuccess, Provider: pr.Name(), Answer: answer}
	}
	return Result{Status: StatusError, Message: MsgAllFailed}
}

// FullAnalysis runs the summarize and tag chains and computes stats,
// content type and key topics directly. A failed sub-step leaves its field
// empty without aborting the rest of the bundle.
func (p *Pipeline) FullAnalysis(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Status: StatusError, Message: MsgNoContent}
	}

	res := Result{
		Status: StatusSuccess,
		Analysis: &Analysis{
			DocumentStats: analyze.Stats(text),
			ContentType:   analyze.Classify(text),
			KeyTopics:     analyze.Topics(text, topicCount),
		},
	}
	if sum := p.Summarize(ctx, text); sum.Status == StatusSuccess {
		res.Summary = sum.Summary
		res.SummaryProvider = sum.Provider
	}
	if tags := p.Tags(ctx, text); tags.Status == StatusSuccess {
		res.Tags = tags.Tags
		res.TagsProvider = tags.Provider
	}
	return res
}

func (p *Pipeline) failover(op string, pr provider.Provider, err error) {
	if err == nil {
		err = fmt.Errorf("empty payload")
	}
	p.log.Warn("provider failed, falling back", "op", op, "provider", pr.Name(), "err", err)
}

// safeCall contains panics at the provider boundary so a misbehaving
// variant degrades into an ordinary fallback, never a crashed request.
func safeCall[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return fn()
}

func dedupeTags(tags []string, max int) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}
