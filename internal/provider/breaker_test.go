package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
)

// flakyProvider fails until failUntil calls have been made, then succeeds.
type flakyProvider struct {
	calls     int
	failUntil int
}

func (*flakyProvider) Name() string    { return "flaky" }
func (*flakyProvider) Available() bool { return true }

func (f *flakyProvider) Summarize(context.Context, string) (string, error) {
	f.calls++
	if f.calls <= f.failUntil {
		return "", errors.New("upstream unavailable")
	}
	return "a summary", nil
}

func (f *flakyProvider) Tag(context.Context, string) ([]string, error) {
	f.calls++
	if f.calls <= f.failUntil {
		return nil, errors.New("upstream unavailable")
	}
	return []string{"Technology"}, nil
}

func (f *flakyProvider) Answer(context.Context, string, string) (string, error) {
	f.calls++
	if f.calls <= f.failUntil {
		return "", errors.New("upstream unavailable")
	}
	return "an answer", nil
}

func TestBreakerDelegates(t *testing.T) {
	inner := &flakyProvider{}
	p := WithBreaker(inner)

	if p.Name() != "flaky" {
		t.Errorf("Name = %q", p.Name())
	}
	if !p.Available() {
		t.Error("expected availability to delegate to inner provider")
	}

	summary, err := p.Summarize(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary != "a summary" {
		t.Errorf("summary = %q", summary)
	}

	tags, err := p.Tag(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tags) != 1 || tags[0] != "Technology" {
		t.Errorf("tags = %v", tags)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyProvider{failUntil: 100}
	p := WithBreaker(inner)
	ctx := context.Background()

	for i := 0; i < breakerConsecutiveFailures; i++ {
		if _, err := p.Summarize(ctx, "text"); err == nil {
			t.Fatalf("call %d: expected failure", i)
		}
	}

	callsBefore := inner.calls
	_, err := p.Summarize(ctx, "text")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if inner.calls != callsBefore {
		t.Error("open breaker must not reach the inner provider")
	}
}

func TestBreakerSharedAcrossCapabilities(t *testing.T) {
	inner := &flakyProvider{failUntil: 100}
	p := WithBreaker(inner)
	ctx := context.Background()

	p.Summarize(ctx, "text")
	p.Tag(ctx, "text")
	p.Answer(ctx, "text", "question")

	// Three failures across different capabilities open the shared breaker.
	_, err := p.Answer(ctx, "text", "question")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
}
