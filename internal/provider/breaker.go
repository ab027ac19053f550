package provider

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	breakerConsecutiveFailures = 3
	breakerOpenTimeout         = 30 * time.Second
)

// WithBreaker wraps a remote provider in a circuit breaker. After repeated
// failures the breaker opens and calls fail fast, so the orchestrator falls
// through to the next provider without waiting out a timeout each time.
func WithBreaker(inner Provider) Provider {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerConsecutiveFailures
		},
	}
	return &breakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[any](settings),
	}
}

type breakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[any]
}

func (b *breakerProvider) Name() string { return b.inner.Name() }

func (b *breakerProvider) Available() bool { return b.inner.Available() }

func (b *breakerProvider) Summarize(ctx context.Context, text string) (string, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.inner.Summarize(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (b *breakerProvider) Tag(ctx context.Context, text string) ([]string, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.inner.Tag(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (b *breakerProvider) Answer(ctx context.Context, text, question string) (string, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.inner.Answer(ctx, text, question)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
