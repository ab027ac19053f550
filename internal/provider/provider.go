package provider

import "context"

// Provider is a backend able to produce a summary, tag set, or answer for a
// document, either via a remote call or purely local computation. A variant
// reports failure through the returned error and must not panic; the
// orchestrator additionally contains panics at the call boundary.
type Provider interface {
	// Name identifies the variant in results and logs.
	Name() string
	// Available is a cheap configuration check; it performs no I/O.
	Available() bool

	Summarize(ctx context.Context, text string) (string, error)
	Tag(ctx context.Context, text string) ([]string, error)
	Answer(ctx context.Context, text, question string) (string, error)
}
