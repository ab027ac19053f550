package provider

import (
	"context"
	"strings"
	"testing"
)

func TestRuleBasedAlwaysAvailable(t *testing.T) {
	p := NewRuleBased()
	if p.Name() != "rule-based" {
		t.Errorf("Name = %q", p.Name())
	}
	if !p.Available() {
		t.Error("rule-based provider must always be available")
	}
}

func TestRuleBasedNeverFails(t *testing.T) {
	p := NewRuleBased()
	ctx := context.Background()
	text := "The project invoice was completed by the software team. " +
		"The system is currently in production. Everything is on schedule now."

	summary, err := p.Summarize(ctx, text)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary == "" {
		t.Error("empty summary")
	}

	tags, err := p.Tag(ctx, text)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tags) == 0 {
		t.Error("expected at least one tag")
	}

	answer, err := p.Answer(ctx, text, "What is the current status?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(answer, "currently in production") {
		t.Errorf("unexpected answer: %q", answer)
	}
}
