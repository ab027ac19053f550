package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGenerateCacheKeyDeterministic(t *testing.T) {
	a := GenerateCacheKey("doc-1", "What is the status?")
	b := GenerateCacheKey("doc-1", "What is the status?")
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}
}

func TestGenerateCacheKeyNormalizesQuestion(t *testing.T) {
	a := GenerateCacheKey("doc-1", "What is the status?")
	b := GenerateCacheKey("doc-1", "  WHAT IS THE STATUS?  ")
	if a != b {
		t.Errorf("normalization failed: %q vs %q", a, b)
	}
}

func TestGenerateCacheKeyDistinct(t *testing.T) {
	base := GenerateCacheKey("doc-1", "What is the status?")
	if base == GenerateCacheKey("doc-2", "What is the status?") {
		t.Error("different documents must produce different keys")
	}
	if base == GenerateCacheKey("doc-1", "What is the budget?") {
		t.Error("different questions must produce different keys")
	}
}

func TestGenerateCacheKeyPrefixedByDocument(t *testing.T) {
	key := GenerateCacheKey("doc-1", "anything")
	if !strings.HasPrefix(key, "doc-1:") {
		t.Errorf("key %q should start with the document id", key)
	}
}

func TestNoOpCacheAlwaysMisses(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	key := GenerateCacheKey("doc-1", "question")

	if err := c.SetAnswer(ctx, key, &AnswerResult{Answer: "a", Provider: "p"}, time.Minute); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}
	got, err := c.GetAnswer(ctx, key)
	if err != nil {
		t.Fatalf("GetAnswer: %v", err)
	}
	if got != nil {
		t.Errorf("expected a miss, got %+v", got)
	}
	if err := c.InvalidateDocument(ctx, "doc-1"); err != nil {
		t.Errorf("InvalidateDocument: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
