package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores question-answer results so repeated questions about the same
// document skip the provider chain.
type Cache interface {
	// GetAnswer retrieves a cached answer by key. Returns nil on a miss.
	GetAnswer(ctx context.Context, key string) (*AnswerResult, error)

	// SetAnswer stores an answer with TTL.
	SetAnswer(ctx context.Context, key string, result *AnswerResult, ttl time.Duration) error

	// InvalidateDocument removes all cached answers for a document.
	InvalidateDocument(ctx context.Context, docID string) error

	// Close closes the cache connection.
	Close() error
}

// AnswerResult is one cached question-answer outcome.
type AnswerResult struct {
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
}

// GenerateCacheKey derives a stable key from the document id and the
// normalized question. The document id stays in clear so invalidation can
// match by prefix.
func GenerateCacheKey(docID, question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(question))))
	return docID + ":" + hex.EncodeToString(sum[:16])
}
