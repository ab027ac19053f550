package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// Document is an uploaded file's metadata plus its extracted plain text.
// The text is kept so question answering can run on demand later.
type Document struct {
	ID        uuid.UUID
	Filename  string
	Status    DocumentStatus
	Content   string
	CreatedAt time.Time
}

// AnalysisRecord is the persisted output of a full-analysis run.
type AnalysisRecord struct {
	DocumentID      uuid.UUID
	Summary         string
	Tags            []string
	ContentType     string
	KeyTopics       []string
	WordCount       int
	CharacterCount  int
	SentenceCount   int
	ParagraphCount  int
	ReadingTime     int
	SummaryProvider string
	TagsProvider    string
}

// Store defines persistence contract; an external DB implementation can replace this.
type Store interface {
	CreateDocument(ctx context.Context, filename, content string) (Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (Document, error)
	UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status DocumentStatus) error
	SaveAnalysis(ctx context.Context, rec AnalysisRecord) error
	GetAnalysis(ctx context.Context, docID uuid.UUID) (AnalysisRecord, error)
}
