package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	// Use advisory lock to prevent concurrent migrations from multiple services.
	// Note: In production, use dedicated migration tools (e.g., golang-migrate/migrate)
	// that run as a separate deployment step before app services start.
	const lockID = 764091223

	var acquired bool
	err := s.db.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, lockID).Scan(&acquired)
	if err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	if !acquired {
		// Another service is running migrations; wait briefly and skip
		time.Sleep(2 * time.Second)
		return nil
	}
	defer func() {
		_, _ = s.db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockID)
	}()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY,
			filename TEXT,
			status TEXT,
			content TEXT,
			created_at TIMESTAMPTZ DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS analyses (
			document_id UUID PRIMARY KEY REFERENCES documents(id) ON DELETE CASCADE,
			summary TEXT,
			tags TEXT[],
			content_type TEXT,
			key_topics TEXT[],
			word_count INT,
			character_count INT,
			sentence_count INT,
			paragraph_count INT,
			reading_time INT,
			summary_provider TEXT,
			tags_provider TEXT,
			updated_at TIMESTAMPTZ DEFAULT now()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) CreateDocument(ctx context.Context, filename, content string) (Document, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx, `INSERT INTO documents(id, filename, status, content) VALUES($1,$2,$3,$4)`,
		id, filename, StatusProcessing, content)
	if err != nil {
		return Document{}, err
	}
	return Document{ID: id, Filename: filename, Status: StatusProcessing, Content: content, CreatedAt: time.Now()}, nil
}

func (s *PostgresStore) GetDocument(ctx context.Context, id uuid.UUID) (Document, error) {
	var doc Document
	row := s.db.QueryRowContext(ctx, `SELECT id, filename, status, content, created_at FROM documents WHERE id=$1`, id)
	if err := row.Scan(&doc.ID, &doc.Filename, &doc.Status, &doc.Content, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		return Document{}, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return doc, nil
}

func (s *PostgresStore) UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status DocumentStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE documents SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, rec AnalysisRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses(document_id, summary, tags, content_type, key_topics,
			word_count, character_count, sentence_count, paragraph_count, reading_time,
			summary_provider, tags_provider, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now())
		ON CONFLICT (document_id) DO UPDATE SET
			summary=excluded.summary, tags=excluded.tags,
			content_type=excluded.content_type, key_topics=excluded.key_topics,
			word_count=excluded.word_count, character_count=excluded.character_count,
			sentence_count=excluded.sentence_count, paragraph_count=excluded.paragraph_count,
			reading_time=excluded.reading_time,
			summary_provider=excluded.summary_provider, tags_provider=excluded.tags_provider,
			updated_at=now()`,
		rec.DocumentID, rec.Summary, pqStringArray(rec.Tags), rec.ContentType, pqStringArray(rec.KeyTopics),
		rec.WordCount, rec.CharacterCount, rec.SentenceCount, rec.ParagraphCount, rec.ReadingTime,
		rec.SummaryProvider, rec.TagsProvider)
	return err
}

func (s *PostgresStore) GetAnalysis(ctx context.Context, docID uuid.UUID) (AnalysisRecord, error) {
	var rec AnalysisRecord
	var tags, topics []string
	row := s.db.QueryRowContext(ctx, `
		SELECT summary, tags, content_type, key_topics,
			word_count, character_count, sentence_count, paragraph_count, reading_time,
			summary_provider, tags_provider
		FROM analyses WHERE document_id=$1`, docID)
	if err := row.Scan(&rec.Summary, pq.Array(&tags), &rec.ContentType, pq.Array(&topics),
		&rec.WordCount, &rec.CharacterCount, &rec.SentenceCount, &rec.ParagraphCount, &rec.ReadingTime,
		&rec.SummaryProvider, &rec.TagsProvider); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AnalysisRecord{}, ErrAnalysisNotFound
		}
		return AnalysisRecord{}, fmt.Errorf("failed to get analysis for doc %s: %w", docID, err)
	}
	rec.DocumentID = docID
	rec.Tags = tags
	rec.KeyTopics = topics
	return rec, nil
}

func pqStringArray(items []string) any {
	if len(items) == 0 {
		return pq.Array([]string{})
	}
	return pq.Array(items)
}
