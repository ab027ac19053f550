package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"doc-insight/internal/app"
	"doc-insight/internal/httputil"
	"doc-insight/internal/pipeline"
	"doc-insight/internal/queue"
	"doc-insight/internal/store"
)

type processTaskPayload struct {
	DocumentID string `json:"document_id"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("processor worker starting")

	g, ctx := errgroup.WithContext(context.Background())

	// Run queue worker
	g.Go(func() error {
		return deps.Queue.Worker(ctx, queue.TaskTypeProcess, func(ctx context.Context, task queue.Task) error {
			var payload processTaskPayload
			if err := json.Unmarshal(task.Payload, &payload); err != nil {
				return err
			}
			return handleProcess(ctx, deps, payload)
		})
	})

	// Run health check server
	g.Go(func() error {
		return httputil.ServeHealth(deps.Log, deps.Config.Port, "processor")
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("processor service stopped", "err", err)
	}
}

// handleProcess runs the full-analysis pipeline for one stored document and
// persists the bundle. Precondition failures mark the document failed and
// are not retried; transient store errors bubble up for the queue to retry.
func handleProcess(ctx context.Context, deps app.Deps, payload processTaskPayload) error {
	docID, err := uuid.Parse(payload.DocumentID)
	if err != nil {
		return err
	}
	log := deps.Log.With("document_id", docID)

	doc, err := deps.Store.GetDocument(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	res := deps.Pipeline.FullAnalysis(ctx, doc.Content)
	if res.Status != pipeline.StatusSuccess {
		log.Error("analysis rejected", "reason", res.Message)
		if upErr := deps.Store.UpdateDocumentStatus(ctx, docID, store.StatusFailed); upErr != nil {
			log.Error("failed to mark document failed", "err", upErr)
		}
		return nil
	}

	rec := store.AnalysisRecord{
		DocumentID:      docID,
		Summary:         res.Summary,
		Tags:            res.Tags,
		ContentType:     res.Analysis.ContentType,
		KeyTopics:       res.Analysis.KeyTopics,
		WordCount:       res.Analysis.WordCount,
		CharacterCount:  res.Analysis.CharacterCount,
		SentenceCount:   res.Analysis.SentenceCount,
		ParagraphCount:  res.Analysis.ParagraphCount,
		ReadingTime:     res.Analysis.ReadingTime,
		SummaryProvider: res.SummaryProvider,
		TagsProvider:    res.TagsProvider,
	}
	if err := deps.Store.SaveAnalysis(ctx, rec); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	// Cached answers may predate this analysis run.
	if err := deps.Cache.InvalidateDocument(ctx, docID.String()); err != nil {
		log.Warn("failed to invalidate cached answers", "err", err)
	}

	log.Info("document processed",
		"summary_provider", rec.SummaryProvider,
		"tags_provider", rec.TagsProvider,
		"tags", len(rec.Tags),
	)
	return deps.Store.UpdateDocumentStatus(ctx, docID, store.StatusReady)
}
