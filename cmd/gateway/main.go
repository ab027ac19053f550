package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"doc-insight/internal/app"
	"doc-insight/internal/cache"
	"doc-insight/internal/extract"
	"doc-insight/internal/httputil"
	"doc-insight/internal/pipeline"
	"doc-insight/internal/queue"
	"doc-insight/internal/store"
)

type processTaskPayload struct {
	DocumentID string `json:"document_id"`
}

type queryRequest struct {
	Question string `json:"question" validate:"required,min=3,max=500"`
}

// Fixed user-facing messages; raw provider errors never reach the client.
const (
	msgEmptyDocument = "file contains no readable text content"
	msgQueryFailed   = "Sorry, I'm unable to process your question at this time."
)

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/api/documents/upload", uploadHandler(deps))
	r.Get("/api/documents/{id}", documentHandler(deps))
	r.Get("/api/documents/{id}/analysis", analysisHandler(deps))
	r.Post("/api/documents/{id}/query", queryHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("gateway listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func uploadHandler(deps app.Deps) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.Fail(deps.Log, w, "file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}

		// Reject empty documents before anything enters the pipeline.
		text := extract.Text(deps.Log, header.Filename, content)
		if strings.TrimSpace(text) == "" {
			httputil.Fail(deps.Log, w, msgEmptyDocument, nil, http.StatusBadRequest)
			return
		}

		doc, err := deps.Store.CreateDocument(ctx, header.Filename, text)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to persist document", err, http.StatusInternalServerError)
			return
		}

		body, err := json.Marshal(processTaskPayload{DocumentID: doc.ID.String()})
		if err != nil {
			fail(deps, r, w, "marshal payload failed", err, doc.ID, http.StatusInternalServerError)
			return
		}
		task := queue.Task{Type: queue.TaskTypeProcess, Payload: body}
		if err := queue.EnqueueWithRetry(ctx, deps.Queue, task, 3, 200*time.Millisecond); err != nil {
			fail(deps, r, w, "failed to enqueue document; please retry", err, doc.ID, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusAccepted, map[string]any{
			"document_id": doc.ID.String(),
			"status":      doc.Status,
		})
	}
}

// fail is the gateway-specific error path that also marks the document failed.
func fail(deps app.Deps, r *http.Request, w http.ResponseWriter, message string, err error, docID uuid.UUID, status int) {
	log := deps.Log.With("document_id", docID)
	if docID != uuid.Nil {
		if upErr := deps.Store.UpdateDocumentStatus(r.Context(), docID, store.StatusFailed); upErr != nil {
			log.Error("failed to mark document failed", "err", upErr)
		}
	}
	httputil.Fail(log, w, message, err, status)
}

func documentHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID, ok := parseID(deps, w, r)
		if !ok {
			return
		}
		doc, err := deps.Store.GetDocument(r.Context(), docID)
		if err != nil {
			httputil.Fail(deps.Log, w, "document not found", err, http.StatusNotFound)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"document_id": doc.ID.String(),
			"filename":    doc.Filename,
			"status":      doc.Status,
			"created_at":  doc.CreatedAt,
		})
	}
}

func analysisHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID, ok := parseID(deps, w, r)
		if !ok {
			return
		}
		rec, err := deps.Store.GetAnalysis(r.Context(), docID)
		if err != nil {
			httputil.Fail(deps.Log, w, "analysis not ready", err, http.StatusNotFound)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"document_id":      docID.String(),
			"summary":          rec.Summary,
			"tags":             rec.Tags,
			"summary_provider": rec.SummaryProvider,
			"tags_provider":    rec.TagsProvider,
			"analysis": map[string]any{
				"word_count":             rec.WordCount,
				"character_count":        rec.CharacterCount,
				"sentence_count":         rec.SentenceCount,
				"paragraph_count":        rec.ParagraphCount,
				"estimated_reading_time": rec.ReadingTime,
				"content_type":           rec.ContentType,
				"key_topics":             rec.KeyTopics,
			},
		})
	}
}

func queryHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID, ok := parseID(deps, w, r)
		if !ok {
			return
		}
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		ctx := r.Context()
		doc, err := deps.Store.GetDocument(ctx, docID)
		if err != nil {
			httputil.Fail(deps.Log, w, "document not found", err, http.StatusNotFound)
			return
		}

		cacheKey := cache.GenerateCacheKey(docID.String(), req.Question)
		if cached, err := deps.Cache.GetAnswer(ctx, cacheKey); err == nil && cached != nil {
			deps.Log.Info("answer cache hit", "document_id", docID)
			httputil.WriteJSON(w, http.StatusOK, map[string]any{
				"answer":   cached.Answer,
				"provider": cached.Provider,
				"cached":   true,
			})
			return
		}

		res := deps.Pipeline.AnswerQuestion(ctx, doc.Content, req.Question)
		if res.Status != pipeline.StatusSuccess {
			httputil.Fail(deps.Log.With("reason", res.Message), w, msgQueryFailed, nil, http.StatusServiceUnavailable)
			return
		}

		cacheTTL := time.Duration(deps.Config.CacheTTL) * time.Second
		if err := deps.Cache.SetAnswer(ctx, cacheKey, &cache.AnswerResult{
			Answer:   res.Answer,
			Provider: res.Provider,
		}, cacheTTL); err != nil {
			// A failed cache write never fails the request.
			deps.Log.Warn("failed to cache answer", "err", err)
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"answer":   res.Answer,
			"provider": res.Provider,
			"cached":   false,
		})
	}
}

func parseID(deps app.Deps, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Fail(deps.Log, w, "invalid document id", err, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return docID, true
}
