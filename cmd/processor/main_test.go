package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doc-insight/internal/app"
	"doc-insight/internal/cache"
	"doc-insight/internal/config"
	"doc-insight/internal/pipeline"
	"doc-insight/internal/provider"
	"doc-insight/internal/store"
)

func testDeps(st store.Store, c cache.Cache) app.Deps {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.Deps{
		Config:   config.Config{MaxTagCount: 5},
		Log:      log,
		Store:    st,
		Cache:    c,
		Pipeline: pipeline.New(log, pipeline.NewChain(provider.NewRuleBased()), 5),
	}
}

func TestHandleProcess(t *testing.T) {
	docID := uuid.New()
	content := "The project invoice was completed by the software team. " +
		"The system is currently in production. Everything is on schedule now."

	st := new(store.MockStore)
	st.On("GetDocument", mock.Anything, docID).
		Return(store.Document{ID: docID, Content: content, Status: store.StatusProcessing}, nil)
	st.On("SaveAnalysis", mock.Anything, mock.MatchedBy(func(rec store.AnalysisRecord) bool {
		return rec.DocumentID == docID &&
			rec.Summary != "" &&
			rec.SummaryProvider == "rule-based" &&
			rec.TagsProvider == "rule-based" &&
			len(rec.Tags) > 0 &&
			rec.WordCount > 0 &&
			rec.ContentType != ""
	})).Return(nil)
	st.On("UpdateDocumentStatus", mock.Anything, docID, store.StatusReady).Return(nil)
	c := new(cache.MockCache)
	c.On("InvalidateDocument", mock.Anything, docID.String()).Return(nil)

	err := handleProcess(context.Background(), testDeps(st, c), processTaskPayload{DocumentID: docID.String()})

	require.NoError(t, err)
	st.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestHandleProcessInvalidID(t *testing.T) {
	st := new(store.MockStore)
	err := handleProcess(context.Background(), testDeps(st, cache.NewNoOpCache()),
		processTaskPayload{DocumentID: "not-a-uuid"})

	assert.Error(t, err)
	st.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything)
}

func TestHandleProcessStoreErrorRetried(t *testing.T) {
	docID := uuid.New()
	st := new(store.MockStore)
	st.On("GetDocument", mock.Anything, docID).
		Return(store.Document{}, store.ErrDocumentNotFound)

	err := handleProcess(context.Background(), testDeps(st, cache.NewNoOpCache()),
		processTaskPayload{DocumentID: docID.String()})

	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestHandleProcessEmptyContentNotRetried(t *testing.T) {
	docID := uuid.New()
	st := new(store.MockStore)
	st.On("GetDocument", mock.Anything, docID).
		Return(store.Document{ID: docID, Content: "   "}, nil)
	st.On("UpdateDocumentStatus", mock.Anything, docID, store.StatusFailed).Return(nil)

	err := handleProcess(context.Background(), testDeps(st, cache.NewNoOpCache()),
		processTaskPayload{DocumentID: docID.String()})

	// Precondition failures are terminal, not retried.
	assert.NoError(t, err)
	st.AssertExpectations(t)
	st.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything)
}

func TestHandleProcessSaveFailureRetried(t *testing.T) {
	docID := uuid.New()
	st := new(store.MockStore)
	st.On("GetDocument", mock.Anything, docID).
		Return(store.Document{ID: docID, Content: "A perfectly processable document body."}, nil)
	st.On("SaveAnalysis", mock.Anything, mock.Anything).Return(assert.AnError)

	err := handleProcess(context.Background(), testDeps(st, cache.NewNoOpCache()),
		processTaskPayload{DocumentID: docID.String()})

	assert.ErrorIs(t, err, assert.AnError)
	st.AssertNotCalled(t, "UpdateDocumentStatus", mock.Anything, mock.Anything, mock.Anything)
}
