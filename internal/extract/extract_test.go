package extract

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTextPlainFile(t *testing.T) {
	content := []byte("plain text body")
	if got := Text(testLogger(), "notes.txt", content); got != "plain text body" {
		t.Errorf("got %q", got)
	}
}

func TestTextUnknownExtension(t *testing.T) {
	content := []byte("markdown-ish content")
	if got := Text(testLogger(), "README.md", content); got != "markdown-ish content" {
		t.Errorf("got %q", got)
	}
}

func TestTextInvalidPDFReturnsEmpty(t *testing.T) {
	content := []byte("definitely not a pdf")
	if got := Text(testLogger(), "broken.pdf", content); got != "" {
		t.Errorf("unreadable pdf should yield empty text, got %q", got)
	}
}

func TestTextPDFExtensionCaseInsensitive(t *testing.T) {
	// Still routed through the PDF path, so unreadable input yields empty.
	content := []byte("also not a pdf")
	if got := Text(testLogger(), "REPORT.PDF", content); got != "" {
		t.Errorf("got %q", got)
	}
}
