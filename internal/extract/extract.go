// Package extract turns uploaded files into plain text. The rest of the
// system only ever sees the extracted string; unsupported or unreadable
// input degrades to an empty result rather than an error.
package extract

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts plain text from file content, keyed by filename extension.
// Non-PDF files are treated as plain text.
func Text(log *slog.Logger, filename string, content []byte) string {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		text, err := pdfText(content)
		if err != nil {
			// Raw PDF bytes are not text; an empty result lets callers
			// reject the document up front.
			log.Warn("pdf extraction failed", "err", err, "filename", filename)
			return ""
		}
		return text
	}
	return string(content)
}

func pdfText(content []byte) (string, error) {
	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}
