package extract

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"docbrief/internal/common"
	"docbrief/internal/document"
)

// Text converts an uploaded document into its plain text content. The
// dispatch on document kind is exhaustive; anything outside the allow-list
// is rejected here as well as in validation.
func Text(doc *document.Document) (string, error) {
	switch doc.Kind() {
	case document.KindPDF:
		return pdfText(doc.Data)
	case document.KindPlainText:
		return plainText(doc.Data)
	default:
		return "", fmt.Errorf("%s: %w", doc.Filename, common.ErrUnsupportedFileType)
	}
}

// pdfText extracts the text of every page in document order, separated by
// newlines. The pdf library panics on some malformed inputs, so the panic
// is recovered and surfaced as an extraction error.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("pdf parser panicked", "panic", r)
			err = common.WrapExtraction("parse pdf", fmt.Errorf("parser panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", common.WrapExtraction("parse pdf", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", common.WrapExtraction(fmt.Sprintf("extract page %d", i), err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(pageText))
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", common.WrapExtraction("parse pdf", errors.New("no extractable text"))
	}
	return text, nil
}

// plainText decodes the bytes as UTF-8 and returns them unmodified, so the
// summarizer sees exactly what the client uploaded.
func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", common.WrapExtraction("decode text", errors.New("content is not valid UTF-8"))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("decode text: %w", common.ErrEmptyDocument)
	}
	return string(data), nil
}
