package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"docbrief/internal/common"
	"docbrief/internal/document"
)

// DefaultMaxFileSize bounds uploads when no explicit limit is configured.
const DefaultMaxFileSize = 10 << 20 // 10mb

// ValidateDocument checks an uploaded document against the upload rules:
// a non-empty filename, a supported extension, non-empty content and the
// size limit. Errors carry the matching error kind from internal/common.
func ValidateDocument(doc *document.Document, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileSize
	}

	if strings.TrimSpace(doc.Filename) == "" {
		return common.ErrMissingFilename
	}

	if doc.Kind() == document.KindUnsupported {
		ext := filepath.Ext(doc.Filename)
		if ext == "" {
			ext = doc.Filename
		}
		return fmt.Errorf("%s: %w. Please upload a PDF or text file", ext, common.ErrUnsupportedFileType)
	}

	if doc.Size() == 0 {
		return fmt.Errorf("%s: %w", doc.Filename, common.ErrEmptyDocument)
	}

	if doc.Size() > maxBytes {
		return fmt.Errorf("%s is %d bytes, max allowed is %d: %w",
			doc.Filename, doc.Size(), maxBytes, common.ErrDocumentTooLarge)
	}

	return nil
}
