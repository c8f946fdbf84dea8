package document

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Kind is the supported document type, determined by filename extension.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindPlainText
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindPlainText:
		return "text"
	default:
		return "unsupported"
	}
}

// KindForFilename maps a filename to its document kind. The extension
// comparison is case-insensitive; anything outside the allow-list is
// KindUnsupported.
func KindForFilename(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".txt":
		return KindPlainText
	default:
		return KindUnsupported
	}
}

// Document is an uploaded file. It lives for a single request and is never
// persisted; the ID only correlates log lines.
type Document struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// New builds a Document from an upload. When the declared content type is
// missing it is sniffed from the content itself.
func New(filename, contentType string, data []byte) *Document {
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	return &Document{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}
}

// Kind returns the document kind derived from the filename.
func (d *Document) Kind() Kind {
	return KindForFilename(d.Filename)
}

// Size returns the content length in bytes.
func (d *Document) Size() int64 {
	return int64(len(d.Data))
}
