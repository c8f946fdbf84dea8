package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"docbrief/internal/common"
	"docbrief/internal/config"
	"docbrief/internal/document"
	"docbrief/internal/extract"
	"docbrief/internal/summarizer"
	"docbrief/internal/validation"
)

// multipart encoding overhead allowed on top of the document size limit
const formOverhead = 1 << 20

type Handlers struct {
	Summarizer summarizer.Summarizer
	Config     config.Config
	Started    time.Time
}

func (h *Handlers) Routers(r chi.Router) {
	r.Post("/summarize", h.summarize)
	r.Get("/healthz", h.Health)
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handlers) summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Config.MaxUploadBytes+formOverhead)

	if err := r.ParseMultipartForm(h.Config.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, fmt.Errorf("request body exceeds %d bytes: %w",
				h.Config.MaxUploadBytes, common.ErrDocumentTooLarge))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "failed to parse multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		// a "file" part without a filename is parsed as a plain form value
		h.writeError(w, fmt.Errorf("multipart field %q: %w", "file", common.ErrMissingFilename))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded file", "filename", header.Filename, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "failed to read uploaded file"})
		return
	}

	doc := document.New(header.Filename, header.Header.Get("Content-Type"), data)
	log := slog.With(
		"document_id", doc.ID,
		"filename", doc.Filename,
		"content_type", doc.ContentType,
		"size_bytes", doc.Size())

	if err := validation.ValidateDocument(doc, h.Config.MaxUploadBytes); err != nil {
		log.Warn("rejected upload", "error", err)
		h.writeError(w, err)
		return
	}

	text, err := extract.Text(doc)
	if err != nil {
		log.Error("text extraction failed", "kind", doc.Kind().String(), "error", err)
		h.writeError(w, err)
		return
	}

	summary, err := h.Summarizer.Summarize(r.Context(), text)
	if err != nil {
		log.Error("summarization failed", "error", err)
		h.writeError(w, err)
		return
	}

	log.Info("document summarized",
		"kind", doc.Kind().String(),
		"text_length", len(text),
		"summary_length", len(summary))

	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary})
}

// writeError is the single point translating error kinds into HTTP statuses.
// Client-input kinds map to 4xx, processing kinds to 5xx.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrDocumentTooLarge):
		status = http.StatusRequestEntityTooLarge
	case common.IsClientError(err):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "err", err)
	}
}
