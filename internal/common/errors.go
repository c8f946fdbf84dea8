package common

import (
	"errors"
	"fmt"
)

// Domain errors - use errors.Is() to check
var (
	// Client-input errors
	ErrMissingFilename     = errors.New("uploaded file must have a filename")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document is empty")
	ErrDocumentTooLarge    = errors.New("document too large")

	// Processing errors
	ErrExtraction    = errors.New("text extraction failed")
	ErrSummarization = errors.New("summarization failed")
)

// WrapExtraction wraps an error as an extraction error with context
func WrapExtraction(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, errors.Join(ErrExtraction, err))
}

// WrapSummarization wraps an error as a summarization error with context
func WrapSummarization(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, errors.Join(ErrSummarization, err))
}

// IsClientError reports whether the error was caused by the caller's input
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingFilename) ||
		errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrEmptyDocument) ||
		errors.Is(err, ErrDocumentTooLarge)
}

// IsExtraction checks if error is an extraction error
func IsExtraction(err error) bool {
	return errors.Is(err, ErrExtraction)
}

// IsSummarization checks if error is a summarization error
func IsSummarization(err error) bool {
	return errors.Is(err, ErrSummarization)
}
