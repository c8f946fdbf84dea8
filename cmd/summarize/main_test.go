package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docbrief/internal/common"
)

func TestRun_MissingFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	if _, err := run(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for nonexistent document")
	}
}

func TestRun_UnsupportedType(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := filepath.Join(t.TempDir(), "resume.docx")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	_, err := run(path)
	if !errors.Is(err, common.ErrUnsupportedFileType) {
		t.Errorf("Expected unsupported file type error, got %v", err)
	}
}

func TestRun_EmptyFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	_, err := run(path)
	if !errors.Is(err, common.ErrEmptyDocument) {
		t.Errorf("Expected empty document error, got %v", err)
	}
}
