package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"docbrief/internal/config"
	"docbrief/internal/document"
	"docbrief/internal/extract"
	"docbrief/internal/summarizer"
	"docbrief/internal/validation"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <document>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	summary, err := run(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(summary)
}

func run(path string) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	config.SetupLogger(cfg.LogLevel)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	doc := document.New(filepath.Base(path), "", data)
	if err := validation.ValidateDocument(doc, cfg.MaxUploadBytes); err != nil {
		return "", err
	}

	text, err := extract.Text(doc)
	if err != nil {
		return "", err
	}

	return summarizer.NewOpenAI(cfg).Summarize(context.Background(), text)
}
