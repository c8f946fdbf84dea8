package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"docbrief/internal/common"
	"docbrief/internal/config"
)

const systemPrompt = "You are a helpful assistant that writes concise, faithful summaries of documents."

// OpenAI implements Summarizer with a single chat-completion call per
// document. There is no retry or backoff; any provider failure is reported
// as a summarization error.
type OpenAI struct {
	client *openai.Client
	model  string
	prompt string
}

// NewOpenAI builds the production summarizer from the immutable process
// configuration.
func NewOpenAI(cfg config.Config) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
		prompt: cfg.SummaryPrompt,
	}
}

func (s *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("summarize: %w", common.ErrEmptyDocument)
	}

	slog.Info("sending summarization request to OpenAI",
		"model", s.model,
		"text_length", len(text))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(s.prompt, text),
			},
		},
	})
	if err != nil {
		slog.Error("OpenAI API error", "error", err, "model", s.model)
		return "", common.WrapSummarization("chat completion", err)
	}

	if len(resp.Choices) == 0 {
		return "", common.WrapSummarization("chat completion", errors.New("no choices in response"))
	}

	summary := resp.Choices[0].Message.Content
	if strings.TrimSpace(summary) == "" {
		return "", common.WrapSummarization("chat completion", errors.New("no summary returned from model"))
	}

	slog.Info("received summary from OpenAI",
		"model", resp.Model,
		"tokens_used", resp.Usage.TotalTokens,
		"summary_length", len(summary))

	return summary, nil
}
