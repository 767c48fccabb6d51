package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"brandforge/server/internal/config"
	"brandforge/server/internal/models"
)

const (
	textMaxRetries = 3
	textRetryDelay = 1 * time.Second
)

// OpenAIClient wraps an OpenAI-compatible chat completion endpoint for the
// brand analyzer
type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIClient creates the text-model client. Fails fast when the
// credential is absent.
func NewOpenAIClient(cfg config.TextModelConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, &models.ConfigurationError{Missing: "OPENAI_API_KEY"}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}
	temperature := float32(cfg.Temperature)
	if temperature == 0 {
		temperature = 0.7
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// Complete sends a single-turn prompt and returns the model's raw reply,
// retrying a few times on transient transport failure
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < textMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(textRetryDelay * time.Duration(attempt)):
			}
		}

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("no choices returned from model")
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		if !isRetryableTextError(err) {
			break
		}
	}

	return "", fmt.Errorf("text model call failed: %w", lastErr)
}

func isRetryableTextError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "rate limit")
}
