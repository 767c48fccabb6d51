package generators

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brandforge/server/internal/config"
	"brandforge/server/internal/interfaces"
	"brandforge/server/internal/models"
)

const defaultImageTimeout = 120 * time.Second

// ErrNoImageData marks a structurally valid model response that contained no
// image part. Treated as a transient application-level failure and retried
// under the same schedule as transport errors.
var ErrNoImageData = errors.New("no image data in response")

// GeminiClient calls a Gemini-style image generation REST API
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// generateContentRequest mirrors the generateContent request body
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiErrorBody `json:"error,omitempty"`
}

type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// apiError carries the HTTP and API status so the retry predicate can
// classify it
type apiError struct {
	httpStatus int
	status     string
	message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("image API error (HTTP %d, %s): %s", e.httpStatus, e.status, e.message)
}

// NewGeminiClient creates a client for the configured image model. The API
// key must be present; callers fail fast with a ConfigurationError before
// reaching here.
func NewGeminiClient(cfg config.ImageModelConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, &models.ConfigurationError{Missing: "GEMINI_API_KEY"}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultImageTimeout
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}, nil
}

// GenerateImage runs one generateContent call and returns the raw bytes of
// the first image part in the response
func (c *GeminiClient) GenerateImage(ctx context.Context, req *interfaces.ImageRequest) ([]byte, error) {
	body := &generateContentRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: req.AspectRatio},
		},
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error *apiErrorBody `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, &apiError{httpStatus: resp.StatusCode, status: errResp.Error.Status, message: errResp.Error.Message}
		}
		return nil, &apiError{httpStatus: resp.StatusCode, message: string(respBody)}
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if genResp.Error != nil {
		return nil, &apiError{httpStatus: resp.StatusCode, status: genResp.Error.Status, message: genResp.Error.Message}
	}

	// First image part wins
	for _, cand := range genResp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode image payload: %w", err)
			}
			return data, nil
		}
	}

	return nil, ErrNoImageData
}

// IsTransient classifies an image-call error as retryable. Rate limiting,
// overload and temporary unavailability retry; anything else is fatal for
// that call. An empty-image response is retryable by definition.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoImageData) {
		return true
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		if apiErr.httpStatus == http.StatusTooManyRequests || apiErr.httpStatus == http.StatusServiceUnavailable {
			return true
		}
		switch apiErr.status {
		case "RESOURCE_EXHAUSTED", "UNAVAILABLE":
			return true
		}
		if strings.Contains(strings.ToLower(apiErr.message), "overloaded") {
			return true
		}
		return false
	}

	return strings.Contains(strings.ToLower(err.Error()), "overloaded")
}
