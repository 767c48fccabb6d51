package generators

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandforge/server/internal/config"
	"brandforge/server/internal/interfaces"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GeminiClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(config.ImageModelConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-image-model",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	return client, srv
}

func TestGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(config.ImageModelConfig{BaseURL: "http://x", Model: "m"})
	if err == nil {
		t.Fatal("expected configuration error for missing key")
	}
}

func TestGeminiClient_ReturnsFirstImagePart(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47} // PNG magic
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[
			{"text":"here is your image"},
			{"inlineData":{"mimeType":"image/png","data":"%s"}},
			{"inlineData":{"mimeType":"image/png","data":"aWdub3JlZA=="}}
		]}}]}`, base64.StdEncoding.EncodeToString(payload))
	})

	data, err := client.GenerateImage(context.Background(), &interfaces.ImageRequest{Prompt: "p", AspectRatio: "1:1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("expected first image part, got %v", data)
	}
}

func TestGeminiClient_EmptyResponseIsRetryable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"sorry, no image"}]}}]}`)
	})

	_, err := client.GenerateImage(context.Background(), &interfaces.ImageRequest{Prompt: "p"})
	if !errors.Is(err, ErrNoImageData) {
		t.Fatalf("expected ErrNoImageData, got %v", err)
	}
	if !IsTransient(err) {
		t.Error("empty image response must be classified transient")
	}
}

func TestIsTransient_Classification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		transient bool
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`, true},
		{"unavailable", http.StatusServiceUnavailable, `{"error":{"code":503,"message":"try again later","status":"UNAVAILABLE"}}`, true},
		{"overloaded text", http.StatusInternalServerError, `{"error":{"code":500,"message":"The model is overloaded.","status":"INTERNAL"}}`, true},
		{"bad request", http.StatusBadRequest, `{"error":{"code":400,"message":"invalid argument","status":"INVALID_ARGUMENT"}}`, false},
		{"auth failure", http.StatusForbidden, `{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED"}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := client.GenerateImage(context.Background(), &interfaces.ImageRequest{Prompt: "p"})
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := IsTransient(err); got != tt.transient {
				t.Errorf("IsTransient(%v) = %v, want %v", err, got, tt.transient)
			}
		})
	}
}
