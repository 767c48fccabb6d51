package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandforge/server/internal/config"
	"brandforge/server/internal/models"
)

type stubRunner struct {
	result *models.GenerationResult
	err    error
	called bool
}

func (s *stubRunner) Run(_ context.Context, _ *models.GenerationRequest) (*models.GenerationResult, error) {
	s.called = true
	return s.result, s.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Generation.RequestTimeout = config.DefaultRequestTimeout
	return cfg
}

func postGenerate(t *testing.T, runner Runner, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(testConfig(), runner, nil)
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerate_Success(t *testing.T) {
	runner := &stubRunner{result: &models.GenerationResult{
		Assets: []models.GeneratedAsset{
			{Platform: models.PlatformTwitter, Width: 1500, Height: 500, Data: "aW1n"},
		},
		BrandAnalysis: &models.BrandSummary{BrandName: "Acme Rockets"},
	}}

	rec := postGenerate(t, runner, `{"description":"Acme Rockets","platforms":["twitter"],"style":"minimal"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success || len(resp.Assets) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.BrandAnalysis.BrandName != "Acme Rockets" {
		t.Errorf("brand summary missing: %+v", resp.BrandAnalysis)
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	runner := &stubRunner{}
	rec := postGenerate(t, runner, `{"platforms":["twitter"],"style":"minimal"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if runner.called {
		t.Error("runner must not be invoked for an invalid request")
	}
}

func TestGenerate_MissingPlatforms(t *testing.T) {
	runner := &stubRunner{}
	rec := postGenerate(t, runner, `{"description":"acme","style":"minimal"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerate_FaviconFlagCountsAsTarget(t *testing.T) {
	runner := &stubRunner{result: &models.GenerationResult{
		Assets: []models.GeneratedAsset{{Platform: models.PlatformFavicon, Width: 512, Height: 512, Data: "aW1n"}},
	}}
	rec := postGenerate(t, runner, `{"description":"acme","style":"minimal","includeFavicon":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerate_AggregateFailure(t *testing.T) {
	runner := &stubRunner{err: models.ErrNoAssets}
	rec := postGenerate(t, runner, `{"description":"acme","platforms":["twitter"],"style":"minimal"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Success {
		t.Error("success must be false on aggregate failure")
	}
	if resp.Error != "no assets could be generated" {
		t.Errorf("unexpected error string: %q", resp.Error)
	}
}

func TestGenerate_AnalysisFailureHidesDetail(t *testing.T) {
	runner := &stubRunner{err: &models.AnalysisError{Reason: "prompt xyz leaked internals"}}
	rec := postGenerate(t, runner, `{"description":"acme","platforms":["twitter"],"style":"minimal"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "prompt xyz") {
		t.Error("internal detail must not reach the client")
	}
}

func TestHealthAndHome(t *testing.T) {
	router := NewRouter(testConfig(), &stubRunner{}, nil)

	for _, path := range []string{"/health", "/"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(testConfig(), &stubRunner{}, nil)

	req := httptest.NewRequest("OPTIONS", "/api/generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
