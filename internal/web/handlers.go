package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"brandforge/server/internal/config"
	"brandforge/server/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Runner is the orchestrator contract the web layer depends on
type Runner interface {
	Run(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error)
}

type Handlers struct {
	config *config.Config
	runner Runner
	hub    *ProgressHub
}

func NewHandlers(cfg *config.Config, runner Runner, hub *ProgressHub) *Handlers {
	return &Handlers{
		config: cfg,
		runner: runner,
		hub:    hub,
	}
}

// generateResponse is the wire shape of POST /api/generate
type generateResponse struct {
	Success       bool                    `json:"success"`
	Assets        []models.GeneratedAsset `json:"assets"`
	BrandAnalysis *models.BrandSummary    `json:"brandAnalysis,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// Generate runs one full generation batch
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{Error: "invalid request body"})
		return
	}

	if !req.HasInput() {
		writeJSON(w, http.StatusBadRequest, generateResponse{Error: "url, description or brandAnalysis is required"})
		return
	}
	if !req.HasTargets() {
		writeJSON(w, http.StatusBadRequest, generateResponse{Error: "at least one platform is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Generation.RequestTimeout)
	defer cancel()

	result, err := h.runner.Run(ctx, &req)
	if err != nil {
		// Short human-readable strings only; model and prompt detail stays in
		// the operator log
		log.Printf("generation request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, generateResponse{Error: userMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:       true,
		Assets:        result.Assets,
		BrandAnalysis: result.BrandAnalysis,
	})
}

func userMessage(err error) string {
	var analysisErr *models.AnalysisError
	switch {
	case errors.As(err, &analysisErr):
		return "brand analysis failed"
	case errors.Is(err, models.ErrNoAssets):
		return "no assets could be generated"
	case errors.Is(err, context.DeadlineExceeded):
		return "generation timed out"
	default:
		return "internal error"
	}
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "brandforge",
	})
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":   "brandforge",
		"endpoints": []string{"POST /api/generate", "GET /api/progress", "GET /health"},
	})
}

// Progress upgrades the connection and streams orchestration progress events
func (h *Handlers) Progress(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "progress hub not initialized"})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &Client{
		ID:   generateClientID(),
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  h.hub,
	}
	h.hub.register <- client

	go client.readPump()
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// CORS middleware
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func NewRouter(cfg *config.Config, runner Runner, hub *ProgressHub) *chi.Mux {
	r := chi.NewRouter()

	// Request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("REQUEST: %s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	})

	r.Use(corsMiddleware)

	handlers := NewHandlers(cfg, runner, hub)

	r.Get("/", handlers.Home)
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", handlers.Generate)
		r.Get("/progress", handlers.Progress)
	})

	return r
}

// generateClientID generates a unique client ID
func generateClientID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:16]
	}
	return hex.EncodeToString(b)
}
