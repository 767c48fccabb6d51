package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brandforge/server/internal/config"
	"brandforge/server/internal/engine"
	"brandforge/server/internal/generators"
	"brandforge/server/internal/interfaces"
	"brandforge/server/internal/prompts"
	"brandforge/server/internal/storage"
	"brandforge/server/internal/web"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Both model credentials are required; fail fast before serving
	textClient, err := engine.NewOpenAIClient(cfg.AI.Text)
	if err != nil {
		log.Fatalf("Failed to initialize text model client: %v", err)
	}
	imageClient, err := generators.NewGeminiClient(cfg.AI.Image)
	if err != nil {
		log.Fatalf("Failed to initialize image model client: %v", err)
	}

	// Analysis cache: redis when configured, in-process otherwise
	var cache interfaces.AnalysisCache
	if cfg.Cache.Redis.Enabled {
		redisCache, err := storage.NewRedisCache(cfg.Cache.Redis, cfg.Cache.AnalysisTTL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, using in-process cache: %v", err)
		} else {
			defer redisCache.Close()
			cache = redisCache
			log.Println("Redis analysis cache connected")
		}
	}
	if cache == nil {
		cache = storage.NewMemoryCache(cfg.Cache.AnalysisTTL)
	}

	guides := prompts.DefaultStyleGuides()
	specs := prompts.DefaultPlatformSpecs()
	builder := prompts.NewBuilder(guides, specs, prompts.ParseMode(cfg.Generation.PromptMode))

	analyzer := engine.NewBrandAnalyzer(textClient, guides, cache)
	retry := generators.NewRetryPolicy(cfg.Generation.MaxAttempts, cfg.Generation.BackoffBase, generators.IsTransient)
	assetGen := generators.NewAssetGenerator(imageClient, builder, retry)

	hub := web.NewProgressHub()
	go hub.Run()

	brandEngine := engine.NewBrandEngine(analyzer, assetGen, specs, cfg.Generation.StaggerInterval, hub)
	log.Printf("BrandEngine initialized (prompt mode: %s)", cfg.Generation.PromptMode)

	r := web.NewRouter(cfg, brandEngine, hub)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
