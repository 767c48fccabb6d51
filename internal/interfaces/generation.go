package interfaces

import (
	"context"

	"brandforge/server/internal/models"
)

// TextClient is the text-generation collaborator consumed by the analyzer
type TextClient interface {
	// Complete sends a single-turn prompt and returns the model's raw reply
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageRequest is one call to the image-generation model
type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

// ImageClient is the image-generation collaborator consumed by the asset
// generator. Implementations return the raw bytes of the first image in the
// model's response.
type ImageClient interface {
	GenerateImage(ctx context.Context, req *ImageRequest) ([]byte, error)
}

// Analyzer derives a structured brand record from raw input
type Analyzer interface {
	Analyze(ctx context.Context, input string, kind models.InputKind, style models.StyleTag, colorOverride []string) (*models.BrandDescription, error)
}

// AssetGenerator produces one image per call for a given asset target.
// Each method retries internally and fails only after retries are exhausted.
type AssetGenerator interface {
	GenerateBanner(ctx context.Context, brand *models.BrandDescription, platform models.PlatformTag, style models.StyleTag) ([]byte, error)
	GenerateIcon(ctx context.Context, brand *models.BrandDescription, style models.StyleTag) ([]byte, error)
	GenerateLogo(ctx context.Context, brand *models.BrandDescription, style models.StyleTag) ([]byte, error)
}

// ProgressEvent is one orchestration state transition, published for
// observability only
type ProgressEvent struct {
	Stage    string             `json:"stage"` // analyzing, generating, aggregating, done
	Platform models.PlatformTag `json:"platform,omitempty"`
	Detail   string             `json:"detail,omitempty"`
}

// ProgressSink receives orchestration progress events. Implementations must
// not block.
type ProgressSink interface {
	Publish(event ProgressEvent)
}

// AnalysisCache stores brand analyses keyed by input fingerprint. Misses are
// reported via the second return value, never as an error.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*models.BrandDescription, bool)
	Set(ctx context.Context, key string, brand *models.BrandDescription)
}
