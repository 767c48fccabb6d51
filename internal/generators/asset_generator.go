package generators

import (
	"context"
	"fmt"
	"log"
	"time"

	"brandforge/server/internal/interfaces"
	"brandforge/server/internal/models"
	"brandforge/server/internal/prompts"
)

// AssetGenerator builds one prompt per asset and runs the image call under
// the shared retry policy
type AssetGenerator struct {
	client  interfaces.ImageClient
	builder *prompts.Builder
	retry   *RetryPolicy

	// now feeds the per-call uniqueness nonce; injectable for tests
	now func() time.Time
}

// NewAssetGenerator wires an image client, a prompt builder and a retry
// policy together
func NewAssetGenerator(client interfaces.ImageClient, builder *prompts.Builder, retry *RetryPolicy) *AssetGenerator {
	return &AssetGenerator{
		client:  client,
		builder: builder,
		retry:   retry,
		now:     time.Now,
	}
}

// GenerateBanner produces one social banner for the given platform
func (g *AssetGenerator) GenerateBanner(ctx context.Context, brand *models.BrandDescription, platform models.PlatformTag, style models.StyleTag) ([]byte, error) {
	spec, err := g.builder.Specs().Resolve(platform)
	if err != nil {
		return nil, err
	}

	prompt := g.builder.Banner(brand, style, platform, g.nonce())
	return g.generate(ctx, prompt, spec.AspectRatio)
}

// GenerateIcon produces the square favicon asset
func (g *AssetGenerator) GenerateIcon(ctx context.Context, brand *models.BrandDescription, style models.StyleTag) ([]byte, error) {
	spec, err := g.builder.Specs().Resolve(models.PlatformFavicon)
	if err != nil {
		return nil, err
	}

	prompt := g.builder.Icon(brand, style, g.nonce())
	return g.generate(ctx, prompt, spec.AspectRatio)
}

// GenerateLogo produces the square logo asset
func (g *AssetGenerator) GenerateLogo(ctx context.Context, brand *models.BrandDescription, style models.StyleTag) ([]byte, error) {
	spec, err := g.builder.Specs().Resolve(models.PlatformLogo)
	if err != nil {
		return nil, err
	}

	prompt := g.builder.Logo(brand, style, g.nonce())
	return g.generate(ctx, prompt, spec.AspectRatio)
}

func (g *AssetGenerator) generate(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	var data []byte

	err := g.retry.Do(ctx, func() error {
		var callErr error
		data, callErr = g.client.GenerateImage(ctx, &interfaces.ImageRequest{
			Prompt:      prompt,
			AspectRatio: aspectRatio,
		})
		if callErr != nil {
			log.Printf("image call failed (will retry if transient): %v", callErr)
		}
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// nonce is a timestamp-derived token appended to every prompt so repeated
// requests for the same brand still vary
func (g *AssetGenerator) nonce() string {
	return fmt.Sprintf("%d", g.now().UnixNano())
}
