package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"brandforge/server/internal/interfaces"
	"brandforge/server/internal/models"
	"brandforge/server/internal/prompts"
)

// BrandEngine orchestrates one generation batch: analyze once, then generate
// every requested asset sequentially, staggering the image calls and
// aggregating whatever succeeded. No state survives a request.
type BrandEngine struct {
	analyzer  interfaces.Analyzer
	generator interfaces.AssetGenerator
	specs     prompts.PlatformSpecs
	limiter   *rate.Limiter
	progress  interfaces.ProgressSink // optional
}

// NewBrandEngine builds the orchestrator. The stagger interval spaces
// consecutive image calls to smooth the request rate against the external
// API; zero disables the spacing.
func NewBrandEngine(analyzer interfaces.Analyzer, generator interfaces.AssetGenerator, specs prompts.PlatformSpecs, stagger time.Duration, progress interfaces.ProgressSink) *BrandEngine {
	return &BrandEngine{
		analyzer:  analyzer,
		generator: generator,
		specs:     specs,
		limiter:   rate.NewLimiter(rate.Every(stagger), 1),
		progress:  progress,
	}
}

// Run executes the full batch for one request
func (e *BrandEngine) Run(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	brand, err := e.resolveBrand(ctx, req)
	if err != nil {
		return nil, err
	}

	assets := e.generateAll(ctx, brand, req)
	e.publish(interfaces.ProgressEvent{Stage: "aggregating", Detail: fmt.Sprintf("%d assets produced", len(assets))})

	if len(assets) == 0 {
		return nil, models.ErrNoAssets
	}

	e.publish(interfaces.ProgressEvent{Stage: "done"})
	return &models.GenerationResult{
		Assets:        assets,
		BrandAnalysis: brand.Summarize(),
	}, nil
}

// resolveBrand either takes the pre-computed analysis from the request or
// runs the analyzer once. A pre-supplied record with a brand name skips
// analysis entirely; this is an explicit short-circuit, not a cache.
func (e *BrandEngine) resolveBrand(ctx context.Context, req *models.GenerationRequest) (*models.BrandDescription, error) {
	if req.BrandAnalysis != nil && req.BrandAnalysis.BrandName != "" {
		log.Printf("using pre-computed brand analysis for %q", req.BrandAnalysis.BrandName)
		return req.BrandAnalysis, nil
	}

	e.publish(interfaces.ProgressEvent{Stage: "analyzing"})
	input, kind := req.Input()
	brand, err := e.analyzer.Analyze(ctx, input, kind, req.Style, req.CustomColors)
	if err != nil {
		// Without brand data no partial result is possible
		return nil, err
	}
	return brand, nil
}

// target is one pending asset in the batch
type target struct {
	platform models.PlatformTag
	generate func(context.Context) ([]byte, error)
}

// generateAll walks the batch strictly in order: favicon and logo first,
// then the banner platforms as requested. Each failure is logged and
// excluded; it never aborts the batch.
func (e *BrandEngine) generateAll(ctx context.Context, brand *models.BrandDescription, req *models.GenerationRequest) []models.GeneratedAsset {
	var assets []models.GeneratedAsset

	for _, t := range e.targets(brand, req) {
		// Stagger before every individual image call
		if err := e.limiter.Wait(ctx); err != nil {
			log.Printf("batch interrupted: %v", err)
			break
		}

		e.publish(interfaces.ProgressEvent{Stage: "generating", Platform: t.platform})
		data, err := t.generate(ctx)
		if err != nil {
			genErr := &models.GenerationError{Platform: t.platform, Err: err}
			log.Printf("%v", genErr)
			e.publish(interfaces.ProgressEvent{Stage: "generating", Platform: t.platform, Detail: "failed"})
			continue
		}

		spec := e.specs[t.platform]
		assets = append(assets, models.GeneratedAsset{
			Platform: t.platform,
			Width:    spec.Width,
			Height:   spec.Height,
			Data:     base64.StdEncoding.EncodeToString(data),
		})
	}

	return assets
}

// targets orders the batch: the square marks are pulled out of the platform
// list and generated first, preserving the banner order that was requested
func (e *BrandEngine) targets(brand *models.BrandDescription, req *models.GenerationRequest) []target {
	wantFavicon := req.IncludeFavicon
	wantLogo := req.IncludeLogo
	var banners []models.PlatformTag

	for _, p := range req.Platforms {
		switch p {
		case models.PlatformFavicon:
			wantFavicon = true
		case models.PlatformLogo:
			wantLogo = true
		default:
			banners = append(banners, p)
		}
	}

	var out []target
	if wantFavicon {
		out = append(out, target{models.PlatformFavicon, func(ctx context.Context) ([]byte, error) {
			return e.generator.GenerateIcon(ctx, brand, req.Style)
		}})
	}
	if wantLogo {
		out = append(out, target{models.PlatformLogo, func(ctx context.Context) ([]byte, error) {
			return e.generator.GenerateLogo(ctx, brand, req.Style)
		}})
	}
	for _, p := range banners {
		p := p
		out = append(out, target{p, func(ctx context.Context) ([]byte, error) {
			return e.generator.GenerateBanner(ctx, brand, p, req.Style)
		}})
	}
	return out
}

func (e *BrandEngine) publish(event interfaces.ProgressEvent) {
	if e.progress != nil {
		e.progress.Publish(event)
	}
}
