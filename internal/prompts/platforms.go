package prompts

import (
	"fmt"

	"brandforge/server/internal/models"
)

// PlatformSpec fixes the output dimensions for one platform target and the
// nearest aspect ratio the image model actually supports.
type PlatformSpec struct {
	Width  int
	Height int
	// AspectRatio is one of the model's enumerated ratios, chosen per platform
	// rather than computed. The wide banner targets all land on 21:9, the
	// closest supported ratio to their true shapes.
	AspectRatio string
	// Kind distinguishes banners from square marks for prompt routing
	Kind AssetKind
}

// AssetKind is the broad category of an output target
type AssetKind string

const (
	KindBanner AssetKind = "banner"
	KindIcon   AssetKind = "icon"
	KindLogo   AssetKind = "logo"
)

// PlatformSpecs maps every platform tag to its fixed output spec
type PlatformSpecs map[models.PlatformTag]PlatformSpec

// DefaultPlatformSpecs returns the full platform table. The mapping is data,
// injected into the generator at construction so it stays testable in
// isolation.
func DefaultPlatformSpecs() PlatformSpecs {
	return PlatformSpecs{
		models.PlatformTwitter:   {Width: 1500, Height: 500, AspectRatio: "21:9", Kind: KindBanner},  // true 3:1
		models.PlatformFacebook:  {Width: 820, Height: 312, AspectRatio: "21:9", Kind: KindBanner},   // true 2.63:1
		models.PlatformLinkedIn:  {Width: 1584, Height: 396, AspectRatio: "21:9", Kind: KindBanner},  // true 4:1
		models.PlatformInstagram: {Width: 1080, Height: 1080, AspectRatio: "1:1", Kind: KindBanner},
		models.PlatformYouTube:   {Width: 2560, Height: 1440, AspectRatio: "16:9", Kind: KindBanner},
		models.PlatformFavicon:   {Width: 512, Height: 512, AspectRatio: "1:1", Kind: KindIcon},
		models.PlatformLogo:      {Width: 1024, Height: 1024, AspectRatio: "1:1", Kind: KindLogo},
	}
}

// Resolve returns the spec for a platform tag, or an error for unknown tags
func (p PlatformSpecs) Resolve(tag models.PlatformTag) (PlatformSpec, error) {
	spec, ok := p[tag]
	if !ok {
		return PlatformSpec{}, fmt.Errorf("unknown platform: %s", tag)
	}
	return spec, nil
}
