package models

// InputKind tells the analyzer how to treat the raw brand input
type InputKind string

const (
	InputURL  InputKind = "url"
	InputText InputKind = "text"
)

// StyleTag selects one of the fixed visual style guides
type StyleTag string

const (
	StyleBlueprint StyleTag = "blueprint"
	StyleBrutalism StyleTag = "brutalism"
	StyleIsometric StyleTag = "isometric"
	StyleFluid     StyleTag = "fluid"
	StyleCollage   StyleTag = "collage"
	StyleExplainer StyleTag = "explainer"
	StyleMinimal   StyleTag = "minimal"
	StyleGradient  StyleTag = "gradient"
	StyleGeometric StyleTag = "geometric"
	StyleRetro     StyleTag = "retro"
)

// DefaultStyle is substituted for unknown style tags
const DefaultStyle = StyleMinimal

// AllStyles lists every supported style tag
var AllStyles = []StyleTag{
	StyleBlueprint,
	StyleBrutalism,
	StyleIsometric,
	StyleFluid,
	StyleCollage,
	StyleExplainer,
	StyleMinimal,
	StyleGradient,
	StyleGeometric,
	StyleRetro,
}

// PlatformTag identifies one output target (social banner, icon or logo)
type PlatformTag string

const (
	PlatformTwitter   PlatformTag = "twitter"
	PlatformFacebook  PlatformTag = "facebook"
	PlatformLinkedIn  PlatformTag = "linkedin"
	PlatformInstagram PlatformTag = "instagram"
	PlatformYouTube   PlatformTag = "youtube"
	PlatformFavicon   PlatformTag = "favicon"
	PlatformLogo      PlatformTag = "logo"
)

// AllPlatforms lists every supported platform tag
var AllPlatforms = []PlatformTag{
	PlatformTwitter,
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformInstagram,
	PlatformYouTube,
	PlatformFavicon,
	PlatformLogo,
}

// BrandDescription is the structured brand record produced by the analyzer.
// It is built once per request and treated as read-only afterwards.
type BrandDescription struct {
	BrandName    string   `json:"brandName"`
	Summary      string   `json:"summary"`
	Industry     string   `json:"industry,omitempty"`
	Vibe         string   `json:"vibe"`
	BrandColors  []string `json:"brandColors"` // ordered, first entry is primary
	Slogan       string   `json:"slogan,omitempty"`
	CTA          string   `json:"cta,omitempty"`
	IconConcept  string   `json:"iconConcept,omitempty"`
	VisualPrompt string   `json:"visualPrompt,omitempty"`

	// Pass-through metadata, not consumed by image generation
	Title     string `json:"title,omitempty"`
	SocialBio string `json:"socialBio,omitempty"`
}

// PrimaryColor returns the first palette entry, or empty when none was inferred
func (b *BrandDescription) PrimaryColor() string {
	if len(b.BrandColors) == 0 {
		return ""
	}
	return b.BrandColors[0]
}

// Summarize returns the trimmed view of the brand record carried in responses
func (b *BrandDescription) Summarize() *BrandSummary {
	return &BrandSummary{
		BrandName:   b.BrandName,
		Summary:     b.Summary,
		Industry:    b.Industry,
		BrandColors: b.BrandColors,
		Slogan:      b.Slogan,
	}
}

// BrandSummary is the trimmed brand view returned to clients
type BrandSummary struct {
	BrandName   string   `json:"brandName"`
	Summary     string   `json:"summary"`
	Industry    string   `json:"industry,omitempty"`
	BrandColors []string `json:"brandColors"`
	Slogan      string   `json:"slogan,omitempty"`
}

// GeneratedAsset is one successfully produced image. Never mutated; held only
// in memory for the duration of one request/response cycle.
type GeneratedAsset struct {
	Platform PlatformTag `json:"platform"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Data     string      `json:"data"` // base64-encoded raster bytes
	Variant  int         `json:"variant,omitempty"`
}

// GenerationRequest carries everything the orchestrator needs for one batch
type GenerationRequest struct {
	URL            string            `json:"url,omitempty"`
	Description    string            `json:"description,omitempty"`
	BrandAnalysis  *BrandDescription `json:"brandAnalysis,omitempty"`
	Platforms      []PlatformTag     `json:"platforms"`
	Style          StyleTag          `json:"style"`
	CustomColors   []string          `json:"customColors,omitempty"`
	IncludeFavicon bool              `json:"includeFavicon,omitempty"`
	IncludeLogo    bool              `json:"includeLogo,omitempty"`
}

// Input returns the raw brand input and its kind. URL wins when both are set.
func (r *GenerationRequest) Input() (string, InputKind) {
	if r.URL != "" {
		return r.URL, InputURL
	}
	return r.Description, InputText
}

// HasInput reports whether the request carries anything to analyze or a
// pre-computed analysis to use directly
func (r *GenerationRequest) HasInput() bool {
	return r.URL != "" || r.Description != "" ||
		(r.BrandAnalysis != nil && r.BrandAnalysis.BrandName != "")
}

// HasTargets reports whether at least one asset was requested
func (r *GenerationRequest) HasTargets() bool {
	return len(r.Platforms) > 0 || r.IncludeFavicon || r.IncludeLogo
}

// GenerationResult is the aggregated outcome of one batch
type GenerationResult struct {
	Assets        []GeneratedAsset `json:"assets"`
	BrandAnalysis *BrandSummary    `json:"brandAnalysis,omitempty"`
}
