package prompts

import (
	"fmt"
	"strings"

	"brandforge/server/internal/models"
)

// Mode selects the prompt composition strategy. A deployment picks one mode
// and uses it for every call; the two are never blended within a batch.
type Mode string

const (
	// ModeText renders brand name, slogan and CTA as literal on-image
	// typography
	ModeText Mode = "text"
	// ModeAbstract produces purely symbolic compositions with no text at all
	ModeAbstract Mode = "abstract"
)

// ParseMode maps a config string to a Mode, defaulting to abstract
func ParseMode(s string) Mode {
	if Mode(s) == ModeText {
		return ModeText
	}
	return ModeAbstract
}

// industryMetaphors maps an industry to a visual metaphor hint used by the
// abstract mode when the brand has no explicit icon concept. Hints only;
// never literal stock iconography.
var industryMetaphors = map[string]string{
	"finance":    "an ascending arc suggesting a chart, or a stylized coin shape",
	"health":     "a soft heart or plus shape",
	"education":  "an open angular form suggesting pages",
	"food":       "a rounded organic form suggesting a leaf or bowl",
	"technology": "interconnected nodes or a clean circuit-like path",
	"travel":     "a sweeping arc suggesting a horizon or flight path",
	"fashion":    "a flowing ribbon or draped curve",
	"energy":     "a rising wave or radiating arc",
	"logistics":  "parallel flowing lines suggesting movement and routes",
	"space":      "an orbital ring or ascending trajectory curve",
}

// Builder composes image-generation prompts. It is stateless apart from the
// injected tables, so every build is a pure function of (brand, style,
// platform, nonce).
type Builder struct {
	guides *StyleGuides
	specs  PlatformSpecs
	mode   Mode
}

// NewBuilder wires the style and platform tables into a prompt builder
func NewBuilder(guides *StyleGuides, specs PlatformSpecs, mode Mode) *Builder {
	return &Builder{guides: guides, specs: specs, mode: mode}
}

// Mode returns the active composition strategy
func (b *Builder) Mode() Mode { return b.mode }

// Specs returns the injected platform table
func (b *Builder) Specs() PlatformSpecs { return b.specs }

// Banner builds the prompt for one social banner. The nonce is appended
// verbatim to defeat output caching in the image model; callers pass a
// timestamp-derived token.
func (b *Builder) Banner(brand *models.BrandDescription, style models.StyleTag, platform models.PlatformTag, nonce string) string {
	spec := b.specs[platform]

	// A pre-composed visual prompt from the analyzer wins outright
	if brand.VisualPrompt != "" {
		return fmt.Sprintf("%s Banner format %s for %s. %s", brand.VisualPrompt, spec.AspectRatio, platform, varietyToken(nonce))
	}

	var p strings.Builder
	fmt.Fprintf(&p, "A %s social media banner for %s, %s. ", platform, brand.BrandName, b.guides.Generator(style))
	fmt.Fprintf(&p, "Brand: %s. Vibe: %s. ", brand.Summary, brand.Vibe)
	writePalette(&p, brand.BrandColors)

	switch b.mode {
	case ModeText:
		fmt.Fprintf(&p, "Render the brand name %q prominently as clean typography. ", brand.BrandName)
		if brand.Slogan != "" {
			fmt.Fprintf(&p, "Include the slogan %q as secondary text. ", brand.Slogan)
		}
		if brand.CTA != "" {
			fmt.Fprintf(&p, "Include a call-to-action button reading %q. ", brand.CTA)
		}
		p.WriteString("Use EXACTLY the text provided above. Do not invent, alter or add any other words. ")
	default:
		p.WriteString("Purely abstract and symbolic: absolutely no text, no letters, no words, no human faces. ")
		p.WriteString("Convey the brand identity only through color, shape and visual metaphor. ")
		writeMetaphor(&p, brand)
	}

	fmt.Fprintf(&p, "Banner aspect %s. %s", spec.AspectRatio, varietyToken(nonce))
	return p.String()
}

// Icon builds the prompt for the square favicon target
func (b *Builder) Icon(brand *models.BrandDescription, style models.StyleTag, nonce string) string {
	return b.squareMark(brand, style, nonce, "app icon / favicon", "a small favicon size")
}

// Logo builds the prompt for the square logo target
func (b *Builder) Logo(brand *models.BrandDescription, style models.StyleTag, nonce string) string {
	return b.squareMark(brand, style, nonce, "logo mark", "use at any size")
}

func (b *Builder) squareMark(brand *models.BrandDescription, style models.StyleTag, nonce, kind, usage string) string {
	var p strings.Builder
	fmt.Fprintf(&p, "A %s for %s, %s. ", kind, brand.BrandName, b.guides.Generator(style))
	fmt.Fprintf(&p, "Vibe: %s. ", brand.Vibe)
	writePalette(&p, brand.BrandColors)
	p.WriteString("Centered single mark on a flat background, instantly readable at " + usage + ". ")

	switch b.mode {
	case ModeText:
		initial := brandInitial(brand.BrandName)
		fmt.Fprintf(&p, "No words or sentences; at most one stylized initial letter %q is allowed. ", initial)
	default:
		p.WriteString("Absolutely no text, no letters, no words, no human faces. ")
		writeMetaphor(&p, brand)
	}

	p.WriteString("Square 1:1. " + varietyToken(nonce))
	return p.String()
}

func writePalette(p *strings.Builder, colors []string) {
	if len(colors) == 0 {
		return
	}
	fmt.Fprintf(p, "Color palette: %s (first color is primary). ", strings.Join(colors, ", "))
}

// writeMetaphor adds the abstract-mode visual hint: the brand's own icon
// concept when present, otherwise a canned industry metaphor. Generic stock
// symbols are excluded to avoid interchangeable output.
func writeMetaphor(p *strings.Builder, brand *models.BrandDescription) {
	hint := brand.IconConcept
	if hint == "" {
		hint = industryMetaphors[strings.ToLower(strings.TrimSpace(brand.Industry))]
	}
	if hint != "" {
		fmt.Fprintf(p, "As a loose visual hint, not literal iconography: %s. ", hint)
	}
	p.WriteString("Never use gears, lightbulbs, handshakes or globes. ")
}

func brandInitial(name string) string {
	for _, r := range name {
		if r != ' ' {
			return strings.ToUpper(string(r))
		}
	}
	return ""
}

func varietyToken(nonce string) string {
	return fmt.Sprintf("Unique variation seed: %s.", nonce)
}
