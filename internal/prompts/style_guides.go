package prompts

import "brandforge/server/internal/models"

// StyleGuides holds the natural-language style descriptions for every style
// tag. The analyzer table steers how the text model composes a visual prompt;
// the generator table steers the image prompt when no pre-composed visual
// prompt is available. Both tables must cover every style tag.
type StyleGuides struct {
	analyzer  map[models.StyleTag]string
	generator map[models.StyleTag]string
}

// DefaultStyleGuides returns the built-in style tables
func DefaultStyleGuides() *StyleGuides {
	return &StyleGuides{
		analyzer: map[models.StyleTag]string{
			models.StyleBlueprint: "Technical blueprint aesthetic: white line-work on deep blue grounds, measurement annotations, grid overlays, schematic precision. Compose visual prompts as if drafting an engineering document of the brand.",
			models.StyleBrutalism: "Raw digital brutalism: oversized flat shapes, harsh high-contrast blocks, unpolished edges, stark monochrome plus one loud accent color. Visual prompts should feel heavy, blunt and deliberately unrefined.",
			models.StyleIsometric: "Isometric illustration: 30-degree projected geometry, miniature dioramas, clean vector surfaces with soft ambient occlusion. Visual prompts should describe small scenes built from angled blocks.",
			models.StyleFluid:     "Organic fluid forms: flowing liquid gradients, soft blobs, silk-like ribbons of color in motion. Visual prompts should read like describing slow-moving ink in water.",
			models.StyleCollage:   "Cut-paper collage: torn edges, layered textures, mixed print ephemera, visible shadows between layers. Visual prompts should assemble the brand from overlapping paper fragments.",
			models.StyleExplainer: "Friendly explainer illustration: rounded friendly shapes, simple flat icons, generous whitespace, approachable diagram energy. Visual prompts should feel like a frame from a product explainer video.",
			models.StyleMinimal:   "Minimalist design: one or two flat colors, abundant negative space, a single focal element, no ornament. Visual prompts should say more with less.",
			models.StyleGradient:  "Luminous gradient fields: smooth multi-stop color transitions, soft glows, aurora-like washes. Visual prompts should lean on large gradient surfaces as the primary subject.",
			models.StyleGeometric: "Hard geometric abstraction: triangles, circles and bars in strict grid rhythm, Bauhaus-adjacent composition, flat solid fills. Visual prompts should be built from named primitive shapes.",
			models.StyleRetro:     "Retro 70s-80s print: warm sun-faded palette, halftone grain, chunky rounded forms, slight off-registration. Visual prompts should evoke aged poster stock.",
		},
		generator: map[models.StyleTag]string{
			models.StyleBlueprint: "in a technical blueprint style, crisp white line-work over a deep blue field, subtle grid and measurement marks",
			models.StyleBrutalism: "in a digital brutalist style, oversized flat blocks, harsh contrast, stark and deliberately unrefined",
			models.StyleIsometric: "as a clean isometric illustration, 30-degree projection, vector-smooth surfaces, soft ambient shadows",
			models.StyleFluid:     "with organic fluid forms, flowing liquid gradients and silk-like ribbons of color",
			models.StyleCollage:   "as a layered cut-paper collage, torn edges, tactile textures, visible layer shadows",
			models.StyleExplainer: "in a friendly flat explainer-illustration style, simple shapes, generous whitespace",
			models.StyleMinimal:   "in a refined minimalist style, one or two flat colors, abundant negative space, a single focal element",
			models.StyleGradient:  "with luminous smooth gradients, soft glows, aurora-like color washes",
			models.StyleGeometric: "as hard geometric abstraction, primitive shapes in strict grid rhythm, flat solid fills",
			models.StyleRetro:     "in a warm retro print style, sun-faded palette, halftone grain, chunky rounded forms",
		},
	}
}

// Analyzer returns the analyzer-side guide for a style tag, falling back to
// the minimal guide for unknown tags
func (g *StyleGuides) Analyzer(style models.StyleTag) string {
	if s, ok := g.analyzer[style]; ok {
		return s
	}
	return g.analyzer[models.DefaultStyle]
}

// Generator returns the generator-side guide for a style tag, falling back to
// the minimal guide for unknown tags
func (g *StyleGuides) Generator(style models.StyleTag) string {
	if s, ok := g.generator[style]; ok {
		return s
	}
	return g.generator[models.DefaultStyle]
}
