package prompts

import (
	"fmt"
	"strings"

	"brandforge/server/internal/models"
)

// BuildAnalysisPrompt composes the instruction sent to the text model. The
// result is a pure function of its arguments so it can be tested directly.
func BuildAnalysisPrompt(guides *StyleGuides, input string, kind models.InputKind, style models.StyleTag, colorOverride []string) string {
	var b strings.Builder

	b.WriteString("You are an expert brand strategist. ")

	switch kind {
	case models.InputURL:
		b.WriteString("Research the company behind the following website using web search. ")
		b.WriteString("Extract the brand identity from the search results.\n\n")
		b.WriteString("Website: " + input + "\n\n")
	default:
		b.WriteString("Extract the brand identity directly from the following description.\n\n")
		b.WriteString("Description: " + input + "\n\n")
	}

	b.WriteString("Target visual style:\n")
	b.WriteString(guides.Analyzer(style))
	b.WriteString("\n\n")

	if len(colorOverride) > 0 {
		b.WriteString("The brand palette is fixed. You MUST use exactly these colors, in this order: ")
		b.WriteString(strings.Join(colorOverride, ", "))
		b.WriteString(". Do not invent or substitute any color.\n\n")
	} else {
		b.WriteString("Infer a color palette that fits the brand and the target style.\n\n")
	}

	b.WriteString(`Respond with a single strict JSON object and nothing else. Fields:
- "brandName": the brand's name (short, as written by the brand)
- "summary": what the brand does, 1-2 sentences
- "industry": the brand's industry, one or two words (e.g. "finance", "health")
- "vibe": the brand's personality in 2-4 words
- "brandColors": 3-4 hex color strings, primary color first
- "slogan": a tagline of at most 8 words
- "cta": a call-to-action of at most 4 words
- "iconConcept": one simple visual concept for an icon, 3-6 words
- "visualPrompt": a complete image-generation prompt for a banner in the target style
- "title": a page title for the brand, at most 60 characters
- "socialBio": a social media bio, at most 160 characters`)

	return b.String()
}

// AnalysisDefaults fills named defaults for any field the model left absent.
// A missing field is never fatal; only a fully unparseable reply is.
func AnalysisDefaults(brand *models.BrandDescription, input string) {
	if brand.BrandName == "" {
		brand.BrandName = "Untitled Brand"
	}
	if brand.Summary == "" {
		brand.Summary = fmt.Sprintf("A brand described as: %s", truncate(input, 120))
	}
	if brand.Vibe == "" {
		brand.Vibe = "modern and confident"
	}
	if len(brand.BrandColors) == 0 {
		brand.BrandColors = []string{"#1A1A2E", "#16213E", "#E94560"}
	}
	if brand.Title == "" {
		brand.Title = brand.BrandName
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
