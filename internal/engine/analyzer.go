package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"brandforge/server/internal/interfaces"
	"brandforge/server/internal/models"
	"brandforge/server/internal/prompts"
)

// BrandAnalyzer turns raw brand input into a structured BrandDescription via
// one text-model call
type BrandAnalyzer struct {
	textClient interfaces.TextClient
	guides     *prompts.StyleGuides
	cache      interfaces.AnalysisCache // optional
}

// NewBrandAnalyzer wires the text client and style tables together. The
// cache may be nil.
func NewBrandAnalyzer(textClient interfaces.TextClient, guides *prompts.StyleGuides, cache interfaces.AnalysisCache) *BrandAnalyzer {
	return &BrandAnalyzer{
		textClient: textClient,
		guides:     guides,
		cache:      cache,
	}
}

// Analyze runs the analysis prompt and parses the reply. Fails with an
// AnalysisError when the call fails or no JSON can be extracted; individual
// missing fields get named defaults instead.
func (a *BrandAnalyzer) Analyze(ctx context.Context, input string, kind models.InputKind, style models.StyleTag, colorOverride []string) (*models.BrandDescription, error) {
	key := analysisKey(input, style, colorOverride)
	if a.cache != nil {
		if brand, ok := a.cache.Get(ctx, key); ok {
			log.Printf("analysis cache hit for %q", brand.BrandName)
			return brand, nil
		}
	}

	prompt := prompts.BuildAnalysisPrompt(a.guides, input, kind, style, colorOverride)

	raw, err := a.textClient.Complete(ctx, prompt)
	if err != nil {
		return nil, &models.AnalysisError{Reason: "text model call failed", Err: err}
	}

	brand, err := ParseBrandReply(raw)
	if err != nil {
		return nil, &models.AnalysisError{Reason: "could not parse model reply", Err: err}
	}

	// The override is a hard constraint; enforce it even if the model strayed
	if len(colorOverride) > 0 {
		brand.BrandColors = colorOverride
	}
	prompts.AnalysisDefaults(brand, input)

	if a.cache != nil {
		a.cache.Set(ctx, key, brand)
	}
	return brand, nil
}

// ParseBrandReply extracts the JSON object from the model's free-text reply.
// The reply may wrap the object in a fenced code block or interleave it with
// prose; a fenced block is tried first, then the first balanced-looking
// {...} substring.
func ParseBrandReply(raw string) (*models.BrandDescription, error) {
	candidate := extractFencedBlock(raw)
	if candidate == "" {
		candidate = extractBalancedObject(raw)
	}
	if candidate == "" {
		return nil, fmt.Errorf("no JSON object found in reply")
	}

	var brand models.BrandDescription
	if err := json.Unmarshal([]byte(candidate), &brand); err != nil {
		return nil, fmt.Errorf("malformed JSON in reply: %w", err)
	}
	return &brand, nil
}

// extractFencedBlock returns the contents of the first ``` fenced block, or
// empty when there is none
func extractFencedBlock(raw string) string {
	start := strings.Index(raw, "```")
	if start < 0 {
		return ""
	}
	rest := raw[start+3:]
	// Skip an optional language tag on the fence line
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// extractBalancedObject scans for the first top-level {...} span, tracking
// string literals so braces inside values don't break the count
func extractBalancedObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = inString
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1]
				}
			}
		}
	}
	return ""
}

func analysisKey(input string, style models.StyleTag, colors []string) string {
	h := sha256.Sum256([]byte(input + "|" + string(style) + "|" + strings.Join(colors, ",")))
	return "analysis:" + hex.EncodeToString(h[:])
}
