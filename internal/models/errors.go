package models

import (
	"errors"
	"fmt"
)

// ErrNoAssets is the aggregate failure returned when every requested asset
// failed to generate
var ErrNoAssets = errors.New("no assets could be generated")

// ConfigurationError reports a missing credential or setting. Fatal at the
// start of any call path.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Missing)
}

// AnalysisError reports a failed brand analysis. Fatal to the whole request,
// since no asset can be generated without brand data.
type AnalysisError struct {
	Reason string
	Err    error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("brand analysis failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("brand analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// GenerationError reports a single asset that could not be produced after
// retries. Non-fatal: the batch continues without that asset.
type GenerationError struct {
	Platform PlatformTag
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("asset generation failed for %s: %v", e.Platform, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
