// Package pipeline provides the core build pipeline for wythoff.
//
// This package implements the complete build → render pipeline that can be
// used by the CLI and by library consumers. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Enumerate the vertex, edge and face orbits of the polytope
//  2. Render: Generate the POV-Ray include file
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Symbol:    []int{4, 2, 3},
//	    Distances: []float64{1, 0, 0},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	include := result.Include
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/polytopia/wythoff/pkg/cache"
	"github.com/polytopia/wythoff/pkg/coset"
)

// Default values, the single source of truth for CLI and library callers.
const (
	// DefaultMaxCosets caps the coset tables built during enumeration. Every
	// finite 3D/4D symbol closes far below this; the cap exists so that an
	// affine or hyperbolic symbol fails instead of growing without bound.
	DefaultMaxCosets = coset.DefaultLimit

	// DefaultPrecision is the number of decimal digits in exported
	// coordinates.
	DefaultPrecision = 8
)

// Options contains all configuration for the build pipeline.
// This struct supports JSON serialization for cache keys.
type Options struct {
	// Build options
	Symbol    []int     `json:"symbol"`
	Distances []float64 `json:"distances,omitempty"`
	Snub      bool      `json:"snub,omitempty"`
	MaxCosets int       `json:"max_cosets,omitempty"`

	// Render options
	Precision int    `json:"precision,omitempty"`
	Header    string `json:"header,omitempty"`

	// Refresh bypasses the cache and overwrites the stored artifact.
	Refresh bool `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent: calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	switch len(o.Symbol) {
	case 3, 6:
	case 0:
		return fmt.Errorf("symbol is required")
	default:
		return fmt.Errorf("symbol needs 3 or 6 entries, got %d", len(o.Symbol))
	}
	if o.Snub && len(o.Symbol) != 3 {
		return fmt.Errorf("snub construction needs a 3-entry symbol")
	}
	if o.Distances == nil && !o.Snub {
		return fmt.Errorf("distances are required")
	}
	if o.MaxCosets == 0 {
		o.MaxCosets = DefaultMaxCosets
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// cacheKey derives the artifact cache key from every option that affects
// the output bytes.
func (o *Options) cacheKey() string {
	return cache.Key("include", o.Symbol, o.Distances, o.Snub, o.MaxCosets, o.Precision, o.Header)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Include is the rendered POV-Ray include file.
	Include []byte

	// IncludeHash is the content hash of the include file.
	IncludeHash string

	// Stats contains element counts and timing information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics. On a cache hit the counts
// are restored from the cached envelope and the durations are zero.
type Stats struct {
	Dim         int           `json:"dim"`
	VertexCount int           `json:"vertex_count"`
	EdgeCount   int           `json:"edge_count"`
	FaceCount   int           `json:"face_count"`
	BuildTime   time.Duration `json:"build_time"`
	RenderTime  time.Duration `json:"render_time"`
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	Hit bool // Whether the include came from cache
	Key string
}
