package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/polytopia/wythoff/pkg/cache"
	"github.com/polytopia/wythoff/pkg/polytope"
	"github.com/polytopia/wythoff/pkg/render/pov"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// envelope is the cached form of a pipeline result: the artifact plus the
// counts needed to report stats without rebuilding.
type envelope struct {
	Stats   Stats  `json:"stats"`
	Include []byte `json:"include"`
}

// Execute runs the complete build → render pipeline with caching.
// On a cache hit the polytope is not rebuilt; the result carries the cached
// include and counts with zero durations.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	result.CacheInfo.Key = opts.cacheKey()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, result.CacheInfo.Key); err == nil && hit {
			var env envelope
			if err := json.Unmarshal(data, &env); err == nil {
				result.Include = env.Include
				result.IncludeHash = cache.Hash(env.Include)
				result.Stats = env.Stats
				result.Stats.BuildTime = 0
				result.Stats.RenderTime = 0
				result.CacheInfo.Hit = true
				r.Logger.Debug("cache hit", "key", result.CacheInfo.Key)
				return result, nil
			}
			// Corrupt envelope: drop it and rebuild.
			_ = r.Cache.Delete(ctx, result.CacheInfo.Key)
		}
	}

	// Stage 1: Build
	buildStart := time.Now()
	p, err := r.Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.Dim = p.Dim
	result.Stats.VertexCount = p.NumVertices()
	result.Stats.EdgeCount = p.NumEdges()
	result.Stats.FaceCount = p.NumFaces()
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("built polytope",
		"vertices", p.NumVertices(),
		"edges", p.NumEdges(),
		"faces", p.NumFaces(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	include, err := r.Render(p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Include = include
	result.IncludeHash = cache.Hash(include)
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered include",
		"bytes", len(include),
		"duration", result.Stats.RenderTime)

	if data, err := json.Marshal(envelope{Stats: result.Stats, Include: include}); err == nil {
		_ = r.Cache.Set(ctx, result.CacheInfo.Key, data)
	}

	return result, nil
}

// Build runs the construction stage only.
func (r *Runner) Build(ctx context.Context, opts Options) (*polytope.Polytope, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		b   *polytope.Builder
		err error
	)
	if opts.Snub {
		b, err = polytope.NewSnub(opts.Symbol, opts.Distances, polytope.WithMaxCosets(opts.MaxCosets))
	} else {
		b, err = polytope.New(opts.Symbol, opts.Distances, polytope.WithMaxCosets(opts.MaxCosets))
	}
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Render runs the export stage only.
func (r *Runner) Render(p *polytope.Polytope, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	renderOpts := []pov.Option{pov.WithPrecision(opts.Precision)}
	if opts.Header != "" {
		renderOpts = append(renderOpts, pov.WithHeader(opts.Header))
	}
	return pov.RenderInclude(p, renderOpts...)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
