package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/cache"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/render/linkdot"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/transform"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Execute runs the complete normalize → validate → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, s *schema.Schema, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Normalize
	normalizeStart := time.Now()
	work := s
	if opts.Normalize {
		normalized, normalizeHit, err := r.NormalizeWithCacheInfo(ctx, s, opts)
		if err != nil {
			return nil, fmt.Errorf("normalize: %w", err)
		}
		work = normalized
		result.CacheInfo.NormalizeHit = normalizeHit
	}
	result.Schema = work
	result.Stats.NormalizeTime = time.Since(normalizeStart)
	result.Stats.ComponentCount = len(work.Components)
	result.Stats.LinkCount = len(work.Links)

	// Compute schema hash for cache keys and API responses
	if data, err := schema.Marshal(work); err == nil {
		result.SchemaHash = cache.Hash(data)
	}

	r.Logger.Info("normalized schema",
		"components", len(work.Components),
		"breakpoints", len(work.Breakpoints),
		"duration", result.Stats.NormalizeTime)

	// Stage 2: Validate
	validateStart := time.Now()
	report, validateHit, err := r.ValidateWithCacheInfo(ctx, work, opts)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Validation = report
	result.Stats.ValidateTime = time.Since(validateStart)
	result.CacheInfo.ValidateHit = validateHit

	r.Logger.Info("validated schema",
		"valid", report.Valid,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
		"duration", result.Stats.ValidateTime)

	// Link groups are cheap enough to resolve on every run.
	result.Groups = r.Groups(work, opts)

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, work, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = renderHit

		r.Logger.Info("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// NormalizeWithCacheInfo runs the breakpoint cascade with caching and
// returns cache hit info.
func (r *Runner) NormalizeWithCacheInfo(ctx context.Context, s *schema.Schema, opts Options) (*schema.Schema, bool, error) {
	data, err := schema.Marshal(s)
	if err != nil {
		return nil, false, fmt.Errorf("serialize schema for cache key: %w", err)
	}
	cacheKey := cache.NormalizedKey(cache.Hash(data))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := schema.Unmarshal(data)
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	normalized := transform.Normalize(s)

	if data, err := schema.Marshal(normalized); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL)
	}

	return normalized, false, nil // Cache miss
}

// Normalize is a convenience wrapper that discards the cache hit info.
func (r *Runner) Normalize(ctx context.Context, s *schema.Schema, opts Options) (*schema.Schema, error) {
	normalized, _, err := r.NormalizeWithCacheInfo(ctx, s, opts)
	return normalized, err
}

// ValidateWithCacheInfo runs the rule engine with caching and returns cache
// hit info.
func (r *Runner) ValidateWithCacheInfo(ctx context.Context, s *schema.Schema, opts Options) (validate.Result, bool, error) {
	data, err := schema.Marshal(s)
	if err != nil {
		return validate.Result{}, false, fmt.Errorf("serialize schema for cache key: %w", err)
	}
	cacheKey := cache.ValidationKey(cache.Hash(data))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached validate.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil // Cache hit
			}
		}
	}

	report := validate.Validate(s)

	if data, err := json.Marshal(report); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL)
	}

	return report, false, nil // Cache miss
}

// Validate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Validate(ctx context.Context, s *schema.Schema, opts Options) (validate.Result, error) {
	report, _, err := r.ValidateWithCacheInfo(ctx, s, opts)
	return report, err
}

// Groups resolves the schema's component links into groups under the
// options' link policy.
func (r *Runner) Groups(s *schema.Schema, opts Options) [][]string {
	ids := make([]string, 0, len(s.Components))
	for _, c := range s.Components {
		ids = append(ids, c.ID)
	}
	return linkgroup.Groups(ids, s.Links, opts.LinkPolicy())
}

// RenderWithCacheInfo generates link-graph artifacts with caching and
// returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *schema.Schema, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	data, err := schema.Marshal(s)
	if err != nil {
		return nil, false, fmt.Errorf("serialize schema for cache key: %w", err)
	}
	schemaHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := cache.ArtifactKey(schemaHash, format+":"+opts.LinkPolicy().String())
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		out, err := r.renderFormat(ctx, s, format, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = out
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := cache.ArtifactKey(schemaHash, format+":"+opts.LinkPolicy().String())
		_ = r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *schema.Schema, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, opts)
	return artifacts, err
}

// renderFormat produces a single link-graph artifact.
func (r *Runner) renderFormat(ctx context.Context, s *schema.Schema, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(linkdot.ToDOT(s, opts.LinkPolicy())), nil
	case FormatSVG:
		return linkdot.RenderSVG(ctx, linkdot.ToDOT(s, opts.LinkPolicy()))
	case FormatJSON:
		return json.MarshalIndent(r.Groups(s, opts), "", "  ")
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
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
