package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/doodle/pkg/cache"
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/errors"
	"github.com/matzehuels/doodle/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compose → serialize pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Compose
	composeStart := time.Now()
	elements, composeHit, err := r.ComposeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "compose")
	}
	result.Elements = elements
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.ElementCount = len(elements)
	result.CacheInfo.ComposeHit = composeHit

	// Compute element hash for artifact cache keys and API responses
	if data, err := json.Marshal(elements); err == nil {
		result.ElementsHash = cache.Hash(data)
	}

	r.Logger.Info("composed tile",
		"variant", opts.Variant,
		"mode", opts.Mode,
		"elements", len(elements),
		"duration", result.Stats.ComposeTime)

	// Stage 2: Serialize
	serializeStart := time.Now()
	artifacts, serializeHit, err := r.SerializeWithCacheInfo(ctx, elements, result.ElementsHash, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "serialize")
	}
	result.Artifacts = artifacts
	result.Stats.SerializeTime = time.Since(serializeStart)
	result.CacheInfo.SerializeHit = serializeHit

	r.Logger.Info("serialized outputs",
		"formats", opts.Formats,
		"duration", result.Stats.SerializeTime)

	return result, nil
}

// ComposeWithCacheInfo runs the placement engine with caching and returns
// cache hit info.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, opts Options) ([]compose.Element, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.TileKey(opts.Variant, opts.Mode, opts.TileKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var elements []compose.Element
			if err := json.Unmarshal(data, &elements); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKey)
				return elements, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	// Compose
	start := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.Variant, opts.Mode)
	elements := compose.CompositeConfig(opts.Config(), opts.ParsedVariant(), opts.ParsedMode())
	observability.Pipeline().OnComposeComplete(ctx, opts.Variant, opts.Mode, len(elements), time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(elements); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLTile); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(data))
		}
	}

	return elements, false, nil // Cache miss
}

// Compose is a convenience wrapper that calls ComposeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compose(ctx context.Context, opts Options) ([]compose.Element, error) {
	elements, _, err := r.ComposeWithCacheInfo(ctx, opts)
	return elements, err
}

// SerializeWithCacheInfo generates artifacts with caching and returns cache
// hit info. The elementsHash keys artifact cache entries; pass the hash of
// the marshaled element list.
func (r *Runner) SerializeWithCacheInfo(ctx context.Context, elements []compose.Element, elementsHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(elementsHash, opts.ArtifactKeyOpts(format))
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

	// Serialize all formats
	start := time.Now()
	observability.Pipeline().OnSerializeStart(ctx, opts.Formats)
	rendered, err := Serialize(elements, opts)
	observability.Pipeline().OnSerializeComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(elementsHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// SerializeArtifacts is a convenience wrapper that calls
// SerializeWithCacheInfo and discards the cache hit info.
func (r *Runner) SerializeArtifacts(ctx context.Context, elements []compose.Element, elementsHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.SerializeWithCacheInfo(ctx, elements, elementsHash, opts)
	return artifacts, err
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
