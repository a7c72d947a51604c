// Package pipeline provides the core consistency pipeline for the layout
// builder.
//
// This package implements the complete normalize → validate → render pipeline
// that can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Normalize: Fill every breakpoint tier of the schema by cascading
//     layouts, membership, and canvas rects down from smaller tiers
//  2. Validate: Run the full rule set against the (normalized) schema and
//     collect errors and warnings
//  3. Render: Generate link-graph output in various formats (DOT, SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Normalize: true,
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, s, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Normalize only
//	normalized, hit, err := runner.NormalizeWithCacheInfo(ctx, s, opts)
//
//	// Validate an already-normalized schema
//	report, hit, err := runner.ValidateWithCacheInfo(ctx, normalized, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the consistency pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Normalize controls whether the breakpoint cascade runs before
	// validation. Validation is strictest on normalized schemas because
	// every tier then carries explicit canvas rects.
	Normalize bool `json:"normalize,omitempty"`

	// Policy selects how component links resolve into groups
	// ("transitive" or "one-to-one"). Empty means transitive.
	Policy string `json:"policy,omitempty"`

	// Formats lists the link-graph outputs to render. Empty skips the
	// render stage entirely.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cache reads for every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	// policy is the parsed form of Policy.
	policy linkgroup.Policy `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Schema is the schema after the normalize stage. When normalization
	// was disabled this is the input schema unchanged.
	Schema *schema.Schema

	// SchemaHash is the content hash of the schema after normalization.
	SchemaHash string

	// Validation is the rule-engine report.
	Validation validate.Result

	// Groups lists the resolved link groups under the selected policy.
	Groups [][]string

	// Artifacts contains rendered link-graph outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ComponentCount int
	LinkCount      int
	NormalizeTime  time.Duration
	ValidateTime   time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	NormalizeHit bool // Whether the normalized schema came from cache
	ValidateHit  bool // Whether the validation report came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	policy, err := linkgroup.ParsePolicy(o.Policy)
	if err != nil {
		return err
	}
	o.policy = policy
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LinkPolicy returns the parsed link policy. Before ValidateAndSetDefaults
// runs it parses Policy directly, falling back to transitive.
func (o *Options) LinkPolicy() linkgroup.Policy {
	if o.validated {
		return o.policy
	}
	policy, err := linkgroup.ParsePolicy(o.Policy)
	if err != nil {
		return linkgroup.PolicyTransitive
	}
	return policy
}
