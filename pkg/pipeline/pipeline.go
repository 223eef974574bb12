// Package pipeline provides the layout pipeline shared by the CLI and the API.
//
// The pipeline has two stages:
//
//  1. Layout: validate a tree description and solve it into a [scene.Layout]
//  2. Render: draw the layout in one or more output formats
//
// Both stages are cached by a [Runner]. Layouts are keyed by the hash of the
// tree description plus the size overrides; artifacts are keyed by the hash of
// the layout document plus the render options, so a layout that comes out the
// same from two different descriptions renders once.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, spec, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.ComputeLayout(ctx, spec, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxflow/pkg/cache"
	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultAddr is the listen address of the API server.
	DefaultAddr = ":8080"
)

// Format constants for output formats.
const (
	FormatJSON  = "json"  // layout document
	FormatSVG   = "svg"   // boxes as SVG
	FormatPNG   = "png"   // boxes as PNG
	FormatDOT   = "dot"   // node hierarchy as Graphviz DOT
	FormatGraph = "graph" // node hierarchy laid out by Graphviz, as SVG
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatJSON, FormatSVG, FormatPNG, FormatDOT, FormatGraph}

// Extensions maps output formats to file extensions.
var Extensions = map[string]string{
	FormatJSON:  ".layout.json",
	FormatSVG:   ".svg",
	FormatPNG:   ".png",
	FormatDOT:   ".dot",
	FormatGraph: ".graph.svg",
}

// ContentTypes maps output formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatJSON:  "application/json",
	FormatSVG:   "image/svg+xml",
	FormatPNG:   "image/png",
	FormatDOT:   "text/vnd.graphviz",
	FormatGraph: "image/svg+xml",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. A positive Width or Height replaces the root size
	// given by the tree description.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed layout document.
	Layout scene.Layout

	// TreeHash is the content hash of the tree description.
	TreeHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that formats is a non-empty list of distinct valid
// formats.
func ValidateFormats(formats []string) error {
	return errors.ValidateFormats(formats, ValidFormats)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLayout checks the size overrides and sets the default logger.
func (o *Options) ValidateForLayout() error {
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width must not be negative")
	}
	if o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "height must not be negative")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets render defaults and validates formats and scale.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidatePositive("scale", o.Scale)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Scale only changes PNG output and is left out of the other keys.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Labels: o.Labels}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
