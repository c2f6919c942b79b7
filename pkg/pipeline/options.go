// Package pipeline provides the shared generation pipeline of the suite.
//
// CLI commands, the batch runner, and the HTTP server all produce documents
// through the same path: resolve an Options struct to a configured pattern
// generator, render, and cache the result when the output is deterministic.
// Centralizing this keeps defaults and caching behavior identical across
// every entry point.
//
// # Usage
//
// Create a Runner and generate:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Pattern:       "flow",
//	    SpeedPxPerSec: 20,
//	}
//	svg, err := runner.Generate(ctx, opts)
package pipeline

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/cache"
	"github.com/helgeesch/captain-arro/pkg/errors"
	arrowrender "github.com/helgeesch/captain-arro/pkg/render/arrow"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Presets
// =============================================================================

// patternDefaults carries the per-pattern canvas and glyph defaults.
type patternDefaults struct {
	width       int
	height      int
	strokeWidth int
	count       int
}

var defaultsByPattern = map[arrow.Pattern]patternDefaults{
	arrow.PatternFlow:            {width: 100, height: 100, strokeWidth: 15, count: 4},
	arrow.PatternSpotlightFlow:   {width: 100, height: 100, strokeWidth: 10, count: 3},
	arrow.PatternSpread:          {width: 300, height: 150, strokeWidth: 2, count: 6},
	arrow.PatternSpotlightSpread: {width: 100, height: 100, strokeWidth: 10, count: 4},
}

// Shared defaults across patterns.
const (
	DefaultColor  = arrowrender.DefaultColor
	DefaultEasing = arrowrender.DefaultEasing

	// DefaultSpotlightSize is the highlighted fraction of the travel span.
	DefaultSpotlightSize = 0.3

	// DefaultPathExtension extends the spotlight sweep past the canvas.
	DefaultPathExtension = 0.5

	// DefaultDimOpacity is the opacity of arrows outside the spotlight.
	DefaultDimOpacity = 0.2

	// DefaultCenterGapRatio is the spread center gap as a span fraction.
	DefaultCenterGapRatio = 0.2
)

// =============================================================================
// Options - Generation Configuration
// =============================================================================

// Options contains all configuration for one document generation. The
// struct serializes to JSON for API requests, to TOML/YAML for preset
// files, and to BSON for stored documents; fields irrelevant to the
// selected pattern are ignored.
type Options struct {
	// Pattern selects the generator variant: flow, spotlight-flow,
	// spread, or spotlight-spread.
	Pattern string `json:"pattern" toml:"pattern" yaml:"pattern" bson:"pattern"`

	// Canvas and glyph options
	Color       string `json:"color,omitempty" toml:"color" yaml:"color" bson:"color,omitempty"`
	StrokeWidth int    `json:"stroke_width,omitempty" toml:"stroke_width" yaml:"stroke_width" bson:"stroke_width,omitempty"`
	Width       int    `json:"width,omitempty" toml:"width" yaml:"width" bson:"width,omitempty"`
	Height      int    `json:"height,omitempty" toml:"height" yaml:"height" bson:"height,omitempty"`
	Count       int    `json:"count,omitempty" toml:"count" yaml:"count" bson:"count,omitempty"`

	// Direction applies to flow patterns, Orientation to spread patterns.
	Direction   string `json:"direction,omitempty" toml:"direction" yaml:"direction" bson:"direction,omitempty"`
	Orientation string `json:"orientation,omitempty" toml:"orientation" yaml:"orientation" bson:"orientation,omitempty"`

	// Speed options: exactly one of the two must be set.
	SpeedPxPerSec   float64 `json:"speed_px_per_second,omitempty" toml:"speed_px_per_second" yaml:"speed_px_per_second" bson:"speed_px_per_second,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty" toml:"duration_seconds" yaml:"duration_seconds" bson:"duration_seconds,omitempty"`

	// Animation shaping
	Easing         string  `json:"easing,omitempty" toml:"easing" yaml:"easing" bson:"easing,omitempty"`
	SpotlightSize  float64 `json:"spotlight_size,omitempty" toml:"spotlight_size" yaml:"spotlight_size" bson:"spotlight_size,omitempty"`
	PathExtension  float64 `json:"path_extension,omitempty" toml:"path_extension" yaml:"path_extension" bson:"path_extension,omitempty"`
	DimOpacity     float64 `json:"dim_opacity,omitempty" toml:"dim_opacity" yaml:"dim_opacity" bson:"dim_opacity,omitempty"`
	CenterGapRatio float64 `json:"center_gap_ratio,omitempty" toml:"center_gap_ratio" yaml:"center_gap_ratio" bson:"center_gap_ratio,omitempty"`

	// Identifier suffix mode. Default is a fresh random suffix per
	// generation; IDSuffix pins it, NoUniqueID disables rewriting.
	IDSuffix   string `json:"id_suffix,omitempty" toml:"id_suffix" yaml:"id_suffix" bson:"id_suffix,omitempty"`
	NoUniqueID bool   `json:"no_unique_id,omitempty" toml:"no_unique_id" yaml:"no_unique_id" bson:"no_unique_id,omitempty"`

	// Refresh bypasses the cache read and regenerates. Not serialized,
	// so it never participates in cache keys.
	Refresh bool `json:"-" toml:"-" yaml:"-" bson:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-" bson:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and materializes the
// per-pattern defaults, so callers always observe the resolved values.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	p, err := arrow.ParsePattern(o.Pattern)
	if err != nil {
		return err
	}
	o.Pattern = string(p)

	d := defaultsByPattern[p]
	if o.Width == 0 {
		o.Width = d.width
	}
	if o.Height == 0 {
		o.Height = d.height
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = d.strokeWidth
	}
	if o.Count == 0 {
		o.Count = d.count
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Easing == "" {
		o.Easing = DefaultEasing
	}
	if err := errors.ValidateColor(o.Color); err != nil {
		return err
	}
	if err := errors.ValidateEasing(o.Easing); err != nil {
		return err
	}

	switch p {
	case arrow.PatternFlow, arrow.PatternSpotlightFlow:
		if o.Direction == "" {
			o.Direction = string(arrow.DirectionRight)
		}
		dir, err := arrow.ParseDirection(o.Direction)
		if err != nil {
			return err
		}
		o.Direction = string(dir)
	default:
		if o.Orientation == "" {
			if p == arrow.PatternSpread {
				o.Orientation = string(arrow.OrientationVertical)
			} else {
				o.Orientation = string(arrow.OrientationHorizontal)
			}
		}
		orient, err := arrow.ParseOrientation(o.Orientation)
		if err != nil {
			return err
		}
		o.Orientation = string(orient)
	}

	if p != arrow.PatternFlow {
		if o.SpotlightSize == 0 {
			o.SpotlightSize = DefaultSpotlightSize
		}
		if o.DimOpacity == 0 {
			o.DimOpacity = DefaultDimOpacity
		}
	}
	if p == arrow.PatternSpotlightFlow && o.PathExtension == 0 {
		o.PathExtension = DefaultPathExtension
	}
	if (p == arrow.PatternSpread || p == arrow.PatternSpotlightSpread) && o.CenterGapRatio == 0 {
		o.CenterGapRatio = DefaultCenterGapRatio
	}

	if _, err := o.Speed(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Speed resolves the two numeric speed fields into a Speed value.
func (o *Options) Speed() (arrow.Speed, error) {
	return arrow.NewSpeed(o.SpeedPxPerSec, o.DurationSeconds)
}

// Deterministic reports whether generation produces identical bytes for
// identical options. Only deterministic output is cacheable: a random id
// suffix makes every rendered document unique.
func (o *Options) Deterministic() bool {
	return o.NoUniqueID || o.IDSuffix != ""
}

// GenerateOptions converts the suffix fields to render options.
func (o *Options) GenerateOptions() []arrowrender.GenerateOption {
	switch {
	case o.NoUniqueID:
		return []arrowrender.GenerateOption{arrowrender.WithoutUniqueID()}
	case o.IDSuffix != "":
		return []arrowrender.GenerateOption{arrowrender.WithIDSuffix(o.IDSuffix)}
	default:
		return nil
	}
}

// Hash returns a content hash of the serialized options, used for cache
// keys. Runtime-only fields do not participate.
func (o *Options) Hash() string {
	data, _ := json.Marshal(o)
	return cache.Hash(data)
}

// Generator constructs the configured pattern generator. Options must
// have been validated first.
func (o *Options) Generator() (arrowrender.Generator, error) {
	if !o.validated {
		if err := o.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	speed, err := o.Speed()
	if err != nil {
		return nil, err
	}

	switch arrow.Pattern(o.Pattern) {
	case arrow.PatternFlow:
		return arrowrender.NewFlow(arrowrender.FlowConfig{
			Color:       o.Color,
			StrokeWidth: o.StrokeWidth,
			Width:       o.Width,
			Height:      o.Height,
			Count:       o.Count,
			Direction:   arrow.Direction(o.Direction),
			Speed:       speed,
			Easing:      o.Easing,
		})
	case arrow.PatternSpotlightFlow:
		return arrowrender.NewSpotlightFlow(arrowrender.SpotlightFlowConfig{
			Color:         o.Color,
			StrokeWidth:   o.StrokeWidth,
			Width:         o.Width,
			Height:        o.Height,
			Count:         o.Count,
			Direction:     arrow.Direction(o.Direction),
			Speed:         speed,
			SpotlightSize: o.SpotlightSize,
			PathExtension: o.PathExtension,
			DimOpacity:    o.DimOpacity,
		})
	case arrow.PatternSpread:
		return arrowrender.NewSpread(arrowrender.SpreadConfig{
			Color:          o.Color,
			StrokeWidth:    o.StrokeWidth,
			Width:          o.Width,
			Height:         o.Height,
			Count:          o.Count,
			Orientation:    arrow.Orientation(o.Orientation),
			Speed:          speed,
			Easing:         o.Easing,
			CenterGapRatio: o.CenterGapRatio,
		})
	case arrow.PatternSpotlightSpread:
		return arrowrender.NewSpotlightSpread(arrowrender.SpotlightSpreadConfig{
			Color:          o.Color,
			StrokeWidth:    o.StrokeWidth,
			Width:          o.Width,
			Height:         o.Height,
			Count:          o.Count,
			Orientation:    arrow.Orientation(o.Orientation),
			Speed:          speed,
			SpotlightSize:  o.SpotlightSize,
			DimOpacity:     o.DimOpacity,
			CenterGapRatio: o.CenterGapRatio,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidPattern,
			"invalid pattern: %q (valid: flow, spotlight-flow, spread, spotlight-spread)", o.Pattern)
	}
}
