package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/helgeesch/captain-arro/pkg/cache"
	"github.com/helgeesch/captain-arro/pkg/errors"
)

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		check func(t *testing.T, o Options)
	}{
		{
			"flow defaults",
			Options{Pattern: "flow", SpeedPxPerSec: 20},
			func(t *testing.T, o Options) {
				if o.Width != 100 || o.Height != 100 {
					t.Errorf("canvas = %dx%d, want 100x100", o.Width, o.Height)
				}
				if o.StrokeWidth != 15 || o.Count != 4 {
					t.Errorf("stroke/count = %d/%d, want 15/4", o.StrokeWidth, o.Count)
				}
				if o.Direction != "right" {
					t.Errorf("direction = %q, want right", o.Direction)
				}
				if o.Color != "#2563eb" || o.Easing != "ease-in-out" {
					t.Errorf("color/easing = %q/%q", o.Color, o.Easing)
				}
			},
		},
		{
			"spread defaults",
			Options{Pattern: "spread", SpeedPxPerSec: 20},
			func(t *testing.T, o Options) {
				if o.Width != 300 || o.Height != 150 {
					t.Errorf("canvas = %dx%d, want 300x150", o.Width, o.Height)
				}
				if o.Orientation != "vertical" {
					t.Errorf("orientation = %q, want vertical", o.Orientation)
				}
				if o.CenterGapRatio != 0.2 {
					t.Errorf("gap ratio = %g, want 0.2", o.CenterGapRatio)
				}
			},
		},
		{
			"spotlight-flow defaults",
			Options{Pattern: "spotlight-flow", SpeedPxPerSec: 20},
			func(t *testing.T, o Options) {
				if o.SpotlightSize != 0.3 || o.PathExtension != 0.5 || o.DimOpacity != 0.2 {
					t.Errorf("spotlight fields = %g/%g/%g", o.SpotlightSize, o.PathExtension, o.DimOpacity)
				}
			},
		},
		{
			"spotlight-spread defaults",
			Options{Pattern: "spotlight-spread", SpeedPxPerSec: 20},
			func(t *testing.T, o Options) {
				if o.Orientation != "horizontal" {
					t.Errorf("orientation = %q, want horizontal", o.Orientation)
				}
				if o.StrokeWidth != 10 || o.Count != 4 {
					t.Errorf("stroke/count = %d/%d, want 10/4", o.StrokeWidth, o.Count)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err != nil {
				t.Fatalf("ValidateAndSetDefaults() error = %v", err)
			}
			tt.check(t, tt.opts)
		})
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"missing pattern", Options{SpeedPxPerSec: 20}, errors.ErrCodeInvalidPattern},
		{"unknown pattern", Options{Pattern: "swirl", SpeedPxPerSec: 20}, errors.ErrCodeInvalidPattern},
		{"bad direction", Options{Pattern: "flow", Direction: "sideways", SpeedPxPerSec: 20}, errors.ErrCodeInvalidDirection},
		{"bad orientation", Options{Pattern: "spread", Orientation: "diagonal", SpeedPxPerSec: 20}, errors.ErrCodeInvalidOrientation},
		{"no speed", Options{Pattern: "flow"}, errors.ErrCodeInvalidSpeed},
		{"both speeds", Options{Pattern: "flow", SpeedPxPerSec: 20, DurationSeconds: 3}, errors.ErrCodeInvalidSpeed},
		{
			"markup in color",
			Options{Pattern: "flow", Color: `"></style><script>alert(1)</script>`, SpeedPxPerSec: 20},
			errors.ErrCodeInvalidConfig,
		},
		{
			"markup in easing",
			Options{Pattern: "flow", Easing: `ease"><script>`, SpeedPxPerSec: 20},
			errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	opts := Options{Pattern: "flow", SpeedPxPerSec: 20}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if opts != first {
		t.Error("second validation changed the options")
	}
}

func TestOptionsHash(t *testing.T) {
	a := Options{Pattern: "flow", SpeedPxPerSec: 20}
	b := Options{Pattern: "flow", SpeedPxPerSec: 20}
	if a.Hash() != b.Hash() {
		t.Error("identical options should hash equal")
	}

	c := Options{Pattern: "flow", SpeedPxPerSec: 40}
	if a.Hash() == c.Hash() {
		t.Error("different options should hash differently")
	}
}

func TestRunnerGenerate(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	doc, err := r.Generate(context.Background(), Options{
		Pattern:       "flow",
		SpeedPxPerSec: 20,
		NoUniqueID:    true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	svg := string(doc)
	if !strings.HasPrefix(svg, "<svg ") {
		t.Errorf("output does not start with an svg element: %.40q", svg)
	}
	if !strings.Contains(svg, "@keyframes flow1") {
		t.Error("output missing flow keyframes")
	}
}

func TestRunnerGenerateInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Generate(context.Background(), Options{Pattern: "flow"})
	if !errors.Is(err, errors.ErrCodeInvalidSpeed) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpeed)
	}
}

func TestRunnerCachesDeterministicOutput(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error = %v", err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Pattern: "spread", SpeedPxPerSec: 20, NoUniqueID: true}

	first, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("first generation error = %v", err)
	}
	if hit {
		t.Error("first generation should miss the cache")
	}

	second, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("second generation error = %v", err)
	}
	if !hit {
		t.Error("second generation should hit the cache")
	}
	if !bytes.Equal(first, second) {
		t.Error("cached document differs from generated document")
	}
}

func TestRunnerSkipsCacheForRandomSuffix(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error = %v", err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Pattern: "flow", SpeedPxPerSec: 20}

	first, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("first generation error = %v", err)
	}
	if hit {
		t.Error("random-suffix generation should never hit the cache")
	}

	second, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("second generation error = %v", err)
	}
	if hit {
		t.Error("random-suffix generation should never hit the cache")
	}
	if bytes.Equal(first, second) {
		t.Error("random-suffix generations should differ")
	}
}

func TestRunnerRefreshBypassesCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error = %v", err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Pattern: "flow", SpeedPxPerSec: 20, IDSuffix: "abc123"}
	if _, _, err := r.GenerateWithCacheInfo(ctx, opts); err != nil {
		t.Fatalf("warm-up generation error = %v", err)
	}

	opts.Refresh = true
	_, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("refresh generation error = %v", err)
	}
	if hit {
		t.Error("refresh should bypass the cache read")
	}
}
