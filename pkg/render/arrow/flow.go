package arrow

import (
	"fmt"

	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/geom"
	"github.com/helgeesch/captain-arro/pkg/scene"
)

// FlowConfig configures the moving flow pattern: a stream of identical
// chevrons translating along one direction, fading at the path ends.
// Zero-value fields take the documented defaults; out-of-range numeric
// fields are clamped rather than rejected.
type FlowConfig struct {
	Color       string          // default "#2563eb"
	StrokeWidth int             // default 15, floor 2
	Width       int             // default 100
	Height      int             // default 100
	Count       int             // default 4, floor 1
	Direction   arrow.Direction // default right
	Speed       arrow.Speed     // required
	Easing      string          // default "ease-in-out"
}

// Flow renders the moving flow pattern. All arrows share one glyph at the
// canvas center; motion identity comes from per-arrow animation phase
// offsets, so the stream reads as continuous.
type Flow struct {
	cfg FlowConfig
}

// NewFlow validates cfg and returns a flow generator. Construction fails
// on an unset speed, an invalid direction, color, or easing, or a
// non-positive canvas.
func NewFlow(cfg FlowConfig) (*Flow, error) {
	if cfg.Width == 0 {
		cfg.Width = 100
	}
	if cfg.Height == 0 {
		cfg.Height = 100
	}
	if cfg.StrokeWidth == 0 {
		cfg.StrokeWidth = 15
	}
	if cfg.Count == 0 {
		cfg.Count = 4
	}
	if cfg.Direction == "" {
		cfg.Direction = arrow.DirectionRight
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.Easing == "" {
		cfg.Easing = DefaultEasing
	}

	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if err := cfg.Direction.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Speed.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateColor(cfg.Color); err != nil {
		return nil, err
	}
	if err := errors.ValidateEasing(cfg.Easing); err != nil {
		return nil, err
	}

	if cfg.StrokeWidth < 2 {
		cfg.StrokeWidth = 2
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	return &Flow{cfg: cfg}, nil
}

// Generate renders the document. Pure up to the identifier-suffix mode.
func (f *Flow) Generate(opts ...GenerateOption) []byte {
	return Compose(f, opts...)
}

// span is the canvas extent along the travel axis.
func (f *Flow) span() int {
	if f.cfg.Direction.Horizontal() {
		return f.cfg.Width
	}
	return f.cfg.Height
}

// travel is the per-cycle translation distance: the doubled half-span, so
// odd spans floor consistently with the glyph center.
func (f *Flow) travel() int {
	return f.span() / 2 * 2
}

// Duration returns the resolved animation cycle duration in seconds.
func (f *Flow) Duration() float64 {
	return f.cfg.Speed.Duration(float64(f.travel()))
}

func (f *Flow) Size() (int, int) { return f.cfg.Width, f.cfg.Height }

func (f *Flow) ClipBounds() scene.Rect {
	return scene.Rect{X: 0, Y: 0, Width: f.cfg.Width, Height: f.cfg.Height}
}

func (f *Flow) Defs() []scene.Def { return nil }

func (f *Flow) StyleRules() []scene.Rule {
	rules := []scene.Rule{baseArrowRule(f.cfg.Color, f.cfg.StrokeWidth)}
	dur := f.Duration()
	for i := 1; i <= f.cfg.Count; i++ {
		rules = append(rules, scene.Rule{
			Selector: fmt.Sprintf(".arrow%d", i),
			Decls: []scene.Decl{{
				Prop:  "animation",
				Value: fmt.Sprintf("flow%d %.2fs %s infinite", i, dur, f.cfg.Easing),
			}},
		})
	}
	return rules
}

func (f *Flow) Keyframes() []scene.Keyframes {
	start, end := flowTransforms(f.cfg.Direction, f.travel()/2)
	blocks := make([]scene.Keyframes, f.cfg.Count)
	for i := 1; i <= f.cfg.Count; i++ {
		blocks[i-1] = scene.Keyframes{
			Name: fmt.Sprintf("flow%d", i),
			Frames: []scene.Frame{
				{At: "0%", Decls: []scene.Decl{
					{Prop: "transform", Value: start},
					{Prop: "opacity", Value: "0"},
				}},
				{At: "20%", Decls: []scene.Decl{{Prop: "opacity", Value: "1"}}},
				{At: "80%", Decls: []scene.Decl{{Prop: "opacity", Value: "1"}}},
				{At: "100%", Decls: []scene.Decl{
					{Prop: "transform", Value: end},
					{Prop: "opacity", Value: "0"},
				}},
			},
		}
	}
	return blocks
}

// flowTransforms returns the keyframe start and end transforms: half the
// travel distance on each side of the resting position, signed so motion
// runs in the given direction.
func flowTransforms(d arrow.Direction, half int) (start, end string) {
	switch d {
	case arrow.DirectionDown:
		return fmt.Sprintf("translateY(-%dpx)", half), fmt.Sprintf("translateY(%dpx)", half)
	case arrow.DirectionUp:
		return fmt.Sprintf("translateY(%dpx)", half), fmt.Sprintf("translateY(-%dpx)", half)
	case arrow.DirectionLeft:
		return fmt.Sprintf("translateX(%dpx)", half), fmt.Sprintf("translateX(-%dpx)", half)
	default: // right
		return fmt.Sprintf("translateX(-%dpx)", half), fmt.Sprintf("translateX(%dpx)", half)
	}
}

func (f *Flow) Elements() []scene.Element {
	pts, _ := geom.ChevronPoints(f.cfg.Direction, f.cfg.Width, f.cfg.Height)
	dur := f.Duration()

	elements := make([]scene.Element, f.cfg.Count)
	for i := 1; i <= f.cfg.Count; i++ {
		g := scene.Group{
			Class:    fmt.Sprintf("arrow arrow%d", i),
			Children: []scene.Element{scene.Polyline{Points: pts[:]}},
		}
		// The first arrow starts at phase zero; the rest are shifted back
		// through the cycle so the stream appears continuous.
		if i > 1 {
			delay := -(float64(i-1) * dur / float64(f.cfg.Count))
			g.Style = []scene.Decl{{Prop: "animation-delay", Value: fmt.Sprintf("%.2fs", delay)}}
		}
		elements[i-1] = g
	}
	return elements
}

var (
	_ Pattern   = (*Flow)(nil)
	_ Generator = (*Flow)(nil)
)
