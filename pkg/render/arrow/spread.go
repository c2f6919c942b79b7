package arrow

import (
	"fmt"

	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/geom"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/layout"
	"github.com/helgeesch/captain-arro/pkg/scene"
)

// SpreadConfig configures the bouncing spread pattern: two groups of
// compact chevrons on either side of a center gap, pulsing outward and
// retracting in alternate (ping-pong) timing. Zero-value fields take the
// documented defaults.
type SpreadConfig struct {
	Color          string            // default "#2563eb"
	StrokeWidth    int               // default 2, floor 2
	Width          int               // default 300
	Height         int               // default 150
	Count          int               // default 6, floor 2; odd counts drop one arrow (n/2 per side)
	Orientation    arrow.Orientation // default vertical
	Speed          arrow.Speed       // required
	Easing         string            // default "ease-in-out"
	CenterGapRatio float64           // default 0.2, clamped to [0.1, 0.4]
}

// Spread renders the bouncing spread pattern.
type Spread struct {
	cfg SpreadConfig
}

// NewSpread validates cfg and returns a spread generator.
func NewSpread(cfg SpreadConfig) (*Spread, error) {
	if cfg.Width == 0 {
		cfg.Width = 300
	}
	if cfg.Height == 0 {
		cfg.Height = 150
	}
	if cfg.StrokeWidth == 0 {
		cfg.StrokeWidth = 2
	}
	if cfg.Count == 0 {
		cfg.Count = 6
	}
	if cfg.Orientation == "" {
		cfg.Orientation = arrow.OrientationVertical
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.Easing == "" {
		cfg.Easing = DefaultEasing
	}
	if cfg.CenterGapRatio == 0 {
		cfg.CenterGapRatio = 0.2
	}

	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if err := cfg.Orientation.Validate(); err != nil {
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
	if cfg.Count < 2 {
		cfg.Count = 2
	}
	cfg.CenterGapRatio = clampFraction(cfg.CenterGapRatio, 0.1, 0.4)
	return &Spread{cfg: cfg}, nil
}

// Generate renders the document. Pure up to the identifier-suffix mode.
func (s *Spread) Generate(opts ...GenerateOption) []byte {
	return Compose(s, opts...)
}

// span is the canvas extent along the spread axis.
func (s *Spread) span() int {
	if s.cfg.Orientation.Horizontal() {
		return s.cfg.Width
	}
	return s.cfg.Height
}

// travel is the bounce displacement: 15% of the margin-inset span.
func (s *Spread) travel() int {
	avail := s.span() - 2*(s.span()/8)
	return int(float64(avail) * 0.15)
}

// Duration returns the resolved cycle duration for one outward bounce.
func (s *Spread) Duration() float64 {
	return s.cfg.Speed.Duration(float64(s.travel()))
}

// groupNames returns the class suffixes of the near and far groups.
func (s *Spread) groupNames() (near, far string) {
	if s.cfg.Orientation.Horizontal() {
		return "left", "right"
	}
	return "top", "bottom"
}

// glyphDirections returns the chevron orientations of the two groups, both
// pointing away from the center.
func (s *Spread) glyphDirections() (near, far arrow.Direction) {
	if s.cfg.Orientation.Horizontal() {
		return arrow.DirectionLeft, arrow.DirectionRight
	}
	return arrow.DirectionUp, arrow.DirectionDown
}

func (s *Spread) Size() (int, int) { return s.cfg.Width, s.cfg.Height }

// ClipBounds insets the clip by a tenth of the span on the spread axis so
// the bounce never paints over the canvas rim.
func (s *Spread) ClipBounds() scene.Rect {
	if s.cfg.Orientation.Horizontal() {
		m := s.cfg.Width / 10
		return scene.Rect{X: m, Y: 0, Width: s.cfg.Width - 2*m, Height: s.cfg.Height}
	}
	m := s.cfg.Height / 10
	return scene.Rect{X: 0, Y: m, Width: s.cfg.Width, Height: s.cfg.Height - 2*m}
}

func (s *Spread) Defs() []scene.Def { return nil }

func (s *Spread) StyleRules() []scene.Rule {
	near, far := s.groupNames()
	dur := s.Duration()
	animation := func(name string) string {
		return fmt.Sprintf("%s %.2fs %s infinite alternate", name, dur, s.cfg.Easing)
	}
	return []scene.Rule{
		baseArrowRule(s.cfg.Color, s.cfg.StrokeWidth),
		{Selector: ".group-" + near, Decls: []scene.Decl{
			{Prop: "animation", Value: animation(keyframeName(near))},
		}},
		{Selector: ".group-" + far, Decls: []scene.Decl{
			{Prop: "animation", Value: animation(keyframeName(far))},
		}},
	}
}

// keyframeName maps a group name to its keyframes block name.
func keyframeName(group string) string {
	switch group {
	case "left":
		return "moveLeft"
	case "right":
		return "moveRight"
	case "top":
		return "moveTop"
	default:
		return "moveBottom"
	}
}

func (s *Spread) Keyframes() []scene.Keyframes {
	near, far := s.groupNames()
	d := s.travel()

	axis := "translateY"
	if s.cfg.Orientation.Horizontal() {
		axis = "translateX"
	}
	// The near group displaces positive and the far group negative; under
	// alternate timing both read as an outward pulse from the gap.
	bounce := func(name string, dist int) scene.Keyframes {
		return scene.Keyframes{
			Name: name,
			Frames: []scene.Frame{
				{At: "0%", Decls: []scene.Decl{{Prop: "transform", Value: fmt.Sprintf("%s(0px)", axis)}}},
				{At: "100%", Decls: []scene.Decl{{Prop: "transform", Value: fmt.Sprintf("%s(%dpx)", axis, dist)}}},
			},
		}
	}
	return []scene.Keyframes{
		bounce(keyframeName(near), d),
		bounce(keyframeName(far), -d),
	}
}

func (s *Spread) Elements() []scene.Element {
	split := layout.SplitGroups(s.span(), s.cfg.Count, s.cfg.CenterGapRatio)
	nearName, farName := s.groupNames()
	nearDir, farDir := s.glyphDirections()

	return []scene.Element{
		scene.Group{Class: "arrow group-" + nearName, Children: s.glyphs(split.Near, nearDir)},
		scene.Group{Class: "arrow group-" + farName, Children: s.glyphs(split.Far, farDir)},
	}
}

// glyphs wraps one spread chevron per axis position in a translated group.
func (s *Spread) glyphs(positions []int, dir arrow.Direction) []scene.Element {
	pts, _ := geom.SpreadChevronPoints(dir, s.cfg.Width, s.cfg.Height)
	out := make([]scene.Element, len(positions))
	for i, pos := range positions {
		x, y := pos, s.cfg.Height/2
		if !s.cfg.Orientation.Horizontal() {
			x, y = s.cfg.Width/2, pos
		}
		out[i] = scene.Group{
			Style:    []scene.Decl{{Prop: "transform", Value: fmt.Sprintf("translate(%dpx, %dpx)", x, y)}},
			Children: []scene.Element{scene.Polyline{Points: pts[:]}},
		}
	}
	return out
}

var (
	_ Pattern   = (*Spread)(nil)
	_ Generator = (*Spread)(nil)
)
