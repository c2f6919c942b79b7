package arrow

import (
	"fmt"

	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/geom"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/layout"
	"github.com/helgeesch/captain-arro/pkg/scene"
)

// SpotlightSpreadConfig configures the spotlight spread pattern: the split
// group layout of Spread, stroked by per-group animated gradients whose
// bright band sweeps outward from the center. Zero-value fields take the
// documented defaults.
type SpotlightSpreadConfig struct {
	Color          string            // default "#2563eb"
	StrokeWidth    int               // default 10, floor 2
	Width          int               // default 100
	Height         int               // default 100
	Count          int               // default 4, floor 2; odd counts drop one arrow (n/2 per side)
	Orientation    arrow.Orientation // default horizontal
	Speed          arrow.Speed       // required
	SpotlightSize  float64           // default 0.3, clamped to [0.1, 1.0]
	DimOpacity     float64           // default 0.2, clamped to [0, 1]
	CenterGapRatio float64           // default 0.2, clamped to [0.1, 0.4]
}

// SpotlightSpread renders the spotlight spread pattern. Unlike the other
// patterns its animation lives in SMIL gradient transforms rather than CSS
// keyframes, because CSS cannot animate gradient coordinates.
type SpotlightSpread struct {
	cfg SpotlightSpreadConfig
}

// NewSpotlightSpread validates cfg and returns a spotlight spread generator.
func NewSpotlightSpread(cfg SpotlightSpreadConfig) (*SpotlightSpread, error) {
	if cfg.Width == 0 {
		cfg.Width = 100
	}
	if cfg.Height == 0 {
		cfg.Height = 100
	}
	if cfg.StrokeWidth == 0 {
		cfg.StrokeWidth = 10
	}
	if cfg.Count == 0 {
		cfg.Count = 4
	}
	if cfg.Orientation == "" {
		cfg.Orientation = arrow.OrientationHorizontal
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.SpotlightSize == 0 {
		cfg.SpotlightSize = 0.3
	}
	if cfg.DimOpacity == 0 {
		cfg.DimOpacity = 0.2
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

	if cfg.StrokeWidth < 2 {
		cfg.StrokeWidth = 2
	}
	if cfg.Count < 2 {
		cfg.Count = 2
	}
	cfg.SpotlightSize = clampFraction(cfg.SpotlightSize, 0.1, 1.0)
	cfg.DimOpacity = clampFraction(cfg.DimOpacity, 0, 1)
	cfg.CenterGapRatio = clampFraction(cfg.CenterGapRatio, 0.1, 0.4)
	return &SpotlightSpread{cfg: cfg}, nil
}

// Generate renders the document. Pure up to the identifier-suffix mode.
func (s *SpotlightSpread) Generate(opts ...GenerateOption) []byte {
	return Compose(s, opts...)
}

func (s *SpotlightSpread) span() int {
	if s.cfg.Orientation.Horizontal() {
		return s.cfg.Width
	}
	return s.cfg.Height
}

// Duration returns the resolved cycle duration for one full-span sweep.
func (s *SpotlightSpread) Duration() float64 {
	return s.cfg.Speed.Duration(float64(s.span()))
}

func (s *SpotlightSpread) groupNames() (near, far string) {
	if s.cfg.Orientation.Horizontal() {
		return "left", "right"
	}
	return "top", "bottom"
}

func (s *SpotlightSpread) glyphDirections() (near, far arrow.Direction) {
	if s.cfg.Orientation.Horizontal() {
		return arrow.DirectionLeft, arrow.DirectionRight
	}
	return arrow.DirectionUp, arrow.DirectionDown
}

func gradientID(group string) scene.ID {
	switch group {
	case "left":
		return "spotlightGradientLeft"
	case "right":
		return "spotlightGradientRight"
	case "top":
		return "spotlightGradientTop"
	default:
		return "spotlightGradientBottom"
	}
}

func (s *SpotlightSpread) Size() (int, int) { return s.cfg.Width, s.cfg.Height }

// ClipBounds insets the clip by a tenth of the span on the spread axis,
// matching the bouncing spread geometry.
func (s *SpotlightSpread) ClipBounds() scene.Rect {
	if s.cfg.Orientation.Horizontal() {
		m := s.cfg.Width / 10
		return scene.Rect{X: m, Y: 0, Width: s.cfg.Width - 2*m, Height: s.cfg.Height}
	}
	m := s.cfg.Height / 10
	return scene.Rect{X: 0, Y: m, Width: s.cfg.Width, Height: s.cfg.Height - 2*m}
}

// Defs emits one animated gradient per group. The two sweeps travel in
// opposite directions so both highlights read as moving outward from the
// center gap.
func (s *SpotlightSpread) Defs() []scene.Def {
	near, far := s.groupNames()
	dur := s.Duration()
	span := s.span()
	center := span / 2

	nearGrad := scene.LinearGradient{
		ID:    gradientID(near),
		Units: "userSpaceOnUse",
		Animate: &scene.AnimateTransform{
			Attribute: "gradientTransform",
			Type:      "translate",
			Dur:       dur,
			Repeat:    "indefinite",
		},
		Stops: s.stops(),
	}
	farGrad := scene.LinearGradient{
		ID:    gradientID(far),
		Units: "userSpaceOnUse",
		Animate: &scene.AnimateTransform{
			Attribute: "gradientTransform",
			Type:      "translate",
			Dur:       dur,
			Repeat:    "indefinite",
		},
		Stops: s.stops(),
	}

	if s.cfg.Orientation.Horizontal() {
		nearGrad.X2 = span
		nearGrad.Animate.Values = fmt.Sprintf("%d 0; -%d 0", center, span)
		farGrad.X1 = -span
		farGrad.Animate.Values = fmt.Sprintf("-%d 0; %d 0", center, span)
	} else {
		nearGrad.Y2 = span
		nearGrad.Animate.Values = fmt.Sprintf("0 %d; 0 -%d", center, span)
		farGrad.Y1 = -span
		farGrad.Animate.Values = fmt.Sprintf("0 -%d; 0 %d", center, span)
	}
	return []scene.Def{nearGrad, farGrad}
}

// stops builds the 5-stop spotlight gradient: dim shoulders around an
// opaque band sized by the spotlight fraction.
func (s *SpotlightSpread) stops() []scene.Stop {
	spotlight := s.cfg.SpotlightSize * 100.0
	dimBefore := (100.0 - spotlight) / 2.0
	dimAfter := dimBefore + spotlight
	dim := formatOpacity(s.cfg.DimOpacity)

	return []scene.Stop{
		{Offset: "0%", Color: s.cfg.Color, Opacity: dim},
		{Offset: fmt.Sprintf("%.1f%%", dimBefore), Color: s.cfg.Color, Opacity: dim},
		{Offset: "50%", Color: s.cfg.Color, Opacity: "1"},
		{Offset: fmt.Sprintf("%.1f%%", dimAfter), Color: s.cfg.Color, Opacity: dim},
		{Offset: "100%", Color: s.cfg.Color, Opacity: dim},
	}
}

func (s *SpotlightSpread) StyleRules() []scene.Rule {
	near, far := s.groupNames()
	return []scene.Rule{
		{Selector: ".arrow-" + near, Decls: strokeDecls("", gradientID(near), s.cfg.StrokeWidth)},
		{Selector: ".arrow-" + far, Decls: strokeDecls("", gradientID(far), s.cfg.StrokeWidth)},
	}
}

// Keyframes is empty: the sweep is driven by SMIL animateTransform inside
// the gradient defs.
func (s *SpotlightSpread) Keyframes() []scene.Keyframes { return nil }

func (s *SpotlightSpread) Elements() []scene.Element {
	split := layout.SplitGroups(s.span(), s.cfg.Count, s.cfg.CenterGapRatio)
	nearName, farName := s.groupNames()
	nearDir, farDir := s.glyphDirections()

	var out []scene.Element
	out = append(out, s.glyphs(split.Near, "arrow-"+nearName, nearDir)...)
	out = append(out, s.glyphs(split.Far, "arrow-"+farName, farDir)...)
	return out
}

// glyphs emits one classed, translated group per axis position.
func (s *SpotlightSpread) glyphs(positions []int, class string, dir arrow.Direction) []scene.Element {
	pts, _ := geom.SpreadChevronPoints(dir, s.cfg.Width, s.cfg.Height)
	out := make([]scene.Element, len(positions))
	for i, pos := range positions {
		x, y := pos, s.cfg.Height/2
		if !s.cfg.Orientation.Horizontal() {
			x, y = s.cfg.Width/2, pos
		}
		out[i] = scene.Group{
			Class:    class,
			Style:    []scene.Decl{{Prop: "transform", Value: fmt.Sprintf("translate(%dpx, %dpx)", x, y)}},
			Children: []scene.Element{scene.Polyline{Points: pts[:]}},
		}
	}
	return out
}

var (
	_ Pattern   = (*SpotlightSpread)(nil)
	_ Generator = (*SpotlightSpread)(nil)
)
