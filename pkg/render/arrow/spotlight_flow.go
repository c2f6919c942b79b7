package arrow

import (
	"fmt"
	"math"

	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/geom"
	"github.com/helgeesch/captain-arro/pkg/render/arrow/layout"
	"github.com/helgeesch/captain-arro/pkg/scene"
)

// SpotlightFlowConfig configures the spotlight flow pattern: a row of
// chevrons drawn twice (a permanently dimmed copy under a highlighted
// copy), with a soft-edged mask rectangle sweeping across the highlighted
// layer. Zero-value fields take the documented defaults; fractional fields
// are clamped into their valid ranges.
type SpotlightFlowConfig struct {
	Color         string          // default "#2563eb"
	StrokeWidth   int             // default 10, floor 2
	Width         int             // default 100
	Height        int             // default 100
	Count         int             // default 3, floor 1
	Direction     arrow.Direction // default right
	Speed         arrow.Speed     // required
	SpotlightSize float64         // default 0.3, clamped to [0.1, 1.0]
	PathExtension float64         // default 0.5, floor 0; extends the sweep past the canvas edge
	DimOpacity    float64         // default 0.2, clamped to [0, 1]
}

// SpotlightFlow renders the spotlight flow pattern.
type SpotlightFlow struct {
	cfg SpotlightFlowConfig
}

// NewSpotlightFlow validates cfg and returns a spotlight flow generator.
func NewSpotlightFlow(cfg SpotlightFlowConfig) (*SpotlightFlow, error) {
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
		cfg.Count = 3
	}
	if cfg.Direction == "" {
		cfg.Direction = arrow.DirectionRight
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.SpotlightSize == 0 {
		cfg.SpotlightSize = 0.3
	}
	if cfg.PathExtension == 0 {
		cfg.PathExtension = 0.5
	}
	if cfg.DimOpacity == 0 {
		cfg.DimOpacity = 0.2
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

	if cfg.StrokeWidth < 2 {
		cfg.StrokeWidth = 2
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	cfg.SpotlightSize = clampFraction(cfg.SpotlightSize, 0.1, 1.0)
	cfg.PathExtension = math.Max(0, cfg.PathExtension)
	cfg.DimOpacity = clampFraction(cfg.DimOpacity, 0, 1)
	return &SpotlightFlow{cfg: cfg}, nil
}

// Generate renders the document. Pure up to the identifier-suffix mode.
func (s *SpotlightFlow) Generate(opts ...GenerateOption) []byte {
	return Compose(s, opts...)
}

// span and cross are the canvas extents along and across the travel axis.
func (s *SpotlightFlow) span() int {
	if s.cfg.Direction.Horizontal() {
		return s.cfg.Width
	}
	return s.cfg.Height
}

func (s *SpotlightFlow) cross() int {
	if s.cfg.Direction.Horizontal() {
		return s.cfg.Height
	}
	return s.cfg.Width
}

// sweepDims returns the sweep rectangle size: 60% of the span plus 40% per
// unit of path extension along the travel axis, double the canvas across
// it so the gradient edge never shows at the rim.
func (s *SpotlightFlow) sweepDims() (along, across float64) {
	along = float64(s.span()) * (0.6 + 0.4*s.cfg.PathExtension)
	across = float64(s.cross()) * 2.0
	return along, across
}

// Duration returns the resolved cycle duration. The travel distance is the
// span extended by the path-extension factor, so the sweep's fade-in and
// fade-out happen past the visible canvas.
func (s *SpotlightFlow) Duration() float64 {
	distance := float64(s.span()) * (1.0 + s.cfg.PathExtension)
	return s.cfg.Speed.Duration(distance)
}

func (s *SpotlightFlow) Size() (int, int) { return s.cfg.Width, s.cfg.Height }

func (s *SpotlightFlow) ClipBounds() scene.Rect {
	return scene.Rect{X: 0, Y: 0, Width: s.cfg.Width, Height: s.cfg.Height}
}

func (s *SpotlightFlow) Defs() []scene.Def {
	// 4-stop soft-edge gradient: transparent rims, opaque core sized by
	// the spotlight fraction.
	a := clampFraction((100.0-s.cfg.SpotlightSize*100.0)/2.0, 0, 50)
	b := 100.0 - a

	grad := scene.LinearGradient{ID: maskGradID, X2: 1}
	if !s.cfg.Direction.Horizontal() {
		grad = scene.LinearGradient{ID: maskGradID, Y2: 1}
	}
	grad.Stops = []scene.Stop{
		{Offset: "0%", Color: "black", Opacity: "0"},
		{Offset: fmt.Sprintf("%.1f%%", a), Color: "white", Opacity: "1"},
		{Offset: fmt.Sprintf("%.1f%%", b), Color: "white", Opacity: "1"},
		{Offset: "100%", Color: "black", Opacity: "0"},
	}

	along, across := s.sweepDims()
	rectW, rectH := along, across
	if !s.cfg.Direction.Horizontal() {
		rectW, rectH = across, along
	}
	mask := scene.Mask{
		ID:     sweepMaskID,
		Bounds: scene.Rect{X: 0, Y: 0, Width: s.cfg.Width, Height: s.cfg.Height},
		Rect: scene.MaskRect{
			Class:  "sweep-rect",
			X:      (float64(s.cfg.Width) - rectW) / 2.0,
			Y:      (float64(s.cfg.Height) - rectH) / 2.0,
			Width:  rectW,
			Height: rectH,
			Fill:   maskGradID,
		},
	}
	return []scene.Def{grad, mask}
}

func (s *SpotlightFlow) StyleRules() []scene.Rule {
	dim := append(strokeDecls(s.cfg.Color, "", s.cfg.StrokeWidth),
		scene.Decl{Prop: "stroke-opacity", Value: formatOpacity(s.cfg.DimOpacity)})
	hi := append(strokeDecls(s.cfg.Color, "", s.cfg.StrokeWidth),
		scene.Decl{Prop: "mask", Ref: sweepMaskID})

	return []scene.Rule{
		{Selector: ".arrow-dim polyline", Decls: dim},
		{Selector: ".arrow-hi polyline", Decls: hi},
		{Selector: ".sweep-rect", Decls: []scene.Decl{
			{Prop: "animation", Value: fmt.Sprintf("sweep %.2fs linear infinite", s.Duration())},
			{Prop: "transform-box", Value: "fill-box"},
			{Prop: "transform-origin", Value: "center"},
		}},
	}
}

func (s *SpotlightFlow) Keyframes() []scene.Keyframes {
	along, _ := s.sweepDims()
	travel := (float64(s.span()) + along) / 2.0

	var start, end string
	switch s.cfg.Direction {
	case arrow.DirectionRight:
		start, end = fmt.Sprintf("translateX(-%.2fpx)", travel), fmt.Sprintf("translateX(%.2fpx)", travel)
	case arrow.DirectionLeft:
		start, end = fmt.Sprintf("translateX(%.2fpx)", travel), fmt.Sprintf("translateX(-%.2fpx)", travel)
	case arrow.DirectionDown:
		start, end = fmt.Sprintf("translateY(-%.2fpx)", travel), fmt.Sprintf("translateY(%.2fpx)", travel)
	default: // up
		start, end = fmt.Sprintf("translateY(%.2fpx)", travel), fmt.Sprintf("translateY(-%.2fpx)", travel)
	}

	return []scene.Keyframes{{
		Name: "sweep",
		Frames: []scene.Frame{
			{At: "0%", Decls: []scene.Decl{{Prop: "transform", Value: start}}},
			{At: "100%", Decls: []scene.Decl{{Prop: "transform", Value: end}}},
		},
	}}
}

func (s *SpotlightFlow) Elements() []scene.Element {
	span := s.span()
	positions := layout.EvenSpaced(span, span/5, s.cfg.Count)
	base, _ := geom.ChevronPoints(s.cfg.Direction, s.cfg.Width, s.cfg.Height)

	polylines := make([]scene.Element, len(positions))
	for i, pos := range positions {
		dx, dy := pos-span/2, 0
		if !s.cfg.Direction.Horizontal() {
			dx, dy = 0, pos-span/2
		}
		pts := geom.Offset(base, dx, dy)
		polylines[i] = scene.Polyline{Points: pts[:]}
	}

	// The dimmed layer sits under the masked highlight layer; both carry
	// identical glyphs so only the sweep differentiates them.
	return []scene.Element{
		scene.Group{Class: "arrow-dim", Children: polylines},
		scene.Group{Class: "arrow-hi", Children: polylines},
	}
}

var (
	_ Pattern   = (*SpotlightFlow)(nil)
	_ Generator = (*SpotlightFlow)(nil)
)
