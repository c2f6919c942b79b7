// Package arrow generates animated SVG arrow documents. Four pattern
// variants share one composition path: each variant implements the Pattern
// capability interface (canvas, clip bounds, defs, style rules, keyframes,
// positioned elements) and Compose assembles the pieces into a scene
// document rendered to SVG text.
//
// Generated documents embed declarative CSS/SMIL animation only; no pixels
// are rendered here. Identifier collisions between documents embedded in
// the same page are avoided by suffixing every def id and reference with a
// per-document suffix (random by default, explicit or disabled on request).
package arrow

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/helgeesch/captain-arro/pkg/scene"
)

// Shared defaults across all pattern variants.
const (
	DefaultColor  = "#2563eb"
	DefaultEasing = "ease-in-out"
)

// Def identifiers before suffixing.
const (
	clipID      scene.ID = "arrowClip"
	maskGradID  scene.ID = "maskGrad"
	sweepMaskID scene.ID = "sweepMask"
)

// Pattern is the capability interface the composer consumes. Each generator
// variant supplies its canvas size, clip region, defs, style block content
// and positioned glyph elements; Compose depends on nothing else.
type Pattern interface {
	Size() (w, h int)
	ClipBounds() scene.Rect
	Defs() []scene.Def
	StyleRules() []scene.Rule
	Keyframes() []scene.Keyframes
	Elements() []scene.Element
}

// Generator is the common generation contract of the four variants.
// Generate never fails: configuration is validated at construction.
type Generator interface {
	Generate(opts ...GenerateOption) []byte
}

// genOptions carries the identifier-suffix mode through a Generate call.
// The default is a fresh random suffix per document.
type genOptions struct {
	random bool
	suffix string
}

// GenerateOption adjusts a single Generate call.
type GenerateOption func(*genOptions)

// WithoutUniqueID disables identifier rewriting. Output becomes
// byte-deterministic for identical configuration, at the cost of id
// collisions when several documents share a page.
func WithoutUniqueID() GenerateOption {
	return func(o *genOptions) {
		o.random = false
		o.suffix = ""
	}
}

// WithIDSuffix uses the given suffix instead of a random one. Output is
// deterministic for a fixed suffix.
func WithIDSuffix(s string) GenerateOption {
	return func(o *genOptions) {
		o.random = false
		o.suffix = s
	}
}

func resolveSuffix(opts []GenerateOption) string {
	o := genOptions{random: true}
	for _, fn := range opts {
		fn(&o)
	}
	if o.random {
		return randomSuffix()
	}
	return o.suffix
}

// randomSuffix returns 6 hex characters drawn from a fresh UUID.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// Compose assembles a pattern into the final SVG document. The suffix mode
// resolved from opts is applied centrally by the scene serializer, so defs
// and references can never disagree.
func Compose(p Pattern, opts ...GenerateOption) []byte {
	w, h := p.Size()
	doc := &scene.Document{
		Width:   w,
		Height:  h,
		ClipID:  clipID,
		Clip:    p.ClipBounds(),
		Defs:    p.Defs(),
		Style:   scene.Style{Rules: p.StyleRules(), Keyframes: p.Keyframes()},
		Content: p.Elements(),
		Suffix:  resolveSuffix(opts),
	}
	return doc.Render()
}

// strokeDecls returns the shared stroke styling declarations. The first
// declaration is the stroke itself: a literal color, or a gradient
// reference when ref is non-empty.
func strokeDecls(color string, ref scene.ID, strokeWidth int) []scene.Decl {
	stroke := scene.Decl{Prop: "stroke", Value: color}
	if ref != "" {
		stroke = scene.Decl{Prop: "stroke", Ref: ref}
	}
	return []scene.Decl{
		stroke,
		{Prop: "stroke-width", Value: strconv.Itoa(strokeWidth)},
		{Prop: "stroke-linecap", Value: "round"},
		{Prop: "stroke-linejoin", Value: "round"},
		{Prop: "fill", Value: "none"},
	}
}

// baseArrowRule is the shared .arrow rule used by patterns that stroke all
// glyphs uniformly.
func baseArrowRule(color string, strokeWidth int) scene.Rule {
	return scene.Rule{Selector: ".arrow", Decls: strokeDecls(color, "", strokeWidth)}
}

// formatOpacity renders an opacity value the way the stylesheet expects,
// without trailing zeros.
func formatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// clampFraction bounds v into [lo, hi].
func clampFraction(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
