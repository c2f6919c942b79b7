package scene

import "fmt"

// Stop is a gradient color stop. Offset and opacity are preformatted
// strings so each pattern controls its own precision.
type Stop struct {
	Offset  string
	Color   string
	Opacity string
}

// AnimateTransform is a SMIL animation nested inside a gradient def.
type AnimateTransform struct {
	Attribute string  // e.g. "gradientTransform"
	Type      string  // e.g. "translate"
	Values    string  // e.g. "50 0; -100 0"
	Dur       float64 // seconds
	Repeat    string  // e.g. "indefinite"
}

// LinearGradient renders a <linearGradient> def, optionally carrying a
// nested SMIL animation. Axis coordinates are integer user-space values, or
// the 0/1 unit vector when Units is empty.
type LinearGradient struct {
	ID      ID
	X1, Y1  int
	X2, Y2  int
	Units   string // "userSpaceOnUse" or empty
	Animate *AnimateTransform
	Stops   []Stop
}

func (g LinearGradient) renderDef(w *writer) {
	fmt.Fprintf(&w.buf, "    <linearGradient id=\"%s\" x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\"",
		w.id(g.ID), g.X1, g.Y1, g.X2, g.Y2)
	if g.Units != "" {
		fmt.Fprintf(&w.buf, " gradientUnits=\"%s\"", g.Units)
	}
	w.buf.WriteString(">\n")
	if a := g.Animate; a != nil {
		fmt.Fprintf(&w.buf, "      <animateTransform attributeName=\"%s\" type=\"%s\" values=\"%s\" dur=\"%.2fs\" repeatCount=\"%s\"/>\n",
			a.Attribute, a.Type, a.Values, a.Dur, a.Repeat)
	}
	for _, s := range g.Stops {
		fmt.Fprintf(&w.buf, "      <stop offset=\"%s\" stop-color=\"%s\" stop-opacity=\"%s\"/>\n",
			s.Offset, escape(s.Color), s.Opacity)
	}
	w.buf.WriteString("    </linearGradient>\n")
}

// MaskRect is the rectangle inside a mask, typically the animated sweep
// surface. Coordinates are rendered with two decimals.
type MaskRect struct {
	Class  string
	X, Y   float64
	Width  float64
	Height float64
	Fill   ID // gradient reference
}

// Mask renders a <mask> def covering the given user-space region.
type Mask struct {
	ID     ID
	Bounds Rect
	Rect   MaskRect
}

func (m Mask) renderDef(w *writer) {
	fmt.Fprintf(&w.buf, "    <mask id=\"%s\" maskUnits=\"userSpaceOnUse\" x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\">\n",
		w.id(m.ID), m.Bounds.X, m.Bounds.Y, m.Bounds.Width, m.Bounds.Height)
	r := m.Rect
	fmt.Fprintf(&w.buf, "      <rect class=\"%s\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
		r.Class, r.X, r.Y, r.Width, r.Height, w.ref(r.Fill))
	w.buf.WriteString("    </mask>\n")
}
