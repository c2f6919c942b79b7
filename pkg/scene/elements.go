package scene

import (
	"fmt"
	"strings"

	"github.com/helgeesch/captain-arro/pkg/arrow"
)

// Group renders a <g> element with an optional class and inline style
// declarations.
type Group struct {
	Class    string
	Style    []Decl
	Children []Element
}

func (g Group) renderElement(w *writer, indent string) {
	w.buf.WriteString(indent + "<g")
	if g.Class != "" {
		fmt.Fprintf(&w.buf, " class=\"%s\"", g.Class)
	}
	if len(g.Style) > 0 {
		parts := make([]string, len(g.Style))
		for i, d := range g.Style {
			parts[i] = fmt.Sprintf("%s: %s;", d.Prop, w.declValue(d))
		}
		fmt.Fprintf(&w.buf, " style=\"%s\"", strings.Join(parts, " "))
	}
	w.buf.WriteString(">\n")
	for _, c := range g.Children {
		c.renderElement(w, indent+"  ")
	}
	w.buf.WriteString(indent + "</g>\n")
}

// Polyline renders an open polyline through integer points.
type Polyline struct {
	Points []arrow.Point
}

func (p Polyline) renderElement(w *writer, indent string) {
	w.buf.WriteString(indent + `<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			w.buf.WriteByte(' ')
		}
		fmt.Fprintf(&w.buf, "%d,%d", pt.X, pt.Y)
	}
	w.buf.WriteString("\"/>\n")
}
