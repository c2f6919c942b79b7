// Package scene models a composed SVG document as a tree of typed nodes.
// Generators build the tree and Render serializes it once at the end.
// Identifiers and references are typed fields rather than embedded strings,
// so the serializer can append the document's unique suffix at every
// defining and referencing position in one place. Two documents embedded in
// the same page therefore never collide on clip, gradient or mask ids.
package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// ID names a def (clip path, gradient, mask) within a document. The
// document suffix is appended wherever an ID is rendered.
type ID string

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Def is a node rendered inside the document's <defs> block.
type Def interface {
	renderDef(w *writer)
}

// Element is a drawable node inside the clipped content group.
type Element interface {
	renderElement(w *writer, indent string)
}

// Document is a complete arrow scene: the canvas frame, defs, one style
// block, and the clip-wrapped content elements.
type Document struct {
	Width   int
	Height  int
	ClipID  ID   // id of the clip path wrapping the content
	Clip    Rect // clip rectangle
	Defs    []Def
	Style   Style
	Content []Element
	Suffix  string // appended to every id and reference
}

// Render serializes the document to SVG text. Rendering is pure: the same
// document always produces the same bytes.
func (d *Document) Render() []byte {
	w := &writer{suffix: d.Suffix}

	fmt.Fprintf(&w.buf, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		d.Width, d.Height, d.Width, d.Height)

	w.buf.WriteString("  <defs>\n")
	fmt.Fprintf(&w.buf, "    <clipPath id=\"%s\">\n", w.id(d.ClipID))
	fmt.Fprintf(&w.buf, "      <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
		d.Clip.X, d.Clip.Y, d.Clip.Width, d.Clip.Height)
	w.buf.WriteString("    </clipPath>\n")
	for _, def := range d.Defs {
		def.renderDef(w)
	}
	w.buf.WriteString("  </defs>\n")

	d.Style.render(w)

	fmt.Fprintf(&w.buf, "  <g clip-path=\"%s\">\n", w.ref(d.ClipID))
	for _, el := range d.Content {
		el.renderElement(w, "    ")
	}
	w.buf.WriteString("  </g>\n")
	w.buf.WriteString("</svg>\n")

	return w.buf.Bytes()
}

// writer carries the output buffer and the identifier suffix through the
// render pass.
type writer struct {
	buf    bytes.Buffer
	suffix string
}

// id renders a defining occurrence of an identifier.
func (w *writer) id(id ID) string {
	return string(id) + w.suffix
}

// ref renders a url(#...) reference to an identifier.
func (w *writer) ref(id ID) string {
	return "url(#" + string(id) + w.suffix + ")"
}

// declValue resolves a declaration to its rendered value.
func (w *writer) declValue(d Decl) string {
	if d.Ref != "" {
		return w.ref(d.Ref)
	}
	return escape(d.Value)
}

// escape XML-escapes a string destined for an attribute value or the style
// block. Option validation rejects markup characters up front; escaping
// here keeps the serializer's output well-formed regardless of its input.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
