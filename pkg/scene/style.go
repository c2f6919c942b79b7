package scene

import "fmt"

// Style is the document's single <style> block: plain rules followed by
// keyframes blocks.
type Style struct {
	Rules     []Rule
	Keyframes []Keyframes
}

// Rule is one CSS rule set.
type Rule struct {
	Selector string
	Decls    []Decl
}

// Decl is a single CSS declaration. Value carries a literal; Ref names a
// def and renders as url(#id) with the document suffix applied. Exactly one
// of the two is set.
type Decl struct {
	Prop  string
	Value string
	Ref   ID
}

// Keyframes is one @keyframes block.
type Keyframes struct {
	Name   string
	Frames []Frame
}

// Frame is one offset inside a keyframes block.
type Frame struct {
	At    string // "0%", "20%", "100%"
	Decls []Decl
}

func (s Style) render(w *writer) {
	w.buf.WriteString("  <style>\n")
	for _, r := range s.Rules {
		fmt.Fprintf(&w.buf, "    %s {\n", r.Selector)
		for _, d := range r.Decls {
			fmt.Fprintf(&w.buf, "      %s: %s;\n", d.Prop, w.declValue(d))
		}
		w.buf.WriteString("    }\n")
	}
	for _, k := range s.Keyframes {
		fmt.Fprintf(&w.buf, "    @keyframes %s {\n", k.Name)
		for _, f := range k.Frames {
			fmt.Fprintf(&w.buf, "      %s {\n", f.At)
			for _, d := range f.Decls {
				fmt.Fprintf(&w.buf, "        %s: %s;\n", d.Prop, w.declValue(d))
			}
			w.buf.WriteString("      }\n")
		}
		w.buf.WriteString("    }\n")
	}
	w.buf.WriteString("  </style>\n")
}
