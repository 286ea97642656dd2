package treeflat

import (
	"fmt"
	"strings"
)

// String renders the spec reproducibly: "*" for a leaf, and
// name{context}[children...] for a container node, e.g.
//
//	map{x, y}[list[*, *], tuple[*]]
//
// Equal specs render identically, so the rendering is usable as a cache or
// shape-matching key.
func (s *Spec) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s *Spec) render(b *strings.Builder) {
	if s.kind == LeafKind {
		b.WriteByte('*')
		return
	}
	b.WriteString(s.typ)
	if s.ctx != nil {
		b.WriteByte('{')
		b.WriteString(renderContext(s.ctx))
		b.WriteByte('}')
	}
	b.WriteByte('[')
	for i, c := range s.children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.render(b)
	}
	b.WriteByte(']')
}

func renderContext(ctx Context) string {
	switch c := ctx.(type) {
	case Keys:
		return strings.Join(c, ", ")
	case []string:
		return strings.Join(c, ", ")
	}
	return fmt.Sprintf("%v", ctx)
}
