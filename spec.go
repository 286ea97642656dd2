package treeflat

import (
	"reflect"
	"slices"
)

// Spec describes the shape of one tree node. It is a tagged union: a leaf
// spec stands for exactly one leaf value; a node spec carries a container
// kind name, the context needed to rebuild the container, and one child
// spec per child. A Spec is immutable once constructed; its leaf count is
// derived at construction and never changes.
type Spec struct {
	kind      Kind
	typ       string
	ctx       Context
	children  []*Spec
	numLeaves int
}

var leafSpec = &Spec{kind: LeafKind, numLeaves: 1}

// LeafSpec returns the spec of a single leaf value.
func LeafSpec() *Spec {
	return leafSpec
}

// NodeSpec returns the spec of a container of the named kind with the given
// context and child specs. The caller must not modify children afterwards.
func NodeSpec(typ string, ctx Context, children []*Spec) *Spec {
	n := 0
	for _, c := range children {
		n += c.numLeaves
	}
	return &Spec{
		kind:      NodeKind,
		typ:       typ,
		ctx:       ctx,
		children:  children,
		numLeaves: n,
	}
}

func (s *Spec) Kind() Kind {
	return s.kind
}

// Type returns the container kind name, "" for a leaf spec.
func (s *Spec) Type() string {
	return s.typ
}

func (s *Spec) Context() Context {
	return s.ctx
}

// Children returns a copy of the child specs.
func (s *Spec) Children() []*Spec {
	return slices.Clone(s.children)
}

// NumLeaves returns the number of leaf specs in the subtree rooted here.
func (s *Spec) NumLeaves() int {
	return s.numLeaves
}

func (s *Spec) IsLeaf() bool {
	return s.kind == LeafKind
}

// Equal reports structural equality: kind, container kind name, context
// (by the context's own equality notion) and all child specs, recursively.
func (s *Spec) Equal(o *Spec) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.kind != o.kind || s.typ != o.typ || s.numLeaves != o.numLeaves {
		return false
	}
	if !contextEqual(s.ctx, o.ctx) {
		return false
	}
	if len(s.children) != len(o.children) {
		return false
	}
	for i := range s.children {
		if !s.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func contextEqual(a, b Context) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.Equal(a)
	}
	return reflect.DeepEqual(a, b)
}

// checkValid filters out values Unflatten cannot treat as descriptors: nil
// specs, out-of-range kinds, and zero-value or otherwise inconsistent leaf
// specs.
func (s *Spec) checkValid() bool {
	if s == nil || !s.kind.valid() {
		return false
	}
	if s.kind == LeafKind {
		return s.numLeaves == 1 && len(s.children) == 0
	}
	return true
}
