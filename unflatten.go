package treeflat

import "fmt"

// Unflatten rebuilds the value described by spec from leaves. It is the
// inverse of Flatten: Unflatten(Flatten(v)) == v for any v built from
// registered container kinds.
//
// It fails with ErrInvalidSpec if spec is not a valid descriptor, and with
// ErrLeafCount if len(leaves) disagrees with spec.NumLeaves(). There is no
// partial reconstruction: on error the result is nil.
func (r *Registry) Unflatten(leaves []any, spec *Spec) (any, error) {
	if !spec.checkValid() {
		return nil, fmt.Errorf("%w: %v is not a descriptor", ErrInvalidSpec, spec)
	}
	if len(leaves) != spec.numLeaves {
		return nil, fmt.Errorf("%w: got %d leaves for a spec holding %d",
			ErrLeafCount, len(leaves), spec.numLeaves)
	}
	if spec.kind == LeafKind {
		return leaves[0], nil
	}
	def, ok := r.LookupName(spec.typ)
	if !ok {
		return nil, fmt.Errorf("%w: container kind %q is not registered", ErrInvalidSpec, spec.typ)
	}
	children := make([]any, len(spec.children))
	start := 0
	for i, cs := range spec.children {
		end := start + cs.NumLeaves()
		c, err := r.Unflatten(leaves[start:end], cs)
		if err != nil {
			return nil, err
		}
		children[i] = c
		start = end
	}
	return def.Unflatten(children, spec.ctx), nil
}

// Unflatten rebuilds a value using the default registry.
func Unflatten(leaves []any, spec *Spec) (any, error) {
	return std.Unflatten(leaves, spec)
}
