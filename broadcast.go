package treeflat

import "github.com/signadot/treeflat/debug"

// BroadcastToAndFlatten aligns v against the shape described by spec and
// returns the leaf sequence v would have if expanded to fill that shape. A
// leaf of v may stand in for an entire subtree of spec, in which case it is
// repeated once per leaf slot; v may never be deeper or wider than spec.
//
// The second result reports whether a legal expansion exists. Absence is an
// expected, recoverable outcome, not a fault: the container kinds, child
// counts and contexts of v must match spec exactly (same mapping keys in
// the same order) wherever v is composite.
func (r *Registry) BroadcastToAndFlatten(v any, spec *Spec) ([]any, bool) {
	if !spec.checkValid() {
		return nil, false
	}
	def, ok := r.lookupValue(v)
	if !ok {
		res := make([]any, spec.numLeaves)
		for i := range res {
			res[i] = v
		}
		return res, true
	}
	if spec.kind == LeafKind {
		// composite value, single leaf slot
		return nil, false
	}
	if def.Name != spec.typ {
		return nil, false
	}
	children, ctx := def.Flatten(v)
	if len(children) != len(spec.children) || !contextEqual(ctx, spec.ctx) {
		if debug.Broadcast() {
			debug.Logf("broadcast: %s mismatch against %s\n", def.Name, spec)
		}
		return nil, false
	}
	res := make([]any, 0, spec.numLeaves)
	for i, c := range children {
		flat, ok := r.BroadcastToAndFlatten(c, spec.children[i])
		if !ok {
			return nil, false
		}
		res = append(res, flat...)
	}
	return res, true
}

// BroadcastToAndFlatten broadcasts against the default registry.
func BroadcastToAndFlatten(v any, spec *Spec) ([]any, bool) {
	return std.BroadcastToAndFlatten(v, spec)
}
