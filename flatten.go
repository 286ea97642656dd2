package treeflat

import "github.com/signadot/treeflat/debug"

// Flatten decomposes v into its leaves, in pre-order (depth-first,
// left-to-right), and the Spec describing its shape. It never fails: any
// value is either a registered container or a leaf.
func (r *Registry) Flatten(v any) ([]any, *Spec) {
	leaves, spec := r.flatten(nil, v)
	if debug.Flatten() {
		debug.Logf("flatten: %d leaves, spec %s\n", len(leaves), spec)
	}
	return leaves, spec
}

func (r *Registry) flatten(acc []any, v any) ([]any, *Spec) {
	def, ok := r.lookupValue(v)
	if !ok {
		return append(acc, v), LeafSpec()
	}
	children, ctx := def.Flatten(v)
	specs := make([]*Spec, len(children))
	for i, c := range children {
		acc, specs[i] = r.flatten(acc, c)
	}
	return acc, NodeSpec(def.Name, ctx, specs)
}

// Flatten decomposes v using the default registry.
func Flatten(v any) ([]any, *Spec) {
	return std.Flatten(v)
}
