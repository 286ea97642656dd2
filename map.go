package treeflat

// Map applies fn to every leaf of v and rebuilds the same shape around the
// results.
func (r *Registry) Map(fn func(any) any, v any) any {
	leaves, spec := r.Flatten(v)
	for i, l := range leaves {
		leaves[i] = fn(l)
	}
	res, err := r.Unflatten(leaves, spec)
	if err != nil {
		// Flatten produced spec and leaves together, so they agree.
		panic(err)
	}
	return res
}

// Map applies fn leafwise using the default registry.
func Map(fn func(any) any, v any) any {
	return std.Map(fn, v)
}
