package treeflat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	leaf := LeafSpec()
	tests := []struct {
		name   string
		in     any
		leaves []any
		spec   *Spec
	}{
		{"leaf", 7, []any{7}, leaf},
		{"nil leaf", nil, []any{nil}, leaf},
		{"string leaf", "hi", []any{"hi"}, leaf},
		{"unregistered struct leaf", struct{ A int }{1},
			[]any{struct{ A int }{1}}, leaf},
		{"empty list", []any{}, nil, NodeSpec("list", nil, nil)},
		{"flat list", []any{1, 2, 3}, []any{1, 2, 3},
			NodeSpec("list", nil, []*Spec{leaf, leaf, leaf})},
		{"tuple", Tuple{1, "a"}, []any{1, "a"},
			NodeSpec("tuple", nil, []*Spec{leaf, leaf})},
		{"map sorted keys", map[string]any{"b": 2, "a": 1}, []any{1, 2},
			NodeSpec("map", Keys{"a", "b"}, []*Spec{leaf, leaf})},
		{"nested", map[string]any{"x": []any{1, 2}, "y": Tuple{3}},
			[]any{1, 2, 3},
			NodeSpec("map", Keys{"x", "y"}, []*Spec{
				NodeSpec("list", nil, []*Spec{leaf, leaf}),
				NodeSpec("tuple", nil, []*Spec{leaf}),
			})},
		{"list of containers", []any{map[string]any{"k": 1}, []any{2}},
			[]any{1, 2},
			NodeSpec("list", nil, []*Spec{
				NodeSpec("map", Keys{"k"}, []*Spec{leaf}),
				NodeSpec("list", nil, []*Spec{leaf}),
			})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves, spec := Flatten(tt.in)
			if d := cmp.Diff(tt.leaves, leaves); d != "" {
				t.Errorf("leaves mismatch (-want +got):\n%s", d)
			}
			if !spec.Equal(tt.spec) {
				t.Errorf("spec = %s, want %s", spec, tt.spec)
			}
		})
	}
}

func TestFlattenOrderIsPreOrder(t *testing.T) {
	in := []any{
		map[string]any{"a": 1, "b": []any{2, 3}},
		Tuple{4, []any{5, 6}},
		7,
	}
	leaves, spec := Flatten(in)
	want := []any{1, 2, 3, 4, 5, 6, 7}
	if d := cmp.Diff(want, leaves); d != "" {
		t.Errorf("leaf order (-want +got):\n%s", d)
	}
	if spec.NumLeaves() != len(leaves) {
		t.Errorf("spec holds %d leaves, flattened %d", spec.NumLeaves(), len(leaves))
	}
}

func TestFlattenDeterministic(t *testing.T) {
	mk := func() any {
		return map[string]any{"x": []any{1, 2}, "y": Tuple{3}, "z": 4}
	}
	l1, s1 := Flatten(mk())
	l2, s2 := Flatten(mk())
	if !s1.Equal(s2) {
		t.Errorf("specs differ: %s vs %s", s1, s2)
	}
	if d := cmp.Diff(l1, l2); d != "" {
		t.Errorf("leaves differ:\n%s", d)
	}
}
