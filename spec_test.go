package treeflat

import (
	"encoding/json"
	"testing"
)

func TestSpecEqual(t *testing.T) {
	leaf := LeafSpec()
	tests := []struct {
		name     string
		a, b     *Spec
		expected bool
	}{
		{"leaf == leaf", LeafSpec(), LeafSpec(), true},
		{"leaf != node", LeafSpec(), NodeSpec("list", nil, nil), false},
		{"empty list == empty list", NodeSpec("list", nil, nil), NodeSpec("list", nil, nil), true},
		{"list[*] == list[*]",
			NodeSpec("list", nil, []*Spec{leaf}),
			NodeSpec("list", nil, []*Spec{leaf}), true},
		{"list[*] != list[*, *]",
			NodeSpec("list", nil, []*Spec{leaf}),
			NodeSpec("list", nil, []*Spec{leaf, leaf}), false},
		{"list != tuple",
			NodeSpec("list", nil, []*Spec{leaf}),
			NodeSpec("tuple", nil, []*Spec{leaf}), false},
		{"same keys same order",
			NodeSpec("map", Keys{"a", "b"}, []*Spec{leaf, leaf}),
			NodeSpec("map", Keys{"a", "b"}, []*Spec{leaf, leaf}), true},
		{"same keys different order",
			NodeSpec("map", Keys{"a", "b"}, []*Spec{leaf, leaf}),
			NodeSpec("map", Keys{"b", "a"}, []*Spec{leaf, leaf}), false},
		{"Keys context == []string context",
			NodeSpec("map", Keys{"a"}, []*Spec{leaf}),
			NodeSpec("map", []string{"a"}, []*Spec{leaf}), true},
		{"nested equal",
			NodeSpec("map", Keys{"x"}, []*Spec{NodeSpec("list", nil, []*Spec{leaf, leaf})}),
			NodeSpec("map", Keys{"x"}, []*Spec{NodeSpec("list", nil, []*Spec{leaf, leaf})}), true},
		{"nested child mismatch",
			NodeSpec("map", Keys{"x"}, []*Spec{NodeSpec("list", nil, []*Spec{leaf, leaf})}),
			NodeSpec("map", Keys{"x"}, []*Spec{NodeSpec("tuple", nil, []*Spec{leaf, leaf})}), false},
		{"nil != leaf", nil, LeafSpec(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := tt.b.Equal(tt.a); got != tt.expected {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpecEqualIndependentProductions(t *testing.T) {
	_, a := Flatten(map[string]any{"a": 1, "b": 2})
	_, b := Flatten(map[string]any{"a": 3, "b": 4})
	if !a.Equal(b) {
		t.Errorf("same-shaped maps produced unequal specs %s and %s", a, b)
	}
	reordered := NodeSpec("map", Keys{"b", "a"}, []*Spec{LeafSpec(), LeafSpec()})
	if a.Equal(reordered) {
		t.Errorf("key order ignored: %s == %s", a, reordered)
	}
}

func TestSpecNumLeaves(t *testing.T) {
	tests := []struct {
		name     string
		spec     *Spec
		expected int
	}{
		{"leaf", LeafSpec(), 1},
		{"empty node", NodeSpec("list", nil, nil), 0},
		{"pair", NodeSpec("list", nil, []*Spec{LeafSpec(), LeafSpec()}), 2},
		{"nested", NodeSpec("map", Keys{"x", "y"}, []*Spec{
			NodeSpec("list", nil, []*Spec{LeafSpec(), LeafSpec()}),
			NodeSpec("tuple", nil, []*Spec{LeafSpec()}),
		}), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.NumLeaves(); got != tt.expected {
				t.Errorf("NumLeaves() = %d, want %d", got, tt.expected)
			}
			if got := countLeafSpecs(tt.spec); got != tt.expected {
				t.Errorf("counted %d leaf specs, want %d", got, tt.expected)
			}
		})
	}
}

func countLeafSpecs(s *Spec) int {
	if s.IsLeaf() {
		return 1
	}
	n := 0
	for _, c := range s.Children() {
		n += countLeafSpecs(c)
	}
	return n
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"leaf", 7, "*"},
		{"list", []any{1, 2}, "list[*, *]"},
		{"tuple", Tuple{1}, "tuple[*]"},
		{"map", map[string]any{"b": 1, "a": 2}, "map{a, b}[*, *]"},
		{"nested", map[string]any{"x": []any{1, 2}, "y": Tuple{3}},
			"map{x, y}[list[*, *], tuple[*]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, spec := Flatten(tt.in)
			if got := spec.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSpecHash(t *testing.T) {
	_, a := Flatten(map[string]any{"x": []any{1, 2}, "y": Tuple{3}})
	_, b := Flatten(map[string]any{"x": []any{9, 9}, "y": Tuple{9}})
	if a.Hash() != b.Hash() {
		t.Errorf("equal specs hash differently")
	}
	if a.Hash() != a.Hash() {
		t.Errorf("hash is unstable")
	}
	for _, other := range []*Spec{
		LeafSpec(),
		NodeSpec("list", nil, []*Spec{LeafSpec()}),
		NodeSpec("map", Keys{"y", "x"}, a.Children()),
	} {
		if a.Hash() == other.Hash() {
			t.Errorf("spec %s collides with %s", a, other)
		}
	}
}

func TestSpecJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"leaf", 7},
		{"list", []any{1, 2, 3}},
		{"nested", map[string]any{"x": []any{1, 2}, "y": Tuple{3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, spec := Flatten(tt.in)
			d, err := json.Marshal(spec)
			if err != nil {
				t.Fatal(err)
			}
			got := &Spec{}
			if err := json.Unmarshal(d, got); err != nil {
				t.Fatal(err)
			}
			if !spec.Equal(got) {
				t.Errorf("round trip %s != %s", got, spec)
			}
			if got.NumLeaves() != spec.NumLeaves() {
				t.Errorf("round trip leaf count %d != %d", got.NumLeaves(), spec.NumLeaves())
			}
		})
	}
}

func TestSpecJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad kind", `{"kind":"Branch"}`},
		{"leaf with children", `{"kind":"Leaf","children":[{"kind":"Leaf"}]}`},
		{"leaf with type", `{"kind":"Leaf","type":"list"}`},
		{"null child", `{"kind":"Node","type":"list","children":[null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Spec{}
			if err := json.Unmarshal([]byte(tt.in), s); err == nil {
				t.Errorf("decoded invalid spec %q as %s", tt.in, s)
			}
		})
	}
}

func TestSpecJSONMapContext(t *testing.T) {
	_, spec := Flatten(map[string]any{"a": 1, "b": 2})
	d, err := json.Marshal(spec)
	if err != nil {
		t.Fatal(err)
	}
	got := &Spec{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Context().(Keys); !ok {
		t.Errorf("map context decoded as %T, want Keys", got.Context())
	}
}
