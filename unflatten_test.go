package treeflat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"leaf", 7},
		{"empty list", []any{}},
		{"flat list", []any{1, 2, 3}},
		{"tuple", Tuple{1, "a", true}},
		{"map", map[string]any{"a": 1, "b": 2}},
		{"nested", map[string]any{"x": []any{1, 2}, "y": Tuple{3}}},
		{"deep", []any{[]any{[]any{[]any{1}}}, map[string]any{"k": Tuple{2, 3}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves, spec := Flatten(tt.in)
			got, err := Unflatten(leaves, spec)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.in, got); d != "" {
				t.Errorf("round trip (-want +got):\n%s", d)
			}
		})
	}
}

func TestUnflattenReplacesLeaves(t *testing.T) {
	_, spec := Flatten(map[string]any{"x": []any{1, 2}, "y": Tuple{3}})
	got, err := Unflatten([]any{10, 20, 30}, spec)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"x": []any{10, 20}, "y": Tuple{30}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("rebuilt value (-want +got):\n%s", d)
	}
}

func TestUnflattenFlattenIdentity(t *testing.T) {
	_, spec := Flatten(map[string]any{"x": []any{1, 2}, "y": Tuple{3}})
	leaves := []any{"a", "b", "c"}
	v, err := Unflatten(leaves, spec)
	if err != nil {
		t.Fatal(err)
	}
	gotLeaves, gotSpec := Flatten(v)
	if d := cmp.Diff(leaves, gotLeaves); d != "" {
		t.Errorf("leaves (-want +got):\n%s", d)
	}
	if !spec.Equal(gotSpec) {
		t.Errorf("spec = %s, want %s", gotSpec, spec)
	}
}

func TestUnflattenErrors(t *testing.T) {
	_, pair := Flatten([]any{1, 2})
	tests := []struct {
		name     string
		leaves   []any
		spec     *Spec
		expected error
	}{
		{"too many leaves", []any{1, 2, 3}, pair, ErrLeafCount},
		{"too few leaves", []any{1}, pair, ErrLeafCount},
		{"no leaves for leaf spec", nil, LeafSpec(), ErrLeafCount},
		{"nil spec", []any{1}, nil, ErrInvalidSpec},
		{"zero value spec", nil, &Spec{}, ErrInvalidSpec},
		{"unregistered kind", []any{1},
			NodeSpec("frozenset", nil, []*Spec{LeafSpec()}), ErrInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Unflatten(tt.leaves, tt.spec)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("err = %v, want %v", err, tt.expected)
			}
			if v != nil {
				t.Errorf("partial reconstruction %v on error", v)
			}
		})
	}
}
