package treeflat

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Context is opaque auxiliary data a container kind needs to rebuild a value
// from its children, e.g. a mapping's key order. Context values must support
// a well-defined equality notion: implement Equaler, or be comparable with
// reflect.DeepEqual.
type Context any

// Equaler is implemented by Context types carrying their own equality
// notion. Spec equality and broadcast context matching use it when present.
type Equaler interface {
	Equal(other any) bool
}

// FlattenFunc decomposes a container into its ordered children and the
// context needed to rebuild it.
type FlattenFunc func(v any) (children []any, ctx Context)

// UnflattenFunc rebuilds a container from ordered children and context.
// It must invert the kind's FlattenFunc:
//
//	UnflattenFunc(FlattenFunc(c)) == c
//
// under the equality notion meaningful to the container kind.
type UnflattenFunc func(children []any, ctx Context) any

// NodeDef defines one container kind.
type NodeDef struct {
	// Name is the stable identifier Specs store for this kind. It is what
	// spec equality and broadcast compare, so it must not change across
	// runs if specs are re-serialized externally.
	Name string

	Flatten   FlattenFunc
	Unflatten UnflattenFunc

	// ContextFromJSON decodes this kind's context from its JSON form when
	// a Spec is unmarshaled. Optional; without it the context decodes to
	// the generic JSON value types.
	ContextFromJSON func(d []byte) (Context, error)
}

// Tuple is the built-in fixed-size ordered container. It is distinct from
// []any so callers can mark a sequence as positionally fixed.
type Tuple []any

// Keys is the context of the built-in map container: the key order used to
// decompose the map. Equality is order-sensitive.
type Keys []string

func (k Keys) Equal(other any) bool {
	switch o := other.(type) {
	case Keys:
		return slices.Equal(k, o)
	case []string:
		return slices.Equal(k, Keys(o))
	}
	return false
}

func listFlatten(v any) ([]any, Context) {
	return v.([]any), nil
}

func listUnflatten(children []any, _ Context) any {
	return slices.Clone(children)
}

func tupleFlatten(v any) ([]any, Context) {
	return []any(v.(Tuple)), nil
}

func tupleUnflatten(children []any, _ Context) any {
	return Tuple(slices.Clone(children))
}

// Map keys are sorted so decomposition order is deterministic.
func mapFlatten(v any) ([]any, Context) {
	m := v.(map[string]any)
	keys := Keys(slices.Sorted(maps.Keys(m)))
	children := make([]any, len(keys))
	for i, k := range keys {
		children[i] = m[k]
	}
	return children, keys
}

func mapUnflatten(children []any, ctx Context) any {
	keys := mapKeys(ctx)
	m := make(map[string]any, len(keys))
	for i, k := range keys {
		m[k] = children[i]
	}
	return m
}

func mapKeys(ctx Context) Keys {
	switch k := ctx.(type) {
	case Keys:
		return k
	case []string:
		return Keys(k)
	}
	panic(fmt.Sprintf("treeflat: map context %T is not a key list", ctx))
}

func mapContextFromJSON(d []byte) (Context, error) {
	var keys Keys
	if err := json.Unmarshal(d, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}
