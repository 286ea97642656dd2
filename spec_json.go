package treeflat

import (
	"encoding/json"
	"fmt"
)

type specJSON struct {
	Kind     Kind            `json:"kind"`
	Type     string          `json:"type,omitempty"`
	Context  json.RawMessage `json:"context,omitempty"`
	Children []*Spec         `json:"children,omitempty"`
}

// MarshalJSON produces a stable JSON form of the spec for external
// re-serialization. Contexts must be JSON-marshalable; the built-in kinds'
// contexts are.
func (s *Spec) MarshalJSON() ([]byte, error) {
	base := specJSON{
		Kind:     s.kind,
		Type:     s.typ,
		Children: s.children,
	}
	if s.ctx != nil {
		d, err := json.Marshal(s.ctx)
		if err != nil {
			return nil, err
		}
		base.Context = d
	}
	return json.Marshal(base)
}

// UnmarshalJSON decodes a spec, recomputing derived leaf counts and
// validating the node shape. Contexts decode through the default registry's
// ContextFromJSON for the named kind when one is registered, so round
// tripping a built-in spec preserves context equality.
func (s *Spec) UnmarshalJSON(d []byte) error {
	var tmp specJSON
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	switch tmp.Kind {
	case LeafKind:
		if tmp.Type != "" || tmp.Context != nil || len(tmp.Children) != 0 {
			return fmt.Errorf("%w: leaf spec with type, context or children", ErrInvalidSpec)
		}
		*s = Spec{kind: LeafKind, numLeaves: 1}
		return nil
	case NodeKind:
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidSpec, tmp.Kind)
	}
	var ctx Context
	if tmp.Context != nil {
		if def, ok := std.LookupName(tmp.Type); ok && def.ContextFromJSON != nil {
			c, err := def.ContextFromJSON(tmp.Context)
			if err != nil {
				return err
			}
			ctx = c
		} else {
			var c any
			if err := json.Unmarshal(tmp.Context, &c); err != nil {
				return err
			}
			ctx = c
		}
	}
	n := 0
	for _, c := range tmp.Children {
		if c == nil {
			return fmt.Errorf("%w: null child spec", ErrInvalidSpec)
		}
		n += c.numLeaves
	}
	*s = Spec{
		kind:      NodeKind,
		typ:       tmp.Type,
		ctx:       ctx,
		children:  tmp.Children,
		numLeaves: n,
	}
	return nil
}
