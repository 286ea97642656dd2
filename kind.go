package treeflat

import "fmt"

// Kind discriminates the two Spec variants.
type Kind int

const (
	LeafKind Kind = iota
	NodeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		LeafKind: "Leaf",
		NodeKind: "Node",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf": LeafKind,
		"Node": NodeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func (k Kind) valid() bool {
	switch k {
	case LeafKind, NodeKind:
		return true
	}
	return false
}
