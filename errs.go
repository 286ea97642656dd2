package treeflat

import "errors"

var (
	// ErrInvalidSpec reports an Unflatten call whose spec argument is not a
	// valid structural descriptor: nil, an out-of-range kind, an
	// inconsistent hand-built value, or a spec naming an unregistered
	// container kind.
	ErrInvalidSpec = errors.New("invalid spec")

	// ErrLeafCount reports a leaf sequence whose length disagrees with the
	// spec's declared leaf count.
	ErrLeafCount = errors.New("leaf count mismatch")
)
