// Package treeflat decomposes nested, heterogeneous container trees into a
// flat leaf sequence plus a structural descriptor, and reconstructs them.
//
// # Overview
//
// A tree is any value built from recursively nested containers (ordered
// sequences, keyed mappings, fixed tuples, or caller-registered kinds)
// holding arbitrary opaque leaf values. Flatten produces the tree's leaves
// in a fixed pre-order (depth-first, left-to-right) together with a Spec
// describing the nesting; Unflatten is its inverse:
//
//	leaves, spec := treeflat.Flatten(v)
//	// ... transform leaves ...
//	v2, err := treeflat.Unflatten(leaves, spec)
//
// BroadcastToAndFlatten aligns a possibly shallower value against a target
// Spec, replicating leaves to fill the deeper shape, and Map applies a
// function to every leaf while preserving shape.
//
// # Containers and Leaves
//
// Container kinds live in a Registry mapping a value's runtime type to a
// NodeDef: a stable name plus a decompose/recompose function pair. Any value
// whose type has no entry is a leaf. This open-world classification is the
// extensibility mechanism: unregistered types are never an error, they are
// atomic values the traversal carries through untouched.
//
// The built-in kinds are "list" ([]any), "map" (map[string]any, with the
// ordered key slice as context), and "tuple" (treeflat.Tuple). Callers may
// register their own kinds with Register before traversing values that use
// them.
//
// # Specs
//
// A Spec is an immutable tagged union: a leaf spec, rendered "*", or an
// internal spec carrying a container kind name, opaque context, and child
// specs. Spec equality is structural, including context equality, so two
// independently produced specs for same-shaped values compare equal. String
// gives a reproducible rendering and Hash a process-stable 64-bit hash; both
// are usable as cache keys. Specs marshal to a stable JSON form for external
// re-serialization.
//
// # Concurrency
//
// Traversals are synchronous recursive walks with no I/O; recursion depth
// equals nesting depth. The only shared mutable state is the Registry, which
// is guarded for read-mostly use: register kinds at startup, traverse freely
// afterwards.
package treeflat
