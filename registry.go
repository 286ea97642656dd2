package treeflat

import (
	"reflect"
	"sync"

	"github.com/signadot/treeflat/debug"
)

// Registry maps runtime container types to their NodeDefs. Lookup is by
// reflect.Type on the traversal side and by stable name on the
// reconstruction side. Reads vastly outnumber writes: traversals take the
// read lock, Register takes the write lock.
type Registry struct {
	mu     sync.RWMutex
	defs   map[reflect.Type]*NodeDef
	byName map[string]*NodeDef
}

// Entry is a single registered (type, name) association, for diagnostics.
type Entry struct {
	Type reflect.Type
	Name string
}

// NewRegistry returns a registry pre-populated with the built-in container
// kinds: "list" ([]any), "map" (map[string]any) and "tuple" (Tuple).
func NewRegistry() *Registry {
	r := &Registry{
		defs:   map[reflect.Type]*NodeDef{},
		byName: map[string]*NodeDef{},
	}
	r.Register(reflect.TypeOf([]any(nil)), &NodeDef{
		Name:      "list",
		Flatten:   listFlatten,
		Unflatten: listUnflatten,
	})
	r.Register(reflect.TypeOf(map[string]any(nil)), &NodeDef{
		Name:            "map",
		Flatten:         mapFlatten,
		Unflatten:       mapUnflatten,
		ContextFromJSON: mapContextFromJSON,
	})
	r.Register(reflect.TypeOf(Tuple(nil)), &NodeDef{
		Name:      "tuple",
		Flatten:   tupleFlatten,
		Unflatten: tupleUnflatten,
	})
	return r
}

// Register associates t with def, overwriting any previous entry for t.
// There is no removal. Typical use registers all kinds before any traversal
// begins; later registration is safe but should be rare.
func (r *Registry) Register(t reflect.Type, def *NodeDef) {
	if debug.Registry() {
		debug.Logf("register: %s as %q\n", t, def.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[t] = def
	r.byName[def.Name] = def
}

// Lookup returns the def registered for t, if any.
func (r *Registry) Lookup(t reflect.Type) (*NodeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[t]
	return def, ok
}

// LookupName returns the def registered under name, if any.
func (r *Registry) LookupName(name string) (*NodeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byName[name]
	return def, ok
}

// IsLeaf reports whether v's runtime type has no registered container kind.
// Unregistered types are leaves, never errors: that is the extensibility
// policy, so callers auditing what counts as a transformable leaf must keep
// their registrations in sync with the values they traverse.
func (r *Registry) IsLeaf(v any) bool {
	_, ok := r.lookupValue(v)
	return !ok
}

func (r *Registry) lookupValue(v any) (*NodeDef, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, false
	}
	return r.Lookup(t)
}

// Entries returns a snapshot of the registered kinds. Order is unspecified.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Entry, 0, len(r.defs))
	for t, def := range r.defs {
		res = append(res, Entry{Type: t, Name: def.Name})
	}
	return res
}

// std backs the package-level operations.
var std = NewRegistry()

// Default returns the package-level registry used by Register, Flatten,
// Unflatten, BroadcastToAndFlatten, Map and IsLeaf.
func Default() *Registry {
	return std
}

// Register registers a container kind in the default registry.
func Register(t reflect.Type, def *NodeDef) {
	std.Register(t, def)
}

// IsLeaf reports leaf-ness against the default registry.
func IsLeaf(v any) bool {
	return std.IsLeaf(v)
}
