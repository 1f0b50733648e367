package interpolation

import (
	"fmt"
	"sort"
)

// Namespace is a toolkit's table of interpolator handles keyed by identifier.
// Implementations must be safe for concurrent lookups.
type Namespace[H any] interface {
	Name() string
	Lookup(identifier string) (H, bool)
}

// Table is a read-only Namespace backed by a map.
type Table[H any] struct {
	name    string
	handles map[string]H
}

// NewTable copies handles into a new Table.
func NewTable[H any](name string, handles map[string]H) Table[H] {
	t := Table[H]{name: name, handles: make(map[string]H, len(handles))}
	for id, h := range handles {
		t.handles[id] = h
	}
	return t
}

// Name returns the namespace name used in error messages.
func (t Table[H]) Name() string {
	return t.name
}

// Lookup returns the handle registered under identifier.
func (t Table[H]) Lookup(identifier string) (H, bool) {
	h, ok := t.handles[identifier]
	return h, ok
}

// Identifiers returns registered identifiers in lexical order.
func (t Table[H]) Identifiers() []string {
	ids := make([]string, 0, len(t.handles))
	for id := range t.handles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResolveInterpolator returns the handle ns registers under m.Identifier().
func ResolveInterpolator[H any](ns Namespace[H], m Mode) (H, error) {
	var zero H
	if !m.Valid() {
		return zero, fmt.Errorf("resolve: %w: %d", ErrInvalidMode, int(m))
	}
	id := modeIdentifiers[m]
	h, ok := ns.Lookup(id)
	if !ok {
		return zero, &ResolutionError{Namespace: ns.Name(), Mode: m, Identifier: id}
	}
	return h, nil
}
