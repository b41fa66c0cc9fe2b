// Package registry provides the name+alias-keyed store of [definition.Definition]
// values the reader registers into during schema ingestion, and the
// factory consults during DataTypeMap construction.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/libyal/dtfabric-go/definition"
)

// ErrDuplicateName is wrapped by the error returned from [Registry.Register]
// when a name or alias collides with an already-registered entry.
var ErrDuplicateName = errors.New("registry: duplicate name")

// DuplicateNameError is the concrete error returned from
// [Registry.Register] on a collision. It names the colliding key and hands
// back the Definition already registered under it, so the caller can report
// where the previous declaration lives.
type DuplicateNameError struct {
	Key      string
	Existing definition.Definition
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q", ErrDuplicateName.Error(), e.Key)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// ErrUnresolvedReference is wrapped by the error returned from
// [Registry.Resolve] when no entry matches the requested name.
var ErrUnresolvedReference = errors.New("registry: unresolved reference")

// Registry maps names and aliases to [definition.Definition] values. Names
// and aliases are globally unique across all kinds.
//
// A Registry's natural lifecycle is "build once, use many": [Register] is
// only ever called during reader.Read's one-shot build phase, after which
// the Registry is read-only and safe for concurrent [Lookup]/[Resolve]/[All]
// calls from multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[string]definition.Definition
	ordered []definition.Definition
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byKey: make(map[string]definition.Definition)}
}

// Register inserts def under its name and each alias. It fails with an
// error wrapping [ErrDuplicateName] if any of those keys is already taken,
// leaving the Registry unchanged.
func (r *Registry) Register(def definition.Definition) error {
	if def == nil {
		panic("registry: Register requires a non-nil Definition")
	}
	if def.Name() == "" {
		panic("registry: cannot register a Definition with an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{def.Name()}, def.Aliases()...)
	for _, key := range keys {
		if existing, exists := r.byKey[key]; exists {
			return &DuplicateNameError{Key: key, Existing: existing}
		}
	}

	for _, key := range keys {
		r.byKey[key] = def
	}
	r.ordered = append(r.ordered, def)
	return nil
}

// Lookup returns the Definition registered under name (or one of its
// aliases), or (nil, false) if none is registered.
func (r *Registry) Lookup(name string) (definition.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byKey[name]
	return def, ok
}

// Resolve returns the Definition registered under name, failing with an
// error wrapping [ErrUnresolvedReference] if absent.
func (r *Registry) Resolve(name string) (definition.Definition, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedReference, name)
	}
	return def, nil
}

// All returns every distinct registered Definition (once, regardless of how
// many aliases it was registered under) in deterministic order, sorted by
// name.
func (r *Registry) All() []definition.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]definition.Definition(nil), r.ordered...)
	slices.SortFunc(out, func(a, b definition.Definition) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}

// Len returns the number of distinct registered Definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
