package definition

// DefRef is a reference to another Definition by name before the reader's
// resolution pass, and a direct handle to the target after it. Registration
// (pass 1) only ever constructs unresolved DefRefs; reader.resolve (pass 2)
// replaces every one with its resolved counterpart in place.
type DefRef struct {
	name     string
	resolved Definition
}

// NewDefRef constructs an unresolved reference by name. Panics if name is
// empty.
func NewDefRef(name string) DefRef {
	if name == "" {
		panic("definition: NewDefRef requires a non-empty name")
	}
	return DefRef{name: name}
}

// Name returns the referenced name, whether or not this DefRef has been
// resolved.
func (r DefRef) Name() string { return r.name }

// IsResolved reports whether Resolve has been called with a matching
// Definition.
func (r DefRef) IsResolved() bool { return r.resolved != nil }

// Resolved returns the target Definition and true once resolved, or (nil,
// false) beforehand.
func (r DefRef) Resolved() (Definition, bool) {
	return r.resolved, r.resolved != nil
}

// Resolve returns a copy of r with its target set to def. Panics if def is
// nil. The caller (reader.resolve) is responsible for having looked def up
// by r's referenced name or one of its aliases before calling Resolve.
func (r DefRef) Resolve(def Definition) DefRef {
	if def == nil {
		panic("definition: DefRef.Resolve requires a non-nil Definition")
	}
	return DefRef{name: r.name, resolved: def}
}

// IsZero reports whether r is the zero value (constructed with no name).
func (r DefRef) IsZero() bool {
	return r.name == "" && r.resolved == nil
}
