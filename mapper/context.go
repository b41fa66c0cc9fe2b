package mapper

import "strings"

// MapContext is the scoped environment of decoded values for one decode: a
// linked list of frames, each labelled by the enclosing structure's scope
// name and holding that structure's decoded member values. Path resolution
// walks from the innermost frame outward rather than through a flat mutable
// global, so sibling structures with the same member names never collide.
//
// A MapContext is single-writer and ephemeral: one tree is built per
// top-level decode and discarded afterward.
type MapContext struct {
	parent *MapContext
	scope  string
	values map[string]Value
	base   int64 // absolute stream offset where this frame's structure began
}

// NewMapContext returns the root frame of a new decode, based at offset 0.
func NewMapContext() *MapContext {
	return &MapContext{values: make(map[string]Value)}
}

// Child returns a new frame nested under ctx, labelled scope, starting at
// absolute offset base. Used when a Structure map begins decoding its
// members.
func (ctx *MapContext) Child(scope string, base int64) *MapContext {
	return &MapContext{parent: ctx, scope: scope, values: make(map[string]Value), base: base}
}

// Base returns the absolute stream offset at which this frame's structure
// began, for Padding's structure-relative alignment.
func (ctx *MapContext) Base() int64 {
	if ctx == nil {
		return 0
	}
	return ctx.base
}

// Set records name's decoded value in ctx's own frame.
func (ctx *MapContext) Set(name string, v Value) {
	ctx.values[name] = v
}

// Get returns the value recorded in ctx's own frame under name, or (nil,
// false) if this frame never set it. Unlike Lookup, Get never walks to an
// ancestor frame.
func (ctx *MapContext) Get(name string) (Value, bool) {
	v, ok := ctx.values[name]
	return v, ok
}

// Lookup implements [expr.PathResolver]. A single-segment path is searched
// in ctx's own frame first, then each ancestor frame's own values in turn:
// a condition/size/count expression may reference any preceding sibling in
// the same structure, or any member of an ancestor structure, never a
// sibling's descendant.
//
// A multi-segment path's first segment is matched against an ancestor
// frame's scope name, then the remaining segments descend into that frame's
// recorded *StructValue fields.
func (ctx *MapContext) Lookup(path string) (int64, bool) {
	segments := strings.Split(path, ".")
	if len(segments) == 1 {
		for frame := ctx; frame != nil; frame = frame.parent {
			if v, ok := frame.values[segments[0]]; ok {
				return toInt64(v)
			}
		}
		return 0, false
	}

	for frame := ctx; frame != nil; frame = frame.parent {
		if frame.scope != segments[0] {
			continue
		}
		var cur Value = frame.asStructValue()
		for _, seg := range segments[1:] {
			sv, ok := cur.(*StructValue)
			if !ok {
				return 0, false
			}
			next, ok := sv.Get(seg)
			if !ok {
				return 0, false
			}
			cur = next
		}
		return toInt64(cur)
	}
	return 0, false
}

// asStructValue assembles frame's own values into a StructValue so Lookup's
// multi-segment descent can reuse StructValue.Get uniformly.
func (ctx *MapContext) asStructValue() *StructValue {
	sv := NewStructValue()
	for name, v := range ctx.values {
		sv.Set(name, v)
	}
	return sv
}

// toInt64 coerces a Value to the int64 [expr.PathResolver] requires.
// Expressions are integer/boolean-only; a path resolving to
// a non-coercible Value (a string, a *StructValue) is not a valid operand.
func toInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
