package location

import "strconv"

// SourceID identifies a YAML document uniquely within a schema stream.
//
// A dtFabric schema source is typically a multi-document YAML stream (one
// document per definition group, or several definitions sharing a document).
// SourceID can represent:
//   - Stream-backed source: Created via SourceIDFromIndex, identifying the
//     Nth document (0-based) read from an io.Reader or file.
//   - Synthetic source: Created via NewSourceID or MustNewSourceID, such as
//     "<string>" or "inline:test" for schemas built from an in-memory string.
//
// SourceID is a value type with unexported fields. Always pass by value.
// The zero value is invalid; use IsZero() to check.
//
// SourceID is comparable and safe for use as map keys. Equality is structural
// (field-wise comparison).
type SourceID struct {
	index     int
	hasIndex  bool
	synthetic string
}

// NewSourceID creates a SourceID for synthetic (non-stream) sources.
//
// WARNING: Prefer [MustNewSourceID] for new code. NewSourceID bypasses
// validation: an empty string yields a zero-value SourceID (IsZero() returns
// true), which is invalid and may cause map key anomalies.
func NewSourceID(identifier string) SourceID {
	return SourceID{synthetic: identifier}
}

// MustNewSourceID creates a synthetic SourceID with validation.
//
// Panics if the identifier is empty.
func MustNewSourceID(identifier string) SourceID {
	if identifier == "" {
		panic("location.MustNewSourceID: " + ErrEmptySourceID.Error())
	}
	return SourceID{synthetic: identifier}
}

// SourceIDFromIndex creates a SourceID identifying the document at the given
// 0-based position within a schema stream.
//
// Panics if index is negative.
func SourceIDFromIndex(index int) SourceID {
	if index < 0 {
		panic("location.SourceIDFromIndex: negative index")
	}
	return SourceID{index: index, hasIndex: true}
}

// String returns the source identifier.
//
// For stream-backed sources, returns "document[N]". For synthetic sources,
// returns the synthetic identifier.
func (s SourceID) String() string {
	if s.synthetic != "" {
		return s.synthetic
	}
	if s.hasIndex {
		return "document[" + strconv.Itoa(s.index) + "]"
	}
	return ""
}

// IsZero reports whether this is a zero-value SourceID.
// The zero value is invalid and should not be used.
func (s SourceID) IsZero() bool {
	return !s.hasIndex && s.synthetic == ""
}

// IsStreamDocument reports whether this SourceID names a document index
// within a schema stream (as opposed to a synthetic identifier).
func (s SourceID) IsStreamDocument() bool {
	return s.hasIndex
}

// Index returns the 0-based document index for a stream-backed SourceID.
// Returns ok=false for synthetic sources.
func (s SourceID) Index() (index int, ok bool) {
	return s.index, s.hasIndex
}
