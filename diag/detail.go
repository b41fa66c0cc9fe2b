package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or type.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or type received.
	DetailKeyGot = "got"

	// DetailKeyKind is the data type kind involved in the diagnostic
	// (e.g., "structure", "integer").
	DetailKeyKind = "kind"

	// DetailKeyName is the definition or member name involved.
	DetailKeyName = "name"

	// DetailKeyMember is the structure member name involved.
	DetailKeyMember = "member"

	// DetailKeyPath is the expression path that failed to resolve.
	DetailKeyPath = "path"

	// DetailKeyCycle is the cycle participants as an ordered list
	// (for E_DEFINITION_CYCLE).
	DetailKeyCycle = "cycle"

	// DetailKeyOffset is the byte offset within the stream being decoded.
	DetailKeyOffset = "offset"

	// DetailKeyEncoding is the text encoding name (for E_INVALID_ENCODING).
	DetailKeyEncoding = "encoding"

	// DetailKeyDiscriminant is the structure-group discriminant value
	// (for E_UNKNOWN_GROUP_VARIANT, E_GROUP_DISCRIMINANT_COLLISION).
	DetailKeyDiscriminant = "discriminant"
)

// ExpectedGot creates a pair of details for value/type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// KindName creates detail entries for diagnostics involving a named
// definition of a particular kind.
func KindName(kind, name string) []Detail {
	return []Detail{
		{Key: DetailKeyKind, Value: kind},
		{Key: DetailKeyName, Value: name},
	}
}

// NameMember creates detail entries for diagnostics involving a specific
// member on a structure definition.
func NameMember(name, member string) []Detail {
	return []Detail{
		{Key: DetailKeyName, Value: name},
		{Key: DetailKeyMember, Value: member},
	}
}
