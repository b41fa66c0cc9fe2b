package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySchema is for reader/registration errors (definitions, attributes).
	CategorySchema

	// CategoryResolve is for second-pass resolution errors (references, cycles,
	// families, groups).
	CategoryResolve

	// CategoryExpression is for expression lexer/parser errors.
	CategoryExpression

	// CategoryDecode is for runtime decode-time errors raised by a DataTypeMap.
	CategoryDecode
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySchema:
		return "schema"
	case CategoryResolve:
		return "resolve"
	case CategoryExpression:
		return "expression"
	case CategoryDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes: only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_DEFINITION_CYCLE").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor; callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Schema (reader, pass 1) codes.
var (
	// E_MALFORMED_YAML indicates the source stream is not well-formed YAML.
	E_MALFORMED_YAML = code("E_MALFORMED_YAML", CategorySchema)

	// E_UNKNOWN_KIND indicates a `type:` attribute names an unrecognized kind.
	E_UNKNOWN_KIND = code("E_UNKNOWN_KIND", CategorySchema)

	// E_MISSING_ATTRIBUTE indicates a required attribute is absent for the
	// definition's kind.
	E_MISSING_ATTRIBUTE = code("E_MISSING_ATTRIBUTE", CategorySchema)

	// E_UNKNOWN_ATTRIBUTE indicates an attribute is not valid for the
	// definition's kind.
	E_UNKNOWN_ATTRIBUTE = code("E_UNKNOWN_ATTRIBUTE", CategorySchema)

	// E_INVALID_ATTRIBUTE_VALUE indicates an attribute's value is malformed or
	// out of range (e.g., a byte_order other than "big-endian", "little-endian",
	// or "native").
	E_INVALID_ATTRIBUTE_VALUE = code("E_INVALID_ATTRIBUTE_VALUE", CategorySchema)

	// E_DUPLICATE_NAME indicates a definition name (or alias) is already
	// registered.
	E_DUPLICATE_NAME = code("E_DUPLICATE_NAME", CategorySchema)

	// E_INVALID_NAME indicates an identifier has an invalid format.
	E_INVALID_NAME = code("E_INVALID_NAME", CategorySchema)
)

// Resolve (reader, pass 2) codes.
var (
	// E_UNRESOLVED_REFERENCE indicates a named data type reference does not
	// resolve to any registered definition.
	E_UNRESOLVED_REFERENCE = code("E_UNRESOLVED_REFERENCE", CategoryResolve)

	// E_DEFINITION_CYCLE indicates an ownership cycle among definitions
	// (structure member, sequence element, family/group base).
	E_DEFINITION_CYCLE = code("E_DEFINITION_CYCLE", CategoryResolve)

	// E_FAMILY_MEMBER_MISMATCH indicates a family variant omits, or has an
	// incompatible data type for, a base member.
	E_FAMILY_MEMBER_MISMATCH = code("E_FAMILY_MEMBER_MISMATCH", CategoryResolve)

	// E_GROUP_MEMBER_INVALID indicates a structure-group's base or variant is
	// not a structure or lacks the identifier member, or a variant does not
	// pin the identifier member with a value.
	E_GROUP_MEMBER_INVALID = code("E_GROUP_MEMBER_INVALID", CategoryResolve)

	// E_GROUP_DISCRIMINANT_COLLISION indicates two structure-group members
	// declare the same discriminant value.
	E_GROUP_DISCRIMINANT_COLLISION = code("E_GROUP_DISCRIMINANT_COLLISION", CategoryResolve)

	// E_UNBOUND_PATH indicates a condition/size/count expression references a
	// path that is not reachable from its enclosing structure scope.
	E_UNBOUND_PATH = code("E_UNBOUND_PATH", CategoryResolve)
)

// Expression codes.
var (
	// E_EXPRESSION_SYNTAX indicates a condition, number_of_elements, or
	// elements_data_size expression failed to parse.
	E_EXPRESSION_SYNTAX = code("E_EXPRESSION_SYNTAX", CategoryExpression)
)

// Decode (runtime) codes.
var (
	// E_BYTE_STREAM_TOO_SMALL indicates fewer bytes remain in the stream than
	// the data type requires.
	E_BYTE_STREAM_TOO_SMALL = code("E_BYTE_STREAM_TOO_SMALL", CategoryDecode)

	// E_INVALID_BOOLEAN_ENCODING indicates a boolean's decoded integer value is
	// not one of the values the schema's true_value/false_value rules allow.
	E_INVALID_BOOLEAN_ENCODING = code("E_INVALID_BOOLEAN_ENCODING", CategoryDecode)

	// E_INVALID_ENCODING indicates a string's byte run could not be decoded
	// under its declared text encoding.
	E_INVALID_ENCODING = code("E_INVALID_ENCODING", CategoryDecode)

	// E_CONSTANT_MISMATCH indicates a member's decoded bytes did not match its
	// pinned value, or none of its pinned values.
	E_CONSTANT_MISMATCH = code("E_CONSTANT_MISMATCH", CategoryDecode)

	// E_TRAILING_BYTES indicates an element run's decoded elements overran its
	// elements_data_size instead of ending on that boundary.
	E_TRAILING_BYTES = code("E_TRAILING_BYTES", CategoryDecode)

	// E_UNKNOWN_GROUP_VARIANT indicates a structure-group's discriminant value,
	// read from the base structure, does not match any registered member.
	E_UNKNOWN_GROUP_VARIANT = code("E_UNKNOWN_GROUP_VARIANT", CategoryDecode)

	// E_EVAL_ERROR indicates an error evaluating a condition/size/count
	// expression against a MapContext (e.g., a path resolves to a
	// non-numeric value for an arithmetic operand).
	E_EVAL_ERROR = code("E_EVAL_ERROR", CategoryDecode)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Schema
	E_MALFORMED_YAML,
	E_UNKNOWN_KIND,
	E_MISSING_ATTRIBUTE,
	E_UNKNOWN_ATTRIBUTE,
	E_INVALID_ATTRIBUTE_VALUE,
	E_DUPLICATE_NAME,
	E_INVALID_NAME,
	// Resolve
	E_UNRESOLVED_REFERENCE,
	E_DEFINITION_CYCLE,
	E_FAMILY_MEMBER_MISMATCH,
	E_GROUP_MEMBER_INVALID,
	E_GROUP_DISCRIMINANT_COLLISION,
	E_UNBOUND_PATH,
	// Expression
	E_EXPRESSION_SYNTAX,
	// Decode
	E_BYTE_STREAM_TOO_SMALL,
	E_INVALID_BOOLEAN_ENCODING,
	E_INVALID_ENCODING,
	E_CONSTANT_MISMATCH,
	E_TRAILING_BYTES,
	E_UNKNOWN_GROUP_VARIANT,
	E_EVAL_ERROR,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
