package diag

// Severity represents the severity level of a diagnostic issue.
//
// dtFabric's error model has exactly two tiers: a condition
// either aborts the current operation or it doesn't. Schema reading reports
// each SchemaError, DuplicateName, UnresolvedReference, DefinitionCycle, or
// similar structural problem it finds in a phase and does not go on to the
// next phase; decoding aborts on the
// first ByteStreamTooSmall, ConstantMismatch, InvalidEncoding, or similar
// wire-format mismatch. There is no advisory or informational tier: nothing
// in the domain produces a diagnostic that a caller can observe and then
// keep going past in the same sense a linter's "warning" can be ignored.
//
// Severity is an ordered enumeration where lower numeric values are more
// severe. Use the comparison methods rather than raw numeric comparisons
// for clarity.
type Severity uint8

const (
	// Fatal indicates an unrecoverable condition, such as a YAML stream the
	// reader cannot parse. A [Collector] that reaches its issue limit drops
	// further issues; it does not add a Fatal issue.
	Fatal Severity = iota

	// Error indicates a schema or decode validation failure. Errors cause the
	// overall [Result] to be unsuccessful and, for decode-time issues, abort
	// the in-flight mapping per the schema's all-abort error model.
	Error
)

// String returns the canonical lowercase label for the severity.
//
// The returned strings are stable: "fatal", "error".
func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the severity indicates a failure.
//
// Both defined severities are failures; dtFabric has no non-blocking
// diagnostic tier. This matches the condition checked by !Result.OK().
func (s Severity) IsFailure() bool {
	return s <= Error
}

// IsMoreSevereThan reports whether s is more severe than other.
//
// Since lower numeric values are more severe, this returns s < other.
// Use this method instead of raw numeric comparisons for clarity.
func (s Severity) IsMoreSevereThan(other Severity) bool {
	return s < other
}

// IsAtLeastAsSevereAs reports whether s is at least as severe as other.
//
// Returns true when s is equal to or more severe than other.
func (s Severity) IsAtLeastAsSevereAs(other Severity) bool {
	return s <= other
}
