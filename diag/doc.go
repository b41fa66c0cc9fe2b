// Package diag provides structured diagnostics for dtFabric's schema reader
// and decode runtime.
//
// This package sits at the foundation tier alongside [location], providing
// the single diagnostic infrastructure used across schema reading,
// resolution, expression parsing, and decode-time mapping.
//
// # Design Principles
//
//   - Structured data, string-last presentation: location is stored as data
//     ([location.Span], decode-time path strings), never embedded in message
//     strings.
//   - Immutable results: [Result] stores issues in unexported fields and
//     exposes accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that callers
//     can match on with errors.Is/errors.As-style checks, even when message
//     text changes. The Code type uses an unexported struct to enforce a
//     closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by source,
//     position, and code to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// dtFabric's public entry points follow a consistent pattern:
//
//   - err != nil: catastrophic failure (I/O, internal corruption)
//   - err == nil and !result.OK(): semantic failure represented as structured
//     issues (malformed schema, unresolved reference, decode error)
//   - err == nil and result.OK(): success
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe.
// dtFabric's error model has no non-blocking diagnostic tier: a schema read
// stops at the end of the phase in which it finds a structural problem, and
// decode mapping aborts on the first wire-format problem, so there is
// nothing for a caller to observe and proceed past the way a linter warning
// can be ignored.
//
//   - [Fatal]: unrecoverable condition, such as an unparseable YAML stream
//   - [Error]: schema or decode validation failure
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_DUPLICATE_NAME, `definition "point3d_t" already defined`).
//	    WithSpan(span).
//	    WithHint("rename one of the definitions").
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during schema reading or decoding:
//
//	collector := diag.NewCollectorUnlimited()
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle semantic failures
//	}
//
// [Collector] is thread-safe and provides O(1) severity queries via
// [Collector.OK], [Collector.HasErrors], and [Collector.HasFatal].
//
// # Package Dependencies
//
// diag imports only the standard library and [location]. It must not import
// higher-level packages (definition, registry, reader, expr, mapper).
package diag
