// Package location provides source location tracking for schema diagnostics.
//
// This package defines the core types dtFabric's diagnostic system uses to
// track positions within a YAML schema stream. It sits at the foundation
// tier and can be imported by all other packages without introducing
// circular dependencies.
//
// # SourceID
//
// SourceID identifies a YAML document uniquely within a schema stream. It
// supports two modes:
//   - Stream-backed: Created via SourceIDFromIndex, identifying the Nth
//     document (0-based) read from a schema stream.
//   - Synthetic: Created via NewSourceID or MustNewSourceID for non-stream
//     sources like "inline:test".
//
// SourceID is comparable and safe for use as map keys.
//
// # Position
//
// Position identifies a point in a YAML document, taken directly from a
// *yaml.Node's Line/Column fields:
//   - Line: 1-based line number (0 = unknown)
//   - Column: 1-based column counting Unicode code points (runes), not bytes
//
// yaml.v3 never reports byte offsets for a parsed document, so Position
// carries none; every schema diagnostic this package produces locates itself
// by line/column alone. Use IsZero() to check for unknown positions and
// IsKnown() to check for valid line/column.
//
// # Span
//
// Span represents a half-open range [Start, End) in a YAML document:
//   - Source: SourceID identifying the document
//   - Start: Inclusive start position
//   - End: Exclusive end position (equals Start for point spans)
//
// Create spans via Point (single position) or Range (a start/end pair). The
// Range constructor panics if end < start (geometric soundness invariant).
//
// # RelatedInfo
//
// RelatedInfo provides supplementary location context for diagnostics, such
// as "previous definition here" for duplicate-name errors or showing the
// edges of a definition cycle. Use the Msg* constants for consistent message
// formatting.
//
// # Dependencies
//
// This package depends only on the standard library. It does not import any
// other packages, enabling it to be imported by all other packages without
// cycles.
package location
