package location

import "fmt"

// Position identifies a point in a YAML schema document, taken directly
// from a *yaml.Node's Line/Column fields.
//
// Line and Column are 1-based. Column counts Unicode code points (runes)
// from the start of the line, not bytes or grapheme clusters. yaml.v3 never
// reports byte offsets for schema-sourced positions, so dtFabric's Position
// carries no byte field; every diagnostic location a schema reader or
// resolver produces is line/column only.
//
// Position is a value type and should be passed by value.
type Position struct {
	// Line is the 1-based line number. Zero means unknown.
	Line int

	// Column is the 1-based column number, counting runes from line start.
	// Zero means unknown.
	Column int
}

// IsZero reports whether the position represents an unknown location.
// A position is zero/unknown when Line == 0 && Column == 0.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// IsKnown reports whether line and column are both known (> 0).
func (p Position) IsKnown() bool {
	return p.Line > 0 && p.Column > 0
}

// String returns a human-readable representation of the position.
// Returns "line:column" for known positions, or "<unknown>" for zero positions.
func (p Position) String() string {
	if p.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
