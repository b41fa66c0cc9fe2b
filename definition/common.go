package definition

import "github.com/libyal/dtfabric-go/location"

// Definition is the common interface every data-type definition kind
// implements. Concrete variants are [Boolean], [Character], [Integer],
// [FloatingPoint], [UUID], [Sequence], [Stream], [String], [Padding],
// [Structure], [Union], [Constant], [Enumeration], [Format],
// [StructureFamily], and [StructureGroup].
type Definition interface {
	Kind() Kind
	Name() string
	Aliases() []string
	Description() string
	URLs() []string

	// Span is the source location of the YAML document node this definition
	// was decoded from, recorded at ingest time so resolution-phase
	// diagnostics can point back at the declaration. Zero for definitions
	// constructed programmatically.
	Span() location.Span
}

// Common holds the attributes every definition kind carries: name, aliases,
// description, and urls. Every concrete kind embeds it.
//
// Name may be empty for an anonymous inline definition attached to a
// [Member]'s InlineType; such a definition is never registered, and the
// registry (not construction here) is what enforces that every *registered*
// name is non-empty and unique.
type Common struct {
	Name        string
	Aliases     []string
	Description string
	URLs        []string
	Span        location.Span
}

// common is embedded (unexported) by every concrete kind so the promoted
// accessor methods satisfy [Definition] without repeating field plumbing.
type common struct {
	kind Kind
	Common
}

func newCommon(kind Kind, c Common) common {
	return common{
		kind: kind,
		Common: Common{
			Name:        c.Name,
			Aliases:     append([]string(nil), c.Aliases...),
			Description: c.Description,
			URLs:        append([]string(nil), c.URLs...),
			Span:        c.Span,
		},
	}
}

func (c common) Kind() Kind { return c.kind }

func (c common) Name() string { return c.Common.Name }

func (c common) Aliases() []string { return append([]string(nil), c.Common.Aliases...) }

func (c common) Description() string { return c.Common.Description }

func (c common) URLs() []string { return append([]string(nil), c.Common.URLs...) }

func (c common) Span() location.Span { return c.Common.Span }
