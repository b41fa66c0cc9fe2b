package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
)

// decodeFormat decodes the `format` layout kind: an ordered list of
// {data_type, offset} layout entries.
func decodeFormat(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	node, present := mapLookup(root, "layout")
	if !present || node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required non-empty attribute "layout"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}

	layout := make([]definition.LayoutEntry, 0, len(node.Content))
	for _, entry := range node.Content {
		dtNode, ok := mapLookup(entry, "data_type")
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `layout entry missing "data_type"`).
				WithSpan(spanOf(entry, source)).Build())
			return nil, false
		}
		name, ok := scalarString(dtNode)
		if !ok || name == "" {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `layout entry "data_type" must be a non-empty scalar`).
				WithSpan(spanOf(dtNode, source)).Build())
			return nil, false
		}
		offNode, ok := mapLookup(entry, "offset")
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `layout entry missing "offset"`).
				WithSpan(spanOf(entry, source)).Build())
			return nil, false
		}
		offset, ok := scalarInt(offNode)
		if !ok || offset < 0 {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `layout entry "offset" must be a non-negative integer`).
				WithSpan(spanOf(offNode, source)).Build())
			return nil, false
		}
		layout = append(layout, definition.LayoutEntry{DataType: definition.NewDefRef(name), Offset: offset})
	}

	return safeBuild(col, spanOf(root, source), diag.E_INTERNAL, func() definition.Definition {
		return definition.NewFormat(c, layout)
	})
}

// decodeNameRefSeq decodes a sequence-of-strings attribute into unresolved
// [definition.DefRef] values, shared by structure-family's and
// structure-group's `members` attribute.
func decodeNameRefSeq(root *yaml.Node, key string, source location.SourceID, col *diag.Collector) ([]definition.DefRef, bool) {
	node, present := mapLookup(root, key)
	if !present || node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE,
			fmt.Sprintf("missing required non-empty attribute %q", key)).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	names, ok := stringSeq(node)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			fmt.Sprintf("%q must be a sequence of strings", key)).
			WithSpan(spanOf(node, source)).Build())
		return nil, false
	}
	refs := make([]definition.DefRef, len(names))
	for i, n := range names {
		refs[i] = definition.NewDefRef(n)
	}
	return refs, true
}

func decodeBaseRef(root *yaml.Node, source location.SourceID, col *diag.Collector) (definition.DefRef, bool) {
	baseNode, present := mapLookup(root, "base")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "base"`).
			WithSpan(spanOf(root, source)).Build())
		return definition.DefRef{}, false
	}
	baseName, ok := scalarString(baseNode)
	if !ok || baseName == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"base" must be a non-empty scalar`).
			WithSpan(spanOf(baseNode, source)).Build())
		return definition.DefRef{}, false
	}
	return definition.NewDefRef(baseName), true
}

// decodeStructureFamily decodes the `structure-family` layout kind.
// Variant structures are named via the `members` attribute.
func decodeStructureFamily(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	base, ok := decodeBaseRef(root, source, col)
	if !ok {
		return nil, false
	}
	variants, ok := decodeNameRefSeq(root, "members", source, col)
	if !ok {
		return nil, false
	}
	return safeBuild(col, spanOf(root, source), diag.E_INTERNAL, func() definition.Definition {
		return definition.NewStructureFamily(c, base, variants)
	})
}

// decodeStructureGroup decodes the `structure-group` layout kind. Variant
// structures are named via `members`; each must pin the `identifier`
// member with `value`, checked during resolution.
func decodeStructureGroup(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	base, ok := decodeBaseRef(root, source, col)
	if !ok {
		return nil, false
	}

	idNode, present := mapLookup(root, "identifier")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "identifier"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	identifier, ok := scalarString(idNode)
	if !ok || identifier == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"identifier" must be a non-empty scalar`).
			WithSpan(spanOf(idNode, source)).Build())
		return nil, false
	}

	variants, ok := decodeNameRefSeq(root, "members", source, col)
	if !ok {
		return nil, false
	}

	var defaultRef *definition.DefRef
	if defNode, present := mapLookup(root, "default"); present {
		name, ok := scalarString(defNode)
		if !ok || name == "" {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"default" must be a non-empty scalar`).
				WithSpan(spanOf(defNode, source)).Build())
			return nil, false
		}
		ref := definition.NewDefRef(name)
		defaultRef = &ref
	}

	return safeBuild(col, spanOf(root, source), diag.E_INTERNAL, func() definition.Definition {
		return definition.NewStructureGroup(c, base, identifier, variants, defaultRef)
	})
}
