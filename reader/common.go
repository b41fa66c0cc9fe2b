package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
)

// baseKeys are the attributes every definition kind's mapping accepts,
// regardless of kind.
var baseKeys = map[string]bool{
	"type": true, "name": true, "aliases": true, "description": true, "urls": true,
}

// withKeys returns baseKeys plus a kind's additional allowed attribute names.
func withKeys(extra ...string) map[string]bool {
	out := make(map[string]bool, len(baseKeys)+len(extra))
	for k := range baseKeys {
		out[k] = true
	}
	for _, k := range extra {
		out[k] = true
	}
	return out
}

// decodeCommon extracts name/aliases/description/urls from root and checks
// every key present against allowed. It collects an issue and returns
// ok=false on the first problem: a missing name, or any unrecognized
// attribute.
func decodeCommon(root *yaml.Node, source location.SourceID, col *diag.Collector, allowed map[string]bool) (definition.Common, bool) {
	for _, e := range mapEntries(root) {
		if !allowed[e.key.Value] {
			col.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_ATTRIBUTE,
				fmt.Sprintf("unrecognized attribute %q", e.key.Value)).
				WithSpan(spanOf(e.key, source)).Build())
			return definition.Common{}, false
		}
	}

	nameNode, ok := mapLookup(root, "name")
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "name"`).
			WithSpan(spanOf(root, source)).Build())
		return definition.Common{}, false
	}
	name, ok := scalarString(nameNode)
	if !ok || name == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_NAME, `"name" must be a non-empty scalar`).
			WithSpan(spanOf(nameNode, source)).Build())
		return definition.Common{}, false
	}

	c := definition.Common{Name: name, Span: spanOf(root, source)}

	if aliasesNode, ok := mapLookup(root, "aliases"); ok {
		aliases, ok := stringSeq(aliasesNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"aliases" must be a sequence of strings`).
				WithSpan(spanOf(aliasesNode, source)).Build())
			return definition.Common{}, false
		}
		c.Aliases = aliases
	}

	if descNode, ok := mapLookup(root, "description"); ok {
		desc, ok := scalarString(descNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"description" must be a scalar`).
				WithSpan(spanOf(descNode, source)).Build())
			return definition.Common{}, false
		}
		c.Description = desc
	}

	if urlsNode, ok := mapLookup(root, "urls"); ok {
		urls, ok := stringSeq(urlsNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"urls" must be a sequence of strings`).
				WithSpan(spanOf(urlsNode, source)).Build())
			return definition.Common{}, false
		}
		c.URLs = urls
	}

	return c, true
}

// decodeByteOrder parses the `byte_order` attribute, defaulting to native
// when absent.
func decodeByteOrder(root *yaml.Node, source location.SourceID, col *diag.Collector) (definition.ByteOrder, bool) {
	node, ok := mapLookup(root, "byte_order")
	if !ok {
		return definition.ByteOrderNative, true
	}
	s, ok := scalarString(node)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"byte_order" must be a scalar`).
			WithSpan(spanOf(node, source)).Build())
		return 0, false
	}
	switch s {
	case "big-endian":
		return definition.ByteOrderBigEndian, true
	case "little-endian":
		return definition.ByteOrderLittleEndian, true
	case "native":
		return definition.ByteOrderNative, true
	default:
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			fmt.Sprintf("byte_order %q is not one of big-endian, little-endian, native", s)).
			WithSpan(spanOf(node, source)).
			WithHint("middle-endian is not supported").
			Build())
		return 0, false
	}
}

// decodeSize parses the `size` attribute: either a positive integer or the
// literal "native".
func decodeSize(root *yaml.Node, source location.SourceID, col *diag.Collector) (definition.Size, bool) {
	node, ok := mapLookup(root, "size")
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "size"`).
			WithSpan(spanOf(root, source)).Build())
		return definition.Size{}, false
	}
	s, ok := scalarString(node)
	if ok && s == "native" {
		return definition.NativeSize(), true
	}
	n, ok := scalarInt(node)
	if !ok || n <= 0 {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"size" must be a positive integer or "native"`).
			WithSpan(spanOf(node, source)).Build())
		return definition.Size{}, false
	}
	return definition.FixedSize(int(n)), true
}

// decodeUnits parses the `units` attribute, defaulting to bytes when absent.
func decodeUnits(root *yaml.Node, source location.SourceID, col *diag.Collector) (definition.Units, bool) {
	node, ok := mapLookup(root, "units")
	if !ok {
		return definition.UnitsBytes, true
	}
	s, ok := scalarString(node)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"units" must be a scalar`).
			WithSpan(spanOf(node, source)).Build())
		return 0, false
	}
	switch s {
	case "bytes":
		return definition.UnitsBytes, true
	case "bits":
		return definition.UnitsBits, true
	default:
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			fmt.Sprintf("units %q is not one of bytes, bits", s)).
			WithSpan(spanOf(node, source)).Build())
		return 0, false
	}
}

// decodeFixedSizeAttrs decodes byte_order/size/units together, the shared
// attribute set every fixed-size kind carries.
func decodeFixedSizeAttrs(root *yaml.Node, source location.SourceID, col *diag.Collector) (definition.FixedSizeAttrs, bool) {
	byteOrder, ok := decodeByteOrder(root, source, col)
	if !ok {
		return definition.FixedSizeAttrs{}, false
	}
	size, ok := decodeSize(root, source, col)
	if !ok {
		return definition.FixedSizeAttrs{}, false
	}
	units, ok := decodeUnits(root, source, col)
	if !ok {
		return definition.FixedSizeAttrs{}, false
	}
	return definition.FixedSizeAttrs{ByteOrder: byteOrder, Size: size, Units: units}, true
}

// safeBuild calls build, collecting an issue and reporting ok=false instead
// of propagating the panic if a definition-package constructor's invariant
// check fires, a backstop for invariants this package's own attribute
// validation did not already rule out ahead of the constructor call.
func safeBuild[T any](col *diag.Collector, span location.Span, code diag.Code, build func() T) (result T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			col.Collect(diag.NewIssue(diag.Error, code, fmt.Sprintf("%v", r)).WithSpan(span).Build())
			var zero T
			result = zero
			ok = false
		}
	}()
	return build(), true
}
