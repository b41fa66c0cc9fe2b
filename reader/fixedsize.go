package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
)

var (
	booleanSizes   = map[int64]bool{1: true, 2: true, 4: true}
	characterSizes = map[int64]bool{1: true, 2: true, 4: true}
	integerSizes   = map[int64]bool{1: true, 2: true, 4: true, 8: true}
	floatSizes     = map[int64]bool{4: true, 8: true}
)

func checkFixedSize(attrs definition.FixedSizeAttrs, allowed map[int64]bool, kind string, source location.SourceID, span location.Span, col *diag.Collector) bool {
	bytes, ok := attrs.Size.Bytes()
	if !ok {
		// native is not checked against allowed; the mapper resolves it to
		// the host word width unchecked.
		return true
	}
	if !allowed[int64(bytes)] {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			fmt.Sprintf("%s does not support size %d", kind, bytes)).WithSpan(span).Build())
		return false
	}
	return true
}

func decodeBoolean(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeFixedSizeAttrs(root, source, col)
	if !ok {
		return nil, false
	}
	if !checkFixedSize(attrs, booleanSizes, "boolean", source, spanOf(root, source), col) {
		return nil, false
	}

	var falseValue int64
	if node, present := mapLookup(root, "false_value"); present {
		v, ok := scalarInt(node)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"false_value" must be an integer`).
				WithSpan(spanOf(node, source)).Build())
			return nil, false
		}
		falseValue = v
	}

	var trueValue *int64
	if node, present := mapLookup(root, "true_value"); present {
		v, ok := scalarInt(node)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"true_value" must be an integer`).
				WithSpan(spanOf(node, source)).Build())
			return nil, false
		}
		trueValue = &v
	}

	return definition.NewBoolean(c, attrs, falseValue, trueValue), true
}

func decodeCharacter(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeFixedSizeAttrs(root, source, col)
	if !ok {
		return nil, false
	}
	if !checkFixedSize(attrs, characterSizes, "character", source, spanOf(root, source), col) {
		return nil, false
	}
	return definition.NewCharacter(c, attrs), true
}

func decodeInteger(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeFixedSizeAttrs(root, source, col)
	if !ok {
		return nil, false
	}
	if !checkFixedSize(attrs, integerSizes, "integer", source, spanOf(root, source), col) {
		return nil, false
	}

	format := definition.IntegerFormatSigned
	if node, present := mapLookup(root, "format"); present {
		s, ok := scalarString(node)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"format" must be a scalar`).
				WithSpan(spanOf(node, source)).Build())
			return nil, false
		}
		switch s {
		case "signed":
			format = definition.IntegerFormatSigned
		case "unsigned":
			format = definition.IntegerFormatUnsigned
		default:
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
				fmt.Sprintf("format %q is not one of signed, unsigned", s)).
				WithSpan(spanOf(node, source)).Build())
			return nil, false
		}
	}

	return definition.NewInteger(c, attrs, format), true
}

func decodeFloatingPoint(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeFixedSizeAttrs(root, source, col)
	if !ok {
		return nil, false
	}
	if !checkFixedSize(attrs, floatSizes, "floating-point", source, spanOf(root, source), col) {
		return nil, false
	}
	return definition.NewFloatingPoint(c, attrs), true
}

func decodeUUID(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	byteOrder, ok := decodeByteOrder(root, source, col)
	if !ok {
		return nil, false
	}
	units, ok := decodeUnits(root, source, col)
	if !ok {
		return nil, false
	}
	if node, present := mapLookup(root, "size"); present {
		n, ok := scalarInt(node)
		if !ok || n != 16 {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `uuid "size" must be 16`).
				WithSpan(spanOf(node, source)).Build())
			return nil, false
		}
	}
	return definition.NewUUID(c, byteOrder, units), true
}
