package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/location"
)

var allowedAlignments = map[int64]bool{2: true, 4: true, 8: true, 16: true}

// decodeExprAttr parses a size/count attribute's scalar value (an integer
// literal or a dotted-path expression) as an [expr.Expr]. Expressions are
// parsed, never evaluated, during this pass.
func decodeExprAttr(root *yaml.Node, key string, source location.SourceID, col *diag.Collector) (expr.Expr, bool, bool) {
	node, present := mapLookup(root, key)
	if !present {
		return nil, false, true
	}
	s, ok := scalarString(node)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, fmt.Sprintf("%q must be a scalar", key)).
			WithSpan(spanOf(node, source)).Build())
		return nil, false, false
	}
	e, err := expr.Parse(s)
	if err != nil {
		col.Collect(diag.NewIssue(diag.Error, diag.E_EXPRESSION_SYNTAX, err.Error()).
			WithSpan(spanOf(node, source)).WithDetail(diag.DetailKeyName, key).Build())
		return nil, false, false
	}
	return e, true, true
}

func decodeVariableAttrs(root *yaml.Node, kind string, source location.SourceID, col *diag.Collector) (definition.VariableAttrs, bool) {
	edtNode, present := mapLookup(root, "element_data_type")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "element_data_type"`).
			WithSpan(spanOf(root, source)).Build())
		return definition.VariableAttrs{}, false
	}
	edtName, ok := scalarString(edtNode)
	if !ok || edtName == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"element_data_type" must be a non-empty scalar`).
			WithSpan(spanOf(edtNode, source)).Build())
		return definition.VariableAttrs{}, false
	}

	numberOfElements, haveN, ok := decodeExprAttr(root, "number_of_elements", source, col)
	if !ok {
		return definition.VariableAttrs{}, false
	}
	elementsDataSize, haveS, ok := decodeExprAttr(root, "elements_data_size", source, col)
	if !ok {
		return definition.VariableAttrs{}, false
	}

	var terminator []byte
	haveT := false
	if node, present := mapLookup(root, "elements_terminator"); present {
		b, ok := hexBytes(node)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"elements_terminator" must be a hex byte string`).
				WithSpan(spanOf(node, source)).Build())
			return definition.VariableAttrs{}, false
		}
		terminator = b
		haveT = true
	}

	if !haveN && !haveS && !haveT {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE,
			fmt.Sprintf("%s requires at least one of number_of_elements, elements_data_size, elements_terminator", kind)).
			WithSpan(spanOf(root, source)).Build())
		return definition.VariableAttrs{}, false
	}

	return definition.VariableAttrs{
		ElementDataType:    definition.NewDefRef(edtName),
		NumberOfElements:   numberOfElements,
		ElementsDataSize:   elementsDataSize,
		ElementsTerminator: terminator,
	}, true
}

func decodeSequence(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeVariableAttrs(root, "sequence", source, col)
	if !ok {
		return nil, false
	}
	return definition.NewSequence(c, attrs), true
}

func decodeStream(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeVariableAttrs(root, "stream", source, col)
	if !ok {
		return nil, false
	}
	return definition.NewStream(c, attrs), true
}

func decodeString(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	attrs, ok := decodeVariableAttrs(root, "string", source, col)
	if !ok {
		return nil, false
	}
	encNode, present := mapLookup(root, "encoding")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "encoding"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	encoding, ok := scalarString(encNode)
	if !ok || encoding == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"encoding" must be a non-empty scalar`).
			WithSpan(spanOf(encNode, source)).Build())
		return nil, false
	}
	return definition.NewString(c, attrs, encoding), true
}

func decodePadding(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	node, present := mapLookup(root, "alignment_size")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "alignment_size"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	n, ok := scalarInt(node)
	if !ok || !allowedAlignments[n] {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"alignment_size" must be one of 2, 4, 8, 16`).
			WithSpan(spanOf(node, source)).Build())
		return nil, false
	}
	return definition.NewPadding(c, int(n)), true
}
