package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/location"
)

var memberBaseKeys = map[string]bool{
	"name": true, "aliases": true, "description": true, "condition": true,
	"data_type": true, "type": true, "value": true, "values": true,
}

// inlineKeysFor returns the attribute keys a member's mapping additionally
// accepts when its `type` attribute declares an inline kind.
func inlineKeysFor(kindName string) []string {
	switch kindName {
	case "sequence", "stream":
		return []string{"element_data_type", "number_of_elements", "elements_data_size", "elements_terminator"}
	case "string":
		return []string{"element_data_type", "number_of_elements", "elements_data_size", "elements_terminator", "encoding"}
	case "padding":
		return []string{"alignment_size"}
	default:
		return nil
	}
}

// decodeInlineType decodes an anonymous inline type attached directly to a
// member's own mapping, restricted to the inline-allowed kinds: sequence,
// stream, string, padding.
func decodeInlineType(root *yaml.Node, kindName string, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	// anonymous: no name, but the declaring member node's span is kept so
	// resolution diagnostics can still point somewhere.
	anon := definition.Common{Span: spanOf(root, source)}
	switch kindName {
	case "sequence":
		return decodeSequence(root, anon, source, col)
	case "stream":
		return decodeStream(root, anon, source, col)
	case "string":
		return decodeString(root, anon, source, col)
	case "padding":
		return decodePadding(root, anon, source, col)
	default:
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			fmt.Sprintf("member type %q cannot be declared inline", kindName)).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
}

// decodeMember decodes one entry of a structure's or union's `members`
// sequence.
func decodeMember(node *yaml.Node, source location.SourceID, col *diag.Collector, inUnion bool) (definition.Member, bool) {
	_, hasDataType := mapLookup(node, "data_type")
	typeNode, hasType := mapLookup(node, "type")

	var kindName string
	if hasType {
		var ok bool
		kindName, ok = scalarString(typeNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `member "type" must be a scalar`).
				WithSpan(spanOf(typeNode, source)).Build())
			return definition.Member{}, false
		}
	}

	allowed := map[string]bool{}
	for k := range memberBaseKeys {
		allowed[k] = true
	}
	for _, k := range inlineKeysFor(kindName) {
		allowed[k] = true
	}
	for _, e := range mapEntries(node) {
		if !allowed[e.key.Value] {
			col.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_ATTRIBUTE,
				fmt.Sprintf("unrecognized member attribute %q", e.key.Value)).
				WithSpan(spanOf(e.key, source)).Build())
			return definition.Member{}, false
		}
	}

	if hasDataType == hasType {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE,
			"member requires exactly one of data_type or type").
			WithSpan(spanOf(node, source)).Build())
		return definition.Member{}, false
	}

	params := definition.MemberParams{}

	if nameNode, present := mapLookup(node, "name"); present {
		name, ok := scalarString(nameNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_NAME, `member "name" must be a scalar`).
				WithSpan(spanOf(nameNode, source)).Build())
			return definition.Member{}, false
		}
		params.Name = name
	} else if !inUnion {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `member "name" is required outside a union`).
			WithSpan(spanOf(node, source)).Build())
		return definition.Member{}, false
	}

	if aliasesNode, present := mapLookup(node, "aliases"); present {
		aliases, ok := stringSeq(aliasesNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `member "aliases" must be a sequence of strings`).
				WithSpan(spanOf(aliasesNode, source)).Build())
			return definition.Member{}, false
		}
		params.Aliases = aliases
	}

	if descNode, present := mapLookup(node, "description"); present {
		desc, ok := scalarString(descNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `member "description" must be a scalar`).
				WithSpan(spanOf(descNode, source)).Build())
			return definition.Member{}, false
		}
		params.Description = desc
	}

	if condNode, present := mapLookup(node, "condition"); present {
		s, ok := scalarString(condNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `member "condition" must be a scalar`).
				WithSpan(spanOf(condNode, source)).Build())
			return definition.Member{}, false
		}
		cond, err := expr.ParseCondition(s)
		if err != nil {
			col.Collect(diag.NewIssue(diag.Error, diag.E_EXPRESSION_SYNTAX, err.Error()).
				WithSpan(spanOf(condNode, source)).Build())
			return definition.Member{}, false
		}
		params.Condition = cond
	}

	if hasDataType {
		dtNode, _ := mapLookup(node, "data_type")
		name, ok := scalarString(dtNode)
		if !ok || name == "" {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"data_type" must be a non-empty scalar`).
				WithSpan(spanOf(dtNode, source)).Build())
			return definition.Member{}, false
		}
		params.DataType = definition.NewDefRef(name)
	} else {
		inline, ok := decodeInlineType(node, kindName, source, col)
		if !ok {
			return definition.Member{}, false
		}
		if !inline.Kind().IsInlineAllowed() {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
				fmt.Sprintf("member type %q cannot be declared inline", inline.Kind())).
				WithSpan(spanOf(typeNode, source)).Build())
			return definition.Member{}, false
		}
		params.InlineType = inline
	}

	if valueNode, present := mapLookup(node, "value"); present {
		b, ok := hexBytes(valueNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"value" must be a hex byte string`).
				WithSpan(spanOf(valueNode, source)).Build())
			return definition.Member{}, false
		}
		params.Value = b
	}
	if valuesNode, present := mapLookup(node, "values"); present {
		bs, ok := hexByteSeq(valuesNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"values" must be a sequence of hex byte strings`).
				WithSpan(spanOf(valuesNode, source)).Build())
			return definition.Member{}, false
		}
		params.Values = bs
	}
	if params.Value != nil && params.Values != nil {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE,
			"member value and values are mutually exclusive").
			WithSpan(spanOf(node, source)).Build())
		return definition.Member{}, false
	}

	return safeBuild(col, spanOf(node, source), diag.E_INTERNAL, func() definition.Member {
		return definition.NewMember(params, inUnion)
	})
}

// decodeMembers decodes a `members` sequence attribute shared by structure
// and union.
func decodeMembers(root *yaml.Node, source location.SourceID, col *diag.Collector, inUnion bool) ([]definition.Member, bool) {
	node, present := mapLookup(root, "members")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "members"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"members" must be a non-empty sequence`).
			WithSpan(spanOf(node, source)).Build())
		return nil, false
	}

	members := make([]definition.Member, 0, len(node.Content))
	ok := true
	for _, entry := range node.Content {
		m, mok := decodeMember(entry, source, col, inUnion)
		if !mok {
			ok = false
			continue
		}
		members = append(members, m)
	}
	return members, ok
}

func decodeStructure(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	members, ok := decodeMembers(root, source, col, false)
	if !ok {
		return nil, false
	}
	return safeBuild(col, spanOf(root, source), diag.E_INTERNAL, func() definition.Definition {
		return definition.NewStructure(c, members)
	})
}

func decodeUnion(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	members, ok := decodeMembers(root, source, col, true)
	if !ok {
		return nil, false
	}
	return safeBuild(col, spanOf(root, source), diag.E_INTERNAL, func() definition.Definition {
		return definition.NewUnion(c, members)
	})
}
