package reader

import (
	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
)

func decodeConstant(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	node, present := mapLookup(root, "value")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "value"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	v, ok := scalarInt(node)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"value" must be an integer`).
			WithSpan(spanOf(node, source)).Build())
		return nil, false
	}
	return definition.NewConstant(c, v), true
}

func decodeEnumeration(root *yaml.Node, c definition.Common, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	vdtNode, present := mapLookup(root, "value_data_type")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "value_data_type"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}
	vdtName, ok := scalarString(vdtNode)
	if !ok || vdtName == "" {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"value_data_type" must be a non-empty scalar`).
			WithSpan(spanOf(vdtNode, source)).Build())
		return nil, false
	}

	node, present := mapLookup(root, "values")
	if !present || node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required non-empty attribute "values"`).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}

	var members []definition.EnumerationMember
	for _, entry := range node.Content {
		nameNode, ok := mapLookup(entry, "name")
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `enumeration value missing "name"`).
				WithSpan(spanOf(entry, source)).Build())
			return nil, false
		}
		name, ok := scalarString(nameNode)
		if !ok || name == "" {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_NAME, `enumeration value "name" must be a non-empty scalar`).
				WithSpan(spanOf(nameNode, source)).Build())
			return nil, false
		}

		numberNode, ok := mapLookup(entry, "number")
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `enumeration value missing "number"`).
				WithSpan(spanOf(entry, source)).Build())
			return nil, false
		}
		number, ok := scalarInt(numberNode)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `enumeration value "number" must be an integer`).
				WithSpan(spanOf(numberNode, source)).Build())
			return nil, false
		}

		var description string
		if descNode, present := mapLookup(entry, "description"); present {
			d, ok := scalarString(descNode)
			if !ok {
				col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `enumeration value "description" must be a scalar`).
					WithSpan(spanOf(descNode, source)).Build())
				return nil, false
			}
			description = d
		}

		var aliases []string
		if aliasesNode, present := mapLookup(entry, "aliases"); present {
			a, ok := stringSeq(aliasesNode)
			if !ok {
				col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `enumeration value "aliases" must be a sequence of strings`).
					WithSpan(spanOf(aliasesNode, source)).Build())
				return nil, false
			}
			aliases = a
		}

		members = append(members, definition.EnumerationMember{
			Name: name, Number: number, Description: description, Aliases: aliases,
		})
	}

	return safeBuild(col, spanOf(root, source), diag.E_DUPLICATE_NAME, func() definition.Definition {
		return definition.NewEnumeration(c, members, definition.NewDefRef(vdtName))
	})
}
