// Package reader ingests a multi-document YAML schema stream into a
// [registry.Registry] of resolved [definition.Definition] values in two
// passes: ingest, then resolve.
package reader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
	"github.com/libyal/dtfabric-go/registry"
)

// kindKeys lists the attribute keys each `type` tag additionally accepts,
// beyond baseKeys. An unlisted type is E_UNKNOWN_KIND.
var kindKeys = map[string][]string{
	"boolean":          {"byte_order", "size", "units", "false_value", "true_value"},
	"character":        {"byte_order", "size", "units"},
	"integer":          {"byte_order", "size", "units", "format"},
	"floating-point":   {"byte_order", "size", "units"},
	"uuid":             {"byte_order", "size", "units"},
	"sequence":         {"element_data_type", "number_of_elements", "elements_data_size", "elements_terminator"},
	"stream":           {"element_data_type", "number_of_elements", "elements_data_size", "elements_terminator"},
	"string":           {"element_data_type", "number_of_elements", "elements_data_size", "elements_terminator", "encoding"},
	"padding":          {"alignment_size"},
	"structure":        {"members"},
	"union":            {"members"},
	"constant":         {"value"},
	"enumeration":      {"value_data_type", "values"},
	"format":           {"layout"},
	"structure-family": {"base", "members"},
	"structure-group":  {"base", "identifier", "members", "default"},
}

// Read ingests documents (an ordered sequence of YAML documents, separated
// by "---" in r) into a fully resolved Registry: pass 1 parses and registers
// every Definition skeleton (reader.ingestDocument), pass 2
// (reader.resolve) replaces name references with handles, detects
// ownership cycles, and validates family/group invariants.
//
// Pass 2 only runs if pass 1 collected no errors; a malformed document
// stream is never partially resolved.
func Read(r io.Reader) (*registry.Registry, diag.Result) {
	col := diag.NewCollectorUnlimited()
	reg := registry.New()

	dec := yaml.NewDecoder(r)
	index := 0
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			col.Collect(diag.NewIssue(diag.Fatal, diag.E_MALFORMED_YAML, err.Error()).
				WithSpan(location.Point(location.SourceIDFromIndex(index), 0, 0)).Build())
			return reg, col.Result()
		}
		ingestDocument(&doc, location.SourceIDFromIndex(index), reg, col)
		index++
	}

	if col.HasErrors() {
		return reg, col.Result()
	}

	resolve(reg, col)
	return reg, col.Result()
}

// ingestDocument decodes one YAML document into a Definition skeleton and
// registers it.
func ingestDocument(doc *yaml.Node, source location.SourceID, reg *registry.Registry, col *diag.Collector) {
	root := documentRoot(doc)
	if root == nil {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MALFORMED_YAML, "document root is not a mapping").
			WithSpan(spanOf(doc, source)).Build())
		return
	}

	typeNode, present := mapLookup(root, "type")
	if !present {
		col.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ATTRIBUTE, `missing required attribute "type"`).
			WithSpan(spanOf(root, source)).Build())
		return
	}
	kindName, ok := scalarString(typeNode)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_ATTRIBUTE_VALUE, `"type" must be a scalar`).
			WithSpan(spanOf(typeNode, source)).Build())
		return
	}

	def, ok := decodeDefinition(root, kindName, source, col)
	if !ok {
		return
	}

	if err := reg.Register(def); err != nil {
		issue := diag.NewIssue(diag.Error, diag.E_DUPLICATE_NAME, err.Error()).
			WithSpan(spanOf(root, source)).
			WithDetail(diag.DetailKeyName, def.Name())
		var dup *registry.DuplicateNameError
		if errors.As(err, &dup) {
			issue = issue.WithRelated(location.RelatedInfo{
				Span:    dup.Existing.Span(),
				Message: location.MsgPreviousDefinition,
			})
		}
		col.Collect(issue.Build())
	}
}

// decodeDefinition dispatches on kindName to the per-kind decoder, having
// already validated the common attribute set against that kind's allowed
// keys; unknown attributes are rejected.
func decodeDefinition(root *yaml.Node, kindName string, source location.SourceID, col *diag.Collector) (definition.Definition, bool) {
	extra, known := kindKeys[kindName]
	if !known {
		col.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_KIND, fmt.Sprintf("unknown type %q", kindName)).
			WithSpan(spanOf(root, source)).Build())
		return nil, false
	}

	c, ok := decodeCommon(root, source, col, withKeys(extra...))
	if !ok {
		return nil, false
	}

	switch kindName {
	case "boolean":
		return decodeBoolean(root, c, source, col)
	case "character":
		return decodeCharacter(root, c, source, col)
	case "integer":
		return decodeInteger(root, c, source, col)
	case "floating-point":
		return decodeFloatingPoint(root, c, source, col)
	case "uuid":
		return decodeUUID(root, c, source, col)
	case "sequence":
		return decodeSequence(root, c, source, col)
	case "stream":
		return decodeStream(root, c, source, col)
	case "string":
		return decodeString(root, c, source, col)
	case "padding":
		return decodePadding(root, c, source, col)
	case "structure":
		return decodeStructure(root, c, source, col)
	case "union":
		return decodeUnion(root, c, source, col)
	case "constant":
		return decodeConstant(root, c, source, col)
	case "enumeration":
		return decodeEnumeration(root, c, source, col)
	case "format":
		return decodeFormat(root, c, source, col)
	case "structure-family":
		return decodeStructureFamily(root, c, source, col)
	case "structure-group":
		return decodeStructureGroup(root, c, source, col)
	default:
		panic("reader: unreachable kind dispatch for " + kindName)
	}
}
