package reader

import (
	"encoding/hex"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/libyal/dtfabric-go/location"
)

// spanOf converts a *yaml.Node's line/column into a point [location.Span].
// yaml.v3 does not report byte offsets, so spans are line/column only.
func spanOf(n *yaml.Node, source location.SourceID) location.Span {
	if n == nil {
		return location.Span{}
	}
	return location.Point(source, n.Line, n.Column)
}

type mapEntry struct {
	key   *yaml.Node
	value *yaml.Node
}

// mapEntries returns a mapping node's key/value pairs in document order.
// Returns nil if n is not a mapping node.
func mapEntries(n *yaml.Node) []mapEntry {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]mapEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, mapEntry{key: n.Content[i], value: n.Content[i+1]})
	}
	return out
}

// mapLookup returns the value node for key, or (nil, false) if absent.
func mapLookup(n *yaml.Node, key string) (*yaml.Node, bool) {
	for _, e := range mapEntries(n) {
		if e.key.Value == key {
			return e.value, true
		}
	}
	return nil, false
}

func scalarString(n *yaml.Node) (string, bool) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

func scalarInt(n *yaml.Node) (int64, bool) {
	s, ok := scalarString(n)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// stringSeq decodes a sequence of scalar strings. Returns (nil, false) if n
// is not a sequence node, or any element is not a scalar.
func stringSeq(n *yaml.Node) ([]string, bool) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		s, ok := scalarString(c)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// hexBytes decodes a scalar hex string (e.g. "2d", no "0x" prefix) into raw
// bytes, for the value/values and elements_terminator attributes.
func hexBytes(n *yaml.Node) ([]byte, bool) {
	s, ok := scalarString(n)
	if !ok {
		return nil, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

func hexByteSeq(n *yaml.Node) ([][]byte, bool) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([][]byte, 0, len(n.Content))
	for _, c := range n.Content {
		b, ok := hexBytes(c)
		if !ok {
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}

// documentRoot unwraps a *yaml.Node read by [yaml.Decoder.Decode] (a
// DocumentNode with one child) down to its top-level mapping. Returns nil if
// the document is empty or its root is not a mapping.
func documentRoot(doc *yaml.Node) *yaml.Node {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	return root
}
