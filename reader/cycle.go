package reader

import (
	"strings"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
	"github.com/libyal/dtfabric-go/registry"
)

// visitState is a DFS node's color in the classic white/gray/black scheme.
type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

// detectCycles walks the ownership edges among every resolved Definition
// (structure/union -> member type, sequence/stream/string -> element type,
// enumeration -> value data type, family/group -> base, variants and
// default, format -> layout entries) looking for a
// cycle back to a node still on the current path.
//
// Keyed by Definition (the interface value, not name): anonymous inline
// types have no name, but each is a distinct Go value and DFS only needs
// identity.
func detectCycles(reg *registry.Registry, col *diag.Collector) {
	state := make(map[definition.Definition]visitState)
	for _, def := range reg.All() {
		if state[def] == unvisited {
			walk(def, state, nil, col)
		}
	}
}

func walk(def definition.Definition, state map[definition.Definition]visitState, path []definition.Definition, col *diag.Collector) {
	if state[def] == visiting {
		reportCycle(path, def, col)
		return
	}
	if state[def] == done {
		return
	}

	state[def] = visiting
	path = append(path, def)
	for _, child := range children(def) {
		walk(child, state, path, col)
	}
	state[def] = done
}

// children returns def's directly-owned Definitions, i.e. the edges that
// participate in cycle detection.
func children(def definition.Definition) []definition.Definition {
	var out []definition.Definition
	switch d := def.(type) {
	case *definition.Sequence:
		out = appendResolved(out, d.ElementDataType)
	case *definition.Stream:
		out = appendResolved(out, d.ElementDataType)
	case *definition.String:
		out = appendResolved(out, d.ElementDataType)
	case *definition.Enumeration:
		out = appendResolved(out, d.ValueDataType())
	case *definition.Structure:
		for _, m := range d.Members() {
			out = appendMemberChild(out, m)
		}
	case *definition.Union:
		for _, m := range d.Members() {
			out = appendMemberChild(out, m)
		}
	case *definition.Format:
		for _, e := range d.Layout() {
			out = appendResolved(out, e.DataType)
		}
	case *definition.StructureFamily:
		out = appendResolved(out, d.Base())
		for _, v := range d.Variants() {
			out = appendResolved(out, v)
		}
	case *definition.StructureGroup:
		out = appendResolved(out, d.Base())
		for _, v := range d.Variants() {
			out = appendResolved(out, v)
		}
		if defRef, has := d.Default(); has {
			out = appendResolved(out, defRef)
		}
	}
	return out
}

func appendMemberChild(out []definition.Definition, m definition.Member) []definition.Definition {
	if ref, has := m.DataType(); has {
		return appendResolved(out, ref)
	}
	if inline, has := m.InlineType(); has {
		return append(out, inline)
	}
	return out
}

func appendResolved(out []definition.Definition, ref definition.DefRef) []definition.Definition {
	if target, ok := ref.Resolved(); ok {
		out = append(out, target)
	}
	return out
}

// reportCycle builds an E_DEFINITION_CYCLE issue naming the cycle from
// closing's first occurrence in path back to closing (the edge that closed
// the loop).
func reportCycle(path []definition.Definition, closing definition.Definition, col *diag.Collector) {
	start := 0
	for i, d := range path {
		if d == closing {
			start = i
			break
		}
	}
	names := make([]string, 0, len(path)-start+1)
	related := make([]location.RelatedInfo, 0, len(path)-start)
	for _, d := range path[start:] {
		names = append(names, cycleLabel(d))
		related = append(related, location.RelatedInfo{
			Span:    d.Span(),
			Message: location.MsgCycleParticipant,
		})
	}
	names = append(names, cycleLabel(closing))

	col.Collect(diag.NewIssue(diag.Error, diag.E_DEFINITION_CYCLE,
		"ownership cycle detected: "+strings.Join(names, " -> ")).
		WithSpan(closing.Span()).
		WithRelated(related...).
		WithDetail(diag.DetailKeyCycle, strings.Join(names, ",")).Build())
}

func cycleLabel(d definition.Definition) string {
	if d.Name() != "" {
		return d.Name()
	}
	return "<inline " + d.Kind().String() + ">"
}
