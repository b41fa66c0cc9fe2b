package reader

import (
	"fmt"
	"strings"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/location"
)

// validateStructureExpressions statically checks the paths referenced by a
// structure's members' condition/number_of_elements/elements_data_size
// expressions.
//
// Only single-segment paths are checked here, against the set of preceding
// sibling member names within the same structure: the common case (a count
// or condition referring to an earlier field) and the one a reader pass can
// verify without modeling cross-structure embedding. A multi-segment path
// (e.g. "parent.version") walks an ancestor MapContext scope that depends on
// how and where this structure is embedded, which isn't known until decode
// time; those are left unchecked. If such a path never resolves, the mapper
// reports the decode failure as E_EVAL_ERROR, not E_UNBOUND_PATH.
func validateStructureExpressions(s *definition.Structure, col *diag.Collector) {
	preceding := make(map[string]bool)
	for _, m := range s.Members() {
		if cond := m.Condition(); cond != nil {
			checkPaths(s.Name(), m.Name(), s.Span(), expr.ConditionPaths(cond), preceding, col)
		}
		if inline, has := m.InlineType(); has {
			checkInlineExprs(s.Name(), m.Name(), inline, preceding, col)
		}
		preceding[m.Name()] = true
	}
}

func checkInlineExprs(structName, memberName string, def definition.Definition, preceding map[string]bool, col *diag.Collector) {
	var count, size expr.Expr
	switch d := def.(type) {
	case *definition.Sequence:
		count, size = d.NumberOfElements, d.ElementsDataSize
	case *definition.Stream:
		count, size = d.NumberOfElements, d.ElementsDataSize
	case *definition.String:
		count, size = d.NumberOfElements, d.ElementsDataSize
	default:
		return
	}
	if count != nil {
		checkPaths(structName, memberName, def.Span(), expr.Paths(count), preceding, col)
	}
	if size != nil {
		checkPaths(structName, memberName, def.Span(), expr.Paths(size), preceding, col)
	}
}

func checkPaths(structName, memberName string, span location.Span, paths []string, preceding map[string]bool, col *diag.Collector) {
	for _, p := range paths {
		if strings.Contains(p, ".") {
			continue
		}
		if !preceding[p] {
			col.Collect(diag.NewIssue(diag.Error, diag.E_UNBOUND_PATH,
				fmt.Sprintf("structure %q member %q references undefined path %q", structName, memberName, p)).
				WithSpan(span).
				WithDetails(diag.NameMember(structName, memberName)...).
				WithDetail(diag.DetailKeyPath, p).Build())
		}
	}
}
