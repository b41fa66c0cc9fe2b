package reader

import (
	"fmt"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/location"
	"github.com/libyal/dtfabric-go/registry"
)

// resolve runs the reader's second pass over reg. It replaces every name
// reference with a direct handle, detects ownership cycles among
// the resolved handles, and validates structure-family/-group invariants and
// expression path references.
func resolve(reg *registry.Registry, col *diag.Collector) {
	resolveReferences(reg, col)
	if col.HasErrors() {
		return
	}

	detectCycles(reg, col)
	if col.HasErrors() {
		return
	}

	for _, def := range reg.All() {
		switch d := def.(type) {
		case *definition.StructureFamily:
			validateFamily(d, col)
		case *definition.StructureGroup:
			validateGroup(d, col)
		case *definition.Structure:
			validateStructureExpressions(d, col)
		}
	}
}

// resolveRef resolves a single named reference against reg, collecting
// E_UNRESOLVED_REFERENCE (spanned at the owner's declaration) and returning
// ok=false on failure.
func resolveRef(ref definition.DefRef, reg *registry.Registry, ownerName string, ownerSpan location.Span, col *diag.Collector) (definition.DefRef, bool) {
	target, err := reg.Resolve(ref.Name())
	if err != nil {
		col.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_REFERENCE, err.Error()).
			WithSpan(ownerSpan).
			WithDetail(diag.DetailKeyName, ownerName).
			WithDetail(diag.DetailKeyPath, ref.Name()).Build())
		return ref, false
	}
	return ref.Resolve(target), true
}

// resolveReferences replaces every name reference in every registered
// Definition with a direct handle; the data model stores handles, not
// names, from this point.
func resolveReferences(reg *registry.Registry, col *diag.Collector) {
	for _, def := range reg.All() {
		switch d := def.(type) {
		case *definition.Sequence:
			if resolved, ok := resolveRef(d.ElementDataType, reg, d.Name(), d.Span(), col); ok {
				d.SetElementDataType(resolved)
			}
		case *definition.Stream:
			if resolved, ok := resolveRef(d.ElementDataType, reg, d.Name(), d.Span(), col); ok {
				d.SetElementDataType(resolved)
			}
		case *definition.String:
			if resolved, ok := resolveRef(d.ElementDataType, reg, d.Name(), d.Span(), col); ok {
				d.SetElementDataType(resolved)
			}
		case *definition.Enumeration:
			if resolved, ok := resolveRef(d.ValueDataType(), reg, d.Name(), d.Span(), col); ok {
				d.SetValueDataType(resolved)
			}
		case *definition.Structure:
			members, _ := resolveMembers(d.Members(), reg, d.Name(), d.Span(), col)
			d.SetMembers(members)
		case *definition.Union:
			members, _ := resolveMembers(d.Members(), reg, d.Name(), d.Span(), col)
			d.SetMembers(members)
		case *definition.Format:
			layout := d.Layout()
			for i, e := range layout {
				if resolved, ok := resolveRef(e.DataType, reg, d.Name(), d.Span(), col); ok {
					layout[i].DataType = resolved
				}
			}
			d.SetLayout(layout)
		case *definition.StructureFamily:
			if resolved, ok := resolveRef(d.Base(), reg, d.Name(), d.Span(), col); ok {
				d.SetBase(resolved)
			}
			variants := d.Variants()
			for i, v := range variants {
				if resolved, ok := resolveRef(v, reg, d.Name(), d.Span(), col); ok {
					variants[i] = resolved
				}
			}
			d.SetVariants(variants)
		case *definition.StructureGroup:
			if resolved, ok := resolveRef(d.Base(), reg, d.Name(), d.Span(), col); ok {
				d.SetBase(resolved)
			}
			variants := d.Variants()
			for i, v := range variants {
				if resolved, ok := resolveRef(v, reg, d.Name(), d.Span(), col); ok {
					variants[i] = resolved
				}
			}
			d.SetVariants(variants)
			if defRef, has := d.Default(); has {
				if resolved, ok := resolveRef(defRef, reg, d.Name(), d.Span(), col); ok {
					d.SetDefault(&resolved)
				}
			}
		}
	}
}

// resolveMembers resolves each member's named data_type reference, or
// recurses into an anonymous inline type's own element_data_type reference
// (inline types are never registered, so they are mutated in place through
// the shared pointer rather than rebuilt via ResolveDataType).
func resolveMembers(members []definition.Member, reg *registry.Registry, ownerName string, ownerSpan location.Span, col *diag.Collector) ([]definition.Member, bool) {
	out := make([]definition.Member, len(members))
	ok := true
	for i, m := range members {
		switch {
		case func() bool { _, has := m.DataType(); return has }():
			ref, _ := m.DataType()
			target, err := reg.Resolve(ref.Name())
			if err != nil {
				col.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_REFERENCE, err.Error()).
					WithSpan(ownerSpan).
					WithDetails(diag.NameMember(ownerName, m.Name())...).Build())
				ok = false
				out[i] = m
				continue
			}
			out[i] = m.ResolveDataType(target)
		case func() bool { _, has := m.InlineType(); return has }():
			inline, _ := m.InlineType()
			if !resolveInlineRefs(inline, reg, ownerName+"."+m.Name(), col) {
				ok = false
			}
			out[i] = m
		default:
			out[i] = m
		}
	}
	return out, ok
}

// resolveInlineRefs resolves an anonymous inline type's own named
// references. Only sequence/stream/string inline types carry one
// (element_data_type); padding has none. The span is the declaring member
// node's, recorded when the inline type was decoded.
func resolveInlineRefs(def definition.Definition, reg *registry.Registry, ownerName string, col *diag.Collector) bool {
	switch d := def.(type) {
	case *definition.Sequence:
		resolved, ok := resolveRef(d.ElementDataType, reg, ownerName, d.Span(), col)
		if ok {
			d.SetElementDataType(resolved)
		}
		return ok
	case *definition.Stream:
		resolved, ok := resolveRef(d.ElementDataType, reg, ownerName, d.Span(), col)
		if ok {
			d.SetElementDataType(resolved)
		}
		return ok
	case *definition.String:
		resolved, ok := resolveRef(d.ElementDataType, reg, ownerName, d.Span(), col)
		if ok {
			d.SetElementDataType(resolved)
		}
		return ok
	default:
		return true
	}
}

// validateFamily checks that every family variant is a structure exposing
// all base members with compatible data types.
func validateFamily(fam *definition.StructureFamily, col *diag.Collector) {
	baseDef, ok := fam.Base().Resolved()
	if !ok {
		return
	}
	base, ok := baseDef.(*definition.Structure)
	if !ok {
		col.Collect(diag.NewIssue(diag.Error, diag.E_FAMILY_MEMBER_MISMATCH,
			fmt.Sprintf("structure-family %q base %q is not a structure", fam.Name(), fam.Base().Name())).
			WithSpan(fam.Span()).Build())
		return
	}

	for _, vref := range fam.Variants() {
		vdef, ok := vref.Resolved()
		if !ok {
			continue
		}
		variant, ok := vdef.(*definition.Structure)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_FAMILY_MEMBER_MISMATCH,
				fmt.Sprintf("structure-family %q variant %q is not a structure", fam.Name(), vref.Name())).
				WithSpan(vdef.Span()).Build())
			continue
		}
		for _, bm := range base.Members() {
			vm, found := variant.Member(bm.Name())
			if !found {
				col.Collect(diag.NewIssue(diag.Error, diag.E_FAMILY_MEMBER_MISMATCH,
					fmt.Sprintf("structure-family %q variant %q omits base member %q", fam.Name(), vref.Name(), bm.Name())).
					WithSpan(variant.Span()).
					WithDetails(diag.NameMember(vref.Name(), bm.Name())...).Build())
				continue
			}
			if !compatibleMemberTypes(bm, vm) {
				col.Collect(diag.NewIssue(diag.Error, diag.E_FAMILY_MEMBER_MISMATCH,
					fmt.Sprintf("structure-family %q variant %q member %q has an incompatible data type", fam.Name(), vref.Name(), bm.Name())).
					WithSpan(variant.Span()).
					WithDetails(diag.NameMember(vref.Name(), bm.Name())...).Build())
			}
		}
	}
}

// compatibleMemberTypes reports whether two members' resolved data types
// share a kind, and (for fixed-size kinds) a resolved byte size.
func compatibleMemberTypes(a, b definition.Member) bool {
	aDef, aOK := memberResolvedType(a)
	bDef, bOK := memberResolvedType(b)
	if !aOK || !bOK {
		return false
	}
	if aDef.Kind() != bDef.Kind() {
		return false
	}
	aSize, aFixed := fixedSizeOf(aDef)
	bSize, bFixed := fixedSizeOf(bDef)
	if aFixed != bFixed {
		return false
	}
	if aFixed && aSize.Resolve() != bSize.Resolve() {
		return false
	}
	return true
}

func memberResolvedType(m definition.Member) (definition.Definition, bool) {
	if ref, has := m.DataType(); has {
		return ref.Resolved()
	}
	if inline, has := m.InlineType(); has {
		return inline, true
	}
	return nil, false
}

func fixedSizeOf(def definition.Definition) (definition.Size, bool) {
	switch d := def.(type) {
	case *definition.Boolean:
		return d.Size, true
	case *definition.Character:
		return d.Size, true
	case *definition.Integer:
		return d.Size, true
	case *definition.FloatingPoint:
		return d.Size, true
	case *definition.UUID:
		return d.Size, true
	default:
		return definition.Size{}, false
	}
}

// validateGroup checks that every group variant is a structure containing
// the identifier member, pinned with a distinct `value`.
func validateGroup(g *definition.StructureGroup, col *diag.Collector) {
	baseDef, ok := g.Base().Resolved()
	if ok {
		if base, ok := baseDef.(*definition.Structure); ok {
			if _, found := base.Member(g.Identifier()); !found {
				col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_MEMBER_INVALID,
					fmt.Sprintf("structure-group %q base %q lacks identifier member %q", g.Name(), g.Base().Name(), g.Identifier())).
					WithSpan(g.Span()).Build())
			}
		} else {
			col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_MEMBER_INVALID,
				fmt.Sprintf("structure-group %q base %q is not a structure", g.Name(), g.Base().Name())).
				WithSpan(g.Span()).Build())
		}
	}

	seen := make(map[string]string)
	for _, vref := range g.Variants() {
		vdef, ok := vref.Resolved()
		if !ok {
			continue
		}
		variant, ok := vdef.(*definition.Structure)
		if !ok {
			col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_MEMBER_INVALID,
				fmt.Sprintf("structure-group %q variant %q is not a structure", g.Name(), vref.Name())).
				WithSpan(vdef.Span()).Build())
			continue
		}
		idMember, found := variant.Member(g.Identifier())
		if !found {
			col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_MEMBER_INVALID,
				fmt.Sprintf("structure-group %q variant %q lacks identifier member %q", g.Name(), vref.Name(), g.Identifier())).
				WithSpan(variant.Span()).Build())
			continue
		}
		val, hasPin := idMember.Value()
		if !hasPin {
			col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_MEMBER_INVALID,
				fmt.Sprintf("structure-group %q variant %q does not pin identifier member %q with value", g.Name(), vref.Name(), g.Identifier())).
				WithSpan(variant.Span()).Build())
			continue
		}
		key := string(val)
		if prev, dup := seen[key]; dup {
			col.Collect(diag.NewIssue(diag.Error, diag.E_GROUP_DISCRIMINANT_COLLISION,
				fmt.Sprintf("structure-group %q variants %q and %q share discriminant value", g.Name(), prev, vref.Name())).
				WithSpan(variant.Span()).
				WithDetail(diag.DetailKeyDiscriminant, fmt.Sprintf("%x", val)).Build())
			continue
		}
		seen[key] = vref.Name()
	}
}
