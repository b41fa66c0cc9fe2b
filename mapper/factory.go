package mapper

import (
	"fmt"
	"sync"

	"github.com/libyal/dtfabric-go/definition"
)

// Factory builds a [Map] tree from a resolved [definition.Definition].
// Maps are memoized by Definition identity so a given Definition produces
// the same Map instance on repeated requests within one Factory.
type Factory struct {
	mu    sync.Mutex
	cache map[definition.Definition]Map
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{cache: make(map[definition.Definition]Map)}
}

// Build returns the Map for def, constructing (and recursively
// materializing any child Maps) on first request and returning the cached
// instance thereafter.
func (f *Factory) Build(def definition.Definition) (Map, error) {
	if def == nil {
		panic("mapper: Factory.Build requires a non-nil Definition")
	}

	f.mu.Lock()
	if m, ok := f.cache[def]; ok {
		f.mu.Unlock()
		return m, nil
	}
	f.mu.Unlock()

	m, err := f.build(def)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.cache[def] = m
	f.mu.Unlock()
	return m, nil
}

func (f *Factory) build(def definition.Definition) (Map, error) {
	switch d := def.(type) {
	case *definition.Integer:
		return &IntegerMap{def: d}, nil
	case *definition.Boolean:
		return &BooleanMap{def: d}, nil
	case *definition.Character:
		return &CharacterMap{def: d}, nil
	case *definition.FloatingPoint:
		return &FloatingPointMap{def: d}, nil
	case *definition.UUID:
		return &UUIDMap{def: d}, nil
	case *definition.Sequence:
		elem, err := f.buildRef(d.ElementDataType)
		if err != nil {
			return nil, err
		}
		return &SequenceMap{def: d, element: elem}, nil
	case *definition.Stream:
		elem, err := f.buildRef(d.ElementDataType)
		if err != nil {
			return nil, err
		}
		return &StreamMap{def: d, element: elem}, nil
	case *definition.String:
		elem, err := f.buildRef(d.ElementDataType)
		if err != nil {
			return nil, err
		}
		return &StringMap{def: d, element: elem}, nil
	case *definition.Padding:
		return &PaddingMap{def: d}, nil
	case *definition.Structure:
		return f.buildStructure(d)
	case *definition.Union:
		members, err := f.buildMembers(d.Members())
		if err != nil {
			return nil, err
		}
		return &UnionMap{def: d, members: members}, nil
	case *definition.Constant:
		return &ConstantMap{def: d}, nil
	case *definition.Enumeration:
		vt, err := f.buildRef(d.ValueDataType())
		if err != nil {
			return nil, err
		}
		return &EnumerationMap{def: d, valueType: vt}, nil
	case *definition.Format:
		return f.buildFormat(d)
	case *definition.StructureFamily:
		return f.buildFamily(d)
	case *definition.StructureGroup:
		return f.buildGroup(d)
	default:
		return nil, fmt.Errorf("mapper: unknown Definition kind %s", def.Kind())
	}
}

func (f *Factory) buildRef(ref definition.DefRef) (Map, error) {
	target, ok := ref.Resolved()
	if !ok {
		return nil, fmt.Errorf("mapper: unresolved reference %q", ref.Name())
	}
	return f.Build(target)
}

func (f *Factory) buildStructure(d *definition.Structure) (Map, error) {
	members, err := f.buildMembers(d.Members())
	if err != nil {
		return nil, err
	}
	return &StructureMap{def: d, members: members}, nil
}

func (f *Factory) buildMembers(members []definition.Member) ([]memberMap, error) {
	out := make([]memberMap, len(members))
	for i, mem := range members {
		childMap, err := f.buildMemberType(mem)
		if err != nil {
			return nil, err
		}
		out[i] = memberMap{member: mem, value: childMap}
	}
	return out, nil
}

func (f *Factory) buildMemberType(mem definition.Member) (Map, error) {
	if ref, has := mem.DataType(); has {
		return f.buildRef(ref)
	}
	inline, _ := mem.InlineType()
	return f.Build(inline)
}

func (f *Factory) buildFormat(d *definition.Format) (Map, error) {
	layout := d.Layout()
	entries := make([]layoutEntryMap, len(layout))
	for i, e := range layout {
		childMap, err := f.buildRef(e.DataType)
		if err != nil {
			return nil, err
		}
		target, _ := e.DataType.Resolved()
		entries[i] = layoutEntryMap{name: target.Name(), offset: e.Offset, value: childMap}
	}
	return &FormatMap{def: d, entries: entries}, nil
}

func (f *Factory) buildFamily(d *definition.StructureFamily) (Map, error) {
	baseMap, err := f.buildRef(d.Base())
	if err != nil {
		return nil, err
	}

	variants := make(map[string]Map, len(d.Variants()))
	order := make([]string, 0, len(d.Variants()))
	for _, vref := range d.Variants() {
		vm, err := f.buildRef(vref)
		if err != nil {
			return nil, err
		}
		variants[vref.Name()] = vm
		order = append(order, vref.Name())
	}
	return &FamilyMap{def: d, base: baseMap, variants: variants, order: order}, nil
}

func (f *Factory) buildGroup(d *definition.StructureGroup) (Map, error) {
	baseMap, err := f.buildRef(d.Base())
	if err != nil {
		return nil, err
	}
	base, ok := baseMap.(*StructureMap)
	if !ok {
		return nil, fmt.Errorf("mapper: structure-group %q base is not a structure", d.Name())
	}

	variants := make([]groupVariant, 0, len(d.Variants()))
	for _, vref := range d.Variants() {
		vm, err := f.buildRef(vref)
		if err != nil {
			return nil, err
		}
		target, _ := vref.Resolved()
		variantStruct, ok := target.(*definition.Structure)
		if !ok {
			return nil, fmt.Errorf("mapper: structure-group %q variant %q is not a structure", d.Name(), vref.Name())
		}
		idMember, found := variantStruct.Member(d.Identifier())
		if !found {
			return nil, fmt.Errorf("mapper: structure-group %q variant %q lacks identifier member", d.Name(), vref.Name())
		}
		pin, _ := idMember.Value()
		variants = append(variants, groupVariant{name: vref.Name(), pin: pin, m: vm})
	}

	var defaultMap Map
	if defRef, has := d.Default(); has {
		dm, err := f.buildRef(defRef)
		if err != nil {
			return nil, err
		}
		defaultMap = dm
	}

	return &GroupMap{def: d, base: base, variants: variants, defaultMap: defaultMap}, nil
}
