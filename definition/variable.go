package definition

import "github.com/libyal/dtfabric-go/expr"

// VariableAttrs holds the attributes shared by sequence, stream, and string:
// an element type reference and at least one of number_of_elements,
// elements_data_size, elements_terminator. Any combination is accepted.
type VariableAttrs struct {
	ElementDataType    DefRef
	NumberOfElements   expr.Expr // nil if unset
	ElementsDataSize   expr.Expr // nil if unset
	ElementsTerminator []byte    // nil if unset
}

func validateVariableAttrs(kind Kind, attrs VariableAttrs) {
	if attrs.ElementDataType.IsZero() {
		panic("definition: " + kind.String() + " requires element_data_type")
	}
	if attrs.NumberOfElements == nil && attrs.ElementsDataSize == nil && attrs.ElementsTerminator == nil {
		panic("definition: " + kind.String() + " requires at least one of number_of_elements, elements_data_size, elements_terminator")
	}
}

// Sequence is the `sequence` variable-size kind.
type Sequence struct {
	common
	VariableAttrs
}

func NewSequence(c Common, attrs VariableAttrs) *Sequence {
	validateVariableAttrs(KindSequence, attrs)
	return &Sequence{common: newCommon(KindSequence, c), VariableAttrs: attrs}
}

// Stream is the `stream` variable-size kind.
type Stream struct {
	common
	VariableAttrs
}

func NewStream(c Common, attrs VariableAttrs) *Stream {
	validateVariableAttrs(KindStream, attrs)
	return &Stream{common: newCommon(KindStream, c), VariableAttrs: attrs}
}

// String is the `string` variable-size kind. It additionally requires an
// `encoding`.
type String struct {
	common
	VariableAttrs
	Encoding string
}

func NewString(c Common, attrs VariableAttrs, encoding string) *String {
	validateVariableAttrs(KindString, attrs)
	if encoding == "" {
		panic("definition: string requires a non-empty encoding")
	}
	return &String{common: newCommon(KindString, c), VariableAttrs: attrs, Encoding: encoding}
}

// allowedAlignments is the set of supported alignment_size values.
var allowedAlignments = map[int]bool{2: true, 4: true, 8: true, 16: true}

// Padding is the `padding` variable-size kind: advances the member boundary
// to the next multiple of AlignmentSize relative to the containing
// structure's start.
type Padding struct {
	common
	AlignmentSize int
}

func NewPadding(c Common, alignmentSize int) *Padding {
	if !allowedAlignments[alignmentSize] {
		panic("definition: padding does not support alignment_size value")
	}
	return &Padding{common: newCommon(KindPadding, c), AlignmentSize: alignmentSize}
}
