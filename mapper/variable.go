package mapper

import (
	"bytes"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/expr"
)

// elementRun is the shared decode loop for sequence/stream/string: decode
// elements one at a time, until whichever of
// number_of_elements/elements_data_size/elements_terminator triggers first.
type elementRun struct {
	decoded  []Value // one entry per decoded element, terminator excluded
	raw      []byte  // the concatenated raw bytes of decoded elements, terminator excluded
	consumed int64   // total bytes consumed, terminator included
}

func decodeElementRun(data []byte, offset int64, ctx *MapContext, elementMap Map, attrs definition.VariableAttrs, ownerName string) (*elementRun, error) {
	var count *int64
	if attrs.NumberOfElements != nil {
		n, err := expr.Eval(attrs.NumberOfElements, ctx)
		if err != nil {
			return nil, newDecodeError(diag.E_EVAL_ERROR, ownerName, "", offset, err.Error())
		}
		count = &n
	}
	var dataSize *int64
	if attrs.ElementsDataSize != nil {
		n, err := expr.Eval(attrs.ElementsDataSize, ctx)
		if err != nil {
			return nil, newDecodeError(diag.E_EVAL_ERROR, ownerName, "", offset, err.Error())
		}
		dataSize = &n
	}
	terminator := attrs.ElementsTerminator

	run := &elementRun{}
	pos := offset
	for {
		if count != nil && int64(len(run.decoded)) >= *count {
			break
		}
		if dataSize != nil {
			if run.consumed == *dataSize {
				break
			}
			if run.consumed > *dataSize {
				return nil, newDecodeError(diag.E_TRAILING_BYTES, ownerName, "", pos,
					"element run did not land on elements_data_size boundary")
			}
		}

		value, n, err := elementMap.MapByteStream(data, pos, ctx)
		if err != nil {
			return nil, err
		}
		elementBytes := data[pos : pos+n]

		if terminator != nil && bytes.Equal(elementBytes, terminator) {
			run.consumed += n
			break
		}

		run.decoded = append(run.decoded, value)
		run.raw = append(run.raw, elementBytes...)
		run.consumed += n
		pos += n
	}
	return run, nil
}

// SequenceMap decodes the `sequence` variable-size kind: a positional
// sequence of independently typed elements.
type SequenceMap struct {
	def     *definition.Sequence
	element Map
}

func (m *SequenceMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	run, err := decodeElementRun(data, offset, ctx, m.element, m.def.VariableAttrs, m.def.Name())
	if err != nil {
		return nil, 0, err
	}
	return append([]Value(nil), run.decoded...), run.consumed, nil
}

func (m *SequenceMap) ByteSize() (int64, bool) {
	return fixedElementsSize(m.def.VariableAttrs, m.element)
}

// StreamMap decodes the `stream` variable-size kind: an opaque run of raw
// bytes.
type StreamMap struct {
	def     *definition.Stream
	element Map
}

func (m *StreamMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	run, err := decodeElementRun(data, offset, ctx, m.element, m.def.VariableAttrs, m.def.Name())
	if err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), run.raw...), run.consumed, nil
}

func (m *StreamMap) ByteSize() (int64, bool) {
	return fixedElementsSize(m.def.VariableAttrs, m.element)
}

// StringMap decodes the `string` variable-size kind: a raw byte run
// transformed by the declared text encoding.
type StringMap struct {
	def     *definition.String
	element Map
}

func (m *StringMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	run, err := decodeElementRun(data, offset, ctx, m.element, m.def.VariableAttrs, m.def.Name())
	if err != nil {
		return nil, 0, err
	}
	text, err := decodeText(run.raw, m.def.Encoding, m.def.Name(), offset)
	if err != nil {
		return nil, 0, err
	}
	return text, run.consumed, nil
}

func (m *StringMap) ByteSize() (int64, bool) {
	return fixedElementsSize(m.def.VariableAttrs, m.element)
}

// fixedElementsSize reports a fixed byte size only when the element count is
// a literal integer expression, no terminator can end the run early, and the
// element type is itself fixed-size; any other element run's size depends on
// the decode.
func fixedElementsSize(attrs definition.VariableAttrs, element Map) (int64, bool) {
	if attrs.ElementsTerminator != nil {
		return 0, false
	}
	lit, ok := attrs.NumberOfElements.(expr.IntLit)
	if !ok {
		return 0, false
	}
	elemSize, ok := element.ByteSize()
	if !ok {
		return 0, false
	}
	return lit.Value * elemSize, true
}

// PaddingMap decodes the `padding` variable-size kind: advances the offset
// to the next multiple of alignment_size relative to the containing
// structure's start, per ctx.Base().
type PaddingMap struct {
	def *definition.Padding
}

func (m *PaddingMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	relative := offset - ctx.Base()
	align := int64(m.def.AlignmentSize)
	skip := (align - relative%align) % align
	if err := requireBytes(data, offset, skip, m.def.Name()); err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), data[offset:offset+skip]...), skip, nil
}

func (m *PaddingMap) ByteSize() (int64, bool) {
	return 0, false
}
