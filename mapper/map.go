package mapper

import (
	"encoding/binary"

	"github.com/libyal/dtfabric-go/diag"
)

// Map is the runtime decoder for one resolved [definition.Definition]. A
// Map is immutable after construction and safe to call concurrently
// provided each call supplies its own [MapContext].
type Map interface {
	// MapByteStream decodes starting at offset within data, returning the
	// decoded value and the number of bytes consumed. ctx is the enclosing
	// decode's scope tree; callers decoding a standalone value (not a member
	// of some containing structure) pass a fresh [NewMapContext].
	MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error)

	// ByteSize returns the fixed encoded size and true if this Map's
	// Definition is entirely fixed-size; otherwise (0, false) and callers
	// must decode to learn the size.
	ByteSize() (int64, bool)
}

// requireBytes reports E_BYTE_STREAM_TOO_SMALL if fewer than n bytes remain
// in data starting at offset.
func requireBytes(data []byte, offset, n int64, name string) error {
	if offset < 0 || n < 0 || offset+n > int64(len(data)) {
		return newDecodeError(diag.E_BYTE_STREAM_TOO_SMALL, name, "", offset,
			"insufficient bytes remaining in stream")
	}
	return nil
}

// decodeUint reads size bytes at data[offset:] as an unsigned integer in
// order. size must be 1, 2, 4, or 8.
func decodeUint(data []byte, offset int64, order binary.ByteOrder, size int) uint64 {
	b := data[offset : offset+int64(size)]
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	default:
		panic("mapper: unsupported integer size")
	}
}

// signExtend reinterprets the low size*8 bits of u as a two's-complement
// signed value.
func signExtend(u uint64, size int) int64 {
	bits := uint(size) * 8
	shift := 64 - bits
	return int64(u<<shift) >> shift
}
