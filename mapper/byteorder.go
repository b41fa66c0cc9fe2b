package mapper

import (
	"encoding/binary"

	"github.com/libyal/dtfabric-go/definition"
)

// hostByteOrder is resolved once per process so every Map built in this
// process decodes `native` the same way.
var hostByteOrder = func() definition.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return definition.ByteOrderLittleEndian
	}
	return definition.ByteOrderBigEndian
}()

// resolveByteOrder returns b, or the host's resolved order if b is
// ByteOrderNative.
func resolveByteOrder(b definition.ByteOrder) definition.ByteOrder {
	if b == definition.ByteOrderNative {
		return hostByteOrder
	}
	return b
}

func byteOrderOf(b definition.ByteOrder) binary.ByteOrder {
	if resolveByteOrder(b) == definition.ByteOrderLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
