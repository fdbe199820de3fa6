package utf16

import (
	"encoding/binary"
	"unsafe"
)

// nativeOrder is the State whose byte order matches the host.
var nativeOrder = func() State {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// zeroCopy enables reinterpreting aligned native-order input in place.
// Tests switch it off to compare both paths.
var zeroCopy = true

// unitView returns src reinterpreted as code units when src is 2-byte
// aligned and already in host byte order. The result aliases src; the caller
// must not write to it. Otherwise view is false and the caller collects
// units itself.
func unitView(src []byte, state State) (units []uint16, view bool) {
	n := len(src) / unitWidth
	if n == 0 || !zeroCopy || state != nativeOrder {
		return nil, false
	}
	if uintptr(unsafe.Pointer(&src[0]))%unsafe.Alignof(uint16(0)) != 0 {
		return nil, false
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&src[0])), n), true
}
