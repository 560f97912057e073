//go:build cgo && !windows

package bindings

/*
#include <unicode/unorm2.h>
*/
import "C"

import (
	"unsafe"
)

// UNorm2Instance returns the library-owned singleton normalizer for the
// given form. The handle must not be closed; the library retains ownership.
func UNorm2Instance(form int) (unsafe.Pointer, error) {
	var status C.UErrorCode
	var n *C.UNormalizer2
	switch form {
	case NormNFC:
		n = C.unorm2_getNFCInstance(&status)
	case NormNFD:
		n = C.unorm2_getNFDInstance(&status)
	case NormNFKC:
		n = C.unorm2_getNFKCInstance(&status)
	case NormNFKD:
		n = C.unorm2_getNFKDInstance(&status)
	default:
		return nil, &Error{Code: StatusIllegalArgument}
	}
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(n), nil
}

// UNorm2Normalize implements unorm2_normalize.
func UNorm2Normalize(n unsafe.Pointer, text []uint16) ([]uint16, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.unorm2_normalize((*C.UNormalizer2)(n), ucharPtr(text), C.int32_t(len(text)), buf, capacity, status)
	})
	return out, err
}

// UNorm2IsNormalized implements unorm2_isNormalized.
func UNorm2IsNormalized(n unsafe.Pointer, text []uint16) (bool, error) {
	var status C.UErrorCode
	r := C.unorm2_isNormalized((*C.UNormalizer2)(n), ucharPtr(text), C.int32_t(len(text)), &status)
	if err := Status(status).Err(); err != nil {
		return false, err
	}
	return r != 0, nil
}

// UNorm2ComposePair implements unorm2_composePair. Returns -1 when the pair
// does not compose.
func UNorm2ComposePair(n unsafe.Pointer, a, b rune) (rune, error) {
	r := C.unorm2_composePair((*C.UNormalizer2)(n), C.UChar32(a), C.UChar32(b))
	return rune(r), nil
}
