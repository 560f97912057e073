//go:build cgo && !windows

package bindings

/*
#include <unicode/utrans.h>
*/
import "C"

import (
	"unsafe"
)

// UTransOpen implements utrans_openU for the named transliterator id.
func UTransOpen(id []uint16, direction int) (unsafe.Pointer, error) {
	var status C.UErrorCode
	t := C.utrans_openU(ucharPtr(id), C.int32_t(len(id)), C.UTransDirection(direction),
		nil, 0, nil, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(t), nil
}

// UTransClose implements utrans_close.
func UTransClose(t unsafe.Pointer) {
	if t != nil {
		C.utrans_close((*C.UTransliterator)(t))
	}
}

// UTransOpenInverse implements utrans_openInverse. Failure leaves the
// original transliterator untouched.
func UTransOpenInverse(t unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	inv := C.utrans_openInverse((*C.UTransliterator)(t), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(inv), nil
}

// UTransClone implements utrans_clone.
func UTransClone(t unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.utrans_clone((*C.UTransliterator)(t), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}

// UTransGetID implements utrans_getUnicodeID.
func UTransGetID(t unsafe.Pointer) (string, error) {
	var length C.int32_t
	p := C.utrans_getUnicodeID((*C.UTransliterator)(t), &length)
	if p == nil {
		return "", &Error{Code: StatusInternalProgram}
	}
	units := unsafe.Slice((*uint16)(unsafe.Pointer(p)), int(length))
	s, _, err := StringFromUTF16(units, ConvertStrict)
	return s, err
}

// UTransTransliterate implements utrans_transUChars. The text is converted
// in place in a scratch buffer; because transliteration can grow the text,
// the call preflights and retries with a larger buffer when the first pass
// overflows, mirroring the buffered-string retry used elsewhere.
func UTransTransliterate(t unsafe.Pointer, text []uint16) ([]uint16, error) {
	buf := make([]uint16, len(text))
	copy(buf, text)

	textLen := C.int32_t(len(text))
	length := textLen
	limit := textLen
	var status C.UErrorCode
	C.utrans_transUChars((*C.UTransliterator)(t), ucharPtr(buf), &length, C.int32_t(len(buf)),
		0, &limit, &status)
	st := Status(status)
	if err := st.preflightErr(); err != nil {
		return nil, err
	}
	if int(length) > len(buf) {
		// Result is longer than the source; re-run with exact capacity.
		grown := make([]uint16, int(length))
		copy(grown, text)
		buf = grown
		wrote := textLen
		limit = textLen
		status = C.UErrorCode(0)
		C.utrans_transUChars((*C.UTransliterator)(t), ucharPtr(buf), &wrote, C.int32_t(len(buf)),
			0, &limit, &status)
		if err := Status(status).Err(); err != nil {
			return nil, err
		}
		length = wrote
	}
	if int(limit) < len(buf) {
		buf = buf[:limit]
	}
	return buf, nil
}

// UTransOpenIDs implements utrans_openIDs, enumerating the registered
// transliterator identifiers.
func UTransOpenIDs() (unsafe.Pointer, error) {
	var status C.UErrorCode
	e := C.utrans_openIDs(&status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	return unsafe.Pointer(e), nil
}
