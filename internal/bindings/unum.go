//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/unum.h>
*/
import "C"

import (
	"unsafe"
)

// UNumOpen implements unum_open for a style-based formatter.
func UNumOpen(style int, loc string) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	f := C.unum_open(C.UNumberFormatStyle(style), nil, 0, cLoc, nil, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(f), nil
}

// UNumClose implements unum_close.
func UNumClose(f unsafe.Pointer) {
	if f != nil {
		C.unum_close((*C.UNumberFormat)(f))
	}
}

// UNumFormatDouble implements unum_formatDouble.
func UNumFormatDouble(f unsafe.Pointer, v float64) (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.unum_formatDouble((*C.UNumberFormat)(f), C.double(v), buf, capacity, nil, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// UNumFormatInt64 implements unum_formatInt64.
func UNumFormatInt64(f unsafe.Pointer, v int64) (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.unum_formatInt64((*C.UNumberFormat)(f), C.int64_t(v), buf, capacity, nil, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// UNumParseDouble implements unum_parseDouble over UTF-16 text.
func UNumParseDouble(f unsafe.Pointer, text []uint16) (float64, error) {
	var status C.UErrorCode
	var pos C.int32_t
	v := C.unum_parseDouble((*C.UNumberFormat)(f), ucharPtr(text), C.int32_t(len(text)), &pos, &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// UNumGetAttribute implements unum_getAttribute.
func UNumGetAttribute(f unsafe.Pointer, attr int) (int, error) {
	return int(C.unum_getAttribute((*C.UNumberFormat)(f), C.UNumberFormatAttribute(attr))), nil
}

// UNumSetAttribute implements unum_setAttribute.
func UNumSetAttribute(f unsafe.Pointer, attr, value int) error {
	C.unum_setAttribute((*C.UNumberFormat)(f), C.UNumberFormatAttribute(attr), C.int32_t(value))
	return nil
}

// UNumClone implements unum_clone.
func UNumClone(f unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.unum_clone((*C.UNumberFormat)(f), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}
