//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/ucol.h>
*/
import "C"

import (
	"unsafe"
)

// UColOpen implements ucol_open.
func UColOpen(loc string) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	c := C.ucol_open(cLoc, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(c), nil
}

// UColClose implements ucol_close.
func UColClose(c unsafe.Pointer) {
	if c != nil {
		C.ucol_close((*C.UCollator)(c))
	}
}

// UColStrcollUTF8 implements ucol_strcollUTF8 and returns -1, 0 or 1.
func UColStrcollUTF8(c unsafe.Pointer, a, b string) (int, error) {
	var status C.UErrorCode
	r := C.ucol_strcollUTF8((*C.UCollator)(c),
		srcCharPtr(a), C.int32_t(len(a)),
		srcCharPtr(b), C.int32_t(len(b)), &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return int(r), nil
}

// UColGetSortKey implements ucol_getSortKey with its own preflight protocol:
// the function reports the required length instead of setting a status code.
func UColGetSortKey(c unsafe.Pointer, text []uint16) ([]byte, error) {
	need := C.ucol_getSortKey((*C.UCollator)(c), ucharPtr(text), C.int32_t(len(text)), nil, 0)
	if need <= 0 {
		return nil, &Error{Code: StatusIllegalArgument}
	}
	buf := make([]byte, int(need))
	wrote := C.ucol_getSortKey((*C.UCollator)(c), ucharPtr(text), C.int32_t(len(text)),
		(*C.uint8_t)(unsafe.Pointer(&buf[0])), C.int32_t(len(buf)))
	if wrote != need {
		return nil, &Error{Code: StatusInternalProgram}
	}
	return buf, nil
}

// UColGetStrength implements ucol_getStrength.
func UColGetStrength(c unsafe.Pointer) (int, error) {
	return int(C.ucol_getStrength((*C.UCollator)(c))), nil
}

// UColSetStrength implements ucol_setStrength.
func UColSetStrength(c unsafe.Pointer, strength int) error {
	C.ucol_setStrength((*C.UCollator)(c), C.UCollationStrength(strength))
	return nil
}

// UColGetAttribute implements ucol_getAttribute.
func UColGetAttribute(c unsafe.Pointer, attr int) (int, error) {
	var status C.UErrorCode
	v := C.ucol_getAttribute((*C.UCollator)(c), C.UColAttribute(attr), &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return int(v), nil
}

// UColSetAttribute implements ucol_setAttribute.
func UColSetAttribute(c unsafe.Pointer, attr, value int) error {
	var status C.UErrorCode
	C.ucol_setAttribute((*C.UCollator)(c), C.UColAttribute(attr), C.UColAttributeValue(value), &status)
	return Status(status).Err()
}

// UColClone implements ucol_safeClone. The clone is independent; failure
// leaves the original untouched.
func UColClone(c unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.ucol_safeClone((*C.UCollator)(c), nil, nil, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}

// UColOpenAvailableLocales implements ucol_openAvailableLocales.
func UColOpenAvailableLocales() (unsafe.Pointer, error) {
	var status C.UErrorCode
	e := C.ucol_openAvailableLocales(&status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	return unsafe.Pointer(e), nil
}
