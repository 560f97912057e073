//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/upluralrules.h>
*/
import "C"

import (
	"unsafe"
)

// UPluralRulesOpen implements uplrules_openForType.
func UPluralRulesOpen(loc string, kind int) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	r := C.uplrules_openForType(cLoc, C.UPluralType(kind), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(r), nil
}

// UPluralRulesClose implements uplrules_close.
func UPluralRulesClose(r unsafe.Pointer) {
	if r != nil {
		C.uplrules_close((*C.UPluralRules)(r))
	}
}

// UPluralRulesSelect implements uplrules_select, returning the plural
// category keyword ("one", "few", "other", ...).
func UPluralRulesSelect(r unsafe.Pointer, number float64) (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uplrules_select((*C.UPluralRules)(r), C.double(number), buf, capacity, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// UPluralRulesKeywords implements uplrules_getKeywords, returning a
// UEnumeration handle owned by the caller.
func UPluralRulesKeywords(r unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	e := C.uplrules_getKeywords((*C.UPluralRules)(r), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	return unsafe.Pointer(e), nil
}
