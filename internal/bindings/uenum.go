//go:build cgo && !windows

package bindings

/*
#include <unicode/uenum.h>
*/
import "C"

import (
	"unsafe"
)

// UEnumNext advances the enumeration. ok is false at end of sequence.
func UEnumNext(e unsafe.Pointer) (value string, ok bool, err error) {
	var status C.UErrorCode
	var length C.int32_t
	p := C.uenum_next((*C.UEnumeration)(e), &length, &status)
	if err := Status(status).Err(); err != nil {
		return "", false, err
	}
	if p == nil {
		return "", false, nil
	}
	return C.GoStringN(p, C.int(length)), true, nil
}

// UEnumReset restarts the enumeration from the first element.
func UEnumReset(e unsafe.Pointer) error {
	var status C.UErrorCode
	C.uenum_reset((*C.UEnumeration)(e), &status)
	return Status(status).Err()
}

// UEnumCount returns the number of elements without consuming the sequence.
func UEnumCount(e unsafe.Pointer) (int, error) {
	var status C.UErrorCode
	n := C.uenum_count((*C.UEnumeration)(e), &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return int(n), nil
}

// UEnumClose releases the native enumeration.
func UEnumClose(e unsafe.Pointer) {
	if e != nil {
		C.uenum_close((*C.UEnumeration)(e))
	}
}
