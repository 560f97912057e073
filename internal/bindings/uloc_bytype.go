//go:build cgo && !windows && !icu_pre_67

package bindings

/*
#include <unicode/uloc.h>
*/
import "C"

import (
	"unsafe"
)

// ULocOpenAvailableByType implements uloc_openAvailableByType.
func ULocOpenAvailableByType(kind int) (unsafe.Pointer, error) {
	var status C.UErrorCode
	e := C.uloc_openAvailableByType(C.ULocAvailableType(kind), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	return unsafe.Pointer(e), nil
}
