//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <string.h>
#include <unicode/udata.h>
*/
import "C"

import (
	"unsafe"
)

// copyToC copies data into C-owned memory. ICU retains registered data
// bundles for the process lifetime, so the copy is never freed; keeping it
// on the C heap also satisfies the cgo pointer-passing rules.
func copyToC(data []byte) (unsafe.Pointer, error) {
	p := C.malloc(C.size_t(len(data)))
	if p == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	C.memcpy(p, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	return p, nil
}

// UDataSetCommonData implements udata_setCommonData. The data must be a
// memory-mapped-format ICU data bundle (icudtXXl.dat), loaded once at
// startup before any other ICU call.
func UDataSetCommonData(data []byte) error {
	if len(data) == 0 {
		return &Error{Code: StatusIllegalArgument}
	}
	p, err := copyToC(data)
	if err != nil {
		return err
	}
	var status C.UErrorCode
	C.udata_setCommonData(p, &status)
	if err := Status(status).Err(); err != nil {
		C.free(p)
		return err
	}
	return nil
}

// UDataSetAppData implements udata_setAppData under the given package path.
func UDataSetAppData(path string, data []byte) error {
	if len(data) == 0 {
		return &Error{Code: StatusIllegalArgument}
	}
	cPath, err := cString(path)
	if err != nil {
		return err
	}
	p, err := copyToC(data)
	if err != nil {
		C.free(unsafe.Pointer(cPath))
		return err
	}
	// Neither the path nor the data is freed on success: ICU keeps both
	// registered for the process lifetime.
	var status C.UErrorCode
	C.udata_setAppData(cPath, p, &status)
	if err := Status(status).Err(); err != nil {
		C.free(unsafe.Pointer(cPath))
		C.free(p)
		return err
	}
	return nil
}
