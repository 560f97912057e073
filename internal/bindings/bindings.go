//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -licui18n -licuuc -licudata
#cgo darwin CFLAGS: -I/opt/homebrew/opt/icu4c/include -I/usr/local/opt/icu4c/include
#cgo darwin LDFLAGS: -L/opt/homebrew/opt/icu4c/lib -L/usr/local/opt/icu4c/lib

#include <stdlib.h>
#include <unicode/utypes.h>
#include <unicode/uversion.h>
#include <unicode/uchar.h>
*/
import "C"

import (
	"unsafe"
)

// cString converts s to a NUL-terminated C string after validating that it is
// representable. The caller must free the result.
func cString(s string) (*C.char, error) {
	if err := checkNoInteriorNUL(s); err != nil {
		return nil, err
	}
	return C.CString(s), nil
}

// versionString formats a UVersionInfo through u_versionToString.
func versionString(info C.UVersionInfo) string {
	var buf [C.U_MAX_VERSION_STRING_LENGTH]C.char
	C.u_versionToString(&info[0], &buf[0])
	return C.GoString(&buf[0])
}

// Version returns the linked ICU library version, e.g. "72.1".
func Version() string {
	var info C.UVersionInfo
	C.u_getVersion(&info[0])
	return versionString(info)
}

// UnicodeVersion returns the Unicode standard version the library implements.
func UnicodeVersion() string {
	var info C.UVersionInfo
	C.u_getUnicodeVersion(&info[0])
	return versionString(info)
}

// Available reports whether the native library is linked in. Always true in
// cgo builds; the stub build returns false.
func Available() bool { return true }

// ucharPtr returns the data pointer of a UTF-16 buffer, or nil for an empty
// one. ICU accepts NULL with a zero length.
func ucharPtr(u []uint16) *C.UChar {
	if len(u) == 0 {
		return nil
	}
	return (*C.UChar)(unsafe.Pointer(&u[0]))
}
