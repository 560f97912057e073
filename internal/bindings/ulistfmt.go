//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <string.h>
#include <unicode/ulistformatter.h>
*/
import "C"

import (
	"unsafe"
)

// UListFmtOpen implements ulistfmt_open for the locale's default
// "and"-style list pattern.
func UListFmtOpen(loc string) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	f := C.ulistfmt_open(cLoc, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(f), nil
}

// UListFmtClose implements ulistfmt_close.
func UListFmtClose(f unsafe.Pointer) {
	if f != nil {
		C.ulistfmt_close((*C.UListFormatter)(f))
	}
}

// UListFmtFormat implements ulistfmt_format over a list of UTF-16 strings.
// The item buffers are copied to the C heap for the call: the pointer array
// handed to ulistfmt_format must not contain Go pointers.
func UListFmtFormat(f unsafe.Pointer, items [][]uint16) (string, error) {
	n := len(items)
	if n == 0 {
		return "", nil
	}
	strs := make([]*C.UChar, n)
	lens := make([]C.int32_t, n)
	defer func() {
		for _, p := range strs {
			if p != nil {
				C.free(unsafe.Pointer(p))
			}
		}
	}()
	ucharSize := C.size_t(unsafe.Sizeof(C.UChar(0)))
	for i, item := range items {
		// One extra element so an empty item still gets a non-nil pointer.
		p := C.malloc(C.size_t(len(item)+1) * ucharSize)
		if p == nil {
			return "", &Error{Code: StatusMemoryAllocation}
		}
		if len(item) > 0 {
			C.memcpy(p, unsafe.Pointer(&item[0]), C.size_t(len(item))*ucharSize)
		}
		strs[i] = (*C.UChar)(p)
		lens[i] = C.int32_t(len(item))
	}
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.ulistfmt_format((*C.UListFormatter)(f),
			(**C.UChar)(unsafe.Pointer(&strs[0])), &lens[0], C.int32_t(n),
			buf, capacity, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}
