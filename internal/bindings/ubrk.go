//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/ubrk.h>
*/
import "C"

import (
	"unsafe"
)

// UBrkOpen implements ubrk_open over UTF-16 text. The native iterator keeps
// the text pointer after this call returns, so the buffer must stay valid
// and unmodified for the iterator's lifetime; the public wrapper holds a
// reference to it until Close. Retaining a Go pointer this way sits outside
// the cgo pointer-passing rules and relies on the runtime not moving heap
// objects; if the collector ever compacts, the text has to be copied to C
// memory instead (the way udata copies its data bundles).
func UBrkOpen(kind int, loc string, text []uint16) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	bi := C.ubrk_open(C.UBreakIteratorType(kind), cLoc, ucharPtr(text), C.int32_t(len(text)), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if bi == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(bi), nil
}

// UBrkClose implements ubrk_close.
func UBrkClose(bi unsafe.Pointer) {
	if bi != nil {
		C.ubrk_close((*C.UBreakIterator)(bi))
	}
}

// UBrkFirst implements ubrk_first.
func UBrkFirst(bi unsafe.Pointer) (int, error) {
	return int(C.ubrk_first((*C.UBreakIterator)(bi))), nil
}

// UBrkNext implements ubrk_next. Returns BreakDone at the end of text.
func UBrkNext(bi unsafe.Pointer) (int, error) {
	return int(C.ubrk_next((*C.UBreakIterator)(bi))), nil
}

// UBrkCurrent implements ubrk_current.
func UBrkCurrent(bi unsafe.Pointer) (int, error) {
	return int(C.ubrk_current((*C.UBreakIterator)(bi))), nil
}

// UBrkFollowing implements ubrk_following.
func UBrkFollowing(bi unsafe.Pointer, offset int) (int, error) {
	return int(C.ubrk_following((*C.UBreakIterator)(bi), C.int32_t(offset))), nil
}

// UBrkSetText implements ubrk_setText. The same retention requirement as
// UBrkOpen applies to the new text.
func UBrkSetText(bi unsafe.Pointer, text []uint16) error {
	var status C.UErrorCode
	C.ubrk_setText((*C.UBreakIterator)(bi), ucharPtr(text), C.int32_t(len(text)), &status)
	return Status(status).Err()
}

// UBrkClone implements ubrk_safeClone with library-allocated storage. The
// clone does not share iteration state with the original.
func UBrkClone(bi unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.ubrk_safeClone((*C.UBreakIterator)(bi), nil, nil, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}
