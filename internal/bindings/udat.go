//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/udat.h>
*/
import "C"

import (
	"unsafe"
)

// UDatOpen implements udat_open. pattern is consulted only for the
// DateFormatPattern styles; zoneID may be empty for the default zone.
func UDatOpen(timeStyle, dateStyle int, loc string, zoneID, pattern []uint16) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	f := C.udat_open(C.UDateFormatStyle(timeStyle), C.UDateFormatStyle(dateStyle), cLoc,
		ucharPtr(zoneID), C.int32_t(len(zoneID)),
		ucharPtr(pattern), C.int32_t(len(pattern)), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(f), nil
}

// UDatClose implements udat_close.
func UDatClose(f unsafe.Pointer) {
	if f != nil {
		C.udat_close((*C.UDateFormat)(f))
	}
}

// UDatFormat implements udat_format for a UDate (milliseconds since epoch).
func UDatFormat(f unsafe.Pointer, date float64) (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.udat_format((*C.UDateFormat)(f), C.UDate(date), buf, capacity, nil, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// UDatFormatCalendar implements udat_formatCalendar against an open calendar
// handle.
func UDatFormatCalendar(f, cal unsafe.Pointer) (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.udat_formatCalendar((*C.UDateFormat)(f), (*C.UCalendar)(cal), buf, capacity, nil, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// UDatParse implements udat_parse over UTF-16 text.
func UDatParse(f unsafe.Pointer, text []uint16) (float64, error) {
	var status C.UErrorCode
	var pos C.int32_t
	d := C.udat_parse((*C.UDateFormat)(f), ucharPtr(text), C.int32_t(len(text)), &pos, &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return float64(d), nil
}

// UDatClone implements udat_clone.
func UDatClone(f unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.udat_clone((*C.UDateFormat)(f), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}

// UDatToPattern implements udat_toPattern.
func UDatToPattern(f unsafe.Pointer, localized bool) (string, error) {
	cLocalized := C.UBool(0)
	if localized {
		cLocalized = C.UBool(1)
	}
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.udat_toPattern((*C.UDateFormat)(f), cLocalized, buf, capacity, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}
