//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/ucal.h>
*/
import "C"

import (
	"unsafe"
)

// UCalOpen implements ucal_open. zoneID is the UTF-16 time zone identifier;
// empty selects the default zone.
func UCalOpen(zoneID []uint16, loc string, kind int) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	cal := C.ucal_open(ucharPtr(zoneID), C.int32_t(len(zoneID)), cLoc, C.UCalendarType(kind), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if cal == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(cal), nil
}

// UCalClose implements ucal_close.
func UCalClose(cal unsafe.Pointer) {
	if cal != nil {
		C.ucal_close((*C.UCalendar)(cal))
	}
}

// UCalGetNow implements ucal_getNow (milliseconds since the epoch, UDate).
func UCalGetNow() float64 {
	return float64(C.ucal_getNow())
}

// UCalGetMillis implements ucal_getMillis.
func UCalGetMillis(cal unsafe.Pointer) (float64, error) {
	var status C.UErrorCode
	d := C.ucal_getMillis((*C.UCalendar)(cal), &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return float64(d), nil
}

// UCalSetMillis implements ucal_setMillis.
func UCalSetMillis(cal unsafe.Pointer, millis float64) error {
	var status C.UErrorCode
	C.ucal_setMillis((*C.UCalendar)(cal), C.UDate(millis), &status)
	return Status(status).Err()
}

// UCalSetDateTime implements ucal_setDateTime. month is zero-based, as in
// the C API.
func UCalSetDateTime(cal unsafe.Pointer, year, month, day, hour, minute, second int) error {
	var status C.UErrorCode
	C.ucal_setDateTime((*C.UCalendar)(cal),
		C.int32_t(year), C.int32_t(month), C.int32_t(day),
		C.int32_t(hour), C.int32_t(minute), C.int32_t(second), &status)
	return Status(status).Err()
}

// UCalGet implements ucal_get.
func UCalGet(cal unsafe.Pointer, field int) (int, error) {
	var status C.UErrorCode
	v := C.ucal_get((*C.UCalendar)(cal), C.UCalendarDateFields(field), &status)
	if err := Status(status).Err(); err != nil {
		return 0, err
	}
	return int(v), nil
}

// UCalAdd implements ucal_add.
func UCalAdd(cal unsafe.Pointer, field, amount int) error {
	var status C.UErrorCode
	C.ucal_add((*C.UCalendar)(cal), C.UCalendarDateFields(field), C.int32_t(amount), &status)
	return Status(status).Err()
}

// UCalClone implements ucal_clone.
func UCalClone(cal unsafe.Pointer) (unsafe.Pointer, error) {
	var status C.UErrorCode
	dup := C.ucal_clone((*C.UCalendar)(cal), &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	if dup == nil {
		return nil, &Error{Code: StatusMemoryAllocation}
	}
	return unsafe.Pointer(dup), nil
}

// UCalOpenTimeZones implements ucal_openTimeZones.
func UCalOpenTimeZones() (unsafe.Pointer, error) {
	var status C.UErrorCode
	e := C.ucal_openTimeZones(&status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	return unsafe.Pointer(e), nil
}

// UCalGetDefaultTimeZone implements ucal_getDefaultTimeZone.
func UCalGetDefaultTimeZone() (string, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.ucal_getDefaultTimeZone(buf, capacity, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}
