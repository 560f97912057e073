// Package calendar wraps the ICU calendar service (ucal.h): civil date
// arithmetic and field access in an arbitrary time zone, plus time zone
// enumeration.
package calendar

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// Kind selects the calendar system.
type Kind int

const (
	// Traditional selects the locale's customary calendar (e.g. the Buddhist
	// calendar under th_TH@calendar=buddhist).
	Traditional = Kind(bindings.CalendarTraditional)
	// DefaultKind selects the locale default.
	DefaultKind = Kind(bindings.CalendarDefault)
	// Gregorian forces the Gregorian calendar.
	Gregorian = Kind(bindings.CalendarGregorian)
)

// Field identifies a calendar field for Get and Add. Month is zero-based, as
// in the C API: January is 0.
type Field int

const (
	Era         = Field(bindings.CalendarFieldEra)
	Year        = Field(bindings.CalendarFieldYear)
	Month       = Field(bindings.CalendarFieldMonth)
	WeekOfYear  = Field(bindings.CalendarFieldWeekOfYear)
	DayOfMonth  = Field(bindings.CalendarFieldDate)
	DayOfYear   = Field(bindings.CalendarFieldDayOfYear)
	DayOfWeek   = Field(bindings.CalendarFieldDayOfWeek)
	AMPM        = Field(bindings.CalendarFieldAMPM)
	HourOfDay   = Field(bindings.CalendarFieldHourOfDay)
	Minute      = Field(bindings.CalendarFieldMinute)
	Second      = Field(bindings.CalendarFieldSecond)
	Millisecond = Field(bindings.CalendarFieldMillisecond)
	ZoneOffset  = Field(bindings.CalendarFieldZoneOffset)
)

// Calendar is an open native calendar positioned at some instant. Close
// releases the handle; a Calendar is not safe for concurrent use.
type Calendar struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a calendar for the zone and locale, positioned at the current
// instant. An empty zoneID selects the default time zone.
func Open(zoneID string, loc locale.Locale, kind Kind) (*Calendar, error) {
	zone, _, err := bindings.UTF16FromString(zoneID, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	ptr, err := bindings.UCalOpen(zone, loc.String(), int(kind))
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr), nil
}

func wrap(ptr unsafe.Pointer) *Calendar {
	c := &Calendar{ptr: ptr}
	runtime.SetFinalizer(c, func(c *Calendar) { _ = c.Close() })
	return c
}

// Now returns the current instant as the library sees it.
func Now() time.Time {
	return fromUDate(bindings.UCalGetNow())
}

// Time returns the instant the calendar is positioned at.
func (c *Calendar) Time() (time.Time, error) {
	if c.closed {
		return time.Time{}, icu.ErrClosed
	}
	d, err := bindings.UCalGetMillis(c.ptr)
	runtime.KeepAlive(c)
	if err != nil {
		return time.Time{}, icu.RemapError(err)
	}
	return fromUDate(d), nil
}

// SetTime positions the calendar at t.
func (c *Calendar) SetTime(t time.Time) error {
	if c.closed {
		return icu.ErrClosed
	}
	err := bindings.UCalSetMillis(c.ptr, toUDate(t))
	runtime.KeepAlive(c)
	return icu.RemapError(err)
}

// SetDateTime positions the calendar at a civil date and time in its zone.
// month is zero-based.
func (c *Calendar) SetDateTime(year, month, day, hour, minute, second int) error {
	if c.closed {
		return icu.ErrClosed
	}
	err := bindings.UCalSetDateTime(c.ptr, year, month, day, hour, minute, second)
	runtime.KeepAlive(c)
	return icu.RemapError(err)
}

// Get reads a calendar field at the current position.
func (c *Calendar) Get(field Field) (int, error) {
	if c.closed {
		return 0, icu.ErrClosed
	}
	v, err := bindings.UCalGet(c.ptr, int(field))
	runtime.KeepAlive(c)
	return v, icu.RemapError(err)
}

// Add advances the field by amount (negative to go back), rolling larger
// fields as the calendar system dictates.
func (c *Calendar) Add(field Field, amount int) error {
	if c.closed {
		return icu.ErrClosed
	}
	err := bindings.UCalAdd(c.ptr, int(field), amount)
	runtime.KeepAlive(c)
	return icu.RemapError(err)
}

// Clone returns an independent copy at the same position.
func (c *Calendar) Clone() (*Calendar, error) {
	if c.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UCalClone(c.ptr)
	runtime.KeepAlive(c)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(dup), nil
}

// Close releases the native calendar. Safe to call more than once.
func (c *Calendar) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	runtime.SetFinalizer(c, nil)
	bindings.UCalClose(c.ptr)
	c.ptr = nil
	return nil
}

// Ptr exposes the native handle for sibling packages (the date formatter
// formats an open calendar directly). The caller must keep c reachable for
// the duration of the native call.
func (c *Calendar) Ptr() unsafe.Pointer {
	if c.closed {
		return nil
	}
	return c.ptr
}

// TimeZones enumerates all time zone identifiers known to the library.
func TimeZones() (*uenum.Enumeration, error) {
	ptr, err := bindings.UCalOpenTimeZones()
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, nil), nil
}

// DefaultTimeZone returns the process default time zone identifier.
func DefaultTimeZone() (string, error) {
	s, err := bindings.UCalGetDefaultTimeZone()
	return s, icu.RemapError(err)
}

// toUDate converts a time.Time to ICU's UDate (fractional milliseconds since
// the Unix epoch).
func toUDate(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func fromUDate(d float64) time.Time {
	return time.UnixMilli(int64(d)).UTC()
}
