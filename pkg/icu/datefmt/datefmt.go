// Package datefmt wraps the ICU date/time formatting service (udat.h).
// Formatters are created either from a pair of preset styles or from an
// explicit pattern, and convert between time.Time values and localized text.
package datefmt

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/calendar"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

// Style is a preset date or time style.
type Style int

const (
	Full   = Style(bindings.DateFormatFull)
	Long   = Style(bindings.DateFormatLong)
	Medium = Style(bindings.DateFormatMedium)
	Short  = Style(bindings.DateFormatShort)
	// None suppresses the date or time portion entirely.
	None = Style(bindings.DateFormatNone)
)

// Formatter is an open native date formatter. Close releases the handle; a
// Formatter is not safe for concurrent use.
type Formatter struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a formatter from preset styles. An empty zoneID selects the
// default time zone.
func Open(dateStyle, timeStyle Style, loc locale.Locale, zoneID string) (*Formatter, error) {
	zone, _, err := bindings.UTF16FromString(zoneID, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	ptr, err := bindings.UDatOpen(int(timeStyle), int(dateStyle), loc.String(), zone, nil)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr), nil
}

// OpenPattern creates a formatter from an explicit pattern such as
// "yyyy-MM-dd HH:mm". Pattern letters follow the Unicode LDML date format
// pattern syntax.
func OpenPattern(pattern string, loc locale.Locale, zoneID string) (*Formatter, error) {
	zone, _, err := bindings.UTF16FromString(zoneID, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	pat, _, err := bindings.UTF16FromString(pattern, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	ptr, err := bindings.UDatOpen(bindings.DateFormatPattern, bindings.DateFormatPattern,
		loc.String(), zone, pat)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr), nil
}

func wrap(ptr unsafe.Pointer) *Formatter {
	f := &Formatter{ptr: ptr}
	runtime.SetFinalizer(f, func(f *Formatter) { _ = f.Close() })
	return f
}

// Format renders t in the formatter's locale and zone.
func (f *Formatter) Format(t time.Time) (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UDatFormat(f.ptr, float64(t.UnixMilli()))
	runtime.KeepAlive(f)
	return s, icu.RemapError(err)
}

// FormatCalendar renders the instant an open calendar is positioned at, using
// that calendar's system and zone.
func (f *Formatter) FormatCalendar(cal *calendar.Calendar) (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	calPtr := cal.Ptr()
	if calPtr == nil {
		return "", icu.ErrClosed
	}
	s, err := bindings.UDatFormatCalendar(f.ptr, calPtr)
	runtime.KeepAlive(f)
	runtime.KeepAlive(cal)
	return s, icu.RemapError(err)
}

// Parse interprets text according to the formatter's pattern and locale and
// returns the instant in UTC.
func (f *Formatter) Parse(text string) (time.Time, error) {
	if f.closed {
		return time.Time{}, icu.ErrClosed
	}
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return time.Time{}, icu.RemapError(err)
	}
	d, err := bindings.UDatParse(f.ptr, u)
	runtime.KeepAlive(f)
	if err != nil {
		return time.Time{}, icu.RemapError(err)
	}
	return time.UnixMilli(int64(d)).UTC(), nil
}

// Pattern returns the pattern the formatter resolves to, useful to inspect
// what a preset style expands to in a given locale.
func (f *Formatter) Pattern() (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UDatToPattern(f.ptr, false)
	runtime.KeepAlive(f)
	return s, icu.RemapError(err)
}

// Clone returns an independent copy.
func (f *Formatter) Clone() (*Formatter, error) {
	if f.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UDatClone(f.ptr)
	runtime.KeepAlive(f)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(dup), nil
}

// Close releases the native formatter. Safe to call more than once.
func (f *Formatter) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	runtime.SetFinalizer(f, nil)
	bindings.UDatClose(f.ptr)
	f.ptr = nil
	return nil
}
