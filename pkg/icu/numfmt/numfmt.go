// Package numfmt wraps the ICU number formatting service (unum.h): decimal,
// currency, percent, scientific and spellout rendering plus lenient parsing.
package numfmt

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

// Style selects what kind of number the formatter renders.
type Style int

const (
	Decimal    = Style(bindings.NumberFormatDecimal)
	Currency   = Style(bindings.NumberFormatCurrency)
	Percent    = Style(bindings.NumberFormatPercent)
	Scientific = Style(bindings.NumberFormatScientific)
	// Spellout renders numbers as words ("forty-two").
	Spellout = Style(bindings.NumberFormatSpellout)
)

// Attribute identifies a numeric formatter setting.
type Attribute int

const (
	GroupingUsed      = Attribute(bindings.NumberAttrGroupingUsed)
	MaxIntegerDigits  = Attribute(bindings.NumberAttrMaxIntegerDigits)
	MinIntegerDigits  = Attribute(bindings.NumberAttrMinIntegerDigits)
	MaxFractionDigits = Attribute(bindings.NumberAttrMaxFractionDigits)
	MinFractionDigits = Attribute(bindings.NumberAttrMinFractionDigits)
)

// Formatter is an open native number formatter. Close releases the handle; a
// Formatter is not safe for concurrent use.
type Formatter struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a formatter of the given style for the locale.
func Open(style Style, loc locale.Locale) (*Formatter, error) {
	ptr, err := bindings.UNumOpen(int(style), loc.String())
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

// FormatFloat renders v.
func (f *Formatter) FormatFloat(v float64) (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UNumFormatDouble(f.ptr, v)
	runtime.KeepAlive(f)
	return s, icu.RemapError(err)
}

// FormatInt renders v without a float round trip.
func (f *Formatter) FormatInt(v int64) (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UNumFormatInt64(f.ptr, v)
	runtime.KeepAlive(f)
	return s, icu.RemapError(err)
}

// ParseFloat interprets text according to the formatter's locale, accepting
// that locale's grouping and decimal separators.
func (f *Formatter) ParseFloat(text string) (float64, error) {
	if f.closed {
		return 0, icu.ErrClosed
	}
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return 0, icu.RemapError(err)
	}
	v, err := bindings.UNumParseDouble(f.ptr, u)
	runtime.KeepAlive(f)
	return v, icu.RemapError(err)
}

// Attribute reads a numeric setting.
func (f *Formatter) Attribute(attr Attribute) (int, error) {
	if f.closed {
		return 0, icu.ErrClosed
	}
	v, err := bindings.UNumGetAttribute(f.ptr, int(attr))
	runtime.KeepAlive(f)
	return v, icu.RemapError(err)
}

// SetAttribute writes a numeric setting; for GroupingUsed, 0 is off and 1 on.
func (f *Formatter) SetAttribute(attr Attribute, value int) error {
	if f.closed {
		return icu.ErrClosed
	}
	err := bindings.UNumSetAttribute(f.ptr, int(attr), value)
	runtime.KeepAlive(f)
	return icu.RemapError(err)
}

// Clone returns an independent copy with the same settings.
func (f *Formatter) Clone() (*Formatter, error) {
	if f.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UNumClone(f.ptr)
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
	bindings.UNumClose(f.ptr)
	f.ptr = nil
	return nil
}
