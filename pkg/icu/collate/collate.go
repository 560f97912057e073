// Package collate wraps the ICU collation service (ucol.h): locale-aware
// string comparison, binary sort keys, and tailoring attributes.
package collate

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// Strength is a collation comparison level.
type Strength int

const (
	// Primary distinguishes base letters only (a < b).
	Primary = Strength(bindings.CollationPrimary)
	// Secondary additionally distinguishes accents (a < á).
	Secondary = Strength(bindings.CollationSecondary)
	// Tertiary additionally distinguishes case (a < A). The default.
	Tertiary = Strength(bindings.CollationTertiary)
	// Quaternary additionally distinguishes punctuation when alternate
	// handling shifts it.
	Quaternary = Strength(bindings.CollationQuaternary)
	// Identical breaks remaining ties by code point order.
	Identical = Strength(bindings.CollationIdentical)
)

// Attribute identifies a tailoring switch on a collator.
type Attribute int

const (
	FrenchCollation = Attribute(bindings.CollationAttrFrenchCollation)
	CaseLevel       = Attribute(bindings.CollationAttrCaseLevel)
	CaseFirst       = Attribute(bindings.CollationAttrCaseFirst)
	NumericOrdering = Attribute(bindings.CollationAttrNumericOrdering)
)

// AttributeValue is a setting for an Attribute.
type AttributeValue int

const (
	Default    = AttributeValue(bindings.CollationValueDefault)
	Off        = AttributeValue(bindings.CollationValueOff)
	On         = AttributeValue(bindings.CollationValueOn)
	LowerFirst = AttributeValue(bindings.CollationValueLowerFirst)
	UpperFirst = AttributeValue(bindings.CollationValueUpperFirst)
)

// Collator compares strings according to the conventions of a locale,
// including any collation keyword in the identifier (e.g. "@collation=
// phonebook"). Close releases the native handle; a Collator is not safe for
// concurrent use.
type Collator struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a collator for the locale.
func Open(loc locale.Locale) (*Collator, error) {
	ptr, err := bindings.UColOpen(loc.String())
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr), nil
}

func wrap(ptr unsafe.Pointer) *Collator {
	c := &Collator{ptr: ptr}
	runtime.SetFinalizer(c, func(c *Collator) { _ = c.Close() })
	return c
}

// Compare orders a against b: -1, 0 or +1. The inputs are UTF-8; conversion
// happens inside the native call.
func (c *Collator) Compare(a, b string) (int, error) {
	if c.closed {
		return 0, icu.ErrClosed
	}
	r, err := bindings.UColStrcollUTF8(c.ptr, a, b)
	runtime.KeepAlive(c)
	return r, icu.RemapError(err)
}

// SortKey produces the binary sort key for text. Keys compare bytewise in the
// same order Compare orders the source strings, so they can be stored in an
// index and compared without a collator. Keys from collators with different
// settings are not comparable.
func (c *Collator) SortKey(text string) ([]byte, error) {
	if c.closed {
		return nil, icu.ErrClosed
	}
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	key, err := bindings.UColGetSortKey(c.ptr, u)
	runtime.KeepAlive(c)
	return key, icu.RemapError(err)
}

// Strength returns the current comparison level.
func (c *Collator) Strength() (Strength, error) {
	if c.closed {
		return 0, icu.ErrClosed
	}
	s, err := bindings.UColGetStrength(c.ptr)
	runtime.KeepAlive(c)
	return Strength(s), icu.RemapError(err)
}

// SetStrength sets the comparison level.
func (c *Collator) SetStrength(s Strength) error {
	if c.closed {
		return icu.ErrClosed
	}
	err := bindings.UColSetStrength(c.ptr, int(s))
	runtime.KeepAlive(c)
	return icu.RemapError(err)
}

// Attribute returns the current value of a tailoring attribute.
func (c *Collator) Attribute(attr Attribute) (AttributeValue, error) {
	if c.closed {
		return 0, icu.ErrClosed
	}
	v, err := bindings.UColGetAttribute(c.ptr, int(attr))
	runtime.KeepAlive(c)
	return AttributeValue(v), icu.RemapError(err)
}

// SetAttribute sets a tailoring attribute.
func (c *Collator) SetAttribute(attr Attribute, value AttributeValue) error {
	if c.closed {
		return icu.ErrClosed
	}
	err := bindings.UColSetAttribute(c.ptr, int(attr), int(value))
	runtime.KeepAlive(c)
	return icu.RemapError(err)
}

// Clone returns an independent copy with the same settings. On failure the
// original is untouched.
func (c *Collator) Clone() (*Collator, error) {
	if c.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UColClone(c.ptr)
	runtime.KeepAlive(c)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(dup), nil
}

// Close releases the native collator. Safe to call more than once.
func (c *Collator) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	runtime.SetFinalizer(c, nil)
	bindings.UColClose(c.ptr)
	c.ptr = nil
	return nil
}

// AvailableLocales enumerates the locales with collation data. The result is
// suitable as the available set for locale.Accept.
func AvailableLocales() (*uenum.Enumeration, error) {
	ptr, err := bindings.UColOpenAvailableLocales()
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, nil), nil
}
