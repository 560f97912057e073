// Package plural wraps the ICU plural rules service (upluralrules.h):
// selecting the CLDR plural category ("one", "few", "other", ...) a number
// falls into for a locale.
package plural

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// Kind selects which rule set to consult.
type Kind int

const (
	// Cardinal rules classify quantities ("1 file", "2 files").
	Cardinal = Kind(bindings.PluralCardinal)
	// Ordinal rules classify positions ("1st", "2nd", "3rd").
	Ordinal = Kind(bindings.PluralOrdinal)
)

// Rules is an open native plural rule set. Close releases the handle; Rules
// is not safe for concurrent use.
type Rules struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open loads the rules of the given kind for the locale.
func Open(loc locale.Locale, kind Kind) (*Rules, error) {
	ptr, err := bindings.UPluralRulesOpen(loc.String(), int(kind))
	if err != nil {
		return nil, icu.RemapError(err)
	}
	r := &Rules{ptr: ptr}
	runtime.SetFinalizer(r, func(r *Rules) { _ = r.Close() })
	return r, nil
}

// Select returns the plural category keyword for number.
func (r *Rules) Select(number float64) (string, error) {
	if r.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UPluralRulesSelect(r.ptr, number)
	runtime.KeepAlive(r)
	return s, icu.RemapError(err)
}

// SelectInt is Select for integer quantities.
func (r *Rules) SelectInt(number int64) (string, error) {
	return r.Select(float64(number))
}

// Keywords enumerates the categories these rules can produce. The enumeration
// may borrow storage from the rule set, so it keeps r reachable until closed.
func (r *Rules) Keywords() (*uenum.Enumeration, error) {
	if r.closed {
		return nil, icu.ErrClosed
	}
	ptr, err := bindings.UPluralRulesKeywords(r.ptr)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, r), nil
}

// Close releases the native rule set. Safe to call more than once.
func (r *Rules) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	runtime.SetFinalizer(r, nil)
	bindings.UPluralRulesClose(r.ptr)
	r.ptr = nil
	return nil
}
