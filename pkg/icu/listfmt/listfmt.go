// Package listfmt wraps the ICU list formatting service (ulistformatter.h):
// joining items with the locale's conventions, e.g. "a, b, and c" in English
// or "a, b und c" in German.
package listfmt

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

// Formatter is an open native list formatter. Close releases the handle; a
// Formatter is not safe for concurrent use.
type Formatter struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a formatter for the locale's "and"-style list pattern.
func Open(loc locale.Locale) (*Formatter, error) {
	ptr, err := bindings.UListFmtOpen(loc.String())
	if err != nil {
		return nil, icu.RemapError(err)
	}
	f := &Formatter{ptr: ptr}
	runtime.SetFinalizer(f, func(f *Formatter) { _ = f.Close() })
	return f, nil
}

// Format joins items into a single localized list. An empty list yields "".
func (f *Formatter) Format(items []string) (string, error) {
	if f.closed {
		return "", icu.ErrClosed
	}
	u := make([][]uint16, len(items))
	for i, item := range items {
		var err error
		u[i], _, err = bindings.UTF16FromString(item, bindings.ConvertStrict)
		if err != nil {
			return "", icu.RemapError(err)
		}
	}
	s, err := bindings.UListFmtFormat(f.ptr, u)
	runtime.KeepAlive(f)
	return s, icu.RemapError(err)
}

// Close releases the native formatter. Safe to call more than once.
func (f *Formatter) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	runtime.SetFinalizer(f, nil)
	bindings.UListFmtClose(f.ptr)
	f.ptr = nil
	return nil
}
