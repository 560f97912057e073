// Package translit wraps the ICU transliteration service (utrans.h): script
// conversion and text transforms named by compound identifiers such as
// "Greek-Latin" or "Any-Latin; Latin-ASCII".
package translit

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// Direction selects whether a compound identifier is applied forward or in
// reverse.
type Direction int

const (
	Forward = Direction(bindings.TransForward)
	Reverse = Direction(bindings.TransReverse)
)

// Transliterator is an open native transliterator. Close releases the handle;
// a Transliterator is not safe for concurrent use.
type Transliterator struct {
	ptr    unsafe.Pointer
	closed bool
}

// Open creates a transliterator for the compound identifier.
func Open(id string, dir Direction) (*Transliterator, error) {
	u, _, err := bindings.UTF16FromString(id, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	ptr, err := bindings.UTransOpen(u, int(dir))
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr), nil
}

func wrap(ptr unsafe.Pointer) *Transliterator {
	t := &Transliterator{ptr: ptr}
	runtime.SetFinalizer(t, func(t *Transliterator) { _ = t.Close() })
	return t
}

// ID returns the canonical identifier of the transliterator.
func (t *Transliterator) ID() (string, error) {
	if t.closed {
		return "", icu.ErrClosed
	}
	s, err := bindings.UTransGetID(t.ptr)
	runtime.KeepAlive(t)
	return s, icu.RemapError(err)
}

// Transliterate applies the transform to text and returns the result. The
// input is not modified.
func (t *Transliterator) Transliterate(text string) (string, error) {
	if t.closed {
		return "", icu.ErrClosed
	}
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return "", icu.RemapError(err)
	}
	out, err := bindings.UTransTransliterate(t.ptr, u)
	runtime.KeepAlive(t)
	if err != nil {
		return "", icu.RemapError(err)
	}
	s, _, err := bindings.StringFromUTF16(out, bindings.ConvertStrict)
	return s, icu.RemapError(err)
}

// Inverse returns the transliterator that undoes this one, when one is
// registered. Failure leaves the original untouched.
func (t *Transliterator) Inverse() (*Transliterator, error) {
	if t.closed {
		return nil, icu.ErrClosed
	}
	inv, err := bindings.UTransOpenInverse(t.ptr)
	runtime.KeepAlive(t)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(inv), nil
}

// Clone returns an independent copy.
func (t *Transliterator) Clone() (*Transliterator, error) {
	if t.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UTransClone(t.ptr)
	runtime.KeepAlive(t)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(dup), nil
}

// Close releases the native transliterator. Safe to call more than once.
func (t *Transliterator) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	runtime.SetFinalizer(t, nil)
	bindings.UTransClose(t.ptr)
	t.ptr = nil
	return nil
}

// AvailableIDs enumerates the registered transliterator identifiers.
func AvailableIDs() (*uenum.Enumeration, error) {
	ptr, err := bindings.UTransOpenIDs()
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, nil), nil
}
