// Package uenum wraps native string enumerations (UEnumeration). Several API
// families hand back enumerations for their available resources; this package
// gives them a single Go shape with iteration, counting and reset.
package uenum

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
)

// Enumeration is an owned sequence of strings produced by a native call.
// The zero value is a closed enumeration; obtain one from a producing
// operation such as locale.Keywords or collate.AvailableLocales.
//
// Close releases the native handle and is idempotent. An Enumeration is not
// safe for concurrent use.
type Enumeration struct {
	ptr unsafe.Pointer

	// owner keeps the producing handle reachable while the enumeration is
	// live. Some native enumerations borrow storage from the object that
	// produced them, so the producer must not be collected first.
	owner any

	closed bool
}

// FromHandle wraps a native UEnumeration pointer. A nil ptr is a valid empty
// enumeration, matching the native convention for "no elements" results.
// owner, if non-nil, is kept reachable until the enumeration is closed.
//
// This is an internal constructor for sibling packages; application code never
// calls it directly.
func FromHandle(ptr unsafe.Pointer, owner any) *Enumeration {
	e := &Enumeration{ptr: ptr, owner: owner}
	runtime.SetFinalizer(e, func(e *Enumeration) { _ = e.Close() })
	return e
}

// Next returns the next element. ok is false once the sequence is exhausted.
func (e *Enumeration) Next() (value string, ok bool, err error) {
	if e.closed {
		return "", false, icu.ErrClosed
	}
	if e.ptr == nil {
		return "", false, nil
	}
	value, ok, err = bindings.UEnumNext(e.ptr)
	runtime.KeepAlive(e)
	return value, ok, icu.RemapError(err)
}

// Reset rewinds the enumeration to its first element.
func (e *Enumeration) Reset() error {
	if e.closed {
		return icu.ErrClosed
	}
	if e.ptr == nil {
		return nil
	}
	err := bindings.UEnumReset(e.ptr)
	runtime.KeepAlive(e)
	return icu.RemapError(err)
}

// Count returns the number of elements without consuming the sequence.
func (e *Enumeration) Count() (int, error) {
	if e.closed {
		return 0, icu.ErrClosed
	}
	if e.ptr == nil {
		return 0, nil
	}
	n, err := bindings.UEnumCount(e.ptr)
	runtime.KeepAlive(e)
	return n, icu.RemapError(err)
}

// Strings drains the remaining elements into a slice.
func (e *Enumeration) Strings() ([]string, error) {
	var out []string
	for {
		v, ok, err := e.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Ptr exposes the native handle for sibling packages that feed an
// enumeration back into a native call. It returns nil once closed. The caller
// must keep e reachable for the duration of the native call.
func (e *Enumeration) Ptr() unsafe.Pointer {
	if e.closed {
		return nil
	}
	return e.ptr
}

// Close releases the native enumeration. It is safe to call more than once.
func (e *Enumeration) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	runtime.SetFinalizer(e, nil)
	if e.ptr != nil {
		bindings.UEnumClose(e.ptr)
		e.ptr = nil
	}
	e.owner = nil
	return nil
}
