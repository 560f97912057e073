// Package breakiter wraps the ICU break iteration service (ubrk.h): finding
// grapheme, word, line and sentence boundaries in text.
//
// Boundary positions are indices into the UTF-16 form of the text, which is
// what the native iterator operates on. Use the Text method to recover the
// UTF-16 units when slicing by position.
package breakiter

import (
	"runtime"
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

// Kind selects the boundary type.
type Kind int

const (
	// Character finds extended grapheme cluster boundaries.
	Character = Kind(bindings.BreakCharacter)
	Word      = Kind(bindings.BreakWord)
	Line      = Kind(bindings.BreakLine)
	Sentence  = Kind(bindings.BreakSentence)
)

// Done is returned by position operations once iteration passes the end of
// the text.
const Done = bindings.BreakDone

// Iterator is an open native break iterator bound to a text. The native side
// borrows the text buffer for the iterator's lifetime; the wrapper retains
// the UTF-16 form in the text field so it stays reachable and at a stable
// address until Close (see the retention note on bindings.UBrkOpen). Close
// releases the handle; an Iterator is not safe for concurrent use.
type Iterator struct {
	ptr    unsafe.Pointer
	text   []uint16
	closed bool
}

// Open creates an iterator of the given kind for the locale, positioned at
// the start of text.
func Open(kind Kind, loc locale.Locale, text string) (*Iterator, error) {
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	ptr, err := bindings.UBrkOpen(int(kind), loc.String(), u)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return wrap(ptr, u), nil
}

func wrap(ptr unsafe.Pointer, text []uint16) *Iterator {
	it := &Iterator{ptr: ptr, text: text}
	runtime.SetFinalizer(it, func(it *Iterator) { _ = it.Close() })
	return it
}

// Text returns the UTF-16 units the iterator is bound to. The slice is shared
// with the native iterator and must not be modified.
func (it *Iterator) Text() []uint16 {
	return it.text
}

// First moves to the first boundary (always 0) and returns it.
func (it *Iterator) First() (int, error) {
	if it.closed {
		return 0, icu.ErrClosed
	}
	n, err := bindings.UBrkFirst(it.ptr)
	runtime.KeepAlive(it)
	return n, icu.RemapError(err)
}

// Next advances to the next boundary, or Done past the end.
func (it *Iterator) Next() (int, error) {
	if it.closed {
		return 0, icu.ErrClosed
	}
	n, err := bindings.UBrkNext(it.ptr)
	runtime.KeepAlive(it)
	return n, icu.RemapError(err)
}

// Current returns the boundary the iterator is positioned at.
func (it *Iterator) Current() (int, error) {
	if it.closed {
		return 0, icu.ErrClosed
	}
	n, err := bindings.UBrkCurrent(it.ptr)
	runtime.KeepAlive(it)
	return n, icu.RemapError(err)
}

// Following returns the first boundary strictly after offset, or Done.
func (it *Iterator) Following(offset int) (int, error) {
	if it.closed {
		return 0, icu.ErrClosed
	}
	n, err := bindings.UBrkFollowing(it.ptr, offset)
	runtime.KeepAlive(it)
	return n, icu.RemapError(err)
}

// SetText rebinds the iterator to new text and resets its position.
func (it *Iterator) SetText(text string) error {
	if it.closed {
		return icu.ErrClosed
	}
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return icu.RemapError(err)
	}
	if err := bindings.UBrkSetText(it.ptr, u); err != nil {
		runtime.KeepAlive(it)
		return icu.RemapError(err)
	}
	// Swap the pinned buffer only after the native side has accepted the new
	// one.
	it.text = u
	runtime.KeepAlive(it)
	return nil
}

// Boundaries drains the iterator from the start and returns every boundary
// position, including 0 and the end of text.
func (it *Iterator) Boundaries() ([]int, error) {
	first, err := it.First()
	if err != nil {
		return nil, err
	}
	out := []int{first}
	for {
		n, err := it.Next()
		if err != nil {
			return nil, err
		}
		if n == Done {
			return out, nil
		}
		out = append(out, n)
	}
}

// Clone returns an independent iterator over the same text with its own
// position.
func (it *Iterator) Clone() (*Iterator, error) {
	if it.closed {
		return nil, icu.ErrClosed
	}
	dup, err := bindings.UBrkClone(it.ptr)
	runtime.KeepAlive(it)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	// The clone borrows the same buffer; both wrappers pin it independently.
	return wrap(dup, it.text), nil
}

// Close releases the native iterator. Safe to call more than once.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	runtime.SetFinalizer(it, nil)
	bindings.UBrkClose(it.ptr)
	it.ptr = nil
	it.text = nil
	return nil
}
