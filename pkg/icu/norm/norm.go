// Package norm wraps the ICU Unicode normalization service (unorm2.h).
//
// Normalizers are library-owned singletons: Get hands out a shared instance
// with no Close method, and the same Form always yields the same underlying
// object. The instances are immutable and safe for concurrent use.
package norm

import (
	"unsafe"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
)

// Form is a Unicode normalization form.
type Form int

const (
	NFC  = Form(bindings.NormNFC)
	NFD  = Form(bindings.NormNFD)
	NFKC = Form(bindings.NormNFKC)
	NFKD = Form(bindings.NormNFKD)
)

// Normalizer normalizes text to one form. It wraps a library-owned handle and
// therefore has no Close.
type Normalizer struct {
	ptr unsafe.Pointer
}

// Get returns the shared normalizer for the form.
func Get(form Form) (*Normalizer, error) {
	ptr, err := bindings.UNorm2Instance(int(form))
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return &Normalizer{ptr: ptr}, nil
}

// Normalize returns text in the normalizer's form.
func (n *Normalizer) Normalize(text string) (string, error) {
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return "", icu.RemapError(err)
	}
	out, err := bindings.UNorm2Normalize(n.ptr, u)
	if err != nil {
		return "", icu.RemapError(err)
	}
	s, _, err := bindings.StringFromUTF16(out, bindings.ConvertStrict)
	return s, icu.RemapError(err)
}

// IsNormalized reports whether text is already in the normalizer's form.
func (n *Normalizer) IsNormalized(text string) (bool, error) {
	u, _, err := bindings.UTF16FromString(text, bindings.ConvertStrict)
	if err != nil {
		return false, icu.RemapError(err)
	}
	ok, err := bindings.UNorm2IsNormalized(n.ptr, u)
	return ok, icu.RemapError(err)
}

// ComposePair composes two code points into one, e.g. 'a' and U+0301 into
// U+00E1 under NFC. Returns -1 when the pair does not compose.
func (n *Normalizer) ComposePair(a, b rune) (rune, error) {
	r, err := bindings.UNorm2ComposePair(n.ptr, a, b)
	return r, icu.RemapError(err)
}
