// Package ustring exposes the UTF-8 <-> UTF-16 conversion layer and the
// locale-sensitive case mapping operations (ustring.h). The conversion
// functions underpin every other API family; they are exported here for
// callers that need to marshal text themselves, e.g. to reuse one UTF-16
// buffer across repeated native calls.
package ustring

import (
	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
)

// Policy selects how conversion treats ill-formed input.
type Policy = bindings.ConvertPolicy

const (
	// Strict fails the conversion on the first ill-formed sequence.
	Strict = bindings.ConvertStrict
	// Replace substitutes U+FFFD for each ill-formed sequence and reports
	// how many substitutions were made.
	Replace = bindings.ConvertReplace
)

// Encode converts UTF-8 to UTF-16 code units. Under Replace, subs is the
// number of U+FFFD substitutions performed.
func Encode(s string, policy Policy) (u []uint16, subs int, err error) {
	u, subs, err = bindings.UTF16FromString(s, policy)
	return u, subs, icu.RemapError(err)
}

// Decode converts UTF-16 code units to UTF-8. The ill-formed case here is an
// unpaired surrogate.
func Decode(u []uint16, policy Policy) (s string, subs int, err error) {
	s, subs, err = bindings.StringFromUTF16(u, policy)
	return s, subs, icu.RemapError(err)
}

// ToUpper applies full locale-sensitive uppercasing, e.g. "i" upper-cases to
// "İ" under Turkish locales. An empty locale selects the root rules.
func ToUpper(s, locale string) (string, error) {
	return caseMapped(s, func(u []uint16) ([]uint16, error) {
		return bindings.StrToUpper(u, locale)
	})
}

// ToLower applies full locale-sensitive lowercasing.
func ToLower(s, locale string) (string, error) {
	return caseMapped(s, func(u []uint16) ([]uint16, error) {
		return bindings.StrToLower(u, locale)
	})
}

// FoldCase applies locale-independent case folding, the operation to use for
// caseless matching.
func FoldCase(s string) (string, error) {
	return caseMapped(s, bindings.StrFoldCase)
}

func caseMapped(s string, fn func([]uint16) ([]uint16, error)) (string, error) {
	u, _, err := bindings.UTF16FromString(s, bindings.ConvertStrict)
	if err != nil {
		return "", icu.RemapError(err)
	}
	mapped, err := fn(u)
	if err != nil {
		return "", icu.RemapError(err)
	}
	out, _, err := bindings.StringFromUTF16(mapped, bindings.ConvertStrict)
	return out, icu.RemapError(err)
}
