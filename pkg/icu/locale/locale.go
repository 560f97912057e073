// Package locale wraps the ICU locale services (uloc.h): canonicalization,
// subtag accessors, display names, BCP 47 conversion, keyword enumeration and
// HTTP Accept-Language negotiation.
//
// A Locale is a plain value, not a native handle; there is nothing to close.
package locale

import (
	"runtime"

	"golang.org/x/text/language"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// Locale is a canonicalized ICU locale identifier such as "en_US" or
// "de_DE@collation=phonebook". The zero value is the root locale.
type Locale struct {
	repr string
}

// New canonicalizes id into a Locale. Unknown subtags are kept as-is; only
// identifiers the library cannot parse at all fail.
func New(id string) (Locale, error) {
	repr, err := bindings.ULocCanonicalize(id)
	if err != nil {
		return Locale{}, icu.RemapError(err)
	}
	return Locale{repr: repr}, nil
}

// ForLanguageTag converts a BCP 47 language tag such as "de-DE-u-co-phonebk"
// into a Locale.
func ForLanguageTag(tag string) (Locale, error) {
	repr, err := bindings.ULocForLanguageTag(tag)
	if err != nil {
		return Locale{}, icu.RemapError(err)
	}
	return Locale{repr: repr}, nil
}

// FromTag converts a golang.org/x/text language tag into a Locale.
func FromTag(tag language.Tag) (Locale, error) {
	return ForLanguageTag(tag.String())
}

// Default returns the process default locale.
func Default() Locale {
	return Locale{repr: bindings.ULocGetDefault()}
}

// String returns the canonical ICU identifier.
func (l Locale) String() string { return l.repr }

// Language returns the ISO language code, e.g. "de".
func (l Locale) Language() (string, error) {
	s, err := bindings.ULocGetLanguage(l.repr)
	return s, icu.RemapError(err)
}

// Script returns the ISO 15924 script code, e.g. "Latn", or "" if the
// identifier carries none.
func (l Locale) Script() (string, error) {
	s, err := bindings.ULocGetScript(l.repr)
	return s, icu.RemapError(err)
}

// Country returns the ISO country code, e.g. "DE", or "".
func (l Locale) Country() (string, error) {
	s, err := bindings.ULocGetCountry(l.repr)
	return s, icu.RemapError(err)
}

// Variant returns the variant code, e.g. "POSIX", or "".
func (l Locale) Variant() (string, error) {
	s, err := bindings.ULocGetVariant(l.repr)
	return s, icu.RemapError(err)
}

// Name returns the full name produced by uloc_getName, which includes any
// keyword list.
func (l Locale) Name() (string, error) {
	s, err := bindings.ULocGetName(l.repr)
	return s, icu.RemapError(err)
}

// LanguageTag converts the locale to a BCP 47 tag. With strict set, subtags
// that have no BCP 47 representation fail instead of being dropped.
func (l Locale) LanguageTag(strict bool) (string, error) {
	s, err := bindings.ULocToLanguageTag(l.repr, strict)
	return s, icu.RemapError(err)
}

// Tag converts the locale into a golang.org/x/text language tag, for use with
// the x/text matching and formatting packages.
func (l Locale) Tag() (language.Tag, error) {
	bcp, err := l.LanguageTag(false)
	if err != nil {
		return language.Und, err
	}
	return language.Parse(bcp)
}

// DisplayName renders the locale's full name for a reader of display, e.g.
// DisplayName(en) of "de_DE" is "German (Germany)".
func (l Locale) DisplayName(display Locale) (string, error) {
	s, err := bindings.ULocGetDisplayName(l.repr, display.repr)
	return s, icu.RemapError(err)
}

// DisplayLanguage renders the language subtag for a reader of display.
func (l Locale) DisplayLanguage(display Locale) (string, error) {
	s, err := bindings.ULocGetDisplayLanguage(l.repr, display.repr)
	return s, icu.RemapError(err)
}

// DisplayCountry renders the country subtag for a reader of display.
func (l Locale) DisplayCountry(display Locale) (string, error) {
	s, err := bindings.ULocGetDisplayCountry(l.repr, display.repr)
	return s, icu.RemapError(err)
}

// DisplayScript renders the script subtag for a reader of display.
func (l Locale) DisplayScript(display Locale) (string, error) {
	s, err := bindings.ULocGetDisplayScript(l.repr, display.repr)
	return s, icu.RemapError(err)
}

// Keywords enumerates the keyword names present in the identifier, e.g. "co"
// for "de_DE@collation=phonebook". A locale without keywords yields an empty
// enumeration.
func (l Locale) Keywords() (*uenum.Enumeration, error) {
	ptr, err := bindings.ULocOpenKeywords(l.repr)
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, nil), nil
}

// KeywordValue returns the value of the named keyword, or "" if absent.
func (l Locale) KeywordValue(keyword string) (string, error) {
	s, err := bindings.ULocGetKeywordValue(l.repr, keyword)
	return s, icu.RemapError(err)
}

// Available returns the locales the linked library has data for.
func Available() ([]Locale, error) {
	n := bindings.ULocCountAvailable()
	out := make([]Locale, 0, n)
	for i := 0; i < n; i++ {
		id, err := bindings.ULocGetAvailable(i)
		if err != nil {
			return nil, icu.RemapError(err)
		}
		out = append(out, Locale{repr: id})
	}
	return out, nil
}

// AcceptKind classifies the outcome of Accept.
type AcceptKind int32

const (
	// AcceptFailed means no available locale matched the request.
	AcceptFailed = AcceptKind(bindings.AcceptFailed)
	// AcceptValid means an exact match was found.
	AcceptValid = AcceptKind(bindings.AcceptValid)
	// AcceptFallback means a fallback of a requested locale matched.
	AcceptFallback = AcceptKind(bindings.AcceptFallback)
)

// Accept negotiates the best available locale for an HTTP Accept-Language
// preference list, in order of preference. available is typically produced by
// an AvailableLocales operation; the caller keeps ownership, but the
// negotiation advances the enumeration, so Reset it before reusing it.
func Accept(accept []string, available *uenum.Enumeration) (Locale, AcceptKind, error) {
	id, kind, err := bindings.ULocAcceptLanguage(accept, available.Ptr())
	runtime.KeepAlive(available)
	if err != nil {
		return Locale{}, AcceptFailed, icu.RemapError(err)
	}
	return Locale{repr: id}, AcceptKind(kind), nil
}
