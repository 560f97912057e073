//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/uloc.h>
*/
import "C"

import (
	"unsafe"
)

// charBufLocaleOp adapts the common uloc signature (locale in, char buffer
// out) to charBufCall.
func charBufLocaleOp(loc string, fn func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t) (string, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cLoc))
	out, _, err := charBufCall(func(buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return fn(cLoc, buf, capacity, status)
	})
	return out, err
}

// ULocCanonicalize implements uloc_canonicalize.
func ULocCanonicalize(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_canonicalize(cLoc, buf, capacity, status)
	})
}

// ULocGetName implements uloc_getName.
func ULocGetName(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getName(cLoc, buf, capacity, status)
	})
}

// ULocGetLanguage implements uloc_getLanguage.
func ULocGetLanguage(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getLanguage(cLoc, buf, capacity, status)
	})
}

// ULocGetScript implements uloc_getScript.
func ULocGetScript(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getScript(cLoc, buf, capacity, status)
	})
}

// ULocGetCountry implements uloc_getCountry.
func ULocGetCountry(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getCountry(cLoc, buf, capacity, status)
	})
}

// ULocGetVariant implements uloc_getVariant.
func ULocGetVariant(loc string) (string, error) {
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getVariant(cLoc, buf, capacity, status)
	})
}

// ULocToLanguageTag implements uloc_toLanguageTag.
func ULocToLanguageTag(loc string, strict bool) (string, error) {
	cStrict := C.UBool(0)
	if strict {
		cStrict = C.UBool(1)
	}
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_toLanguageTag(cLoc, buf, capacity, cStrict, status)
	})
}

// ULocForLanguageTag implements uloc_forLanguageTag.
func ULocForLanguageTag(tag string) (string, error) {
	return charBufLocaleOp(tag, func(cTag *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_forLanguageTag(cTag, buf, capacity, nil, status)
	})
}

// ULocGetKeywordValue implements uloc_getKeywordValue.
func ULocGetKeywordValue(loc, keyword string) (string, error) {
	cKw, err := cString(keyword)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cKw))
	return charBufLocaleOp(loc, func(cLoc *C.char, buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getKeywordValue(cLoc, cKw, buf, capacity, status)
	})
}

// ULocOpenKeywords implements uloc_openKeywords, returning a UEnumeration
// handle owned by the caller.
func ULocOpenKeywords(loc string) (unsafe.Pointer, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	var status C.UErrorCode
	e := C.uloc_openKeywords(cLoc, &status)
	if err := Status(status).Err(); err != nil {
		return nil, err
	}
	// A locale without keywords yields a NULL enumeration rather than an
	// error; normalize that to an empty-but-valid handle at the caller.
	return unsafe.Pointer(e), nil
}

// ucharBufDisplayOp adapts the uloc display-name signature (locale and
// display locale in, UChar buffer out).
func ucharBufDisplayOp(loc, display string, fn func(cLoc, cDisplay *C.char, buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t) (string, error) {
	cLoc, err := cString(loc)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cLoc))
	cDisplay, err := cString(display)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cDisplay))
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return fn(cLoc, cDisplay, buf, capacity, status)
	})
	if err != nil {
		return "", err
	}
	s, _, err := StringFromUTF16(out, ConvertStrict)
	return s, err
}

// ULocGetDisplayName implements uloc_getDisplayName.
func ULocGetDisplayName(loc, display string) (string, error) {
	return ucharBufDisplayOp(loc, display, func(cLoc, cDisplay *C.char, buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getDisplayName(cLoc, cDisplay, buf, capacity, status)
	})
}

// ULocGetDisplayLanguage implements uloc_getDisplayLanguage.
func ULocGetDisplayLanguage(loc, display string) (string, error) {
	return ucharBufDisplayOp(loc, display, func(cLoc, cDisplay *C.char, buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getDisplayLanguage(cLoc, cDisplay, buf, capacity, status)
	})
}

// ULocGetDisplayCountry implements uloc_getDisplayCountry.
func ULocGetDisplayCountry(loc, display string) (string, error) {
	return ucharBufDisplayOp(loc, display, func(cLoc, cDisplay *C.char, buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getDisplayCountry(cLoc, cDisplay, buf, capacity, status)
	})
}

// ULocGetDisplayScript implements uloc_getDisplayScript.
func ULocGetDisplayScript(loc, display string) (string, error) {
	return ucharBufDisplayOp(loc, display, func(cLoc, cDisplay *C.char, buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.uloc_getDisplayScript(cLoc, cDisplay, buf, capacity, status)
	})
}

// ULocCountAvailable implements uloc_countAvailable.
func ULocCountAvailable() int {
	return int(C.uloc_countAvailable())
}

// ULocGetAvailable implements uloc_getAvailable. The index must be within
// [0, ULocCountAvailable()).
func ULocGetAvailable(n int) (string, error) {
	p := C.uloc_getAvailable(C.int32_t(n))
	if p == nil {
		return "", &Error{Code: StatusIndexOutOfBounds}
	}
	return C.GoString(p), nil
}

// ULocGetDefault implements uloc_getDefault.
func ULocGetDefault() string {
	return C.GoString(C.uloc_getDefault())
}

// ULocAcceptLanguage implements uloc_acceptLanguage against the supplied
// enumeration of available locales. The caller still owns the enumeration,
// but the negotiation advances its position; Reset it before reusing it.
func ULocAcceptLanguage(accept []string, available unsafe.Pointer) (string, AcceptKind, error) {
	if len(accept) == 0 {
		return "", AcceptFailed, &Error{Code: StatusIllegalArgument}
	}
	cList := make([]*C.char, len(accept))
	for i, s := range accept {
		c, err := cString(s)
		if err != nil {
			for j := 0; j < i; j++ {
				C.free(unsafe.Pointer(cList[j]))
			}
			return "", AcceptFailed, err
		}
		cList[i] = c
	}
	defer func() {
		for _, c := range cList {
			C.free(unsafe.Pointer(c))
		}
	}()

	// A single full-size call: the result is a bare locale id, which fits
	// ULOC_FULLNAME_CAPACITY, and a sizing retry would re-run the negotiation
	// against an enumeration the first pass already advanced.
	var result C.UAcceptResult
	buf := make([]C.char, C.ULOC_FULLNAME_CAPACITY)
	var status C.UErrorCode
	n := C.uloc_acceptLanguage(&buf[0], C.int32_t(len(buf)), &result,
		(**C.char)(unsafe.Pointer(&cList[0])), C.int32_t(len(cList)),
		(*C.UEnumeration)(available), &status)
	if err := Status(status).Err(); err != nil {
		return "", AcceptFailed, err
	}
	if n < 0 {
		n = 0
	}
	if int(n) > len(buf) {
		n = C.int32_t(len(buf))
	}
	return C.GoStringN(&buf[0], C.int(n)), AcceptKind(result), nil
}
