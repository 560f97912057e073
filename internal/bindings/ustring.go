//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <unicode/uchar.h>
#include <unicode/ustring.h>
*/
import "C"

import (
	"unsafe"
)

// defaultBufLen is the initial capacity handed to the probe call. Most
// results (locale ids, keywords, plural categories) fit, so the probe already
// fills the buffer and no second call happens.
const defaultBufLen = 128

// charBufCall drives the two-call sizing protocol for functions writing into
// a char buffer: probe with a fixed-capacity buffer, and when ICU reports
// U_BUFFER_OVERFLOW_ERROR (or a length exceeding the capacity, since some
// functions truncate silently) retry once with the exact required capacity.
//
// The returned Status is the final call's status and may be a warning.
func charBufCall(fn func(buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t) (string, Status, error) {
	buf := make([]C.char, defaultBufLen)
	var status C.UErrorCode
	need := fn(&buf[0], C.int32_t(len(buf)), &status)
	st := Status(status)
	if st == StatusBufferOverflow || (st.IsSuccess() && int(need) > len(buf)) {
		if need <= 0 {
			return "", st, &Error{Code: StatusInternalProgram}
		}
		buf = make([]C.char, int(need))
		status = C.UErrorCode(0)
		wrote := fn(&buf[0], C.int32_t(len(buf)), &status)
		st = Status(status)
		if st.IsSuccess() && wrote != need {
			// The fill call must write exactly the length the probe reported.
			return "", st, &Error{Code: StatusInternalProgram}
		}
		need = wrote
	}
	if err := st.Err(); err != nil {
		return "", st, err
	}
	if need < 0 {
		need = 0
	}
	if int(need) > len(buf) {
		need = C.int32_t(len(buf))
	}
	return C.GoStringN(&buf[0], C.int(need)), st, nil
}

// ucharBufCall is charBufCall for functions writing UTF-16 output.
func ucharBufCall(fn func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t) ([]uint16, Status, error) {
	buf := make([]uint16, defaultBufLen)
	var status C.UErrorCode
	need := fn(ucharPtr(buf), C.int32_t(len(buf)), &status)
	st := Status(status)
	if st == StatusBufferOverflow || (st.IsSuccess() && int(need) > len(buf)) {
		if need <= 0 {
			return nil, st, &Error{Code: StatusInternalProgram}
		}
		buf = make([]uint16, int(need))
		status = C.UErrorCode(0)
		wrote := fn(ucharPtr(buf), C.int32_t(len(buf)), &status)
		st = Status(status)
		if st.IsSuccess() && wrote != need {
			return nil, st, &Error{Code: StatusInternalProgram}
		}
		need = wrote
	}
	if err := st.Err(); err != nil {
		return nil, st, err
	}
	if need < 0 {
		need = 0
	}
	if int(need) > len(buf) {
		need = C.int32_t(len(buf))
	}
	return buf[:need:need], st, nil
}

func srcCharPtr(s string) *C.char {
	if len(s) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(unsafe.StringData(s)))
}

// UTF16FromString converts UTF-8 to ICU's internal UTF-16 representation.
// Under ConvertStrict an ill-formed sequence fails with U_INVALID_CHAR_FOUND;
// under ConvertReplace it is substituted with U+FFFD and the substitution
// count is reported alongside the result.
func UTF16FromString(s string, policy ConvertPolicy) ([]uint16, int, error) {
	if len(s) == 0 {
		return nil, 0, nil
	}
	var subs C.int32_t
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		var destLen C.int32_t
		switch policy {
		case ConvertReplace:
			C.u_strFromUTF8WithSub(buf, capacity, &destLen,
				srcCharPtr(s), C.int32_t(len(s)),
				C.UChar32(replacementChar), &subs, status)
		default:
			C.u_strFromUTF8(buf, capacity, &destLen,
				srcCharPtr(s), C.int32_t(len(s)), status)
		}
		return destLen
	})
	if err != nil {
		return nil, 0, err
	}
	return out, int(subs), nil
}

// StringFromUTF16 converts ICU's UTF-16 representation back to UTF-8 under
// the same policy rules (unpaired surrogates are the ill-formed case here).
func StringFromUTF16(u []uint16, policy ConvertPolicy) (string, int, error) {
	if len(u) == 0 {
		return "", 0, nil
	}
	var subs C.int32_t
	out, _, err := charBufCall(func(buf *C.char, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		var destLen C.int32_t
		switch policy {
		case ConvertReplace:
			C.u_strToUTF8WithSub(buf, capacity, &destLen,
				ucharPtr(u), C.int32_t(len(u)),
				C.UChar32(replacementChar), &subs, status)
		default:
			C.u_strToUTF8(buf, capacity, &destLen,
				ucharPtr(u), C.int32_t(len(u)), status)
		}
		return destLen
	})
	if err != nil {
		return "", 0, err
	}
	return out, int(subs), nil
}

// StrToUpper implements u_strToUpper for the given locale.
func StrToUpper(u []uint16, locale string) ([]uint16, error) {
	cLoc, err := cString(locale)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.u_strToUpper(buf, capacity, ucharPtr(u), C.int32_t(len(u)), cLoc, status)
	})
	return out, err
}

// StrToLower implements u_strToLower for the given locale.
func StrToLower(u []uint16, locale string) ([]uint16, error) {
	cLoc, err := cString(locale)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cLoc))
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.u_strToLower(buf, capacity, ucharPtr(u), C.int32_t(len(u)), cLoc, status)
	})
	return out, err
}

// StrFoldCase implements u_strFoldCase with the default folding options.
func StrFoldCase(u []uint16) ([]uint16, error) {
	out, _, err := ucharBufCall(func(buf *C.UChar, capacity C.int32_t, status *C.UErrorCode) C.int32_t {
		return C.u_strFoldCase(buf, capacity, ucharPtr(u), C.int32_t(len(u)), C.U_FOLD_CASE_DEFAULT, status)
	})
	return out, err
}
