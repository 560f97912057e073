//go:build !cgo || windows

package bindings

import (
	"unsafe"
)

// Stub implementations for non-cgo builds or Windows. They let the module
// compile everywhere; every native entry point reports ErrNotBuilt.

// Available reports whether the native library is linked in.
func Available() bool { return false }

func Version() string        { return "" }
func UnicodeVersion() string { return "" }

func UTF16FromString(string, ConvertPolicy) ([]uint16, int, error) { return nil, 0, ErrNotBuilt }
func StringFromUTF16([]uint16, ConvertPolicy) (string, int, error) { return "", 0, ErrNotBuilt }
func StrToUpper([]uint16, string) ([]uint16, error)                { return nil, ErrNotBuilt }
func StrToLower([]uint16, string) ([]uint16, error)                { return nil, ErrNotBuilt }
func StrFoldCase([]uint16) ([]uint16, error)                       { return nil, ErrNotBuilt }

func UEnumNext(unsafe.Pointer) (string, bool, error) { return "", false, ErrNotBuilt }
func UEnumReset(unsafe.Pointer) error                { return ErrNotBuilt }
func UEnumCount(unsafe.Pointer) (int, error)         { return 0, ErrNotBuilt }
func UEnumClose(unsafe.Pointer)                      {}

func ULocCanonicalize(string) (string, error)            { return "", ErrNotBuilt }
func ULocGetName(string) (string, error)                 { return "", ErrNotBuilt }
func ULocGetLanguage(string) (string, error)             { return "", ErrNotBuilt }
func ULocGetScript(string) (string, error)               { return "", ErrNotBuilt }
func ULocGetCountry(string) (string, error)              { return "", ErrNotBuilt }
func ULocGetVariant(string) (string, error)              { return "", ErrNotBuilt }
func ULocToLanguageTag(string, bool) (string, error)     { return "", ErrNotBuilt }
func ULocForLanguageTag(string) (string, error)          { return "", ErrNotBuilt }
func ULocGetKeywordValue(string, string) (string, error) { return "", ErrNotBuilt }
func ULocOpenKeywords(string) (unsafe.Pointer, error)    { return nil, ErrNotBuilt }
func ULocGetDisplayName(string, string) (string, error)  { return "", ErrNotBuilt }
func ULocGetDisplayLanguage(string, string) (string, error) {
	return "", ErrNotBuilt
}
func ULocGetDisplayCountry(string, string) (string, error) { return "", ErrNotBuilt }
func ULocGetDisplayScript(string, string) (string, error)  { return "", ErrNotBuilt }
func ULocCountAvailable() int                              { return 0 }
func ULocGetAvailable(int) (string, error)                 { return "", ErrNotBuilt }
func ULocGetDefault() string                               { return "" }
func ULocAcceptLanguage([]string, unsafe.Pointer) (string, AcceptKind, error) {
	return "", AcceptFailed, ErrNotBuilt
}

func UColOpen(string) (unsafe.Pointer, error)                  { return nil, ErrNotBuilt }
func UColClose(unsafe.Pointer)                                 {}
func UColStrcollUTF8(unsafe.Pointer, string, string) (int, error) {
	return 0, ErrNotBuilt
}
func UColGetSortKey(unsafe.Pointer, []uint16) ([]byte, error) { return nil, ErrNotBuilt }
func UColGetStrength(unsafe.Pointer) (int, error)             { return 0, ErrNotBuilt }
func UColSetStrength(unsafe.Pointer, int) error               { return ErrNotBuilt }
func UColGetAttribute(unsafe.Pointer, int) (int, error)       { return 0, ErrNotBuilt }
func UColSetAttribute(unsafe.Pointer, int, int) error         { return ErrNotBuilt }
func UColClone(unsafe.Pointer) (unsafe.Pointer, error)        { return nil, ErrNotBuilt }
func UColOpenAvailableLocales() (unsafe.Pointer, error)       { return nil, ErrNotBuilt }

func UCalOpen([]uint16, string, int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UCalClose(unsafe.Pointer)                               {}
func UCalGetNow() float64                                    { return 0 }
func UCalGetMillis(unsafe.Pointer) (float64, error)          { return 0, ErrNotBuilt }
func UCalSetMillis(unsafe.Pointer, float64) error            { return ErrNotBuilt }
func UCalSetDateTime(unsafe.Pointer, int, int, int, int, int, int) error {
	return ErrNotBuilt
}
func UCalGet(unsafe.Pointer, int) (int, error)         { return 0, ErrNotBuilt }
func UCalAdd(unsafe.Pointer, int, int) error           { return ErrNotBuilt }
func UCalClone(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UCalOpenTimeZones() (unsafe.Pointer, error)       { return nil, ErrNotBuilt }
func UCalGetDefaultTimeZone() (string, error)          { return "", ErrNotBuilt }

func UDatOpen(int, int, string, []uint16, []uint16) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}
func UDatClose(unsafe.Pointer)                                 {}
func UDatFormat(unsafe.Pointer, float64) (string, error)       { return "", ErrNotBuilt }
func UDatFormatCalendar(unsafe.Pointer, unsafe.Pointer) (string, error) {
	return "", ErrNotBuilt
}
func UDatParse(unsafe.Pointer, []uint16) (float64, error) { return 0, ErrNotBuilt }
func UDatClone(unsafe.Pointer) (unsafe.Pointer, error)    { return nil, ErrNotBuilt }
func UDatToPattern(unsafe.Pointer, bool) (string, error)  { return "", ErrNotBuilt }

func UNumOpen(int, string) (unsafe.Pointer, error)            { return nil, ErrNotBuilt }
func UNumClose(unsafe.Pointer)                                {}
func UNumFormatDouble(unsafe.Pointer, float64) (string, error) {
	return "", ErrNotBuilt
}
func UNumFormatInt64(unsafe.Pointer, int64) (string, error) { return "", ErrNotBuilt }
func UNumParseDouble(unsafe.Pointer, []uint16) (float64, error) {
	return 0, ErrNotBuilt
}
func UNumGetAttribute(unsafe.Pointer, int) (int, error) { return 0, ErrNotBuilt }
func UNumSetAttribute(unsafe.Pointer, int, int) error   { return ErrNotBuilt }
func UNumClone(unsafe.Pointer) (unsafe.Pointer, error)  { return nil, ErrNotBuilt }

func UBrkOpen(int, string, []uint16) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UBrkClose(unsafe.Pointer)                               {}
func UBrkFirst(unsafe.Pointer) (int, error)                  { return 0, ErrNotBuilt }
func UBrkNext(unsafe.Pointer) (int, error)                   { return 0, ErrNotBuilt }
func UBrkCurrent(unsafe.Pointer) (int, error)                { return 0, ErrNotBuilt }
func UBrkFollowing(unsafe.Pointer, int) (int, error)         { return 0, ErrNotBuilt }
func UBrkSetText(unsafe.Pointer, []uint16) error             { return ErrNotBuilt }
func UBrkClone(unsafe.Pointer) (unsafe.Pointer, error)       { return nil, ErrNotBuilt }

func UTransOpen([]uint16, int) (unsafe.Pointer, error)        { return nil, ErrNotBuilt }
func UTransClose(unsafe.Pointer)                              {}
func UTransOpenInverse(unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}
func UTransClone(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UTransGetID(unsafe.Pointer) (string, error)         { return "", ErrNotBuilt }
func UTransTransliterate(unsafe.Pointer, []uint16) ([]uint16, error) {
	return nil, ErrNotBuilt
}
func UTransOpenIDs() (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func UNorm2Instance(int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UNorm2Normalize(unsafe.Pointer, []uint16) ([]uint16, error) {
	return nil, ErrNotBuilt
}
func UNorm2IsNormalized(unsafe.Pointer, []uint16) (bool, error) {
	return false, ErrNotBuilt
}
func UNorm2ComposePair(unsafe.Pointer, rune, rune) (rune, error) {
	return -1, ErrNotBuilt
}

func UListFmtOpen(string) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UListFmtClose(unsafe.Pointer)                {}
func UListFmtFormat(unsafe.Pointer, [][]uint16) (string, error) {
	return "", ErrNotBuilt
}

func UPluralRulesOpen(string, int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func UPluralRulesClose(unsafe.Pointer)                     {}
func UPluralRulesSelect(unsafe.Pointer, float64) (string, error) {
	return "", ErrNotBuilt
}
func UPluralRulesKeywords(unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func UDataSetCommonData([]byte) error         { return ErrNotBuilt }
func UDataSetAppData(string, []byte) error    { return ErrNotBuilt }
