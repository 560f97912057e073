package bindings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotBuilt reports that the native ICU libraries were not linked into
	// the current binary. Callers can use this to fall back gracefully.
	ErrNotBuilt = errors.New("icu/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("icu/internal/bindings: cgo not enabled")
)

// ConvertPolicy selects how UTF-8 <-> UTF-16 conversion treats ill-formed
// sequences: fail the conversion, or substitute U+FFFD and continue.
type ConvertPolicy int

const (
	ConvertStrict ConvertPolicy = iota
	ConvertReplace
)

// replacementChar is the substitute used under ConvertReplace.
const replacementChar = 0xFFFD

// AcceptKind is the result disposition of ULocAcceptLanguage, mirroring
// UAcceptResult.
type AcceptKind int32

const (
	AcceptFailed   AcceptKind = 0
	AcceptValid    AcceptKind = 1
	AcceptFallback AcceptKind = 2
)

// checkNoInteriorNUL rejects strings that cannot be represented as C strings.
// Performed before any native call so malformed input never crosses the
// boundary.
func checkNoInteriorNUL(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("icu: string contains an interior NUL byte: %q", s)
	}
	return nil
}
