package icu

import "github.com/goicu/icu4c-go/internal/bindings"

// Status is a native UErrorCode value; see the bindings package for the
// partition rules. Re-exported so callers can match specific codes without
// reaching into internal packages.
type Status = bindings.Status

// Class partitions status codes into success, warning and failure.
type Class = bindings.Class

const (
	ClassSuccess = bindings.ClassSuccess
	ClassWarning = bindings.ClassWarning
	ClassFailure = bindings.ClassFailure
)

// Commonly matched status codes.
const (
	StatusZero             = bindings.StatusZero
	StatusIllegalArgument  = bindings.StatusIllegalArgument
	StatusMissingResource  = bindings.StatusMissingResource
	StatusParse            = bindings.StatusParse
	StatusInvalidChar      = bindings.StatusInvalidChar
	StatusBufferOverflow   = bindings.StatusBufferOverflow
	StatusMemoryAllocation = bindings.StatusMemoryAllocation
)

// StatusOf extracts the native status code from err, if it carries one.
func StatusOf(err error) (Status, bool) {
	return bindings.StatusOf(err)
}
