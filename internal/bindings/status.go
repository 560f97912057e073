package bindings

import (
	"errors"
	"fmt"
)

// Status is an ICU UErrorCode value. The partition is fixed by the C API:
// zero is the single success value, negative values are warnings (the call
// succeeded, possibly with a fallback or truncated result), and positive
// values are errors with no usable output.
type Status int32

// Warning codes. Values are part of the ICU ABI and stable across releases.
const (
	StatusUsingFallbackWarning      Status = -128
	StatusUsingDefaultWarning       Status = -127
	StatusSafeCloneAllocatedWarning Status = -126
	StatusStateOldWarning           Status = -125
	StatusStringNotTerminated       Status = -124
	StatusSortKeyTooShortWarning    Status = -123
	StatusAmbiguousAliasWarning     Status = -122
)

// StatusZero is U_ZERO_ERROR, the only success value.
const StatusZero Status = 0

// Error codes.
const (
	StatusIllegalArgument  Status = 1
	StatusMissingResource  Status = 2
	StatusInvalidFormat    Status = 3
	StatusFileAccess       Status = 4
	StatusInternalProgram  Status = 5
	StatusMessageParse     Status = 6
	StatusMemoryAllocation Status = 7
	StatusIndexOutOfBounds Status = 8
	StatusParse            Status = 9
	StatusInvalidChar      Status = 10
	StatusTruncatedChar    Status = 11
	StatusIllegalChar      Status = 12
	StatusBufferOverflow   Status = 15
	StatusUnsupported      Status = 16
	StatusInvalidState     Status = 27
)

// Class partitions status codes for callers that need to distinguish
// warnings from hard failures without enumerating codes themselves.
type Class int

const (
	ClassSuccess Class = iota
	ClassWarning
	ClassFailure
)

// Class reports which partition s falls into. Codes this package has no name
// for still classify correctly: anything positive is a failure.
func (s Status) Class() Class {
	switch {
	case s == StatusZero:
		return ClassSuccess
	case s < StatusZero:
		return ClassWarning
	default:
		return ClassFailure
	}
}

// IsSuccess reports whether s permits reading output buffers, i.e. the call
// either succeeded outright or succeeded with a warning.
func (s Status) IsSuccess() bool { return s.Class() != ClassFailure }

// IsWarning reports whether s is an informational code.
func (s Status) IsWarning() bool { return s.Class() == ClassWarning }

var statusNames = map[Status]string{
	StatusUsingFallbackWarning:      "U_USING_FALLBACK_WARNING",
	StatusUsingDefaultWarning:       "U_USING_DEFAULT_WARNING",
	StatusSafeCloneAllocatedWarning: "U_SAFECLONE_ALLOCATED_WARNING",
	StatusStateOldWarning:           "U_STATE_OLD_WARNING",
	StatusStringNotTerminated:       "U_STRING_NOT_TERMINATED_WARNING",
	StatusSortKeyTooShortWarning:    "U_SORT_KEY_TOO_SHORT_WARNING",
	StatusAmbiguousAliasWarning:     "U_AMBIGUOUS_ALIAS_WARNING",
	StatusZero:                      "U_ZERO_ERROR",
	StatusIllegalArgument:           "U_ILLEGAL_ARGUMENT_ERROR",
	StatusMissingResource:           "U_MISSING_RESOURCE_ERROR",
	StatusInvalidFormat:             "U_INVALID_FORMAT_ERROR",
	StatusFileAccess:                "U_FILE_ACCESS_ERROR",
	StatusInternalProgram:           "U_INTERNAL_PROGRAM_ERROR",
	StatusMessageParse:              "U_MESSAGE_PARSE_ERROR",
	StatusMemoryAllocation:          "U_MEMORY_ALLOCATION_ERROR",
	StatusIndexOutOfBounds:          "U_INDEX_OUTOFBOUNDS_ERROR",
	StatusParse:                     "U_PARSE_ERROR",
	StatusInvalidChar:               "U_INVALID_CHAR_FOUND",
	StatusTruncatedChar:             "U_TRUNCATED_CHAR_FOUND",
	StatusIllegalChar:               "U_ILLEGAL_CHAR_FOUND",
	StatusBufferOverflow:            "U_BUFFER_OVERFLOW_ERROR",
	StatusUnsupported:               "U_UNSUPPORTED_ERROR",
	StatusInvalidState:              "U_INVALID_STATE_ERROR",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UErrorCode(%d)", int32(s))
}

// Err converts a status into an error. Success and warning codes map to nil;
// failure codes map to a *Error carrying the original code.
func (s Status) Err() error {
	if s.IsSuccess() {
		return nil
	}
	return &Error{Code: s}
}

// preflightErr is Err for the sizing call of the two-call protocol, where
// U_BUFFER_OVERFLOW_ERROR is the expected way for ICU to report the required
// length and must not be treated as failure.
func (s Status) preflightErr() error {
	if s == StatusBufferOverflow {
		return nil
	}
	return s.Err()
}

// Error is a native call failure. It carries the original UErrorCode so
// callers can match on specific conditions with errors.As.
type Error struct {
	Code Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("icu: native call failed: %s", e.Code)
}

// StatusOf extracts the native status code from err, if it carries one
// anywhere in its chain.
func StatusOf(err error) (Status, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return StatusZero, false
}
