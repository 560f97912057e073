package icu

import (
	"errors"
	"fmt"

	"github.com/goicu/icu4c-go/internal/bindings"
)

var (
	// ErrClosed reports a use-site operation on a handle after Close.
	ErrClosed = errors.New("icu: handle has been closed")

	// ErrOutOfMemory reports an unrecoverable allocation failure inside the
	// native library. It is distinguished so callers can treat it differently
	// from ordinary argument or resource errors.
	ErrOutOfMemory = errors.New("icu: native allocation failed")

	// ErrNotBuilt and ErrCGONotEnabled are re-exported so callers need not
	// import the internal bindings package to detect a stub build.
	ErrNotBuilt      = bindings.ErrNotBuilt
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// RemapError converts bindings-layer errors to public API errors. Family
// subpackages route every bindings error through this before returning it.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	if code, ok := bindings.StatusOf(err); ok && code == bindings.StatusMemoryAllocation {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	return err
}
