package icu

import (
	"errors"
	"testing"

	"github.com/goicu/icu4c-go/internal/bindings"
)

func TestRemapErrorNil(t *testing.T) {
	if err := RemapError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestRemapErrorAllocationFailure(t *testing.T) {
	native := &bindings.Error{Code: bindings.StatusMemoryAllocation}
	err := RemapError(native)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory in chain, got %v", err)
	}
	// The original code must stay reachable for callers matching on it.
	if code, ok := StatusOf(err); !ok || code != bindings.StatusMemoryAllocation {
		t.Fatalf("expected wrapped status, got %v (ok=%v)", code, ok)
	}
}

func TestRemapErrorPassthrough(t *testing.T) {
	native := &bindings.Error{Code: bindings.StatusIllegalArgument}
	err := RemapError(native)
	if errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("ordinary errors must not map to ErrOutOfMemory: %v", err)
	}
	if code, ok := StatusOf(err); !ok || code != StatusIllegalArgument {
		t.Fatalf("expected status passthrough, got %v (ok=%v)", code, ok)
	}
}
