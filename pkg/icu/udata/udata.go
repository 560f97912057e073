// Package udata wraps the ICU data loading service (udata.h), for binaries
// that link a data-less ICU and supply the data bundle at runtime.
//
// Registration is process-global and must happen once, before any other ICU
// call. The library retains registered bundles for the process lifetime.
package udata

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/logging"
)

var (
	mu           sync.Mutex
	commonLoaded bool
)

// SetCommonData registers data as the common ICU data bundle (the contents of
// an icudtXXl.dat file). It fails if a bundle was already registered through
// this package.
func SetCommonData(data []byte) error {
	mu.Lock()
	defer mu.Unlock()
	if commonLoaded {
		return fmt.Errorf("icu/udata: common data already registered")
	}
	if err := bindings.UDataSetCommonData(data); err != nil {
		return icu.RemapError(err)
	}
	commonLoaded = true
	return nil
}

// LoadCommonFile reads an ICU data bundle from path and registers it as the
// common data. logger may be nil.
func LoadCommonFile(ctx context.Context, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.New(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(ctx, "reading ICU data bundle failed", "path", path, "err", err)
		return fmt.Errorf("icu/udata: reading data bundle: %w", err)
	}
	if err := SetCommonData(data); err != nil {
		logger.Error(ctx, "registering ICU data bundle failed", "path", path, "err", err)
		return err
	}
	logger.Info(ctx, "ICU data bundle registered", "path", path, "bytes", len(data))
	return nil
}

// SetAppData registers data as an application data bundle under the given
// package path, for lookup by resource APIs that name that package.
func SetAppData(path string, data []byte) error {
	mu.Lock()
	defer mu.Unlock()
	return icu.RemapError(bindings.UDataSetAppData(path, data))
}
