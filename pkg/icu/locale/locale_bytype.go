//go:build !icu_pre_67

package locale

import (
	"github.com/goicu/icu4c-go/internal/bindings"
	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/uenum"
)

// AvailableKind selects which alias set AvailableByType enumerates.
type AvailableKind int

const (
	// AvailableDefault enumerates the canonical locales only.
	AvailableDefault = AvailableKind(bindings.LocaleAvailableDefault)
	// AvailableOnlyLegacyAliases enumerates only legacy alias identifiers.
	AvailableOnlyLegacyAliases = AvailableKind(bindings.LocaleAvailableOnlyLegacyAliases)
	// AvailableWithLegacyAliases enumerates both sets.
	AvailableWithLegacyAliases = AvailableKind(bindings.LocaleAvailableWithLegacyAliases)
)

// AvailableByType enumerates available locales filtered by alias kind.
// Requires ICU 67 or later; builds tagged icu_pre_67 omit this operation.
func AvailableByType(kind AvailableKind) (*uenum.Enumeration, error) {
	ptr, err := bindings.ULocOpenAvailableByType(int(kind))
	if err != nil {
		return nil, icu.RemapError(err)
	}
	return uenum.FromHandle(ptr, nil), nil
}
