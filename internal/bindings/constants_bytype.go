//go:build !icu_pre_67

package bindings

// Locale availability kinds for ULocOpenAvailableByType, mirroring
// ULocAvailableType. The operation exists only on ICU 67 or newer; the
// icu_pre_67 build tag removes it from the compiled surface entirely.
const (
	LocaleAvailableDefault           = 0
	LocaleAvailableOnlyLegacyAliases = 1
	LocaleAvailableWithLegacyAliases = 2
)
