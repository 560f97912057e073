//go:build (!cgo || windows) && !icu_pre_67

package bindings

import "unsafe"

func ULocOpenAvailableByType(int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
