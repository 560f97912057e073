// Package bindings contains the cgo layer for the ICU4C C API. It is the only
// package in the module that imports "C"; everything above it works with Go
// types and unsafe.Pointer handles.
//
// Every function in this package has a stub counterpart compiled when cgo is
// disabled (or on Windows), so the module always builds. The stubs return
// ErrNotBuilt.
package bindings
