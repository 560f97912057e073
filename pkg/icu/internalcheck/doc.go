// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests used internally by the icu4c-go library
// to keep the native boundary confined and the handle lifecycle uniform. It
// is not intended for external use and the API may change without notice.
package internalcheck
