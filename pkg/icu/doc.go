// Package icu is the public entry point for the ICU4C bindings. It exposes
// the error and status types shared by every API family, plus library
// version reporting.
//
// Each ICU API family lives in its own subpackage (locale, collate,
// calendar, datefmt, numfmt, breakiter, translit, norm, listfmt, plural,
// ustring, uenum). All of them follow the same lifecycle: an Open-style
// constructor that fails without leaking the native handle, value
// operations returning (result, error), and an idempotent Close releasing
// the handle exactly once. Operations on a closed handle return ErrClosed.
//
// Handles are not safe for concurrent use without external synchronization;
// distinct handles are independent.
package icu
