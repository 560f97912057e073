package icu

import "github.com/goicu/icu4c-go/internal/bindings"

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this binding module.
func WrapperVersion() string {
	return Version
}

// ICUVersion returns the version of the linked ICU library, e.g. "72.1", or
// the empty string in a stub build.
func ICUVersion() string {
	return bindings.Version()
}

// UnicodeVersion returns the Unicode standard version implemented by the
// linked library, or the empty string in a stub build.
func UnicodeVersion() string {
	return bindings.UnicodeVersion()
}

// Available reports whether the native library is linked into this binary.
func Available() bool {
	return bindings.Available()
}
