package icu

import "testing"

func TestWrapperVersionDefault(t *testing.T) {
	if got := WrapperVersion(); got != Version {
		t.Fatalf("expected %q, got %q", Version, got)
	}
}

func TestVersionsConsistentWithAvailability(t *testing.T) {
	if Available() {
		if ICUVersion() == "" {
			t.Fatal("native library linked but ICU version empty")
		}
		if UnicodeVersion() == "" {
			t.Fatal("native library linked but Unicode version empty")
		}
	} else {
		if ICUVersion() != "" {
			t.Fatalf("stub build reported ICU version %q", ICUVersion())
		}
	}
}
