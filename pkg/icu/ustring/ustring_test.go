//go:build cgo && !windows

package ustring

import (
	"strings"
	"testing"
	"unicode/utf16"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語のテキスト",
		"mixed ASCII と 日本語",
		"surrogate pair: \U0001F600",
	}
	for _, s := range cases {
		u, subs, err := Encode(s, Strict)
		if err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		if subs != 0 {
			t.Fatalf("Encode(%q): unexpected substitutions: %d", s, subs)
		}
		if want := utf16.Encode([]rune(s)); len(u) != len(want) {
			t.Fatalf("Encode(%q): got %d units, want %d", s, len(u), len(want))
		}
		back, subs, err := Decode(u, Strict)
		if err != nil {
			t.Fatalf("Decode of %q: %v", s, err)
		}
		if subs != 0 {
			t.Fatalf("Decode of %q: unexpected substitutions: %d", s, subs)
		}
		if back != s {
			t.Fatalf("round trip of %q produced %q", s, back)
		}
	}
}

func TestLongStringRoundTrip(t *testing.T) {
	// Well past any internal buffer, so conversion has to resize and refill.
	s := strings.Repeat("héllo wörld 日本語 ", 100)

	u, subs, err := Encode(s, Strict)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if subs != 0 {
		t.Fatalf("unexpected substitutions: %d", subs)
	}
	if want := utf16.Encode([]rune(s)); len(u) != len(want) {
		t.Fatalf("Encode: got %d units, want %d", len(u), len(want))
	}

	back, _, err := Decode(u, Strict)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != s {
		t.Fatal("long round trip did not reproduce the input")
	}

	upper, err := ToUpper(s, "en")
	if err != nil {
		t.Fatalf("ToUpper: %v", err)
	}
	if want := strings.Repeat("HÉLLO WÖRLD 日本語 ", 100); upper != want {
		t.Fatal("long uppercase did not match")
	}
}

func TestStrictRejectsIllFormed(t *testing.T) {
	if _, _, err := Encode("bad \xff byte", Strict); err == nil {
		t.Fatal("expected strict conversion to fail on ill-formed input")
	}
}

func TestReplaceSubstitutes(t *testing.T) {
	u, subs, err := Encode("bad \xff byte", Replace)
	if err != nil {
		t.Fatalf("Encode under Replace: %v", err)
	}
	if subs != 1 {
		t.Fatalf("expected 1 substitution, got %d", subs)
	}
	s, _, err := Decode(u, Strict)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "bad � byte" {
		t.Fatalf("expected replacement character, got %q", s)
	}
}

func TestReplaceSubstitutesUnpairedSurrogate(t *testing.T) {
	s, subs, err := Decode([]uint16{'a', 0xD800, 'b'}, Replace)
	if err != nil {
		t.Fatalf("Decode under Replace: %v", err)
	}
	if subs != 1 {
		t.Fatalf("expected 1 substitution, got %d", subs)
	}
	if s != "a�b" {
		t.Fatalf("expected replacement character, got %q", s)
	}
}

func TestToUpperIsLocaleSensitive(t *testing.T) {
	got, err := ToUpper("i", "tr")
	if err != nil {
		t.Fatalf("ToUpper(tr): %v", err)
	}
	if got != "İ" {
		t.Fatalf("Turkish uppercase of i: got %q, want İ", got)
	}

	got, err = ToUpper("i", "en")
	if err != nil {
		t.Fatalf("ToUpper(en): %v", err)
	}
	if got != "I" {
		t.Fatalf("English uppercase of i: got %q, want I", got)
	}
}

func TestToLower(t *testing.T) {
	got, err := ToLower("HELLO", "en")
	if err != nil {
		t.Fatalf("ToLower: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want hello", got)
	}
}

func TestFoldCaseExpands(t *testing.T) {
	got, err := FoldCase("Straße")
	if err != nil {
		t.Fatalf("FoldCase: %v", err)
	}
	if got != "strasse" {
		t.Fatalf("got %q, want strasse", got)
	}
}
