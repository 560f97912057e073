//go:build cgo && !windows

package translit

import (
	"errors"
	"testing"

	"github.com/goicu/icu4c-go/pkg/icu"
)

func TestLatinASCII(t *testing.T) {
	tr, err := Open("Latin-ASCII", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tr.Close()

	got, err := tr.Transliterate("café Zürich")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	if got != "cafe Zurich" {
		t.Fatalf("Latin-ASCII: got %q", got)
	}
}

func TestGreekLatin(t *testing.T) {
	tr, err := Open("Greek-Latin", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tr.Close()

	got, err := tr.Transliterate("Αθήνα")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	if got == "Αθήνα" || got == "" {
		t.Fatalf("expected romanized output, got %q", got)
	}
}

func TestGrowingTransform(t *testing.T) {
	// Hex transforms grow every character severalfold, exercising the
	// buffer-resize path.
	tr, err := Open("Any-Hex", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tr.Close()

	got, err := tr.Transliterate("ab")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	if got != "\\u0061\\u0062" {
		t.Fatalf("Any-Hex: got %q", got)
	}
}

func TestID(t *testing.T) {
	tr, err := Open("Latin-ASCII", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tr.Close()

	id, err := tr.ID()
	if err != nil {
		t.Fatalf("ID: %v", err)
	}
	if id != "Latin-ASCII" {
		t.Fatalf("ID: got %q", id)
	}
}

func TestInverseUndoesTransform(t *testing.T) {
	tr, err := Open("Any-Hex", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tr.Close()

	inv, err := tr.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	defer inv.Close()

	hexed, err := tr.Transliterate("hello")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	back, err := inv.Transliterate(hexed)
	if err != nil {
		t.Fatalf("inverse Transliterate: %v", err)
	}
	if back != "hello" {
		t.Fatalf("inverse round trip: got %q", back)
	}
}

func TestOpenUnknownIDFails(t *testing.T) {
	if _, err := Open("No-SuchTransform9000", Forward); err == nil {
		t.Fatal("expected failure for unknown transliterator id")
	}
}

func TestAvailableIDsContainsLatinASCII(t *testing.T) {
	ids, err := AvailableIDs()
	if err != nil {
		t.Fatalf("AvailableIDs: %v", err)
	}
	defer ids.Close()

	all, err := ids.Strings()
	if err != nil {
		t.Fatalf("Strings: %v", err)
	}
	found := false
	for _, id := range all {
		if id == "Latin-ASCII" {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected Latin-ASCII among registered ids")
	}
}

func TestUseAfterClose(t *testing.T) {
	tr, err := Open("Latin-ASCII", Forward)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := tr.Transliterate("x"); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Transliterate after Close: expected ErrClosed, got %v", err)
	}
	if _, err := tr.Inverse(); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Inverse after Close: expected ErrClosed, got %v", err)
	}
}
