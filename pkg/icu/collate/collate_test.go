//go:build cgo && !windows

package collate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

func mustLocale(t *testing.T, id string) locale.Locale {
	t.Helper()
	loc, err := locale.New(id)
	if err != nil {
		t.Fatalf("locale %q: %v", id, err)
	}
	return loc
}

func TestCompareBasicOrder(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if r, err := c.Compare("apple", "banana"); err != nil || r != -1 {
		t.Fatalf("Compare(apple, banana): got %d, %v", r, err)
	}
	if r, err := c.Compare("banana", "apple"); err != nil || r != 1 {
		t.Fatalf("Compare(banana, apple): got %d, %v", r, err)
	}
	if r, err := c.Compare("apple", "apple"); err != nil || r != 0 {
		t.Fatalf("Compare(apple, apple): got %d, %v", r, err)
	}
}

func TestStrengthControlsCaseSensitivity(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if r, err := c.Compare("hello", "HELLO"); err != nil || r == 0 {
		t.Fatalf("tertiary strength should distinguish case: got %d, %v", r, err)
	}

	if err := c.SetStrength(Primary); err != nil {
		t.Fatalf("SetStrength: %v", err)
	}
	if s, err := c.Strength(); err != nil || s != Primary {
		t.Fatalf("Strength: got %v, %v", s, err)
	}
	if r, err := c.Compare("hello", "HELLO"); err != nil || r != 0 {
		t.Fatalf("primary strength should ignore case: got %d, %v", r, err)
	}
}

func TestSortKeyOrderMatchesCompare(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	words := []string{"apple", "Apple", "apricot", "banana"}
	keys := make([][]byte, len(words))
	for i, w := range words {
		keys[i], err = c.SortKey(w)
		if err != nil {
			t.Fatalf("SortKey(%q): %v", w, err)
		}
	}

	for i := range words {
		for j := range words {
			r, err := c.Compare(words[i], words[j])
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if k := bytes.Compare(keys[i], keys[j]); k != r {
				t.Fatalf("key order for (%q, %q): keys say %d, collator says %d",
					words[i], words[j], k, r)
			}
		}
	}
}

func TestNumericOrderingAttribute(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	// Lexically "10" < "9"; numerically the reverse.
	if r, err := c.Compare("file10", "file9"); err != nil || r != -1 {
		t.Fatalf("lexical compare: got %d, %v", r, err)
	}

	if err := c.SetAttribute(NumericOrdering, On); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	if v, err := c.Attribute(NumericOrdering); err != nil || v != On {
		t.Fatalf("Attribute: got %v, %v", v, err)
	}
	if r, err := c.Compare("file10", "file9"); err != nil || r != 1 {
		t.Fatalf("numeric compare: got %d, %v", r, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	dup, err := c.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer dup.Close()

	if err := dup.SetStrength(Primary); err != nil {
		t.Fatalf("SetStrength on clone: %v", err)
	}
	if s, err := c.Strength(); err != nil || s == Primary {
		t.Fatalf("original strength changed by clone: got %v, %v", s, err)
	}
}

func TestPhonebookTailoring(t *testing.T) {
	standard, err := Open(mustLocale(t, "de_DE"))
	if err != nil {
		t.Fatalf("Open standard: %v", err)
	}
	defer standard.Close()

	phonebook, err := Open(mustLocale(t, "de_DE@collation=phonebook"))
	if err != nil {
		t.Fatalf("Open phonebook: %v", err)
	}
	defer phonebook.Close()

	// Phonebook collation treats ä as ae, so "äb" sorts before "ad" only
	// under the tailored rules.
	rStd, err := standard.Compare("äb", "ad")
	if err != nil {
		t.Fatalf("standard Compare: %v", err)
	}
	rPb, err := phonebook.Compare("äb", "ad")
	if err != nil {
		t.Fatalf("phonebook Compare: %v", err)
	}
	if rStd == rPb {
		t.Fatalf("expected tailorings to disagree, both said %d", rStd)
	}
}

func TestUseAfterClose(t *testing.T) {
	c, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := c.Compare("a", "b"); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Compare after Close: expected ErrClosed, got %v", err)
	}
	if _, err := c.SortKey("a"); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("SortKey after Close: expected ErrClosed, got %v", err)
	}
	if _, err := c.Clone(); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Clone after Close: expected ErrClosed, got %v", err)
	}
}

func TestAvailableLocalesFeedsAccept(t *testing.T) {
	avail, err := AvailableLocales()
	if err != nil {
		t.Fatalf("AvailableLocales: %v", err)
	}
	defer avail.Close()

	n, err := avail.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n == 0 {
		t.Fatal("expected collation locales")
	}

	loc, kind, err := locale.Accept([]string{"da-DK", "en-GB"}, avail)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if kind == locale.AcceptFailed {
		t.Fatalf("expected a negotiated locale, got failure (locale %q)", loc)
	}
	if lang, err := loc.Language(); err != nil || lang != "da" {
		t.Fatalf("negotiated language: got %q, %v", lang, err)
	}

	// The negotiation advances the enumeration; after a Reset the same
	// request must negotiate the same locale again.
	if err := avail.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	again, kind, err := locale.Accept([]string{"da-DK", "en-GB"}, avail)
	if err != nil {
		t.Fatalf("second Accept: %v", err)
	}
	if kind == locale.AcceptFailed || again.String() != loc.String() {
		t.Fatalf("second Accept: got %q (kind %d), want %q", again, kind, loc)
	}
}
