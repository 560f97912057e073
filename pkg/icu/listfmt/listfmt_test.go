//go:build cgo && !windows

package listfmt

import (
	"errors"
	"fmt"
	"strings"
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

func TestFormatEnglishList(t *testing.T) {
	f, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"apples"}, "apples"},
		{[]string{"apples", "pears"}, "apples and pears"},
		{[]string{"apples", "pears", "plums"}, "apples, pears, and plums"},
	}
	for _, tc := range cases {
		got, err := f.Format(tc.items)
		if err != nil {
			t.Fatalf("Format(%v): %v", tc.items, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%v): got %q, want %q", tc.items, got, tc.want)
		}
	}
}

func TestFormatManyItems(t *testing.T) {
	f, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	items := make([]string, 40)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	got, err := f.Format(items)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasPrefix(got, "item 0, item 1, ") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, ", and item 39") {
		t.Fatalf("unexpected suffix: %q", got)
	}
	if n := strings.Count(got, "item "); n != len(items) {
		t.Fatalf("expected %d items in output, found %d", len(items), n)
	}
}

func TestFormatGermanList(t *testing.T) {
	f, err := Open(mustLocale(t, "de_DE"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	got, err := f.Format([]string{"Äpfel", "Birnen", "Pflaumen"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "Äpfel, Birnen und Pflaumen" {
		t.Fatalf("Format: got %q", got)
	}
}

func TestUseAfterClose(t *testing.T) {
	f, err := Open(mustLocale(t, "en_US"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := f.Format([]string{"a"}); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Format after Close: expected ErrClosed, got %v", err)
	}
}
