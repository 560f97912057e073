//go:build cgo && !windows

package datefmt

import (
	"errors"
	"testing"
	"time"

	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/calendar"
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

func TestPatternFormat(t *testing.T) {
	f, err := OpenPattern("yyyy-MM-dd HH:mm:ss", mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}
	defer f.Close()

	when := time.Date(2023, time.July, 14, 10, 30, 5, 0, time.UTC)
	got, err := f.Format(when)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "2023-07-14 10:30:05" {
		t.Fatalf("Format: got %q", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	f, err := OpenPattern("yyyy-MM-dd HH:mm:ss", mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}
	defer f.Close()

	want := time.Date(2021, time.December, 31, 23, 59, 58, 0, time.UTC)
	text, err := f.Format(want)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	got, err := f.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip: got %v, want %v", got, want)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	f, err := OpenPattern("yyyy-MM-dd", mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}
	defer f.Close()

	if _, err := f.Parse("not a date"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestStyleFormatIsLocalized(t *testing.T) {
	when := time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)

	en, err := Open(Long, None, mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("Open en: %v", err)
	}
	defer en.Close()

	de, err := Open(Long, None, mustLocale(t, "de_DE"), "UTC")
	if err != nil {
		t.Fatalf("Open de: %v", err)
	}
	defer de.Close()

	enOut, err := en.Format(when)
	if err != nil {
		t.Fatalf("Format en: %v", err)
	}
	deOut, err := de.Format(when)
	if err != nil {
		t.Fatalf("Format de: %v", err)
	}
	if enOut != "July 14, 2023" {
		t.Fatalf("en long date: got %q", enOut)
	}
	if deOut != "14. Juli 2023" {
		t.Fatalf("de long date: got %q", deOut)
	}
}

func TestPatternInspection(t *testing.T) {
	f, err := OpenPattern("yyyy-MM-dd", mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}
	defer f.Close()

	pat, err := f.Pattern()
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if pat != "yyyy-MM-dd" {
		t.Fatalf("Pattern: got %q", pat)
	}
}

func TestFormatCalendarMatchesFormat(t *testing.T) {
	loc := mustLocale(t, "en_US")
	f, err := OpenPattern("yyyy-MM-dd HH:mm", loc, "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}
	defer f.Close()

	cal, err := calendar.Open("UTC", loc, calendar.Gregorian)
	if err != nil {
		t.Fatalf("calendar.Open: %v", err)
	}
	defer cal.Close()

	when := time.Date(2022, time.May, 1, 9, 15, 0, 0, time.UTC)
	if err := cal.SetTime(when); err != nil {
		t.Fatalf("SetTime: %v", err)
	}

	direct, err := f.Format(when)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	viaCal, err := f.FormatCalendar(cal)
	if err != nil {
		t.Fatalf("FormatCalendar: %v", err)
	}
	if direct != viaCal {
		t.Fatalf("FormatCalendar disagrees: %q vs %q", viaCal, direct)
	}
}

func TestCloneAndUseAfterClose(t *testing.T) {
	f, err := OpenPattern("yyyy-MM-dd", mustLocale(t, "en_US"), "UTC")
	if err != nil {
		t.Fatalf("OpenPattern: %v", err)
	}

	dup, err := f.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer dup.Close()

	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := f.Format(time.Now()); !errors.Is(err, icu.ErrClosed) {
		t.Fatalf("Format after Close: expected ErrClosed, got %v", err)
	}

	// The clone survives the original's Close.
	if _, err := dup.Format(time.Now()); err != nil {
		t.Fatalf("clone Format after original Close: %v", err)
	}
}
