package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/goicu/icu4c-go/pkg/icu"
	"github.com/goicu/icu4c-go/pkg/icu/collate"
	"github.com/goicu/icu4c-go/pkg/icu/datefmt"
	"github.com/goicu/icu4c-go/pkg/icu/locale"
)

func main() {
	log.Printf("icu4c-go version: %s", icu.WrapperVersion())

	if !icu.Available() {
		fmt.Println("native ICU library not linked into this binary")
		return
	}
	log.Printf("ICU %s (Unicode %s)", icu.ICUVersion(), icu.UnicodeVersion())

	loc := locale.Default()
	log.Printf("default locale: %s", loc)

	avail, err := collate.AvailableLocales()
	if err != nil {
		if errors.Is(err, icu.ErrCGONotEnabled) || errors.Is(err, icu.ErrNotBuilt) {
			fmt.Printf("library unavailable: %v\n", err)
			return
		}
		log.Fatalf("listing collation locales: %v", err)
	}
	defer func() {
		if cerr := avail.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	n, err := avail.Count()
	if err != nil {
		log.Fatalf("counting collation locales: %v", err)
	}
	fmt.Printf("%d locales with collation data\n", n)

	f, err := datefmt.Open(datefmt.Long, datefmt.Short, loc, "")
	if err != nil {
		log.Fatalf("opening date formatter: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	out, err := f.Format(time.Now())
	if err != nil {
		log.Fatalf("formatting current time: %v", err)
	}
	fmt.Printf("now: %s\n", out)
}
