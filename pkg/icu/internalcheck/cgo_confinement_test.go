package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The public packages must stay free of cgo: the native boundary is confined
// to internal/bindings so that every other package remains pure Go and
// testable without the native library.
func TestCGOConfinedToBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedImports | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/goicu/icu4c-go/pkg/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for importPath := range pkg.Imports {
			if importPath == "runtime/cgo" {
				findings = append(findings, fmt.Sprintf("%s: imports cgo; native calls belong in internal/bindings", pkg.PkgPath))
			}
		}
		for _, file := range pkg.GoFiles {
			if strings.HasSuffix(file, ".cgo1.go") {
				findings = append(findings, fmt.Sprintf("%s: contains cgo-generated file %s", pkg.PkgPath, file))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo confinement violation:\n%s", strings.Join(findings, "\n"))
	}
}
