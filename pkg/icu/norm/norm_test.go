//go:build cgo && !windows

package norm

import (
	"testing"

	xnorm "golang.org/x/text/unicode/norm"
)

const (
	composedE   = "é"  // é as a single code point
	decomposedE = "é" // e + combining acute
)

func TestNFCComposes(t *testing.T) {
	n, err := Get(NFC)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	got, err := n.Normalize(decomposedE)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != composedE {
		t.Fatalf("NFC: got %q", got)
	}
}

func TestNFDDecomposes(t *testing.T) {
	n, err := Get(NFD)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	got, err := n.Normalize(composedE)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != decomposedE {
		t.Fatalf("NFD: got %q", got)
	}
}

func TestNFKCFoldsCompatibility(t *testing.T) {
	n, err := Get(NFKC)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// U+FB01 LATIN SMALL LIGATURE FI decomposes under compatibility forms.
	got, err := n.Normalize("ﬁ")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "fi" {
		t.Fatalf("NFKC: got %q", got)
	}
}

func TestIsNormalized(t *testing.T) {
	n, err := Get(NFC)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if ok, err := n.IsNormalized(composedE); err != nil || !ok {
		t.Fatalf("composed text should be NFC: ok=%v err=%v", ok, err)
	}
	if ok, err := n.IsNormalized(decomposedE); err != nil || ok {
		t.Fatalf("decomposed text should not be NFC: ok=%v err=%v", ok, err)
	}
}

func TestComposePair(t *testing.T) {
	n, err := Get(NFC)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	r, err := n.ComposePair('e', 0x0301)
	if err != nil {
		t.Fatalf("ComposePair: %v", err)
	}
	if r != 0x00e9 {
		t.Fatalf("ComposePair: got %U", r)
	}

	r, err = n.ComposePair('x', 'y')
	if err != nil {
		t.Fatalf("ComposePair: %v", err)
	}
	if r != -1 {
		t.Fatalf("non-composing pair: got %U", r)
	}
}

// Cross-check against the x/text implementation over a grab bag of inputs.
func TestAgreesWithXText(t *testing.T) {
	inputs := []string{
		"ångström",
		composedE + "clair",
		"ﬁle",
		"가각갂",
		"plain ascii",
	}

	forms := []struct {
		ours   Form
		theirs xnorm.Form
	}{
		{NFC, xnorm.NFC},
		{NFD, xnorm.NFD},
		{NFKC, xnorm.NFKC},
		{NFKD, xnorm.NFKD},
	}

	for _, f := range forms {
		n, err := Get(f.ours)
		if err != nil {
			t.Fatalf("Get(%v): %v", f.ours, err)
		}
		for _, in := range inputs {
			got, err := n.Normalize(in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", in, err)
			}
			if want := f.theirs.String(in); got != want {
				t.Fatalf("form %v of %q: got %q, want %q", f.ours, in, got, want)
			}
		}
	}
}
