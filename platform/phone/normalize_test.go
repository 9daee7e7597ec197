package phone

import "testing"

func TestNormalizeDigitsStripsFormatting(t *testing.T) {
	got := NormalizeDigits("+55 (11) 98765-4321")
	if got != "5511987654321" {
		t.Fatalf("expected 5511987654321, got %q", got)
	}
}

func TestNormalizeDigitsAssumesDefaultRegion(t *testing.T) {
	got := NormalizeDigits("(11) 98765-4321")
	if got != "5511987654321" {
		t.Fatalf("expected default region country code to be applied, got %q", got)
	}
}

func TestNormalizeDigitsFallsBackOnGarbage(t *testing.T) {
	got := NormalizeDigits("ext. 12-34")
	if got != "1234" {
		t.Fatalf("expected non-digits stripped, got %q", got)
	}
}

func TestNormalizeDigitsEmpty(t *testing.T) {
	if got := NormalizeDigits("   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
