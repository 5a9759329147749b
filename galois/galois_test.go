package galois_test

import "testing"
import "github.com/wedkarz02/cryptoedu/galois"

func TestGmulIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := galois.Gmul(byte(a), 1); got != byte(a) {
			t.Fatalf("Gmul(%#x, 1) = %#x, want %#x", a, got, a)
		}
		if got := galois.Gmul(byte(a), 0); got != 0 {
			t.Fatalf("Gmul(%#x, 0) = %#x, want 0", a, got)
		}
	}
}

func TestGmulKnownValues(t *testing.T) {
	// 0x57 * 0x83 = 0xc1, the worked example from the Rijndael field
	// arithmetic writeups.
	if got := galois.Gmul(0x57, 0x83); got != 0xc1 {
		t.Fatalf("Gmul(0x57, 0x83) = %#x, want 0xc1", got)
	}
}

func TestGmulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			if galois.Gmul(byte(a), byte(b)) != galois.Gmul(byte(b), byte(a)) {
				t.Fatalf("Gmul not commutative for (%#x, %#x)", a, b)
			}
		}
	}
}

func TestGaddIsItsOwnInverse(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := galois.Gadd(byte(a), byte(a)); got != 0 {
			t.Fatalf("Gadd(%#x, %#x) = %#x, want 0", a, a, got)
		}
	}
}
