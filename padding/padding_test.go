package padding_test

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptoedu/padding"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		[]byte("a"),
		[]byte("exactly16bytes!!"),
		[]byte("this is seventeen"),
		bytes.Repeat([]byte{0xAB}, 32),
	}

	for _, data := range cases {
		padded := padding.Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("Pad(%q) length %d not a multiple of 16", data, len(padded))
		}

		got, err := padding.Unpad(padded, 16)
		if err != nil {
			t.Fatalf("Unpad(%x): %v", padded, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("Unpad(Pad(%q)) = %q, want %q", data, got, data)
		}
	}
}

func TestPadFullBlockWhenAligned(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 16)
	padded := padding.Pad(data, 16)

	if len(padded) != 32 {
		t.Fatalf("Pad of block-aligned input: len = %d, want 32 (a full block of padding)", len(padded))
	}
}

func TestUnpadRejectsBadPadding(t *testing.T) {
	cases := [][]byte{
		append(bytes.Repeat([]byte{0x00}, 15), 0x00),          // declared pad length 0
		append(bytes.Repeat([]byte{0x00}, 15), 0x11),          // declared pad length > block size
		append(bytes.Repeat([]byte{0x00}, 14), 0x02, 0x03),    // inconsistent padding bytes
		{},                                                     // empty input
	}

	for _, data := range cases {
		if _, err := padding.Unpad(data, 16); err == nil {
			t.Fatalf("Unpad(%x) should have failed", data)
		}
	}
}

func TestUnpadRejectsUnalignedLength(t *testing.T) {
	if _, err := padding.Unpad(make([]byte, 17), 16); err == nil {
		t.Fatalf("Unpad of a non-block-aligned length should fail")
	}
}
