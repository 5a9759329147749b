package hash_test

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptoedu/hash"
	"github.com/wedkarz02/cryptoedu/testvec"
)

func digestOf(h hash.Hash, data []byte) []byte {
	h.Update(data)
	return h.Digest()
}

func TestSha224ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7")
	got := digestOf(hash.NewSha224(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha224(abc) = %x, want %x", got, want)
	}
}

func TestSha256ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	got := digestOf(hash.NewSha256(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha256(abc) = %x, want %x", got, want)
	}
}

func TestSha384ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7")
	got := digestOf(hash.NewSha384(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha384(abc) = %x, want %x", got, want)
	}
}

func TestSha512ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f")
	got := digestOf(hash.NewSha512(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha512(abc) = %x, want %x", got, want)
	}
}

func TestSha512_224ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa")
	got := digestOf(hash.NewSha512_224(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha512_224(abc) = %x, want %x", got, want)
	}
}

func TestSha512_256ShortMessage(t *testing.T) {
	want := testvec.DecodeHex("53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23")
	got := digestOf(hash.NewSha512_256(), []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha512_256(abc) = %x, want %x", got, want)
	}
}

// longMessage returns the same 4500 byte message the original test
// vectors were computed against: byte i holds i mod 256.
func longMessage() []byte {
	msg := make([]byte, 4500)
	for i := range msg {
		msg[i] = byte(i)
	}
	return msg
}

func TestSha256LongMessageStreamed(t *testing.T) {
	want := testvec.DecodeHex("e4c274a735996fe7c2d552936358e2e9b7c60c6fa6201bdf54bcb026772a4f33")

	h := hash.NewSha256()
	msg := longMessage()
	for len(msg) > 700 {
		h.Update(msg[:700])
		msg = msg[700:]
	}
	h.Update(msg)

	got := h.Digest()
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha256(long message, streamed) = %x, want %x", got, want)
	}
}

func TestSha512LongMessageStreamed(t *testing.T) {
	want := testvec.DecodeHex("cb4879ea297dfe0f9073dc5824ad4681d28cbc9c2a996c0ccabfaa9dc07ba3288eae8acde3e6779d7fa50701c3af7401df4b74dd88f42879101006c854385692")

	h := hash.NewSha512()
	msg := longMessage()
	for len(msg) > 700 {
		h.Update(msg[:700])
		msg = msg[700:]
	}
	h.Update(msg)

	got := h.Digest()
	if !bytes.Equal(got, want) {
		t.Fatalf("Sha512(long message, streamed) = %x, want %x", got, want)
	}
}

func TestDigestResetsState(t *testing.T) {
	h := hash.NewSha256()
	first := digestOf(h, []byte("abc"))
	second := digestOf(h, []byte("abc"))

	if !bytes.Equal(first, second) {
		t.Fatalf("Digest should reset state: first = %x, second = %x", first, second)
	}
}

func TestDigestSizes(t *testing.T) {
	cases := []struct {
		name string
		h    hash.Hash
		size int
	}{
		{"sha224", hash.NewSha224(), 28},
		{"sha256", hash.NewSha256(), 32},
		{"sha384", hash.NewSha384(), 48},
		{"sha512", hash.NewSha512(), 64},
		{"sha512_224", hash.NewSha512_224(), 28},
		{"sha512_256", hash.NewSha512_256(), 32},
	}

	for _, c := range cases {
		if c.h.Size() != c.size {
			t.Errorf("%s.Size() = %d, want %d", c.name, c.h.Size(), c.size)
		}
		if got := len(digestOf(c.h, []byte("abc"))); got != c.size {
			t.Errorf("len(%s.Digest()) = %d, want %d", c.name, got, c.size)
		}
	}
}
