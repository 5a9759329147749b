package hmac_test

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/hash"
	"github.com/wedkarz02/cryptoedu/hmac"
	"github.com/wedkarz02/cryptoedu/testvec"
)

func TestHmacSha256Vector(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")
	want := testvec.DecodeHex("f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8")

	mac := hmac.New(func() hash.Hash { return hash.NewSha256() }, key)
	mac.Update(msg)
	got := mac.Finalize()

	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA256(key, msg) = %x, want %x", got, want)
	}
}

func TestHmacVerify(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	mac := hmac.New(func() hash.Hash { return hash.NewSha256() }, key)
	mac.Update(msg)
	sig := mac.Finalize()

	if err := mac.Verify(msg, sig); err != nil {
		t.Fatalf("Verify of a correct signature failed: %v", err)
	}

	if err := mac.Verify([]byte("tampered message"), sig); err != cryptoerr.ErrIncorrectMac {
		t.Fatalf("Verify of a tampered message: got %v, want ErrIncorrectMac", err)
	}

	if err := mac.Verify(msg, append(append([]byte{}, sig...), 0x00)); err != cryptoerr.ErrIncorrectMac {
		t.Fatalf("Verify of a wrong-length signature: got %v, want ErrIncorrectMac", err)
	}
}

func TestHmacKeyLongerThanBlockSize(t *testing.T) {
	longKey := bytes.Repeat([]byte{0x5A}, 200)
	msg := []byte("message")

	mac := hmac.New(func() hash.Hash { return hash.NewSha256() }, longKey)
	mac.Update(msg)
	sig1 := mac.Finalize()

	mac2 := hmac.New(func() hash.Hash { return hash.NewSha256() }, longKey)
	mac2.Update(msg)
	sig2 := mac2.Finalize()

	if !bytes.Equal(sig1, sig2) {
		t.Fatalf("HMAC with a long key should be deterministic")
	}
}
