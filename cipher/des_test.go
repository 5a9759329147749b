package cipher_test

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/testvec"
)

// Classic textbook DES worked-example vector.
var (
	desKey        = testvec.DecodeHex("133457799BBCDFF1")
	desPlainText  = testvec.DecodeHex("0123456789ABCDEF")
	desCipherText = testvec.DecodeHex("85E813540F0AB405")
)

func TestDESEncryptBlock(t *testing.T) {
	d, err := cipher.NewDES(desKey)
	if err != nil {
		t.Fatalf("NewDES: %v", err)
	}

	out, err := d.Encrypt(desPlainText)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(out, desCipherText) {
		t.Fatalf("Encrypt = %x, want %x", out, desCipherText)
	}
}

func TestDESDecryptBlock(t *testing.T) {
	d, err := cipher.NewDES(desKey)
	if err != nil {
		t.Fatalf("NewDES: %v", err)
	}

	out, err := d.Decrypt(desCipherText)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(out, desPlainText) {
		t.Fatalf("Decrypt = %x, want %x", out, desPlainText)
	}
}

func TestDESRoundTrip(t *testing.T) {
	d, err := cipher.NewDES(desKey)
	if err != nil {
		t.Fatalf("NewDES: %v", err)
	}

	block := testvec.DecodeHex("1122334455667788")
	enc, err := d.Encrypt(block)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	dec, err := d.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(dec, block) {
		t.Fatalf("round trip = %x, want %x", dec, block)
	}
}

func TestDESInvalidKeyLen(t *testing.T) {
	if _, err := cipher.NewDES(make([]byte, 7)); err != cryptoerr.ErrInvalidKeyLen {
		t.Fatalf("NewDES with short key: got %v, want ErrInvalidKeyLen", err)
	}
}

func TestDESInvalidBlockLen(t *testing.T) {
	d, err := cipher.NewDES(desKey)
	if err != nil {
		t.Fatalf("NewDES: %v", err)
	}

	if _, err := d.Encrypt(make([]byte, 7)); err != cryptoerr.ErrInvalidDataLen {
		t.Fatalf("Encrypt with short block: got %v, want ErrInvalidDataLen", err)
	}
}
