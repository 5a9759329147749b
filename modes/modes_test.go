package modes_test

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/modes"
	"github.com/wedkarz02/cryptoedu/testvec"
)

var aesKey = testvec.DecodeHex("000102030405060708090a0b0c0d0e0f")

func newAES(t *testing.T) cipher.BlockCipher {
	t.Helper()
	c, err := cipher.NewAES128(aesKey)
	if err != nil {
		t.Fatalf("NewAES128: %v", err)
	}
	return c
}

func TestECBRoundTrip(t *testing.T) {
	c := newAES(t)
	plainText := []byte("this message spans more than one block of AES")

	cipherText, err := modes.EncryptECB(plainText, c)
	if err != nil {
		t.Fatalf("EncryptECB: %v", err)
	}
	if len(cipherText)%c.BlockSize() != 0 {
		t.Fatalf("cipherText length %d not a multiple of block size", len(cipherText))
	}

	got, err := modes.DecryptECB(cipherText, c)
	if err != nil {
		t.Fatalf("DecryptECB: %v", err)
	}
	if !bytes.Equal(got, plainText) {
		t.Fatalf("DecryptECB = %q, want %q", got, plainText)
	}
}

func TestECBIdenticalBlocksLeak(t *testing.T) {
	c := newAES(t)
	block := bytes.Repeat([]byte{0x42}, 16)
	plainText := append(append([]byte{}, block...), block...)

	cipherText, err := modes.EncryptECB(plainText, c)
	if err != nil {
		t.Fatalf("EncryptECB: %v", err)
	}

	if !bytes.Equal(cipherText[:16], cipherText[16:32]) {
		t.Fatalf("ECB should encrypt identical plaintext blocks to identical ciphertext blocks")
	}
}

func TestCBCRoundTrip(t *testing.T) {
	c := newAES(t)
	iv := testvec.DecodeHex("000102030405060708090a0b0c0d0e0f")
	plainText := []byte("this message also spans more than one AES block")

	cipherText, err := modes.EncryptCBC(plainText, iv, c)
	if err != nil {
		t.Fatalf("EncryptCBC: %v", err)
	}

	got, err := modes.DecryptCBC(cipherText, iv, c)
	if err != nil {
		t.Fatalf("DecryptCBC: %v", err)
	}
	if !bytes.Equal(got, plainText) {
		t.Fatalf("DecryptCBC = %q, want %q", got, plainText)
	}
}

func TestCBCHidesRepeatedBlocks(t *testing.T) {
	c := newAES(t)
	iv := make([]byte, 16)
	block := bytes.Repeat([]byte{0x42}, 16)
	plainText := append(append([]byte{}, block...), block...)

	cipherText, err := modes.EncryptCBC(plainText, iv, c)
	if err != nil {
		t.Fatalf("EncryptCBC: %v", err)
	}

	if bytes.Equal(cipherText[:16], cipherText[16:32]) {
		t.Fatalf("CBC must not encrypt identical plaintext blocks to identical ciphertext blocks")
	}
}

func TestCBCWrongIVLen(t *testing.T) {
	c := newAES(t)
	if _, err := modes.EncryptCBC([]byte("hi"), make([]byte, 4), c); err == nil {
		t.Fatalf("EncryptCBC with wrong IV length should fail")
	}
}

func TestCTRRoundTrip(t *testing.T) {
	c := newAES(t)
	nonce := make([]byte, c.BlockSize()/2)
	plainText := []byte("CTR mode turns a block cipher into a stream cipher")

	cipherText, err := modes.EncryptCTR(plainText, nonce, c)
	if err != nil {
		t.Fatalf("EncryptCTR: %v", err)
	}
	if len(cipherText) != len(plainText) {
		t.Fatalf("CTR must not pad: got %d bytes, want %d", len(cipherText), len(plainText))
	}

	got, err := modes.DecryptCTR(cipherText, nonce, c)
	if err != nil {
		t.Fatalf("DecryptCTR: %v", err)
	}
	if !bytes.Equal(got, plainText) {
		t.Fatalf("DecryptCTR = %q, want %q", got, plainText)
	}
}

func TestCTREmptyInput(t *testing.T) {
	c := newAES(t)
	nonce := make([]byte, c.BlockSize()/2)

	out, err := modes.EncryptCTR(nil, nonce, c)
	if err != nil {
		t.Fatalf("EncryptCTR: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("EncryptCTR of empty input = %x, want empty", out)
	}
}
