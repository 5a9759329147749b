package modes

import (
	"github.com/wedkarz02/cryptoedu/bytesutil"
	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
)

// EncryptCTR XORs plainText with a keystream built by encrypting
// successive nonce||counter blocks. No padding is applied; len(nonce)
// must be exactly half the cipher's block size, and the counter
// occupies the other half. CTR is its own inverse, so DecryptCTR is
// just EncryptCTR under a different name.
//
// https://en.wikipedia.org/wiki/Block_cipher_mode_of_operation#Counter_(CTR)
func EncryptCTR(plainText, nonce []byte, c cipher.BlockCipher) ([]byte, error) {
	blockSize := c.BlockSize()
	half := blockSize / 2
	if len(nonce) != half {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	out := make([]byte, len(plainText))
	ctr := newCounter(half)

	for i := 0; i < len(plainText); i += blockSize {
		block := make([]byte, blockSize)
		copy(block, nonce)
		copy(block[half:], ctr.bytes)

		keystream, err := c.Encrypt(block)
		if err != nil {
			return nil, err
		}

		end := i + blockSize
		if end > len(plainText) {
			end = len(plainText)
		}
		chunk := bytesutil.XorBlocks(plainText[i:end], keystream[:end-i])
		copy(out[i:end], chunk)

		ctr.increment()
	}

	return out, nil
}

// DecryptCTR decrypts cipherText produced by EncryptCTR with the same
// nonce.
func DecryptCTR(cipherText, nonce []byte, c cipher.BlockCipher) ([]byte, error) {
	return EncryptCTR(cipherText, nonce, c)
}
