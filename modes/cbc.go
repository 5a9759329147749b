package modes

import (
	"github.com/wedkarz02/cryptoedu/bytesutil"
	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/padding"
)

// EncryptCBC pads plainText with PKCS#7 and chains blocks by XORing each
// plaintext block with the previous ciphertext block (or iv, for the
// first block) before encrypting it.
//
// https://en.wikipedia.org/wiki/Block_cipher_mode_of_operation#Cipher_block_chaining_(CBC)
func EncryptCBC(plainText, iv []byte, c cipher.BlockCipher) ([]byte, error) {
	blockSize := c.BlockSize()
	if len(iv) != blockSize {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	padded := padding.Pad(plainText, blockSize)
	cipherText := make([]byte, 0, len(padded))
	prev := iv

	for i := 0; i < len(padded); i += blockSize {
		mixed := bytesutil.XorBlocks(padded[i:i+blockSize], prev)
		block, err := c.Encrypt(mixed)
		if err != nil {
			return nil, err
		}
		cipherText = append(cipherText, block...)
		prev = block
	}

	return cipherText, nil
}

// DecryptCBC is the inverse of EncryptCBC, followed by PKCS#7 unpadding.
func DecryptCBC(cipherText, iv []byte, c cipher.BlockCipher) ([]byte, error) {
	blockSize := c.BlockSize()
	if len(iv) != blockSize {
		return nil, cryptoerr.ErrInvalidDataLen
	}
	if len(cipherText)%blockSize != 0 || len(cipherText) == 0 {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	padded := make([]byte, 0, len(cipherText))
	prev := iv

	for i := 0; i < len(cipherText); i += blockSize {
		curr := cipherText[i : i+blockSize]
		decrypted, err := c.Decrypt(curr)
		if err != nil {
			return nil, err
		}
		padded = append(padded, bytesutil.XorBlocks(decrypted, prev)...)
		prev = curr
	}

	return padding.Unpad(padded, blockSize)
}
