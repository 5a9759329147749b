// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package modes implements the ECB, CBC, and CTR block-cipher modes of
// operation, each driving an arbitrary cipher.BlockCipher.
package modes

import (
	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/padding"
)

// EncryptECB pads plainText with PKCS#7 and encrypts it one block at a
// time, independently.
//
// https://en.wikipedia.org/wiki/Block_cipher_mode_of_operation#Electronic_codebook_(ECB)
func EncryptECB(plainText []byte, c cipher.BlockCipher) ([]byte, error) {
	blockSize := c.BlockSize()
	padded := padding.Pad(plainText, blockSize)
	cipherText := make([]byte, 0, len(padded))

	for i := 0; i < len(padded); i += blockSize {
		block, err := c.Encrypt(padded[i : i+blockSize])
		if err != nil {
			return nil, err
		}
		cipherText = append(cipherText, block...)
	}

	return cipherText, nil
}

// DecryptECB is the inverse of EncryptECB, followed by PKCS#7 unpadding.
func DecryptECB(cipherText []byte, c cipher.BlockCipher) ([]byte, error) {
	blockSize := c.BlockSize()
	if len(cipherText)%blockSize != 0 {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	padded := make([]byte, 0, len(cipherText))
	for i := 0; i < len(cipherText); i += blockSize {
		block, err := c.Decrypt(cipherText[i : i+blockSize])
		if err != nil {
			return nil, err
		}
		padded = append(padded, block...)
	}

	return padding.Unpad(padded, blockSize)
}
