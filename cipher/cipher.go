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

// Package cipher implements the block ciphers exposed by this module
// (AES-128 and DES) behind a single BlockCipher contract, so that the
// modes package can drive either one generically.
package cipher

// BlockCipher is a keyed, invertible permutation on fixed-size byte
// blocks. Encrypt and Decrypt operate on exactly one block; callers that
// need to process arbitrary-length data should use the modes package.
type BlockCipher interface {
	// BlockSize returns the cipher's fixed block size in bytes.
	BlockSize() int

	// Encrypt enciphers exactly one block. It returns
	// cryptoerr.ErrInvalidDataLen if len(block) != BlockSize().
	Encrypt(block []byte) ([]byte, error)

	// Decrypt deciphers exactly one block. It returns
	// cryptoerr.ErrInvalidDataLen if len(block) != BlockSize().
	Decrypt(block []byte) ([]byte, error)
}
