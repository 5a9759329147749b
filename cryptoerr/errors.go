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

// Package cryptoerr defines the closed error taxonomy shared by every
// package in this module.
package cryptoerr

import "errors"

var (
	// ErrInvalidKeyLen is returned when a supplied key length mismatches
	// the cipher's required key size.
	ErrInvalidKeyLen = errors.New("cryptoedu: invalid key length")

	// ErrInvalidDataLen is returned when a supplied block, IV, or nonce
	// length mismatches the required length.
	ErrInvalidDataLen = errors.New("cryptoedu: invalid data length")

	// ErrIncorrectMac is returned by Verify when the computed MAC does
	// not match the supplied signature.
	ErrIncorrectMac = errors.New("cryptoedu: incorrect MAC")
)
