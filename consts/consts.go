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

// Package consts defines constant values used by the AES-128 implementation.
package consts

const (
	// Size of the AES block, in bytes.
	BLOCK_SIZE = 16

	// Size of the AES-128 key, in bytes.
	KEY_SIZE = 16

	// Size of a key-schedule word, in bytes.
	WORD_SIZE = 4

	// Number of 32 bit words in the key (Nk).
	NK = 4

	// Number of AES-128 rounds (Nr).
	NR = 10

	// Number of derived round keys needed (Nr + 1).
	ROUND_KEYS = NR + 1

	// Total size of the expanded key, in bytes.
	EXP_KEY_SIZE = BLOCK_SIZE * ROUND_KEYS
)
