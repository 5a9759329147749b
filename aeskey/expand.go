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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package aeskey implements the AES-128 key schedule.
package aeskey

import (
	"github.com/wedkarz02/cryptoedu/consts"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/galois"
	"github.com/wedkarz02/cryptoedu/sbox"
)

// ExpandedKey holds the concatenated round keys: ROUND_KEYS blocks of
// BLOCK_SIZE bytes each.
type ExpandedKey [consts.EXP_KEY_SIZE]byte

// Rcon returns the idx-th round constant (powers of two in GF(2^8)).
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1

	for idx != 1 {
		rcon = galois.Gmul(rcon, 2)
		idx--
	}

	return rcon
}

func rotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var rotated [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WORD_SIZE-1] = word[0]
	return rotated
}

func subWord(word [consts.WORD_SIZE]byte, sb *sbox.SBOX) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE; i++ {
		subw[i] = sb[word[i]]
	}

	return subw
}

// scheduleCore applies RotWord, SubWord, and the round constant XOR to
// the last word of the previous round key, as in the AES-128 key
// schedule recurrence (once per 16 byte round key, since Nk == 4).
func scheduleCore(word [consts.WORD_SIZE]byte, idx byte, sb *sbox.SBOX) [consts.WORD_SIZE]byte {
	word = rotWord(word)
	word = subWord(word, sb)
	word[0] ^= Rcon(idx)
	return word
}

// ExpandKey derives the AES-128 round-key schedule from a 16 byte key.
//
// https://en.wikipedia.org/wiki/AES_key_schedule
func ExpandKey(k []byte) (*ExpandedKey, error) {
	if len(k) != consts.KEY_SIZE {
		return nil, cryptoerr.ErrInvalidKeyLen
	}

	var xKey ExpandedKey
	copy(xKey[:], k)

	sb := sbox.InitSBOX()
	var tmpKey [consts.WORD_SIZE]byte
	var c int = consts.KEY_SIZE
	var idx byte = 1

	for c < consts.EXP_KEY_SIZE {
		for a := 0; a < consts.WORD_SIZE; a++ {
			tmpKey[a] = xKey[a+c-consts.WORD_SIZE]
		}

		if c%consts.KEY_SIZE == 0 {
			tmpKey = scheduleCore(tmpKey, idx, sb)
			idx++
		}

		for a := 0; a < consts.WORD_SIZE; a++ {
			xKey[c] = xKey[c-consts.KEY_SIZE] ^ tmpKey[a]
			c++
		}
	}

	return &xKey, nil
}
