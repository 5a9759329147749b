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

package cipher

import (
	"github.com/wedkarz02/cryptoedu/aeskey"
	"github.com/wedkarz02/cryptoedu/consts"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	g "github.com/wedkarz02/cryptoedu/galois"
	"github.com/wedkarz02/cryptoedu/sbox"
)

// mixColumnsMatrix and invMixColumnsMatrix are the fixed GF(2^8) matrices
// used by MixColumns / InvMixColumns.
//
// https://en.wikipedia.org/wiki/Rijndael_MixColumns
var mixColumnsMatrix = [4][4]byte{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

var invMixColumnsMatrix = [4][4]byte{
	{0x0e, 0x0b, 0x0d, 0x09},
	{0x09, 0x0e, 0x0b, 0x0d},
	{0x0d, 0x09, 0x0e, 0x0b},
	{0x0b, 0x0d, 0x09, 0x0e},
}

// AES128 implements the BlockCipher contract for AES-128. Only the
// expanded round-key schedule is retained past construction; the raw
// key is not kept on the struct.
type AES128 struct {
	expandedKey *aeskey.ExpandedKey
	sb          *sbox.SBOX
	invSb       *sbox.SBOX
}

// NewAES128 initializes a new AES-128 cipher and computes its round
// keys. It fails with cryptoerr.ErrInvalidKeyLen when key is not
// exactly consts.KEY_SIZE bytes.
func NewAES128(key []byte) (*AES128, error) {
	if len(key) != consts.KEY_SIZE {
		return nil, cryptoerr.ErrInvalidKeyLen
	}

	xKey, err := aeskey.ExpandKey(key)
	if err != nil {
		return nil, err
	}

	sb := sbox.InitSBOX()
	return &AES128{
		expandedKey: xKey,
		sb:          sb,
		invSb:       sbox.InitInvSBOX(sb),
	}, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (a *AES128) BlockSize() int {
	return consts.BLOCK_SIZE
}

// Encrypt enciphers exactly one 16 byte block.
func (a *AES128) Encrypt(block []byte) ([]byte, error) {
	if len(block) != consts.BLOCK_SIZE {
		return nil, cryptoerr.ErrInvalidDataLen
	}
	return a.EncryptBlock(block), nil
}

// Decrypt deciphers exactly one 16 byte block.
func (a *AES128) Decrypt(block []byte) ([]byte, error) {
	if len(block) != consts.BLOCK_SIZE {
		return nil, cryptoerr.ErrInvalidDataLen
	}
	return a.DecryptBlock(block), nil
}

// subBytes substitutes every byte of state with its corresponding byte
// from the S-box.
func (a *AES128) subBytes(state []byte) {
	for i := range state {
		state[i] = a.sb[state[i]]
	}
}

// invSubBytes undoes subBytes.
func (a *AES128) invSubBytes(state []byte) {
	for i := range state {
		state[i] = a.invSb[state[i]]
	}
}

// shiftRows left-rotates row i by i positions, for i in {1,2,3}, using
// the column-major state layout (byte r+4c is row r, column c).
func shiftRows(state []byte) []byte {
	shifted := make([]byte, len(state))
	copy(shifted, state)

	for i := 1; i < 4; i++ {
		for j := 0; j < 4; j++ {
			shifted[i+4*j] = state[i+4*((j+i)%4)]
		}
	}

	return shifted
}

// invShiftRows undoes shiftRows.
func invShiftRows(state []byte) []byte {
	shifted := make([]byte, len(state))
	copy(shifted, state)

	for i := 1; i < 4; i++ {
		j := 4 - i
		for k := 0; k < 4; k++ {
			shifted[i+4*k] = state[i+4*((j+k)%4)]
		}
	}

	return shifted
}

// mixColumns multiplies each column of state by matrix in GF(2^8).
//
// https://en.wikipedia.org/wiki/Rijndael_MixColumns
func mixColumns(state []byte, matrix [4][4]byte) []byte {
	mixed := make([]byte, len(state))

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			mixed[4*c+r] = g.Gadd(g.Gadd(
				g.Gmul(matrix[r][0], state[4*c+0]),
				g.Gmul(matrix[r][1], state[4*c+1])),
				g.Gadd(
					g.Gmul(matrix[r][2], state[4*c+2]),
					g.Gmul(matrix[r][3], state[4*c+3])))
		}
	}

	return mixed
}

// addRoundKey XORs state with round roundIdx of the key schedule.
func (a *AES128) addRoundKey(state []byte, roundIdx int) []byte {
	roundKey := a.expandedKey[roundIdx*consts.BLOCK_SIZE : (roundIdx+1)*consts.BLOCK_SIZE]

	newState := make([]byte, len(state))
	for i, b := range state {
		newState[i] = g.Gadd(b, roundKey[i])
	}

	return newState
}

// EncryptBlock performs AES-128 encryption of exactly one 16 byte
// block. It assumes a valid block size; callers that cannot guarantee
// this should go through Encrypt instead.
func (a *AES128) EncryptBlock(block []byte) []byte {
	state := a.addRoundKey(block, 0)

	for roundIdx := 1; roundIdx < consts.NR; roundIdx++ {
		a.subBytes(state)
		state = shiftRows(state)
		state = mixColumns(state, mixColumnsMatrix)
		state = a.addRoundKey(state, roundIdx)
	}

	a.subBytes(state)
	state = shiftRows(state)
	state = a.addRoundKey(state, consts.NR)

	return state
}

// DecryptBlock performs AES-128 decryption of exactly one 16 byte
// block. It assumes a valid block size; callers that cannot guarantee
// this should go through Decrypt instead.
func (a *AES128) DecryptBlock(block []byte) []byte {
	state := a.addRoundKey(block, consts.NR)

	for roundIdx := consts.NR - 1; roundIdx > 0; roundIdx-- {
		state = invShiftRows(state)
		a.invSubBytes(state)
		state = a.addRoundKey(state, roundIdx)
		state = mixColumns(state, invMixColumnsMatrix)
	}

	state = invShiftRows(state)
	a.invSubBytes(state)
	state = a.addRoundKey(state, 0)

	return state
}
