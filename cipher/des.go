package cipher

import (
	"github.com/wedkarz02/cryptoedu/bytesutil"
	"github.com/wedkarz02/cryptoedu/cipher/destables"
	"github.com/wedkarz02/cryptoedu/cryptoerr"
)

// DES implements the BlockCipher contract for the Data Encryption
// Standard. Blocks are treated as 64 bit big-endian integers; the
// algorithm is expressed as bit permutations on that integer plus
// S-box lookups, following FIPS 46-3.
type DES struct {
	// subkeys holds the 16 round keys, 48 bits each, right-aligned in
	// 6 bytes.
	subkeys [16][6]byte
}

// NewDES initializes a new DES cipher and computes its 16 round keys.
// It fails with cryptoerr.ErrInvalidKeyLen when key is not exactly
// destables.KeySize bytes.
func NewDES(key []byte) (*DES, error) {
	if len(key) != destables.KeySize {
		return nil, cryptoerr.ErrInvalidKeyLen
	}

	return &DES{subkeys: keySchedule(key)}, nil
}

// BlockSize returns the DES block size, 8 bytes.
func (d *DES) BlockSize() int {
	return destables.BlockSize
}

// Encrypt enciphers exactly one 8 byte block.
func (d *DES) Encrypt(block []byte) ([]byte, error) {
	if len(block) != destables.BlockSize {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	out := desCrypt(block, d.subkeys)
	return out[:], nil
}

// Decrypt deciphers exactly one 8 byte block. Subkeys are applied in
// reverse order; everything else is identical to Encrypt.
func (d *DES) Decrypt(block []byte) ([]byte, error) {
	if len(block) != destables.BlockSize {
		return nil, cryptoerr.ErrInvalidDataLen
	}

	var reversed [16][6]byte
	for i := 0; i < 16; i++ {
		reversed[i] = d.subkeys[15-i]
	}

	out := desCrypt(block, reversed)
	return out[:], nil
}

// permute applies permutation table p (1-based bit positions, counted
// from the most significant bit of a width-bit field) to chunk,
// producing a len(p) bit result packed into the low bits of the
// return value.
func permute(chunk uint64, p []byte, width byte) uint64 {
	var out uint64
	n := len(p)

	for i, pos := range p {
		bit := (chunk >> (width - pos)) & 1
		out |= bit << uint(n-i-1)
	}

	return out
}

func rotateLeft28(n uint64, shift byte) uint64 {
	const mask = 0x0FFFFFFF
	return (n<<shift | n>>(28-shift)) & mask
}

// keySchedule derives the 16 DES round keys via PC-1, the per-round
// 28 bit half rotations, and PC-2.
func keySchedule(key []byte) [16][6]byte {
	k := bytesutil.Uint64(key)
	k = permute(k, destables.PC1[:], 64)

	left := (k >> 28) & 0x0FFFFFFF
	right := k & 0x0FFFFFFF

	var subkeys [16][6]byte
	for i := 0; i < 16; i++ {
		left = rotateLeft28(left, destables.Shifts[i])
		right = rotateLeft28(right, destables.Shifts[i])

		combined := left<<28 | right
		sub := permute(combined, destables.PC2[:], 56)

		var buf [8]byte
		bytesutil.PutUint64(buf[:], sub)
		copy(subkeys[i][:], buf[2:])
	}

	return subkeys
}

// feistelFunction computes f(R, K): expand R via E, XOR with the round
// key, split into eight 6 bit pieces, substitute each through its
// S-box, and permute the concatenated result through P.
func feistelFunction(word uint32, key [6]byte) uint32 {
	expanded := permute(uint64(word), destables.E[:], 32)

	var keyBuf [8]byte
	copy(keyBuf[2:], key[:])
	xored := expanded ^ bytesutil.Uint64(keyBuf[:])

	var result uint64
	for i := 0; i < 8; i++ {
		piece := (xored >> uint(42-6*i)) & 0x3F
		row := (piece&0x20)>>4 | (piece & 0x01)
		col := (piece >> 1) & 0x0F
		result |= uint64(destables.SBoxes[i][row][col]) << uint(28-4*i)
	}

	result = permute(result, destables.P[:], 32)
	return uint32(result)
}

func feistelRound(state uint64, key [6]byte) uint64 {
	left := uint32(state >> 32)
	right := uint32(state & 0xFFFFFFFF)
	left ^= feistelFunction(right, key)
	return uint64(right)<<32 | uint64(left)
}

// desCrypt runs the 16 round Feistel network with the given subkeys,
// used for both encryption and decryption (decryption passes the
// subkeys in reverse).
func desCrypt(block []byte, subkeys [16][6]byte) [8]byte {
	state := bytesutil.Uint64(block)

	state = permute(state, destables.IP[:], 64)

	for i := 0; i < 16; i++ {
		state = feistelRound(state, subkeys[i])
	}

	// One more swap undoes the last round's internal swap, restoring
	// the ordering FP expects.
	state = (state << 32) | (state >> 32)

	state = permute(state, destables.FP[:], 64)

	var out [8]byte
	bytesutil.PutUint64(out[:], state)
	return out
}
