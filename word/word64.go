package word

import (
	"math/bits"

	"github.com/wedkarz02/cryptoedu/bytesutil"
)

// Word64 is the 64 bit Word implementation used by SHA-384, SHA-512,
// SHA-512/224, and SHA-512/256.
type Word64 uint64

// NewWord64 reads a big-endian Word64 from the first 8 bytes of b.
func NewWord64(b []byte) Word {
	return Word64(bytesutil.Uint64(b))
}

func (w Word64) And(o Word) Word { return w & o.(Word64) }
func (w Word64) Xor(o Word) Word { return w ^ o.(Word64) }
func (w Word64) Not() Word       { return ^w }
func (w Word64) Add(o Word) Word { return w + o.(Word64) }

func (w Word64) BigSigma0() Word {
	x := uint64(w)
	return Word64(bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39))
}

func (w Word64) BigSigma1() Word {
	x := uint64(w)
	return Word64(bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41))
}

func (w Word64) SmallSigma0() Word {
	x := uint64(w)
	return Word64(bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7))
}

func (w Word64) SmallSigma1() Word {
	x := uint64(w)
	return Word64(bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6))
}

func (w Word64) PutBytes(b []byte) {
	bytesutil.PutUint64(b, uint64(w))
}
