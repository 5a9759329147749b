package word

import (
	"math/bits"

	"github.com/wedkarz02/cryptoedu/bytesutil"
)

// Word32 is the 32 bit Word implementation used by SHA-224 and SHA-256.
type Word32 uint32

// NewWord32 reads a big-endian Word32 from the first 4 bytes of b.
func NewWord32(b []byte) Word {
	return Word32(bytesutil.Uint32(b))
}

func (w Word32) And(o Word) Word { return w & o.(Word32) }
func (w Word32) Xor(o Word) Word { return w ^ o.(Word32) }
func (w Word32) Not() Word       { return ^w }
func (w Word32) Add(o Word) Word { return w + o.(Word32) }

func (w Word32) BigSigma0() Word {
	x := uint32(w)
	return Word32(bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22))
}

func (w Word32) BigSigma1() Word {
	x := uint32(w)
	return Word32(bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25))
}

func (w Word32) SmallSigma0() Word {
	x := uint32(w)
	return Word32(bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3))
}

func (w Word32) SmallSigma1() Word {
	x := uint32(w)
	return Word32(bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10))
}

func (w Word32) PutBytes(b []byte) {
	bytesutil.PutUint32(b, uint32(w))
}
