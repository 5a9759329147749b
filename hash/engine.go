package hash

import (
	"github.com/wedkarz02/cryptoedu/bytesutil"
	"github.com/wedkarz02/cryptoedu/word"
)

// engine is the shared SHA-2 compression core. Every concrete variant
// (Sha224, Sha256, ...) is engine configured with a different word
// width, block size, digest size, round-constant table, and initial
// hash value; the message schedule, compression loop, and
// Merkle-Damgard padding are identical across all of them.
type engine struct {
	blockSize  int
	digestSize int
	wordSize   int
	wLength    int
	k          []word.Word
	iv         []word.Word
	newWord    func([]byte) word.Word

	h       []word.Word
	data    []byte
	pending int
	total   uint64
}

func newEngine(blockSize, digestSize, wordSize, wLength int, k, iv []word.Word, newWord func([]byte) word.Word) *engine {
	e := &engine{
		blockSize:  blockSize,
		digestSize: digestSize,
		wordSize:   wordSize,
		wLength:    wLength,
		k:          k,
		iv:         iv,
		newWord:    newWord,
		data:       make([]byte, blockSize),
	}
	e.Reset()
	return e
}

func (e *engine) Size() int {
	return e.digestSize
}

func (e *engine) Reset() {
	e.h = make([]word.Word, len(e.iv))
	copy(e.h, e.iv)
	e.pending = 0
	e.total = 0
}

// processBlock runs one compression round: builds the 16..wLength word
// message schedule, iterates the eight working variables through
// wLength rounds, and folds the result back into h.
func (e *engine) processBlock(block []byte) {
	w := make([]word.Word, e.wLength)
	for i := 0; i < 16; i++ {
		w[i] = e.newWord(block[i*e.wordSize : (i+1)*e.wordSize])
	}
	for i := 16; i < e.wLength; i++ {
		w[i] = w[i-2].SmallSigma1().Add(w[i-7]).Add(w[i-15].SmallSigma0()).Add(w[i-16])
	}

	v := make([]word.Word, 8)
	copy(v, e.h)

	for i := 0; i < e.wLength; i++ {
		t1 := v[7].Add(v[4].BigSigma1()).Add(word.Ch(v[4], v[5], v[6])).Add(e.k[i]).Add(w[i])
		t2 := v[0].BigSigma0().Add(word.Maj(v[0], v[1], v[2]))

		v[7] = v[6]
		v[6] = v[5]
		v[5] = v[4]
		v[4] = v[3].Add(t1)
		v[3] = v[2]
		v[2] = v[1]
		v[1] = v[0]
		v[0] = t1.Add(t2)
	}

	for i := range e.h {
		e.h[i] = e.h[i].Add(v[i])
	}
}

func (e *engine) Update(data []byte) {
	if e.pending+len(data) < e.blockSize {
		copy(e.data[e.pending:], data)
		e.pending += len(data)
		return
	}

	missing := e.blockSize - e.pending
	copy(e.data[e.pending:], data[:missing])
	e.processBlock(e.data)
	e.total += uint64(e.blockSize)

	rest := data[missing:]
	for len(rest) >= e.blockSize {
		e.processBlock(rest[:e.blockSize])
		e.total += uint64(e.blockSize)
		rest = rest[e.blockSize:]
	}

	e.pending = copy(e.data, rest)
}

// padLastBlock appends the 0x80 terminator, zero padding, and a final
// big-endian bit-length field sized blockSize/8 bytes, so that the
// padded message is one or two full blocks long. That field is 8 bytes
// for the 32 bit variants and 16 bytes for the 64 bit variants, per
// FIPS 180-4.
func (e *engine) padLastBlock() []byte {
	lengthFieldSize := e.blockSize / 8
	block := e.data[:e.pending]

	padded := make([]byte, 0, e.blockSize*2)
	padded = append(padded, block...)
	padded = append(padded, 0x80)

	var k int
	if len(block) < e.blockSize-lengthFieldSize {
		k = e.blockSize - len(block) - 1 - lengthFieldSize
	} else {
		k = e.blockSize*2 - len(block) - 1 - lengthFieldSize
	}
	for i := 0; i < k; i++ {
		padded = append(padded, 0)
	}

	bitLen := (e.total + uint64(len(block))) * 8
	lenField := make([]byte, lengthFieldSize)
	bytesutil.PutUint64(lenField[lengthFieldSize-8:], bitLen)
	padded = append(padded, lenField...)

	return padded
}

func (e *engine) Digest() []byte {
	padded := e.padLastBlock()
	for i := 0; i < len(padded); i += e.blockSize {
		e.processBlock(padded[i : i+e.blockSize])
	}

	out := make([]byte, 0, e.digestSize)
	buf := make([]byte, e.wordSize)
	for _, hw := range e.h {
		hw.PutBytes(buf)
		remaining := e.digestSize - len(out)
		if remaining >= len(buf) {
			out = append(out, buf...)
		} else {
			out = append(out, buf[:remaining]...)
			break
		}
	}

	e.Reset()
	return out
}
