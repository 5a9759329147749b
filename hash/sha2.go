package hash

import "github.com/wedkarz02/cryptoedu/word"

// Sha2 wraps the shared compression engine and satisfies Hash. It's the
// concrete type returned by every constructor below; only the engine's
// configuration differs between variants.
type Sha2 struct {
	e *engine
}

func (s *Sha2) Update(data []byte) { s.e.Update(data) }
func (s *Sha2) Digest() []byte     { return s.e.Digest() }
func (s *Sha2) Reset()             { s.e.Reset() }
func (s *Sha2) Size() int          { return s.e.Size() }
func (s *Sha2) BlockSize() int     { return s.e.blockSize }

func words32(h [8]uint32) []word.Word {
	out := make([]word.Word, 8)
	for i, v := range h {
		out[i] = word.Word32(v)
	}
	return out
}

func words64(h [8]uint64) []word.Word {
	out := make([]word.Word, 8)
	for i, v := range h {
		out[i] = word.Word64(v)
	}
	return out
}

func kWords32(k [64]uint32) []word.Word {
	out := make([]word.Word, len(k))
	for i, v := range k {
		out[i] = word.Word32(v)
	}
	return out
}

func kWords64(k [80]uint64) []word.Word {
	out := make([]word.Word, len(k))
	for i, v := range k {
		out[i] = word.Word64(v)
	}
	return out
}

const (
	sha256BlockSize = 64
	sha512BlockSize = 128
)

// NewSha224 returns a new SHA-224 hash.
func NewSha224() *Sha2 {
	return &Sha2{e: newEngine(sha256BlockSize, 28, 4, 64, kWords32(sha256K), words32(sha224InitH), word.NewWord32)}
}

// NewSha256 returns a new SHA-256 hash.
func NewSha256() *Sha2 {
	return &Sha2{e: newEngine(sha256BlockSize, 32, 4, 64, kWords32(sha256K), words32(sha256InitH), word.NewWord32)}
}

// NewSha384 returns a new SHA-384 hash.
func NewSha384() *Sha2 {
	return &Sha2{e: newEngine(sha512BlockSize, 48, 8, 80, kWords64(sha512K), words64(sha384InitH), word.NewWord64)}
}

// NewSha512 returns a new SHA-512 hash.
func NewSha512() *Sha2 {
	return &Sha2{e: newEngine(sha512BlockSize, 64, 8, 80, kWords64(sha512K), words64(sha512InitH), word.NewWord64)}
}

// NewSha512_224 returns a new SHA-512/224 hash: full SHA-512 compression,
// truncated output, distinct initial hash value per FIPS 180-4 5.3.6.1.
func NewSha512_224() *Sha2 {
	return &Sha2{e: newEngine(sha512BlockSize, 28, 8, 80, kWords64(sha512K), words64(sha512224InitH), word.NewWord64)}
}

// NewSha512_256 returns a new SHA-512/256 hash: full SHA-512 compression,
// truncated output, distinct initial hash value per FIPS 180-4 5.3.6.2.
func NewSha512_256() *Sha2 {
	return &Sha2{e: newEngine(sha512BlockSize, 32, 8, 80, kWords64(sha512K), words64(sha512256InitH), word.NewWord64)}
}
