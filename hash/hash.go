// Package hash implements the SHA-2 family of cryptographic hash
// functions (SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224, and
// SHA-512/256) as a single generic compression engine parameterized
// over word width via package word.
package hash

// Hash is a streaming cryptographic hash function. Update may be called
// any number of times with arbitrary-length chunks; Digest finalizes
// the hash and resets the internal state so the value can be reused.
type Hash interface {
	Update(data []byte)
	Digest() []byte
	Reset()
	Size() int
	BlockSize() int
}
