// Package hmac implements the keyed-hash message authentication code
// from FIPS 198-1, generic over any hash.Hash.
package hmac

import (
	"github.com/wedkarz02/cryptoedu/cryptoerr"
	"github.com/wedkarz02/cryptoedu/hash"
)

const (
	innerPad = 0x36
	outerPad = 0x5C
)

// Hmac computes a MAC over a message incrementally fed via Update. It
// takes a hash constructor rather than a type parameter (Go generics
// can't express "construct a fresh instance of H"), mirroring the
// factory-function shape of the standard library's crypto/hmac.New.
type Hmac struct {
	newHash func() hash.Hash
	h       hash.Hash
	key     []byte
	msg     []byte
}

// New returns an Hmac keyed with key, using newHash to construct the
// underlying hash function. Per RFC 2104, keys longer than the hash's
// block size are hashed down first; shorter keys are zero-padded up to
// the block size.
func New(newHash func() hash.Hash, key []byte) *Hmac {
	h := newHash()

	sanitized := make([]byte, len(key))
	copy(sanitized, key)
	if len(key) > h.BlockSize() {
		h.Update(key)
		sanitized = h.Digest()
	}
	if len(sanitized) < h.BlockSize() {
		padded := make([]byte, h.BlockSize())
		copy(padded, sanitized)
		sanitized = padded
	}

	return &Hmac{newHash: newHash, h: h, key: sanitized}
}

// Update appends data to the pending message.
func (m *Hmac) Update(data []byte) {
	m.msg = append(m.msg, data...)
}

// Finalize computes the MAC over the key and the message accumulated
// so far: H((key^opad) || H((key^ipad) || message)).
func (m *Hmac) Finalize() []byte {
	ipadKey := make([]byte, len(m.key))
	opadKey := make([]byte, len(m.key))
	for i, b := range m.key {
		ipadKey[i] = b ^ innerPad
		opadKey[i] = b ^ outerPad
	}

	m.h.Reset()
	m.h.Update(ipadKey)
	m.h.Update(m.msg)
	innerHash := m.h.Digest()

	m.h.Reset()
	m.h.Update(opadKey)
	m.h.Update(innerHash)
	return m.h.Digest()
}

// Reset clears the pending message so the Hmac can be reused with the
// same key.
func (m *Hmac) Reset() {
	m.msg = nil
	m.h.Reset()
}

// Verify recomputes the MAC over msg and compares it against sig,
// returning cryptoerr.ErrIncorrectMac on mismatch.
func (m *Hmac) Verify(msg, sig []byte) error {
	m.Reset()
	m.Update(msg)
	computed := m.Finalize()

	if len(computed) != len(sig) {
		return cryptoerr.ErrIncorrectMac
	}
	for i := range computed {
		if computed[i] != sig[i] {
			return cryptoerr.ErrIncorrectMac
		}
	}

	return nil
}
