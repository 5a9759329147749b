// Package testvec provides a hex decoding helper for test vectors
// across the module's test files.
package testvec

import "encoding/hex"

// DecodeHex decodes s, panicking if s is not valid hex. Intended for
// hardcoded test-vector literals only.
func DecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
