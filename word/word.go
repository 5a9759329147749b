// Package word abstracts the two machine-word widths SHA-2 compression
// runs on, 32 and 64 bit, behind a single interface so the compression
// loop in package hash is written once and shared by every variant.
package word

// Word is implemented by Word32 and Word64. Ch and Maj are the same
// bitwise identity for every SHA-2 variant, so they're expressed once
// here in terms of And/Xor/Not rather than duplicated per width; the
// four sigma functions rotate by width-specific amounts and so are
// implemented on the concrete types.
type Word interface {
	And(Word) Word
	Xor(Word) Word
	Not() Word
	Add(Word) Word
	BigSigma0() Word
	BigSigma1() Word
	SmallSigma0() Word
	SmallSigma1() Word

	// PutBytes writes the word in big-endian order into b, which must
	// be at least as long as the word's byte width.
	PutBytes(b []byte)
}

// Ch is the SHA-2 choice function: for each bit, pick from y where x is
// set and from z where x is clear.
func Ch(x, y, z Word) Word {
	return x.And(y).Xor(x.Not().And(z))
}

// Maj is the SHA-2 majority function: for each bit, the value held by
// at least two of x, y, z.
func Maj(x, y, z Word) Word {
	return x.And(y).Xor(x.And(z)).Xor(y.And(z))
}
