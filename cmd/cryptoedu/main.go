// Command cryptoedu is a thin CLI over the cryptoedu library: it
// exercises block-cipher encryption, hashing, and HMAC from the shell
// so the primitives can be driven without writing Go.
package main

import (
	"encoding/hex"
	"flag"
	"log"

	"github.com/wedkarz02/cryptoedu/cipher"
	"github.com/wedkarz02/cryptoedu/hash"
	"github.com/wedkarz02/cryptoedu/hmac"
	"github.com/wedkarz02/cryptoedu/modes"
)

func main() {
	var (
		op      = flag.String("op", "hash", "operation: encrypt, decrypt, hash, hmac")
		algo    = flag.String("algo", "aes128", "cipher/hash: aes128, des (for encrypt/decrypt); sha256, sha512, ... (for hash/hmac)")
		mode    = flag.String("mode", "cbc", "block mode: ecb, cbc, ctr (encrypt/decrypt only)")
		keyHex  = flag.String("key", "", "key, hex encoded")
		ivHex   = flag.String("iv", "", "IV or nonce, hex encoded (cbc/ctr only)")
		dataHex = flag.String("data", "", "input data, hex encoded")
	)
	flag.Parse()

	data, err := hex.DecodeString(*dataHex)
	if err != nil {
		log.Fatalf("invalid -data: %v", err)
	}

	switch *op {
	case "encrypt", "decrypt":
		key, err := hex.DecodeString(*keyHex)
		if err != nil {
			log.Fatalf("invalid -key: %v", err)
		}

		var c cipher.BlockCipher
		switch *algo {
		case "aes128":
			c, err = cipher.NewAES128(key)
		case "des":
			c, err = cipher.NewDES(key)
		default:
			log.Fatalf("unknown -algo %q", *algo)
		}
		if err != nil {
			log.Fatalf("cipher init error: %v", err)
		}

		out, err := runMode(*mode, *op, data, *ivHex, c)
		if err != nil {
			log.Fatalf("%s error: %v", *op, err)
		}
		log.Println(hex.EncodeToString(out))

	case "hash":
		h := newHash(*algo)
		h.Update(data)
		log.Println(hex.EncodeToString(h.Digest()))

	case "hmac":
		key, err := hex.DecodeString(*keyHex)
		if err != nil {
			log.Fatalf("invalid -key: %v", err)
		}

		algoName := *algo
		mac := hmac.New(func() hash.Hash { return newHash(algoName) }, key)
		mac.Update(data)
		log.Println(hex.EncodeToString(mac.Finalize()))

	default:
		log.Fatalf("unknown -op %q", *op)
	}
}

func runMode(mode, op string, data []byte, ivHex string, c cipher.BlockCipher) ([]byte, error) {
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "ecb":
		if op == "encrypt" {
			return modes.EncryptECB(data, c)
		}
		return modes.DecryptECB(data, c)
	case "cbc":
		if op == "encrypt" {
			return modes.EncryptCBC(data, iv, c)
		}
		return modes.DecryptCBC(data, iv, c)
	case "ctr":
		if op == "encrypt" {
			return modes.EncryptCTR(data, iv, c)
		}
		return modes.DecryptCTR(data, iv, c)
	default:
		log.Fatalf("unknown -mode %q", mode)
		return nil, nil
	}
}

func newHash(algo string) hash.Hash {
	switch algo {
	case "sha224":
		return hash.NewSha224()
	case "sha256":
		return hash.NewSha256()
	case "sha384":
		return hash.NewSha384()
	case "sha512":
		return hash.NewSha512()
	case "sha512_224":
		return hash.NewSha512_224()
	case "sha512_256":
		return hash.NewSha512_256()
	default:
		log.Fatalf("unknown hash -algo %q", algo)
		return nil
	}
}
