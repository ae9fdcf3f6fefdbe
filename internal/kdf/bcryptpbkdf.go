package kdf

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// bcryptPBKDFMagic is the fixed 32-byte plaintext OpenSSH's bcrypt_pbkdf
// repeatedly encrypts to turn a salted Blowfish key schedule into output
// key material. It plays the same role the magic ciphertext block plays
// in standard bcrypt password hashing ("OrpheanBeholderScryDoubt"), just
// with a different constant and output length.
var bcryptPBKDFMagic = []byte("OxychromaticBlowfishSwatDynamite")

const bcryptHashSize = len(bcryptPBKDFMagic) // 32

// bcryptPBKDF is a from-scratch implementation of OpenSSH's bcrypt_pbkdf:
// a passphrase-stretching KDF built out of the same Blowfish key-schedule
// trick bcrypt password hashing uses, wrapped in an outer PBKDF2-style
// loop that strengthens it against brute force and produces an arbitrary
// output length by iterating over numbered blocks, the same shape
// signkey.go's s2k builds a passphrase stretch on top of a stdlib hash,
// just with Blowfish/SHA-512 as the primitives instead.
func bcryptPBKDF(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("bcrypt_pbkdf: rounds must be >= 1, got %d", rounds)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("bcrypt_pbkdf: passphrase must not be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("bcrypt_pbkdf: salt must not be empty")
	}
	if keyLen == 0 {
		return nil, nil
	}

	numBlocks := (keyLen + bcryptHashSize - 1) / bcryptHashSize
	stride := numBlocks
	amt := (keyLen + stride - 1) / stride

	shaPass := sha512.Sum512(password)
	countedSalt := make([]byte, len(salt)+4)
	copy(countedSalt, salt)

	out := make([]byte, keyLen)

	for count := 1; count <= numBlocks; count++ {
		binary.BigEndian.PutUint32(countedSalt[len(salt):], uint32(count))
		shaSalt := sha512.Sum512(countedSalt)

		block, err := bcryptHash(shaPass[:], shaSalt[:])
		if err != nil {
			return nil, err
		}
		acc := append([]byte(nil), block...)

		for i := 1; i < rounds; i++ {
			nextSalt := sha512.Sum512(block)
			block, err = bcryptHash(shaPass[:], nextSalt[:])
			if err != nil {
				return nil, err
			}
			for j := range acc {
				acc[j] ^= block[j]
			}
		}

		take := amt
		if take > bcryptHashSize {
			take = bcryptHashSize
		}
		for i := 0; i < take; i++ {
			dest := i*stride + (count - 1)
			if dest >= keyLen {
				break
			}
			out[dest] = acc[i]
		}
	}

	return out, nil
}

// bcryptEKSRounds is the fixed Eksblowfish key-schedule strengthening
// factor OpenSSH's bcrypt_pbkdf uses, equivalent to bcrypt cost factor 6
// (2^6 == 64 alternating key/salt expansions).
const bcryptEKSRounds = 64

// bcryptHash runs the salted, strengthened Blowfish key schedule over
// shaPass/shaSalt and uses it to encrypt bcryptPBKDFMagic 64 times,
// the same "hash via repeated self-encryption" trick standard bcrypt
// uses, then undoes the historical big-endian/little-endian word swap
// bcrypt's reference implementation is bug-compatible with.
func bcryptHash(shaPass, shaSalt []byte) ([]byte, error) {
	cipher, err := blowfish.NewSaltedCipher(shaPass, shaSalt)
	if err != nil {
		return nil, fmt.Errorf("bcrypt_pbkdf: %w", err)
	}
	for i := 0; i < bcryptEKSRounds; i++ {
		blowfish.ExpandKey(shaSalt, cipher)
		blowfish.ExpandKey(shaPass, cipher)
	}

	out := append([]byte(nil), bcryptPBKDFMagic...)
	for i := 0; i < len(out); i += 8 {
		block := out[i : i+8]
		for j := 0; j < bcryptEKSRounds; j++ {
			cipher.Encrypt(block, block)
		}
	}

	for i := 0; i < len(out); i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i]
	}
	return out, nil
}
