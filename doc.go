// Package vigenere64 implements a Vigenère cipher over the Base64 alphabet, a
// Base64 codec, and known-plaintext recovery of the cipher key.
//
// It is a teaching toy, not a secure cipher. The same package that encrypts
// also shows how easily the key falls out of a single plaintext/ciphertext
// pair.
//
// The package offers:
//   - Alphabet lookups between the 64 Base64 symbols and their indices 0..63
//   - Standard padded Base64 encoding and strictly validated decoding
//   - Symbol-wise encryption and decryption modulo 64 with a repeating key
//   - Key recovery that reduces the observed keystream to its minimal period
//   - Key generation, validation and fingerprinting helpers
//
// # Quick Start
//
//	text := vigenere64.Encode([]byte("Man")) // "TWFu"
//
//	ciphertext, err := vigenere64.EncryptBytes(text, []byte("B"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(string(ciphertext)) // UXGv
//
//	plaintext, err := vigenere64.DecryptBytes(ciphertext, []byte("B"))
//
// # Cipher Rules
//
// Only alphabet symbols are transformed. Padding ('='), whitespace and any other
// byte are copied through at the same offset and do not advance the key. The
// key cursor moves one step per transformed symbol; key bytes outside the
// alphabet are skipped when read, so "A=B" behaves like a key whose positions
// read A, B, B. A key with no alphabet symbol at all is rejected with
// ErrInvalidKey before any output is produced.
//
// # Key Recovery
//
//	key, n, err := vigenere64.RecoverKey(plaintext, ciphertext)
//	if errors.Is(err, vigenere64.ErrNoOverlap) {
//		// nothing to compare
//	}
//
// The keystream is (c - p) mod 64 for every aligned pair of symbols. Its
// smallest period, verified over the whole keystream, is returned as the key.
// Use Analyze with AlignIndependent when the two texts are laid out
// differently.
//
// # Error Handling
//
// Every error wraps one of the exported sentinels (ErrInvalidKey, ErrDecode and
// its children, ErrNoOverlap, ...) together with a coded error from
// github.com/agilira/go-errors, so both errors.Is and rich error inspection work.
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra library
// SPDX-License-Identifier: MPL-2.0
package vigenere64
