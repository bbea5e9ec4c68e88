// keyutils.go: Key utilities for generation, validation, zeroization, and fingerprinting.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	goerrors "github.com/agilira/go-errors"
)

// DefaultKeyLength is the key length GenerateKey callers use when they have no
// preference.
const DefaultKeyLength = 16

// ValidateKey checks that key can drive Transform: it must be non-empty and
// contain at least one alphabet symbol. Other bytes are allowed and are
// skipped by the cipher.
//
// Example:
//
//	if err := vigenere64.ValidateKey([]byte("===")); err != nil {
//		// errors.Is(err, vigenere64.ErrInvalidKey)
//	}
func ValidateKey(key []byte) error {
	_, err := keySchedule(key)
	return err
}

// GenerateKey returns a random key of length alphabet symbols.
//
// Each symbol is drawn from crypto/rand. Since 256 is a multiple of 64, masking
// a random byte to its low six bits gives a uniform symbol.
//
// Example:
//
//	key, err := vigenere64.GenerateKey(vigenere64.DefaultKeyLength)
//	if err != nil {
//		log.Fatal(err)
//	}
func GenerateKey(length int) ([]byte, error) {
	if length <= 0 {
		richErr := goerrors.New(ErrCodeInvalidKey, fmt.Sprintf("key length must be positive, got %d", length))
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, richErr)
	}
	key := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, goerrors.Wrap(err, "KEY_GEN_ERROR", "failed to generate key")
	}
	for i, b := range key {
		key[i] = Alphabet[b&0x3F]
	}
	return key, nil
}

// Zeroize overwrites b with zeros in place, wiping key material and
// recovered keystreams once they are no longer needed.
//
// Parameters:
//   - b: The byte slice to zeroize
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GetKeyFingerprint generates a fingerprint for a key (non-cryptographic).
//
// The fingerprint is the first 8 bytes of the SHA-256 of the key, printed as 16
// hex characters. It identifies a key in logs without revealing it.
// An empty key yields an empty string.
func GetKeyFingerprint(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	hash := sha256.Sum256(key)
	return fmt.Sprintf("%016x", hash[:8])
}
