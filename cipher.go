// cipher.go: Vigenère substitution over the Base64 alphabet.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Direction selects which way Transform shifts alphabet symbols.
type Direction int

const (
	// DirectionEncrypt adds the key index to every data symbol.
	DirectionEncrypt Direction = iota
	// DirectionDecrypt subtracts the key index from every data symbol.
	DirectionDecrypt
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionEncrypt:
		return "encrypt"
	case DirectionDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Public standard errors for drop-in compatibility.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidKey is returned when the key is empty or none of its bytes
	// belongs to the alphabet.
	ErrInvalidKey = errors.New("vigenere64: invalid key")

	// ErrInvalidDirection is returned when Transform receives an unknown Direction.
	ErrInvalidDirection = errors.New("vigenere64: invalid direction")
)

// Error codes for rich error handling
const (
	ErrCodeInvalidKey       = "VIGENERE64_INVALID_KEY"
	ErrCodeInvalidDirection = "VIGENERE64_INVALID_DIRECTION"
)

// keySchedule resolves, for every key position, the alphabet index of the
// first valid key byte found scanning forward (cyclically) from it.
//
// The cipher cursor moves one position per data symbol; invalid key bytes are
// skipped when reading but never consume a cursor step.
func keySchedule(key []byte) ([]byte, error) {
	if len(key) == 0 {
		richErr := goerrors.New(ErrCodeInvalidKey, "key cannot be empty")
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, richErr)
	}

	next := -1
	for i := len(key) - 1; i >= 0; i-- {
		if idx, ok := IndexOf(key[i]); ok {
			next = idx
		}
	}
	if next < 0 {
		richErr := goerrors.New(ErrCodeInvalidKey, fmt.Sprintf("none of the %d key bytes is a base64 symbol", len(key)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, richErr)
	}

	// next now holds the first valid index of the key, which is also the
	// wrap-around target for any invalid tail.
	schedule := make([]byte, len(key))
	for i := len(key) - 1; i >= 0; i-- {
		if idx, ok := IndexOf(key[i]); ok {
			next = idx
		}
		schedule[i] = byte(next)
	}
	return schedule, nil
}

// Transform encrypts or decrypts a Base64 text buffer with a repeating key.
//
// Bytes outside the alphabet (padding, whitespace, line breaks) are copied
// through unchanged and do not advance the key. Each data symbol is shifted by
// the next effective key index modulo 64. The output always has the same length
// as the input and is freshly allocated.
//
// Parameters:
//   - text: Base64 text to transform (may be empty)
//   - key: the repeating key; at least one byte must be an alphabet symbol
//   - dir: DirectionEncrypt or DirectionDecrypt
//
// Returns:
//   - The transformed text
//   - ErrInvalidKey or ErrInvalidDirection on failure, with no partial output
//
// Transform(Transform(t, k, DirectionEncrypt), k, DirectionDecrypt) == t.
func Transform(text, key []byte, dir Direction) ([]byte, error) {
	var sign int
	switch dir {
	case DirectionEncrypt:
		sign = 1
	case DirectionDecrypt:
		sign = -1
	default:
		richErr := goerrors.New(ErrCodeInvalidDirection, fmt.Sprintf("unknown direction %d", int(dir)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidDirection, richErr)
	}

	schedule, err := keySchedule(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(text))
	pos := 0
	for i, c := range text {
		idx, ok := IndexOf(c)
		if !ok {
			out[i] = c
			continue
		}
		k := int(schedule[pos%len(schedule)])
		shifted := (idx + sign*k + AlphabetSize) % AlphabetSize
		out[i] = Alphabet[shifted]
		pos++
	}
	return out, nil
}

// EncryptBytes encrypts Base64 text with key. See Transform.
//
// Example:
//
//	out, err := vigenere64.EncryptBytes([]byte("TWFu"), []byte("B"))
//	// out == "UXGv"
func EncryptBytes(text, key []byte) ([]byte, error) {
	return Transform(text, key, DirectionEncrypt)
}

// DecryptBytes reverses EncryptBytes. See Transform.
func DecryptBytes(text, key []byte) ([]byte, error) {
	return Transform(text, key, DirectionDecrypt)
}

// Encrypt is a convenience wrapper around EncryptBytes that works with strings.
func Encrypt(text, key string) (string, error) {
	out, err := EncryptBytes([]byte(text), []byte(key))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decrypt is a convenience wrapper around DecryptBytes that works with strings.
func Decrypt(text, key string) (string, error) {
	out, err := DecryptBytes([]byte(text), []byte(key))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
