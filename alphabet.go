// alphabet.go: The 64-symbol Base64 alphabet and its index tables.
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

// Alphabet is the ordered set of the 64 standard Base64 symbols.
// The position of a symbol in this string is its index.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding is the Base64 padding marker. It is never a member of Alphabet.
const Padding = '='

// AlphabetSize is the number of symbols in Alphabet and the cipher modulus.
const AlphabetSize = len(Alphabet)

// noIndex marks bytes outside the alphabet in the inverse table.
const noIndex = 0xFF

// ErrIndexOutOfRange is returned by SymbolOf for indices outside 0..63.
var ErrIndexOutOfRange = errors.New("vigenere64: alphabet index out of range")

// ErrCodeIndexRange is the rich error code paired with ErrIndexOutOfRange.
const ErrCodeIndexRange = "VIGENERE64_INDEX_RANGE"

// inverse maps every byte value to its alphabet index, or noIndex.
var inverse = buildInverse()

func buildInverse() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = noIndex
	}
	for i := 0; i < AlphabetSize; i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}

// IndexOf returns the alphabet index of c.
//
// The second result is false for the padding marker and for any byte that is
// not one of the 64 alphabet symbols.
//
// Example:
//
//	i, ok := vigenere64.IndexOf('A') // 0, true
//	_, ok = vigenere64.IndexOf('=')  // ok == false
func IndexOf(c byte) (int, bool) {
	i := inverse[c]
	if i == noIndex {
		return 0, false
	}
	return int(i), true
}

// SymbolOf returns the alphabet symbol at index.
func SymbolOf(index int) (byte, error) {
	if index < 0 || index >= AlphabetSize {
		richErr := goerrors.New(ErrCodeIndexRange, fmt.Sprintf("index %d outside 0..%d", index, AlphabetSize-1))
		return 0, fmt.Errorf("%w: %w", ErrIndexOutOfRange, richErr)
	}
	return Alphabet[index], nil
}

// IsPadding reports whether c is the padding marker.
func IsPadding(c byte) bool {
	return c == Padding
}

// IsSymbol reports whether c belongs to the alphabet.
func IsSymbol(c byte) bool {
	return inverse[c] != noIndex
}
