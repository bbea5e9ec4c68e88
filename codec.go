// codec.go: Standard padded Base64 encoding and validating decoding.
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

// Codec errors. All of them wrap ErrDecode, so callers that only care about
// "the input is not valid Base64" can test for that single sentinel.
var (
	// ErrDecode is the common parent of every decoding failure.
	ErrDecode = errors.New("vigenere64: base64 decode error")

	// ErrInvalidSymbol is returned when the text contains a byte that is neither
	// an alphabet symbol, the padding marker, nor ASCII whitespace.
	ErrInvalidSymbol = fmt.Errorf("%w: invalid symbol", ErrDecode)

	// ErrInvalidLength is returned when the number of symbols, whitespace
	// excluded, is not a multiple of 4.
	ErrInvalidLength = fmt.Errorf("%w: length not a multiple of 4", ErrDecode)

	// ErrInvalidPadding is returned when '=' appears anywhere other than the
	// last one or two positions of the final group.
	ErrInvalidPadding = fmt.Errorf("%w: misplaced padding", ErrDecode)
)

// Error codes for rich error handling
const (
	ErrCodeInvalidSymbol  = "VIGENERE64_INVALID_SYMBOL"
	ErrCodeInvalidLength  = "VIGENERE64_INVALID_LENGTH"
	ErrCodeInvalidPadding = "VIGENERE64_INVALID_PADDING"
)

// EncodedLen returns the length of the Base64 encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode returns the standard padded Base64 encoding of src.
//
// Every 3-byte group becomes 4 symbols. A trailing group of 1 byte yields two
// symbols followed by "==", a trailing group of 2 bytes yields three symbols
// followed by "=".
//
// Example:
//
//	vigenere64.Encode([]byte("Man")) // "TWFu"
//	vigenere64.Encode([]byte("M"))   // "TQ=="
func Encode(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))

	di, si := 0, 0
	n := (len(src) / 3) * 3
	for si < n {
		v := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di+0] = Alphabet[v>>18&0x3F]
		dst[di+1] = Alphabet[v>>12&0x3F]
		dst[di+2] = Alphabet[v>>6&0x3F]
		dst[di+3] = Alphabet[v&0x3F]
		si += 3
		di += 4
	}

	switch len(src) - si {
	case 1:
		v := uint(src[si]) << 16
		dst[di+0] = Alphabet[v>>18&0x3F]
		dst[di+1] = Alphabet[v>>12&0x3F]
		dst[di+2] = Padding
		dst[di+3] = Padding
	case 2:
		v := uint(src[si])<<16 | uint(src[si+1])<<8
		dst[di+0] = Alphabet[v>>18&0x3F]
		dst[di+1] = Alphabet[v>>12&0x3F]
		dst[di+2] = Alphabet[v>>6&0x3F]
		dst[di+3] = Padding
	}
	return dst
}

// EncodeToString is a convenience wrapper around Encode.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// isSpace reports whether c is ASCII whitespace the decoder may skip.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Decode converts Base64 text back into raw bytes.
//
// ASCII whitespace is ignored, so line-wrapped input decodes fine. Anything
// else outside the alphabet is rejected, as is input whose symbol count is not
// a multiple of 4 or whose padding is not confined to the end of the last
// group. The bits a padded group throws away must be zero, so every accepted
// text is exactly what Encode would produce for its output. On error no
// partial output is returned.
//
// Decode(Encode(b)) == b holds for every b.
func Decode(text []byte) ([]byte, error) {
	// Collect the meaningful symbols first so grouping is independent of
	// whitespace layout.
	syms := make([]byte, 0, len(text))
	for i, c := range text {
		if isSpace(c) {
			continue
		}
		if !IsSymbol(c) && !IsPadding(c) {
			richErr := goerrors.New(ErrCodeInvalidSymbol, fmt.Sprintf("byte 0x%02x at offset %d is not base64", c, i))
			return nil, fmt.Errorf("%w: %w", ErrInvalidSymbol, richErr)
		}
		syms = append(syms, c)
	}

	if len(syms)%4 != 0 {
		richErr := goerrors.New(ErrCodeInvalidLength, fmt.Sprintf("%d symbols after filtering whitespace", len(syms)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidLength, richErr)
	}

	out := make([]byte, 0, len(syms)/4*3)
	for g := 0; g < len(syms); g += 4 {
		group := syms[g : g+4]
		last := g+4 == len(syms)

		pad, err := groupPadding(group, last, g)
		if err != nil {
			return nil, err
		}

		var v uint
		for _, c := range group {
			idx, _ := IndexOf(c) // '=' contributes 0
			v = v<<6 | uint(idx)
		}
		if pad > 0 && v&(1<<(8*pad)-1) != 0 {
			return nil, paddingError(fmt.Sprintf("non-zero bits under padding at symbol %d", g+3-pad))
		}
		block := [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
		out = append(out, block[:3-pad]...)
	}
	return out, nil
}

// groupPadding validates the placement of '=' inside one 4-symbol group and
// returns how many padding symbols it carries.
func groupPadding(group []byte, last bool, offset int) (int, error) {
	pad := 0
	for i, c := range group {
		if IsPadding(c) {
			pad++
			continue
		}
		if pad > 0 {
			// a data symbol after padding
			return 0, paddingError(fmt.Sprintf("data symbol after padding at symbol %d", offset+i))
		}
	}
	if pad == 0 {
		return 0, nil
	}
	if !last {
		return 0, paddingError(fmt.Sprintf("padding in non-final group at symbol %d", offset))
	}
	if pad > 2 {
		return 0, paddingError(fmt.Sprintf("%d padding symbols in final group", pad))
	}
	return pad, nil
}

func paddingError(msg string) error {
	richErr := goerrors.New(ErrCodeInvalidPadding, msg)
	return fmt.Errorf("%w: %w", ErrInvalidPadding, richErr)
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
