// recovery.go: Known-plaintext key recovery for the Base64 Vigenère cipher.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/agilira/go-errors"
	"github.com/agilira/go-timecache"
)

// Alignment controls how plaintext and ciphertext positions are paired while
// building the keystream.
type Alignment int

const (
	// AlignLockStep pairs bytes at the same offset and skips the offset when
	// either side is outside the alphabet. This matches Transform, which never
	// moves non-alphabet bytes.
	AlignLockStep Alignment = iota

	// AlignIndependent walks each text with its own cursor, skipping that
	// side's non-alphabet bytes, and pairs the n-th data symbol of the
	// plaintext with the n-th data symbol of the ciphertext. Use it when the
	// two texts are laid out differently, for example a line-wrapped plaintext
	// against a ciphertext re-encoded from raw bytes.
	AlignIndependent
)

// String returns the flag spelling of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLockStep:
		return "lockstep"
	case AlignIndependent:
		return "independent"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

// ParseAlignment converts "lockstep" or "independent" into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "lockstep", "lock-step":
		return AlignLockStep, nil
	case "independent":
		return AlignIndependent, nil
	}
	richErr := goerrors.New(ErrCodeInvalidAlignment, fmt.Sprintf("unknown alignment %q", s))
	return 0, fmt.Errorf("%w: %w", ErrInvalidAlignment, richErr)
}

var (
	// ErrNoOverlap is returned when plaintext and ciphertext share no aligned
	// pair of alphabet symbols, so no key symbol can be derived.
	ErrNoOverlap = errors.New("vigenere64: no aligned base64 symbols to recover a key from")

	// ErrInvalidAlignment is returned for an unknown Alignment value.
	ErrInvalidAlignment = errors.New("vigenere64: invalid alignment")
)

// Error codes for rich error handling
const (
	ErrCodeNoOverlap        = "VIGENERE64_NO_OVERLAP"
	ErrCodeInvalidAlignment = "VIGENERE64_INVALID_ALIGNMENT"
)

// RecoveryOptions tunes Analyze. A nil *RecoveryOptions means lock-step alignment.
type RecoveryOptions struct {
	Alignment Alignment `json:"alignment"`
}

// Recovery is the outcome of a key recovery.
type Recovery struct {
	Key             []byte    `json:"-"`                // Minimal key, as alphabet symbols
	Length          int       `json:"length"`           // len(Key)
	KeystreamLength int       `json:"keystream_length"` // Number of aligned symbol pairs analysed
	Alignment       Alignment `json:"alignment"`        // Pairing strategy used
	RecoveredAt     time.Time `json:"recovered_at"`
}

// RecoverKey reconstructs the minimal repeating key that turns plaintext into
// ciphertext under Transform, using lock-step alignment.
//
// The returned key is functionally equivalent to the one used for encryption:
// encrypting plaintext with it reproduces ciphertext. It can be shorter than
// the original key when that key was itself periodic, or when the texts are too
// short to expose the full key.
//
// Example:
//
//	key, n, err := vigenere64.RecoverKey([]byte("TWFu"), []byte("UXGv"))
//	// key == "B", n == 1
func RecoverKey(plaintext, ciphertext []byte) ([]byte, int, error) {
	rec, err := Analyze(plaintext, ciphertext, nil)
	if err != nil {
		return nil, 0, err
	}
	return rec.Key, rec.Length, nil
}

// Analyze runs key recovery with explicit options and reports details about
// the keystream it examined.
func Analyze(plaintext, ciphertext []byte, opts *RecoveryOptions) (*Recovery, error) {
	align := AlignLockStep
	if opts != nil {
		align = opts.Alignment
	}

	keystream := getKeystreamBuffer(min(len(plaintext), len(ciphertext)))
	defer func() { putKeystreamBuffer(keystream) }()

	switch align {
	case AlignLockStep:
		keystream = appendLockStep(keystream, plaintext, ciphertext)
	case AlignIndependent:
		keystream = appendIndependent(keystream, plaintext, ciphertext)
	default:
		richErr := goerrors.New(ErrCodeInvalidAlignment, fmt.Sprintf("unknown alignment %d", int(align)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidAlignment, richErr)
	}

	if len(keystream) == 0 {
		richErr := goerrors.New(ErrCodeNoOverlap, fmt.Sprintf("plaintext (%d bytes) and ciphertext (%d bytes) have no aligned symbols", len(plaintext), len(ciphertext)))
		return nil, fmt.Errorf("%w: %w", ErrNoOverlap, richErr)
	}

	period := MinimalPeriod(keystream)
	key := make([]byte, period)
	for i := range key {
		key[i] = Alphabet[keystream[i]]
	}

	return &Recovery{
		Key:             key,
		Length:          period,
		KeystreamLength: len(keystream),
		Alignment:       align,
		RecoveredAt:     timecache.CachedTime().UTC(),
	}, nil
}

// keyIndex returns (c - p) mod 64 for two alphabet indices.
func keyIndex(p, c int) byte {
	return byte((c - p + AlphabetSize) % AlphabetSize)
}

func appendLockStep(dst, plaintext, ciphertext []byte) []byte {
	n := min(len(plaintext), len(ciphertext))
	for i := 0; i < n; i++ {
		p, ok := IndexOf(plaintext[i])
		if !ok {
			continue
		}
		c, ok := IndexOf(ciphertext[i])
		if !ok {
			continue
		}
		dst = append(dst, keyIndex(p, c))
	}
	return dst
}

func appendIndependent(dst, plaintext, ciphertext []byte) []byte {
	pi, ci := 0, 0
	for pi < len(plaintext) && ci < len(ciphertext) {
		p, ok := IndexOf(plaintext[pi])
		if !ok {
			pi++
			continue
		}
		c, ok := IndexOf(ciphertext[ci])
		if !ok {
			ci++
			continue
		}
		dst = append(dst, keyIndex(p, c))
		pi++
		ci++
	}
	return dst
}

// MinimalPeriod returns the smallest p >= 1 such that seq[i] == seq[i%p] for
// every i, checked over the whole sequence. It returns len(seq) when no
// shorter period exists and 0 for an empty sequence.
//
// The smallest period equals len(seq) minus the longest proper prefix of seq
// that is also a suffix, which the prefix function yields in linear time.
func MinimalPeriod(seq []byte) int {
	n := len(seq)
	if n == 0 {
		return 0
	}

	pi := getPrefixTable(n)
	defer putPrefixTable(pi)

	pi[0] = 0
	for i := 1; i < n; i++ {
		k := pi[i-1]
		for k > 0 && seq[i] != seq[k] {
			k = pi[k-1]
		}
		if seq[i] == seq[k] {
			k++
		}
		pi[i] = k
	}
	return n - pi[n-1]
}
