// codec_test.go: Base64 codec tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64_test

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"

	"github.com/agilira/vigenere64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"M", "TQ=="},
		{"Ma", "TWE="},
		{"Man", "TWFu"},
		{"foobar", "Zm9vYmFy"},
		{"fooba", "Zm9vYmE="},
		{"\xff\xfe\xfd", "//79"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vigenere64.EncodeToString([]byte(tt.in)), "Encode(%q)", tt.in)
	}
}

func TestEncode_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		src := make([]byte, n)
		rng.Read(src)

		got := vigenere64.Encode(src)
		require.Equal(t, base64.StdEncoding.EncodeToString(src), string(got), "length %d", n)
		assert.Len(t, got, vigenere64.EncodedLen(n))
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 200; n++ {
		src := make([]byte, n)
		rng.Read(src)

		decoded, err := vigenere64.Decode(vigenere64.Encode(src))
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, src, decoded, "length %d", n)
		assert.Len(t, decoded, n)
	}
}

func TestDecode_IgnoresWhitespace(t *testing.T) {
	out, err := vigenere64.DecodeString("TW\r\nFu\n Zm9v\tYmE=\n")
	require.NoError(t, err)
	assert.Equal(t, "Manfooba", string(out))
}

func TestDecode_Padding(t *testing.T) {
	out, err := vigenere64.DecodeString("TQ==")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4D}, out)

	out, err = vigenere64.DecodeString("TWE=")
	require.NoError(t, err)
	assert.Equal(t, "Ma", string(out))
}

func TestDecode_PaddingBitsMatchStrictStdlib(t *testing.T) {
	for i := 0; i < vigenere64.AlphabetSize; i++ {
		for _, in := range []string{
			"T" + string(vigenere64.Alphabet[i]) + "==",
			"TW" + string(vigenere64.Alphabet[i]) + "=",
		} {
			want, stdErr := base64.StdEncoding.Strict().DecodeString(in)
			got, err := vigenere64.DecodeString(in)
			if stdErr != nil {
				assert.True(t, errors.Is(err, vigenere64.ErrInvalidPadding), "%s: got %v", in, err)
				continue
			}
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	out, err := vigenere64.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = vigenere64.DecodeString(" \n ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"invalid symbol", "TW-u", vigenere64.ErrInvalidSymbol},
		{"url alphabet", "TW_u", vigenere64.ErrInvalidSymbol},
		{"non ascii", "TWF\xc3", vigenere64.ErrInvalidSymbol},
		{"short group", "TWF", vigenere64.ErrInvalidLength},
		{"trailing symbol", "TWFuT", vigenere64.ErrInvalidLength},
		{"missing padding", "TQ", vigenere64.ErrInvalidLength},
		{"padding in first group", "TQ==TWFu", vigenere64.ErrInvalidPadding},
		{"data after padding", "TQ=A", vigenere64.ErrInvalidPadding},
		{"three pads", "T===", vigenere64.ErrInvalidPadding},
		{"all pads", "====", vigenere64.ErrInvalidPadding},
		{"bits under double padding", "TR==", vigenere64.ErrInvalidPadding},
		{"bits under single padding", "TWF=", vigenere64.ErrInvalidPadding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := vigenere64.DecodeString(tt.in)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, vigenere64.ErrDecode), "got %v", err)
		})
	}
}

func TestEncodedLen(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 4, 2: 4, 3: 4, 4: 8, 6: 8, 7: 12} {
		assert.Equal(t, want, vigenere64.EncodedLen(n), "EncodedLen(%d)", n)
	}
}
