// keyutils_test.go: Test cases for key utilities.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agilira/vigenere64"
)

func TestGenerateKey_ValidLength(t *testing.T) {
	key, err := vigenere64.GenerateKey(vigenere64.DefaultKeyLength)
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	defer vigenere64.Zeroize(key) // Zero-out sensitive test data
	if len(key) != vigenere64.DefaultKeyLength {
		t.Errorf("Expected key length %d, got %d", vigenere64.DefaultKeyLength, len(key))
	}
	for i, c := range key {
		if !strings.ContainsRune(vigenere64.Alphabet, rune(c)) {
			t.Errorf("Key byte %d (%q) is not an alphabet symbol", i, c)
		}
	}
	if err := vigenere64.ValidateKey(key); err != nil {
		t.Errorf("Generated key failed validation: %v", err)
	}
}

func TestGenerateKey_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		_, err := vigenere64.GenerateKey(n)
		if !errors.Is(err, vigenere64.ErrInvalidKey) {
			t.Errorf("GenerateKey(%d): expected ErrInvalidKey, got %v", n, err)
		}
	}
}

func TestGenerateKey_Unique(t *testing.T) {
	k1, _ := vigenere64.GenerateKey(32)
	k2, _ := vigenere64.GenerateKey(32)
	if string(k1) == string(k2) {
		t.Error("Expected two random 32-symbol keys to differ")
	}
}

func TestValidateKey(t *testing.T) {
	valid := []string{"B", "SecretKey", "==A==", "a b", "+/"}
	for _, k := range valid {
		if err := vigenere64.ValidateKey([]byte(k)); err != nil {
			t.Errorf("Expected %q to be valid, got error: %v", k, err)
		}
	}
	invalid := []string{"", "=", "====", " \n\t", "-_!"}
	for _, k := range invalid {
		err := vigenere64.ValidateKey([]byte(k))
		if !errors.Is(err, vigenere64.ErrInvalidKey) {
			t.Errorf("Expected ErrInvalidKey for %q, got %v", k, err)
		}
	}
}

func TestZeroize(t *testing.T) {
	key := []byte("sensitive-data")
	vigenere64.Zeroize(key)
	for _, b := range key {
		if b != 0 {
			t.Error("Zeroize failed: found non-zero byte")
		}
	}
}

func TestGetKeyFingerprint(t *testing.T) {
	fp1 := vigenere64.GetKeyFingerprint([]byte("KeyOne"))
	fp2 := vigenere64.GetKeyFingerprint([]byte("KeyTwo"))
	if fp1 == fp2 {
		t.Error("Expected different fingerprints for different keys")
	}
	if len(fp1) != 16 {
		t.Errorf("Expected 16 hex characters, got %q", fp1)
	}
	if fp1 != vigenere64.GetKeyFingerprint([]byte("KeyOne")) {
		t.Error("Expected fingerprint to be deterministic")
	}
	if vigenere64.GetKeyFingerprint(nil) != "" {
		t.Error("Expected empty fingerprint for nil key")
	}
	if vigenere64.GetKeyFingerprint([]byte{}) != "" {
		t.Error("Expected empty fingerprint for empty key")
	}
}
