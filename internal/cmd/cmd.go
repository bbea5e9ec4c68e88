// Package cmd builds the vigenere64 command tree.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package cmd

import (
	"github.com/spf13/cobra"
)

// Command builds the root CLI command.
func Command() *cobra.Command {
	c := &cobra.Command{
		SilenceUsage: true,
		Use:          "vigenere64",
		Short:        "Vigenère cipher over the Base64 alphabet",
		Long: `vigenere64 encrypts and decrypts Base64 text files in place with a repeating key,
converts files to and from Base64, and recovers the key from a known
plaintext/ciphertext pair.

Quick usage:
  vigenere64 encode secret.bin            # raw bytes -> Base64 text
  vigenere64 encrypt MyKey secret.bin     # encrypt the Base64 text in place
  vigenere64 decrypt MyKey secret.bin     # and back
  vigenere64 findkey plain.b64 cipher.b64 # key on stdout, length on stderr`,
	}
	c.AddCommand(
		encryptCommand(),
		decryptCommand(),
		findKeyCommand(),
		encodeCommand(),
		decodeCommand(),
		genKeyCommand(),
	)
	return c
}
