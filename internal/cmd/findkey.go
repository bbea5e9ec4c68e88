// findkey.go: The key recovery command.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/agilira/vigenere64"
	"github.com/agilira/vigenere64/internal/config"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func findKeyCommand() *cobra.Command {
	var (
		binaryCiphertext bool
		align            string
	)
	c := &cobra.Command{
		SilenceUsage: true,
		Use:          "findkey <plaintext_file> <ciphertext_file>",
		Short:        "Recover the key from a known plaintext/ciphertext pair.",
		Long: `Recover the minimal repeating key that encrypts the plaintext file into the
ciphertext file. The key is printed to standard output and its length to
standard error.

Both files are Base64 text unless --binary-ciphertext is given, in which case
the ciphertext file holds raw bytes that are Base64 encoded before comparison.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}

			opts := &vigenere64.RecoveryOptions{Alignment: vigenere64.AlignLockStep}
			if binaryCiphertext {
				// re-encoded bytes rarely share the plaintext's line layout
				opts.Alignment = vigenere64.AlignIndependent
			}
			if align != "" {
				if opts.Alignment, err = vigenere64.ParseAlignment(align); err != nil {
					return err
				}
			}

			plaintext, err := readFile(args[0], cfg.MaxFileSize)
			if err != nil {
				return err
			}
			ciphertext, err := readFile(args[1], cfg.MaxFileSize)
			if err != nil {
				return err
			}
			if binaryCiphertext {
				ciphertext = encodeBinaryCiphertext(ciphertext)
			}

			rec, err := vigenere64.Analyze(plaintext, ciphertext, opts)
			if err != nil {
				return errors.Wrap(err, "key finding failed")
			}
			glog.V(1).Infof("recovered key from %d aligned symbols (%s), fingerprint %s",
				rec.KeystreamLength, rec.Alignment, vigenere64.GetKeyFingerprint(rec.Key))

			if _, err := fmt.Fprint(cmd.OutOrStdout(), string(rec.Key)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "%d\n", rec.Length)
			return err
		},
	}
	c.Flags().BoolVar(&binaryCiphertext, "binary-ciphertext", false, "treat the ciphertext file as raw bytes and Base64 encode it first")
	c.Flags().StringVar(&align, "align", "", "symbol pairing: lockstep or independent (default lockstep, independent with --binary-ciphertext)")
	return c
}

// encodeBinaryCiphertext Base64 encodes raw ciphertext bytes for comparison
// with the plaintext. Encryption leaves non-zero bits under the padding of a
// short final group and the raw bytes cannot hold them, so the last data
// symbol of a padded encoding is unreliable and is cut off with the padding.
func encodeBinaryCiphertext(raw []byte) []byte {
	text := vigenere64.Encode(raw)
	if pad := (3 - len(raw)%3) % 3; pad > 0 {
		text = text[:len(text)-pad-1]
	}
	return text
}
