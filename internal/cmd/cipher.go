// cipher.go: The encrypt and decrypt commands.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/agilira/vigenere64"
	"github.com/agilira/vigenere64/internal/config"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errEmptyKey = errors.New("empty key")

func encryptCommand() *cobra.Command {
	return &cobra.Command{
		SilenceUsage: true,
		Use:          "encrypt <key> <file>",
		Short:        "Encrypt a Base64 text file in place.",
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transformFile(args[0], args[1], vigenere64.DirectionEncrypt)
		},
	}
}

func decryptCommand() *cobra.Command {
	return &cobra.Command{
		SilenceUsage: true,
		Use:          "decrypt <key> <file>",
		Short:        "Decrypt a Base64 text file in place.",
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transformFile(args[0], args[1], vigenere64.DirectionDecrypt)
		},
	}
}

func transformFile(key, path string, dir vigenere64.Direction) error {
	if key == "" {
		return errEmptyKey
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	content, err := readFile(path, cfg.MaxFileSize)
	if err != nil {
		return err
	}

	out, err := vigenere64.Transform(content, []byte(key), dir)
	if err != nil {
		return errors.Wrapf(err, "%s failed", dir)
	}

	if err := rewriteFile(path, content, out, cfg.BackupSuffix); err != nil {
		return err
	}
	glog.V(1).Infof("%s %s: %d bytes, key fingerprint %s", dir, path, len(out), vigenere64.GetKeyFingerprint([]byte(key)))
	return nil
}
