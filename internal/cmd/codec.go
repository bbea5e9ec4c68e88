// codec.go: The encode, decode and genkey commands.
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

func encodeCommand() *cobra.Command {
	return &cobra.Command{
		SilenceUsage: true,
		Use:          "encode <file>",
		Short:        "Replace a file's raw bytes with their Base64 encoding.",
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return codecFile(args[0], func(in []byte) ([]byte, error) {
				return vigenere64.Encode(in), nil
			})
		},
	}
}

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		SilenceUsage: true,
		Use:          "decode <file>",
		Short:        "Replace a file's Base64 text with the bytes it encodes.",
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return codecFile(args[0], func(in []byte) ([]byte, error) {
				out, err := vigenere64.Decode(in)
				return out, errors.Wrap(err, "base64 decoding failed")
			})
		},
	}
}

func codecFile(path string, convert func([]byte) ([]byte, error)) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	content, err := readFile(path, cfg.MaxFileSize)
	if err != nil {
		return err
	}
	out, err := convert(content)
	if err != nil {
		return err
	}
	if err := rewriteFile(path, content, out, cfg.BackupSuffix); err != nil {
		return err
	}
	glog.V(1).Infof("converted %s: %d -> %d bytes", path, len(content), len(out))
	return nil
}

func genKeyCommand() *cobra.Command {
	var length int
	c := &cobra.Command{
		SilenceUsage: true,
		Use:          "genkey",
		Short:        "Print a random key made of Base64 alphabet symbols.",
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				cfg, err := config.GetConfig()
				if err != nil {
					return errors.Wrap(err, "failed to load configuration")
				}
				length = cfg.GenKeyLength
			}
			key, err := vigenere64.GenerateKey(length)
			if err != nil {
				return errors.Wrap(err, "key generation failed")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(key))
			return err
		},
	}
	c.Flags().IntVar(&length, "length", 0, "key length in symbols (default from VIGENERE64_GENKEY_LENGTH)")
	return c
}
