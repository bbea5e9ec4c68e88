// Package config loads the vigenere64 CLI runtime configuration from the environment.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config contains this application's runtime configuration.
type Config struct {
	// MaxFileSize caps the size of any file the CLI reads, in bytes.
	MaxFileSize int64 `env:"VIGENERE64_MAX_FILE_SIZE" envDefault:"67108864"`
	// BackupSuffix, when set, makes in-place rewrites keep a copy of the
	// original at <file><suffix>.
	BackupSuffix string `env:"VIGENERE64_BACKUP_SUFFIX"`
	// GenKeyLength is the default key length for genkey.
	GenKeyLength int `env:"VIGENERE64_GENKEY_LENGTH" envDefault:"16"`
}

// GetConfig retrieves the current runtime configuration from the environment and returns it.
func GetConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, errors.Wrap(err, "unable to parse runtime configuration from environment")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "unexpected configuration settings")
	}
	return c, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.MaxFileSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("VIGENERE64_MAX_FILE_SIZE must be positive, got %d", c.MaxFileSize))
	}
	if c.GenKeyLength <= 0 {
		result = multierror.Append(result, fmt.Errorf("VIGENERE64_GENKEY_LENGTH must be positive, got %d", c.GenKeyLength))
	}
	if strings.ContainsAny(c.BackupSuffix, "/\\") {
		result = multierror.Append(result, fmt.Errorf("VIGENERE64_BACKUP_SUFFIX must not contain path separators: %q", c.BackupSuffix))
	}
	return result.ErrorOrNil()
}
