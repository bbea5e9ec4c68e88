// files.go: Whole-file reads and atomic in-place rewrites for the CLI.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	goerrors "github.com/agilira/go-errors"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrInputTooLarge is returned when a file exceeds the configured size limit.
// The check happens before the file is loaded into memory.
var ErrInputTooLarge = errors.New("vigenere64: input too large")

// ErrCodeInputTooLarge is the rich error code paired with ErrInputTooLarge.
const ErrCodeInputTooLarge = "VIGENERE64_INPUT_TOO_LARGE"

// readFile loads path fully, refusing files larger than maxSize bytes.
func readFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open file %s", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}
	if info.Size() > maxSize {
		return nil, tooLarge(path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read file %s", path)
	}
	// the file may have grown between Stat and ReadFile
	if int64(len(data)) > maxSize {
		return nil, tooLarge(path, int64(len(data)), maxSize)
	}
	glog.V(2).Infof("read %d bytes from %s", len(data), path)
	return data, nil
}

func tooLarge(path string, size, maxSize int64) error {
	richErr := goerrors.New(ErrCodeInputTooLarge, fmt.Sprintf("%s is %d bytes, limit is %d", path, size, maxSize))
	return fmt.Errorf("%w: %w", ErrInputTooLarge, richErr)
}

// rewriteFile replaces the contents of path with data, keeping its permission
// bits. The new contents are written to a temporary file in the same directory
// and renamed over the original, so a failure never leaves a truncated file.
// When backupSuffix is non-empty, original is first saved to path+backupSuffix.
func rewriteFile(path string, original, data []byte, backupSuffix string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "cannot write to file %s", path)
	}
	mode := info.Mode().Perm()

	if backupSuffix != "" {
		backup := path + backupSuffix
		if err := os.WriteFile(backup, original, mode); err != nil {
			return errors.Wrapf(err, "cannot write backup %s", backup)
		}
		glog.V(1).Infof("saved backup of %s to %s", path, backup)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "cannot write to file %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "cannot write to file %s", path)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "cannot set permissions on %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "cannot write to file %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "cannot replace file %s", path)
	}
	glog.V(2).Infof("wrote %d bytes to %s", len(data), path)
	return nil
}
