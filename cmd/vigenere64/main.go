// main.go: Entry point for the vigenere64 command line tool.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"flag"
	"os"

	"github.com/agilira/vigenere64/internal/cmd"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

func main() {
	defer glog.Flush()

	if err := cmd.Command().Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}

func init() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}
}
