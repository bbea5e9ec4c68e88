// pool.go: Scratch buffer pooling for keystream analysis
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package vigenere64

import (
	"sync"
)

const (
	// Scratch buffers above this capacity are dropped instead of pooled so a
	// single huge recovery does not pin memory.
	maxPooledScratch = 64 * 1024
	minPooledScratch = 128
)

var (
	// Keystream scratch buffers - uses pointers to avoid allocations (SA6002)
	keystreamPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 0, 1024)
			return &buf
		},
	}

	// Prefix-function tables used by MinimalPeriod
	prefixPool = sync.Pool{
		New: func() interface{} {
			buf := make([]int, 0, 1024)
			return &buf
		},
	}
)

// getKeystreamBuffer returns an empty scratch buffer with at least n bytes of capacity
func getKeystreamBuffer(n int) []byte {
	buf := *keystreamPool.Get().(*[]byte)
	if cap(buf) < n {
		// Too small for this input, let the old one go back to the pool
		putKeystreamBuffer(buf)
		return make([]byte, 0, n)
	}
	return buf[:0]
}

// putKeystreamBuffer wipes a scratch buffer and returns it to the pool.
// The keystream is key material, so it is always cleared.
func putKeystreamBuffer(buf []byte) {
	bufCap := cap(buf)
	if bufCap == 0 {
		return
	}
	Zeroize(buf[:bufCap])
	if bufCap <= maxPooledScratch && bufCap >= minPooledScratch {
		buf = buf[:0]
		keystreamPool.Put(&buf)
	}
}

// getPrefixTable returns an int slice of length n
func getPrefixTable(n int) []int {
	buf := *prefixPool.Get().(*[]int)
	if cap(buf) < n {
		putPrefixTable(buf)
		return make([]int, n)
	}
	return buf[:n]
}

func putPrefixTable(buf []int) {
	bufCap := cap(buf)
	if bufCap <= maxPooledScratch && bufCap >= minPooledScratch {
		buf = buf[:0]
		prefixPool.Put(&buf)
	}
}
