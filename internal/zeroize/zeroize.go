// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package zeroize overwrites sensitive byte buffers before they are
// released.
package zeroize

// Bytes overwrites every byte of b with zero. It is safe to call on a
// nil or empty slice. Callers holding key material in a slice that may
// grow (e.g. via append) should defer a closure over the variable
// rather than over a snapshot of the slice header, so whatever the
// slice has grown to by the time the defer runs gets zeroed.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
