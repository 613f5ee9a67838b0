// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !amd64

package entropy

// rdrandSupported is always false off amd64: RDRAND is an x86
// instruction with no portable equivalent on other architectures.
func rdrandSupported() bool {
	return false
}

// rdrandStep is never reached off amd64 because GenerateRdRand checks
// rdrandSupported first, but it is defined for completeness.
func rdrandStep() (uint64, bool) {
	return 0, false
}
