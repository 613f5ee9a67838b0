// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build amd64

package entropy

import "golang.org/x/sys/cpu"

// rdrandSupported reports whether the running CPU advertises the
// RDRAND instruction via CPUID, as decoded by x/sys/cpu at process
// start.
func rdrandSupported() bool {
	return cpu.X86.HasRDRAND
}

// rdrandStep executes RDRAND once and reports the drawn value and
// whether the instruction signaled success via the carry flag.
// Implemented in rdrand_amd64.s.
func rdrandStep() (uint64, bool)
