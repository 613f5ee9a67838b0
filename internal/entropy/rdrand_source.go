// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

// GenerateRdRand issues a single attempt at the CPU's hardware random
// number instruction and returns the result. There is no retry loop:
// a carry-clear result is reported to the caller as ErrRdRandFailed
// immediately, and a CPU without the instruction reports
// ErrRdRandUnsupported. The actual instruction sequence is
// architecture-specific; see rdrand_amd64.go and rdrand_generic.go.
func GenerateRdRand() (uint64, error) {
	if !rdrandSupported() {
		return 0, ErrRdRandUnsupported
	}

	v, ok := rdrandStep()
	if !ok {
		return 0, ErrRdRandFailed
	}

	return v, nil
}
