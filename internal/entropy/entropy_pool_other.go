// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !linux

package entropy

// checkEntropyPool is a no-op on non-Linux platforms: there is no
// portable equivalent of /proc/sys/kernel/random/entropy_avail, and
// the platform CSPRNGs used there (BCryptGenRandom, getentropy) do not
// expose a comparable pool-depth signal.
func checkEntropyPool() error {
	return nil
}
