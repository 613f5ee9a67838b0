// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build linux

package entropy

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// minEntropyBits is the advisory threshold below which the Linux
// entropy pool is considered low. Modern kernels populate the pool
// very early in boot, so this check rarely fires in practice.
const minEntropyBits = 200

const entropyAvailPath = "/proc/sys/kernel/random/entropy_avail"

// checkEntropyPool reads /proc/sys/kernel/random/entropy_avail and
// fails if the kernel reports fewer than minEntropyBits bits
// available, or if the file cannot be read at all.
func checkEntropyPool() error {
	raw, err := os.ReadFile(entropyAvailPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyPoolUnavailable, err)
	}

	avail, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyPoolUnavailable, err)
	}

	if avail < minEntropyBits {
		return fmt.Errorf("%w: %d bits available", ErrLowEntropyPool, avail)
	}

	return nil
}
