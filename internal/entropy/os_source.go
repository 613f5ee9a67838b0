// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// GenerateOs draws 8 bytes from the platform CSPRNG (crypto/rand,
// which in turn uses getrandom/BCryptGenRandom/getentropy and their
// conventional fallbacks) and decodes them little-endian into a
// uint64. On Linux, checkEntropyPool runs first as an advisory gate.
func GenerateOs() (uint64, error) {
	if err := checkEntropyPool(); err != nil {
		return 0, err
	}

	var buf [8]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOsFailed, err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}
