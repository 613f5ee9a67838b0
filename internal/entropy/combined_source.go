// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tkaivola/keygen/internal/drbg"
	"github.com/tkaivola/keygen/internal/personalization"
	"github.com/tkaivola/keygen/internal/zeroize"
)

// seedWords is the number of (Os, RdRand, JitterHashed) triples mixed
// into the seed, giving a 1536-bit (192-byte) seed: 8 * 3 * 8 bytes.
const seedWords = 8

// GenerateCombined builds a 192-byte seed from eight rounds of Os,
// RdRand and hashed-jitter samples, instantiates a fresh HMAC-DRBG
// from that seed and a freshly minted personalization string, and
// extracts a single 64-bit word. The seed and personalization buffers
// are zeroized before returning, on every path.
func GenerateCombined() (uint64, error) {
	seed := make([]byte, 0, seedWords*3*8)
	defer func() { zeroize.Bytes(seed) }()

	for i := 0; i < seedWords; i++ {
		os, err := GenerateOs()
		if err != nil {
			return 0, err
		}
		rd, err := GenerateRdRand()
		if err != nil {
			return 0, err
		}
		jh, err := GenerateJitterHashed()
		if err != nil {
			return 0, err
		}

		var word [8]byte
		binary.BigEndian.PutUint64(word[:], os)
		seed = append(seed, word[:]...)
		binary.BigEndian.PutUint64(word[:], rd)
		seed = append(seed, word[:]...)
		binary.BigEndian.PutUint64(word[:], jh)
		seed = append(seed, word[:]...)
	}

	pers, err := personalization.Next()
	if err != nil {
		if errors.Is(err, personalization.ErrBackwardsTimeTravel) {
			return 0, fmt.Errorf("%w: %w", ErrBackwardsTimeTravel, err)
		}
		return 0, err
	}
	defer zeroize.Bytes(pers)

	d := drbg.New(seed, pers)
	out, err := d.Generate(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(out), nil
}
