// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/tkaivola/keygen/internal/bitacc"
)

// maxJitterIterations bounds how many clock-read pairs JitterRaw will
// sample while trying to fill a 64-bit word. It is the only timeout
// anywhere in this package; every other generator either succeeds
// immediately or fails outright.
const maxJitterIterations = 32_768

// jitterSampleFunc reads two adjacent monotonic nanosecond gaps and
// reports whether the first gap is strictly larger than the second,
// along with whether the two gaps actually differed. It is a var so
// tests can substitute a deterministic source without waiting on real
// scheduling jitter.
var jitterSampleFunc = realJitterSample

// GenerateJitterRaw assembles a single 64-bit word from CPU timing
// jitter. Each kept bit is the sign of the difference between two
// adjacent pairs of nanosecond clock reads; pairs with no measurable
// difference are discarded rather than biasing the stream toward
// either outcome.
//
// Raw entropy here is estimated at roughly 6 bits per output byte —
// this source MUST NOT be used directly as DRBG key material; see
// GenerateJitterHashed for the compressed form actually fed into
// GenerateCombined.
func GenerateJitterRaw() (uint64, error) {
	var acc bitacc.Accumulator

	for i := 0; i < maxJitterIterations; i++ {
		bit, kept := jitterSampleFunc()
		if kept {
			acc.Append(bit)
		}
		if acc.IsFull() {
			return acc.Finish(), nil
		}
	}

	return 0, ErrJitterFailed
}

// GenerateJitterHashed calls GenerateJitterRaw eight times,
// concatenates the big-endian encoding of each sample (512 bits
// total), compresses the result with SHA3-256, and returns the
// big-endian uint64 decoded from the first 8 bytes of the digest. Any
// subcall failure is surfaced unchanged.
func GenerateJitterHashed() (uint64, error) {
	var combined [64]byte
	for i := 0; i < 8; i++ {
		raw, err := GenerateJitterRaw()
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(combined[i*8:i*8+8], raw)
	}

	digest := sha3.Sum256(combined[:])

	return binary.BigEndian.Uint64(digest[:8]), nil
}

// realJitterSample performs one two-gap nanosecond clock read using
// the monotonic clock reading built into time.Now.
func realJitterSample() (bit bool, kept bool) {
	d1 := measureGapNanos()
	d2 := measureGapNanos()
	if d1 == d2 {
		return false, false
	}
	return d1 > d2, true
}

// measureGapNanos reads the monotonic clock twice back-to-back and
// returns the elapsed nanoseconds between the reads. time.Time.Sub
// uses the monotonic reading carried by time.Now when both operands
// have one, independent of wall-clock adjustments.
func measureGapNanos() int64 {
	t0 := time.Now()
	t1 := time.Now()
	return int64(t1.Sub(t0))
}
