// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package personalization produces the 32-byte personalization string
// mixed into every HMAC-DRBG instantiation, and enforces that the
// string is unique across calls within one process.
package personalization

import (
	"encoding/binary"
	"errors"
	"sync"
	"time"
)

// Size is the length in bytes of a personalization string.
const Size = 32

// magic is the fixed ASCII prefix embedded in every personalization
// string. It carries no security value; it is Finnish for "cat123"
// and exists purely as a fixed domain-separation tag.
const magic = "kissa123"

// ErrBackwardsTimeTravel is returned when the wall clock observed by
// Next does not strictly advance past the previously recorded
// timestamp, in seconds-then-nanoseconds lexicographic order.
var ErrBackwardsTimeTravel = errors.New("personalization: clock went backwards")

// clockFunc returns (seconds, nanoseconds) since the Unix epoch. It is
// a var so tests can force backwards-time-travel scenarios (P6,
// scenario 6) without depending on wall-clock timing.
var clockFunc = func() (uint64, uint32) {
	now := time.Now()
	return uint64(now.Unix()), uint32(now.Nanosecond())
}

// Oracle is the process-global, exclusive-access record of the last
// timestamp observed. It enforces invariant I3: successive successful
// calls strictly increase in (seconds, nanoseconds) order.
type Oracle struct {
	mu       sync.Mutex
	prevSecs uint64
	prevNano uint32
}

// Default is the package-level oracle used by Next. A dedicated Oracle
// is only needed for isolated testing.
var Default = &Oracle{}

// Next reads the current wall clock, compares it against the last
// successful call, and — if it strictly advances — returns a fresh
// 32-byte personalization string:
//
//	bytes 0..8   ASCII "kissa123"
//	bytes 8..16  seconds since epoch, little-endian
//	bytes 16..20 subsecond nanoseconds, little-endian
//	bytes 20..32 zero
func (o *Oracle) Next() ([]byte, error) {
	secs, nanos := clockFunc()

	o.mu.Lock()
	defer o.mu.Unlock()

	if secs < o.prevSecs || (secs == o.prevSecs && nanos <= o.prevNano) {
		return nil, ErrBackwardsTimeTravel
	}
	o.prevSecs = secs
	o.prevNano = nanos

	buf := make([]byte, Size)
	copy(buf, magic)
	binary.LittleEndian.PutUint64(buf[8:16], secs)
	binary.LittleEndian.PutUint32(buf[16:20], nanos)

	return buf, nil
}

// Next returns a fresh personalization string from the package-level
// Default oracle. See Oracle.Next.
func Next() ([]byte, error) {
	return Default.Next()
}
