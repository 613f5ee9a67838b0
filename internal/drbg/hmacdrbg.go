// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package drbg implements the HMAC deterministic random bit generator
// from NIST Special Publication 800-90A Rev. 1, Section 10.1.2,
// instantiated over SHA-256.
//
// Reference:
//
//	NIST Special Publication 800-90A Rev. 1, Section 10.1.2 (HMAC_DRBG)
//	https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-90Ar1.pdf
//
// This implementation carries forward a documented deviation from the
// standard instantiation algorithm: the seed is used directly as the
// HMAC key rather than deriving (K, V) from an all-zero key via the
// standard Update procedure. See DESIGN.md, Open Question 1.
//
// No reseeding and no prediction resistance are supported: an instance
// is created once from a seed and a personalization string, generates
// output until MaxReseedInterval bytes have been produced, and is then
// discarded.
package drbg

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

// OutputSize is the size in bytes of one HMAC-SHA256 extraction (V).
const OutputSize = sha256.Size

// MaxReseedInterval bounds the reseed counter. The counter starts at 1
// and grows by every byte produced; once it exceeds MaxReseedInterval
// the instance refuses to generate further output. The size of a
// single request is not checked against it.
const MaxReseedInterval = 1_000_000

// ErrReseedIntervalReached is returned by Generate once the reseed
// counter has exceeded MaxReseedInterval, i.e. after an instance has
// produced at least MaxReseedInterval bytes across its lifetime.
var ErrReseedIntervalReached = errors.New("drbg: reseed interval reached")

// HmacDrbg is a single HMAC-SHA256 DRBG instance. It is not safe for
// concurrent use; callers needing concurrent streams should construct
// one instance per goroutine.
type HmacDrbg struct {
	key           []byte
	v             [OutputSize]byte
	reseedCounter uint32
}

// New instantiates an HmacDrbg from seed and personalization per
// SP 800-90A §10.1.2, with the seed-as-key deviation described in the
// package doc comment:
//
//  1. V is initialized to 32 bytes of 0x01.
//  2. K is the seed, used directly as the HMAC key.
//  3. V is updated once as HMAC(K, V || personalization || seed).
//  4. The reseed counter starts at 1.
//
// The caller retains ownership of seed and personalization; New copies
// what it needs and does not retain or mutate either slice.
func New(seed, personalization []byte) *HmacDrbg {
	key := make([]byte, len(seed))
	copy(key, seed)

	d := &HmacDrbg{
		key:           key,
		reseedCounter: 1,
	}
	for i := range d.v {
		d.v[i] = 0x01
	}

	mac := hmac.New(sha256.New, d.key)
	mac.Write(d.v[:])
	mac.Write(personalization)
	mac.Write(seed)
	copy(d.v[:], mac.Sum(nil))

	return d
}

// update performs one HMAC(K, V) step and stores the result back into
// V, returning it for convenience.
func (d *HmacDrbg) update() []byte {
	mac := hmac.New(sha256.New, d.key)
	mac.Write(d.v[:])
	sum := mac.Sum(nil)
	copy(d.v[:], sum)
	return d.v[:]
}

// Generate returns n freshly generated bytes, or
// ErrReseedIntervalReached if the reseed counter already exceeds
// MaxReseedInterval when the call starts. The check happens before
// extraction only, so a single call may return more than
// MaxReseedInterval bytes.
//
// The extraction loop repeatedly updates V and appends up to OutputSize
// bytes per step until n bytes have been collected, then performs one
// further update of V before returning. Generate(n) and
// GenerateSlice(n) MUST agree byte-for-byte for the same instantiation
// and the same n; both drive the same underlying loop.
func (d *HmacDrbg) Generate(n int) ([]byte, error) {
	if d.reseedCounter > MaxReseedInterval {
		return nil, ErrReseedIntervalReached
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		v := d.update()
		take := n - len(out)
		if take > OutputSize {
			take = OutputSize
		}
		out = append(out, v[:take]...)
	}

	// Final update so two consecutive Generate calls never observe the
	// same V the last output byte was drawn from.
	d.update()

	d.reseedCounter += uint32(n)

	return out, nil
}

// GenerateSlice is a fixed-size convenience wrapper around Generate
// that copies exactly n bytes into a freshly allocated slice. Go has no
// const-generic array return, so both forms share the exact same
// extraction loop via Generate.
func (d *HmacDrbg) GenerateSlice(n int) ([]byte, error) {
	return d.Generate(n)
}

// ReseedCounter returns the current reseed counter, primarily for
// testing property P5 (the reseed bound).
func (d *HmacDrbg) ReseedCounter() uint32 {
	return d.reseedCounter
}
