// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package password assembles passwords from an alphabet and a stream
// of 64-bit entropy samples, applying a rejection threshold to each
// sample before reducing it to an alphabet index.
package password

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkaivola/keygen/internal/alphabet"
)

// ErrAlphabetTooSmall is returned when the alphabet has fewer than two
// elements: rejection sampling and bits-per-element are both
// meaningless over a one-element (or empty) set.
var ErrAlphabetTooSmall = errors.New("password: alphabet must have at least 2 elements")

// Source draws one 64-bit entropy sample. entropy.Generate bound to a
// SourceID satisfies this signature; a dedicated function type keeps this
// package free of a direct dependency on the entropy source registry.
type Source func() (uint64, error)

// Assembler builds passwords of a target bit strength from one
// alphabet, joining elements with a fixed delimiter.
type Assembler struct {
	Alphabet  alphabet.Alphabet
	Delimiter string
	Source    Source
}

// NewAssembler validates alpha and returns an Assembler drawing
// samples from source.
func NewAssembler(alpha alphabet.Alphabet, delimiter string, source Source) (*Assembler, error) {
	if alpha.Count() < 2 {
		return nil, ErrAlphabetTooSmall
	}
	return &Assembler{Alphabet: alpha, Delimiter: delimiter, Source: source}, nil
}

// NumElements returns ceil(bitsRequested / bitsPerElement) for the
// assembler's alphabet, the number of elements Assemble will draw.
func (a *Assembler) NumElements(bitsRequested uint32) int {
	bitsPerElement := a.Alphabet.BitsPerElement()
	return int(math.Ceil(float64(bitsRequested) / bitsPerElement))
}

// Assemble draws NumElements(bitsRequested) alphabet elements via
// rejection sampling and joins them with the configured delimiter.
//
// For an alphabet of count elements, a raw sample v is accepted only
// when v <= math.MaxUint64 - count, and the index is v % count. This
// is the exact bound carried over from this tool's source data. It
// rejects the top count values of the 64-bit range, leaving 2^64 -
// count accepted values. That number is a multiple of count only when
// count is a power of two; for any other alphabet the lowest
// (2^64 mod count) indices each have one more accepted value than the
// rest, a relative bias of about count / 2^64.
func (a *Assembler) Assemble(bitsRequested uint32) (string, error) {
	count := uint64(a.Alphabet.Count())
	n := a.NumElements(bitsRequested)

	out := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		index, err := a.sampleIndex(count)
		if err != nil {
			return "", err
		}

		el, err := a.Alphabet.Element(int(index))
		if err != nil {
			return "", err
		}
		out = append(out, el...)

		if i < n-1 {
			out = append(out, a.Delimiter...)
		}
	}

	return string(out), nil
}

// sampleIndex draws samples from the source until one falls at or
// below the rejection threshold, then reduces it modulo count.
func (a *Assembler) sampleIndex(count uint64) (uint64, error) {
	threshold := math.MaxUint64 - count
	for {
		v, err := a.Source()
		if err != nil {
			return 0, fmt.Errorf("password: sampling source: %w", err)
		}
		if v <= threshold {
			return v % count, nil
		}
	}
}
