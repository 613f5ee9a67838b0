// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceID_StringParseRoundTrip(t *testing.T) {
	is := assert.New(t)

	ids := []SourceID{Combined, RdRand, Os, Jitter, JitterRaw}
	for _, id := range ids {
		parsed, err := ParseSourceID(id.String())
		is.NoError(err)
		is.Equal(id, parsed)
	}
}

func TestParseSourceID_Invalid(t *testing.T) {
	is := assert.New(t)

	_, err := ParseSourceID("not-a-source")
	is.ErrorIs(err, ErrInvalidSourceID)
}

func TestGenerateOs(t *testing.T) {
	is := assert.New(t)

	a, err := GenerateOs()
	is.NoError(err)
	b, err := GenerateOs()
	is.NoError(err)

	is.NotEqual(a, b, "two independent OS draws colliding is astronomically unlikely")
}

func withJitterSample(t *testing.T, bits []bool) {
	t.Helper()
	original := jitterSampleFunc
	i := 0
	jitterSampleFunc = func() (bool, bool) {
		b := bits[i%len(bits)]
		i++
		return b, true
	}
	t.Cleanup(func() { jitterSampleFunc = original })
}

func TestGenerateJitterRaw_Deterministic(t *testing.T) {
	is := assert.New(t)

	pattern := make([]bool, 64)
	for i := range pattern {
		pattern[i] = i%2 == 0
	}
	withJitterSample(t, pattern)

	var want uint64
	for i, b := range pattern {
		if b {
			want |= 1 << uint(i)
		}
	}

	got, err := GenerateJitterRaw()
	is.NoError(err)
	is.Equal(want, got)
}

func TestGenerateJitterRaw_DiscardsUnkeptSamples(t *testing.T) {
	is := assert.New(t)

	original := jitterSampleFunc
	t.Cleanup(func() { jitterSampleFunc = original })

	calls := 0
	jitterSampleFunc = func() (bool, bool) {
		calls++
		if calls%2 == 0 {
			return false, false
		}
		return true, true
	}

	got, err := GenerateJitterRaw()
	is.NoError(err)
	is.Equal(^uint64(0), got)
}

func TestGenerateJitterRaw_ExhaustsIterationBound(t *testing.T) {
	is := assert.New(t)

	original := jitterSampleFunc
	t.Cleanup(func() { jitterSampleFunc = original })

	jitterSampleFunc = func() (bool, bool) {
		return false, false
	}

	_, err := GenerateJitterRaw()
	is.ErrorIs(err, ErrJitterFailed)
}

func TestGenerateJitterHashed_Deterministic(t *testing.T) {
	is := assert.New(t)

	withJitterSample(t, []bool{true, false, true, true, false, false, true, false})

	a, err := GenerateJitterHashed()
	is.NoError(err)
	b, err := GenerateJitterHashed()
	is.NoError(err)

	is.Equal(a, b, "identical raw jitter samples must compress to identical hashed output")
}

func TestGenerateRdRand_UnsupportedOrPlausible(t *testing.T) {
	is := assert.New(t)

	_, err := GenerateRdRand()
	if err != nil {
		is.True(errors.Is(err, ErrRdRandUnsupported) || errors.Is(err, ErrRdRandFailed))
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	is := assert.New(t)

	_, err := Generate(Os)
	is.NoError(err)

	_, err = Generate(SourceID(99))
	is.ErrorIs(err, ErrInvalidSourceID)
}
