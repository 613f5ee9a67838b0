// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName_AllNamesResolve(t *testing.T) {
	is := assert.New(t)

	names := []string{"ascii", "commonsafe", "normal", "words-fi", "assembly"}
	for _, name := range names {
		a, err := FromName(name)
		is.NoError(err, name)
		is.Greater(a.Count(), 0, name)
	}
}

func TestFromName_Unknown(t *testing.T) {
	is := assert.New(t)

	_, err := FromName("does-not-exist")
	is.ErrorIs(err, ErrUnknownAlphabet)
}

// TestAlphabet_ElementBounds exercises every alphabet's Element method
// across its full valid range and confirms both boundary failures
// report ErrNonExistentCharacter.
func TestAlphabet_ElementBounds(t *testing.T) {
	for _, name := range []string{"ascii", "commonsafe", "normal", "words-fi", "assembly"} {
		t.Run(name, func(t *testing.T) {
			is := assert.New(t)

			a, err := FromName(name)
			is.NoError(err)

			seen := make(map[string]struct{}, a.Count())
			for i := 0; i < a.Count(); i++ {
				el, err := a.Element(i)
				is.NoError(err)
				is.NotEmpty(el)
				seen[el] = struct{}{}
			}
			is.Len(seen, a.Count(), "every element in %s must be unique", name)

			_, err = a.Element(-1)
			is.ErrorIs(err, ErrNonExistentCharacter)
			_, err = a.Element(a.Count())
			is.ErrorIs(err, ErrNonExistentCharacter)
		})
	}
}

func TestAlphabet_BitsPerElementMatchesCount(t *testing.T) {
	is := assert.New(t)

	a, err := FromName("normal")
	is.NoError(err)

	is.InDelta(5.954, a.BitsPerElement(), 0.01)
}

func TestAscii_Range(t *testing.T) {
	is := assert.New(t)

	a := NewAscii()
	is.Equal(95, a.Count())

	first, err := a.Element(0)
	is.NoError(err)
	is.Equal(" ", first)

	last, err := a.Element(94)
	is.NoError(err)
	is.Equal("~", last)
}
