// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package zeroize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes_OverwritesEveryByte(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Bytes(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)
}

func TestBytes_NilAndEmptyAreNoOps(t *testing.T) {
	assert.NotPanics(t, func() { Bytes(nil) })
	assert.NotPanics(t, func() { Bytes([]byte{}) })
}
