// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package rngdump implements test mode: emitting a requested count of
// raw 64-bit samples from a chosen entropy source in a chosen numeric
// format, for external statistical testing of the sources themselves.
package rngdump

import (
	"io"

	"github.com/tkaivola/keygen/internal/entropy"
	"github.com/tkaivola/keygen/internal/numformat"
)

// Dump writes size samples drawn from source, each rendered via
// format, to w. It stops at the first sampling error.
func Dump(w io.Writer, source entropy.SourceID, format numformat.Format, size uint32) error {
	for i := uint32(0); i < size; i++ {
		v, err := entropy.Generate(source)
		if err != nil {
			return err
		}
		if err := numformat.Write(w, format, v); err != nil {
			return err
		}
	}
	return nil
}
