// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package numformat renders a stream of 64-bit samples in the
// numeric formats accepted by the --format flag in dump mode.
package numformat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Format selects how Write decomposes each 64-bit sample.
type Format int

const (
	// RawBinary writes each sample as 8 little-endian raw bytes, with
	// no separators and no trailing newline.
	RawBinary Format = iota
	// U8 writes each sample as 8 big-endian bytes, one decimal integer
	// per line.
	U8
	// U16 writes each sample as 4 big-endian uint16s, one per line.
	U16
	// U32 writes each sample as 2 big-endian uint32s, one per line.
	U32
	// U64 writes each sample as a single decimal integer per line.
	U64
)

// ErrInvalidFormat is returned by Parse for unrecognized input.
var ErrInvalidFormat = errors.New("numformat: invalid format")

// Parse resolves one of "raw", "u8", "u16", "u32", "u64" into a
// Format.
func Parse(s string) (Format, error) {
	switch s {
	case "raw":
		return RawBinary, nil
	case "u8":
		return U8, nil
	case "u16":
		return U16, nil
	case "u32":
		return U32, nil
	case "u64":
		return U64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Write renders one 64-bit sample to w according to f.
func Write(w io.Writer, f Format, sample uint64) error {
	switch f {
	case RawBinary:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], sample)
		_, err := w.Write(buf[:])
		return err
	case U8:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], sample)
		for _, b := range buf {
			if _, err := fmt.Fprintln(w, b); err != nil {
				return err
			}
		}
		return nil
	case U16:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], sample)
		for i := 0; i < 8; i += 2 {
			if _, err := fmt.Fprintln(w, binary.BigEndian.Uint16(buf[i:i+2])); err != nil {
				return err
			}
		}
		return nil
	case U32:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], sample)
		for i := 0; i < 8; i += 4 {
			if _, err := fmt.Fprintln(w, binary.BigEndian.Uint32(buf[i:i+4])); err != nil {
				return err
			}
		}
		return nil
	case U64:
		_, err := fmt.Fprintln(w, sample)
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInvalidFormat, f)
	}
}
