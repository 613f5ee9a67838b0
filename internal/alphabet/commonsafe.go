// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alphabet

// commonSafeElements excludes characters that are easily confused
// across fonts and keyboard layouts (no 0/O, l/I, 8/B, y/z), reproduced
// verbatim from this tool's source data.
var commonSafeElements = []string{
	"!", "#", "%", ",", ".", "1", "2", "3", "4", "5", "6", "7", "9", "a", "b",
	"c", "d", "e", "f", "g", "h", "i", "j", "k", "m", "n", "o", "p", "q", "r",
	"s", "t", "u", "v", "w", "x", "A", "C", "D", "E", "F", "G", "H", "J", "K",
	"L", "M", "N", "P", "Q", "R", "S", "T", "U", "V", "W", "X",
}
