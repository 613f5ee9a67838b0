// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"fmt"
	"os"

	"github.com/tkaivola/keygen/cmd"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing keygen: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command and returns its error instead of
// calling os.Exit directly, so main_test.go can exercise it.
func run() error {
	return cmd.RootCmd.Execute()
}
