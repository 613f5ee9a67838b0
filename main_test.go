// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkaivola/keygen/cmd"
)

func TestRun_PasswordGeneration(t *testing.T) {
	is := assert.New(t)

	os.Args = []string{"keygen", "--count", "1", "--bits", "16"}

	var outBuf bytes.Buffer
	cmd.RootCmd.SetOut(&outBuf)
	cmd.RootCmd.SetErr(&outBuf)

	err := run()
	is.NoError(err, "expected no error generating a password")

	output := strings.TrimSpace(outBuf.String())
	is.NotEmpty(output)
}

func TestRun_VersionCommand(t *testing.T) {
	is := assert.New(t)

	os.Args = []string{"keygen", "version"}

	var outBuf bytes.Buffer
	cmd.RootCmd.SetOut(&outBuf)
	cmd.RootCmd.SetErr(&outBuf)

	err := run()
	is.NoError(err, "expected no error on run with version command")

	output := strings.TrimSpace(outBuf.String())
	is.Contains(output, "version:", "expected version information in output")
	is.Contains(output, "commit:", "expected commit information in output")
}

func TestRun_InvalidCommand(t *testing.T) {
	is := assert.New(t)

	os.Args = []string{"keygen", "invalidcmd"}

	var outBuf bytes.Buffer
	cmd.RootCmd.SetOut(&outBuf)
	cmd.RootCmd.SetErr(&outBuf)

	err := run()
	is.Error(err, "expected an error on run with invalid command")

	output := outBuf.String()
	is.Contains(output, "unknown command", "expected unknown command error")
}
