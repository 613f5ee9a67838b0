// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tkaivola/keygen/cmd/version"
	"github.com/tkaivola/keygen/internal/alphabet"
	"github.com/tkaivola/keygen/internal/entropy"
	"github.com/tkaivola/keygen/internal/numformat"
	"github.com/tkaivola/keygen/internal/password"
	"github.com/tkaivola/keygen/internal/rngdump"
)

// Flag values for the root command.
var (
	debugFlag     bool
	alphabetFlag  string
	bitsFlag      uint32
	countFlag     int
	delimiterFlag string
	rngtestFlag   string
	sizeFlag      uint32
	formatFlag    string
)

// ErrConflictingFlags is returned when --rngtest is combined with any
// of --bits, --alphabet or --count.
var ErrConflictingFlags = errors.New("cmd: --rngtest conflicts with --bits, --alphabet and --count")

// NewRootCommand creates and returns the root command: both password
// generation and test-mode raw entropy dumps live on it directly,
// since this tool is single-purpose rather than split across
// subcommands. Which mode runs is decided by whether --rngtest was
// set.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate cryptographically strong passwords, keys, and raw entropy streams",
		Long: `keygen generates passwords and keys from a combined hardware/OS/timing
entropy pipeline driving an HMAC-DRBG, or dumps raw samples from a single
chosen entropy source for external statistical testing.`,
		Args: cobra.NoArgs,
		RunE: runRoot,
	}

	cmd.Flags().BoolVar(&debugFlag, "debug", false, "emit diagnostic lines about the chosen alphabet and bit budget")
	cmd.Flags().StringVarP(&alphabetFlag, "alphabet", "a", "commonsafe", "alphabet: words-fi, commonsafe, normal, ascii, assembly")
	cmd.Flags().Uint32VarP(&bitsFlag, "bits", "b", 256, "entropy target per password, in bits")
	cmd.Flags().IntVarP(&countFlag, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", "", "delimiter between alphabet elements")
	cmd.Flags().StringVarP(&rngtestFlag, "rngtest", "r", "", "switch to dump mode: combined, rdrand, os, cpujitter, cpujitter-raw")
	cmd.Flags().Uint32VarP(&sizeFlag, "size", "s", 1, "number of u64 words to emit in dump mode")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "u64", "dump format: raw, u8, u16, u32, u64")

	cmd.AddCommand(version.NewVersionCommand())

	return cmd
}

// RootCmd is the command tree executed by main. It is called once per
// process; tests that need an isolated flag set construct their own
// command via NewRootCommand instead of reusing this one.
var RootCmd = NewRootCommand()

// Execute runs RootCmd, printing any error to stderr and exiting
// non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing keygen: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if rngtestFlag != "" {
		return runRngDump(cmd)
	}
	return runPasswordGeneration(cmd)
}

func runRngDump(cmd *cobra.Command) error {
	if cmd.Flags().Changed("bits") || cmd.Flags().Changed("alphabet") || cmd.Flags().Changed("count") {
		return ErrConflictingFlags
	}

	source, err := entropy.ParseSourceID(rngtestFlag)
	if err != nil {
		return err
	}
	format, err := numformat.Parse(formatFlag)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	return rngdump.Dump(writer, source, format, sizeFlag)
}

func runPasswordGeneration(cmd *cobra.Command) error {
	alpha, err := alphabet.FromName(alphabetFlag)
	if err != nil {
		return err
	}

	if debugFlag {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Using alphabet: %s\n", alphabetFlag)
		fmt.Fprintf(out, "alphabet_count: %s\n", humanize.Comma(int64(alpha.Count())))
		fmt.Fprintf(out, "request bits: %d\n", bitsFlag)
	}

	source := func() (uint64, error) { return entropy.Generate(entropy.Combined) }
	asm, err := password.NewAssembler(alpha, delimiterFlag, source)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	for i := 0; i < countFlag; i++ {
		pw, err := asm.Assemble(bitsFlag)
		if err != nil {
			return fmt.Errorf("cmd: generating password: %w", err)
		}
		if _, err := fmt.Fprintln(writer, pw); err != nil {
			return err
		}
	}

	return nil
}
