// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.


package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/dagserde/pkg/cli/clierror"
	"github.com/cockroachdb/dagserde/pkg/cli/exit"
	"github.com/cockroachdb/dagserde/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Proxy to allow overrides in tests.
var osStderr = os.Stderr
var osStdin = os.Stdin

var dagserdeCmd = &cobra.Command{
	Use:   "dagserde [command] (flags)",
	Short: "encode, compare and sort serialized records",
	Long: `
Tool for the order-preserving binary record format: encodes text values into
records, compares and decodes records, and sorts or groups streams of records
that may not fit in memory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
}

// isInteractive indicates whether stdin refers to the terminal.
var isInteractive = isatty.IsTerminal(os.Stdin.Fd())

func init() {
	cobra.EnableCommandSorting = false

	dagserdeCmd.AddCommand(
		encodeCmd,
		compareCmd,
		skipCmd,
		sortCmd,
	)
	dagserdeCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
}

// Main is the entry point of the dagserde binary.
func Main() {
	if err := Run(os.Args[1:]); err != nil {
		fmt.Fprintf(osStderr, "ERROR: %v\n", err)
		exit.WithCode(clierror.GetExitCode(err))
	}
}

// Run runs the command-line tool with the given arguments.
func Run(args []string) error {
	dagserdeCmd.SetArgs(args)
	return dagserdeCmd.ExecuteContext(context.Background())
}

// inputError marks err as caused by invalid input.
func inputError(err error) error {
	return clierror.NewError(err, exit.InputError())
}

// catchMalformed runs fn and turns the panic raised by reading a
// malformed record into an input error.
func catchMalformed(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = errors.Newf("%v", r)
			}
			err = inputError(errors.Wrap(cause, "malformed record"))
		}
	}()
	fn()
	return nil
}

func setupCommand(cmd *cobra.Command, _ []string) error {
	log.SetVerbosity(int32(cliCtx.verbosity))
	log.SetRedactable(cliCtx.redactable)
	ord, err := resolveOrdering(cmd)
	if err != nil {
		return err
	}
	cliCtx.ord = ord
	log.VEventf(cmd.Context(), 1, "using ordering %s", ord)
	return nil
}
