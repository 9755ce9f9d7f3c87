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
	"fmt"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <record> <record>",
	Short: "compare two records",
	Long: `
Compares two hex encoded records under the ordering and prints -1, 0 or 1
when the first record sorts before, together with, or after the second.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := decodeRecord(args[0])
	if err != nil {
		return err
	}
	b, err := decodeRecord(args[1])
	if err != nil {
		return err
	}
	var result int
	if err := catchMalformed(func() { result = cliCtx.ord.Compare(a, b) }); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result)
	return nil
}

var skipCmd = &cobra.Command{
	Use:   "skip <record>",
	Short: "decode a record and report its length",
	Long: `
Walks a hex encoded record under the ordering and prints the number of bytes
it occupies followed by its decoded values. Bytes after the record are
ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkip,
}

func runSkip(cmd *cobra.Command, args []string) error {
	key, err := decodeRecord(args[0])
	if err != nil {
		return err
	}
	var n int
	var formatted string
	if err := catchMalformed(func() {
		n = cliCtx.ord.KeyLen(key)
		formatted = cliCtx.ord.Format(key)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, formatted)
	return nil
}
