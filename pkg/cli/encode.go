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
	"bufio"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// valueSeparator separates the values of a record in text input.
const valueSeparator = "|"

var encodeCmd = &cobra.Command{
	Use:   "encode [values...]",
	Short: "encode text values into a record",
	Long: `
Encodes one value per column of the ordering into a record and prints it in
hex. Without arguments, records are read from standard input, one per line,
with their values separated by '|'. The literal NULL encodes a null value.`,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		key, err := cliCtx.ord.Encode(args)
		if err != nil {
			return inputError(err)
		}
		fmt.Fprintf(out, "%x\n", key)
		return nil
	}
	return forEachLine(cmd, func(line string) error {
		key, err := cliCtx.ord.Encode(splitValues(line))
		if err != nil {
			return inputError(err)
		}
		fmt.Fprintf(out, "%x\n", key)
		return nil
	})
}

// splitValues splits a line of text input into trimmed values.
func splitValues(line string) []string {
	values := strings.Split(line, valueSeparator)
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}

// decodeRecord parses a hex encoded record.
func decodeRecord(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, inputError(errors.Wrapf(err, "decoding record %q", s))
	}
	if len(b) == 0 {
		return nil, inputError(errors.New("empty record"))
	}
	return b, nil
}

// forEachLine calls fn for every non-empty line of the command's input.
func forEachLine(cmd *cobra.Command, fn func(line string) error) error {
	if isInteractive && cmd.InOrStdin() == osStdin {
		fmt.Fprintln(cmd.ErrOrStderr(), "# Reading records from standard input, one per line. End with Ctrl-D.")
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(nil, 1<<20)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return errors.Wrapf(err, "line %d", lineNum)
		}
	}
	return errors.Wrap(scanner.Err(), "reading input")
}
