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
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/dagserde/pkg/storage/sortmap"
	"github.com/cockroachdb/dagserde/pkg/util/log"
	"github.com/cockroachdb/dagserde/pkg/util/metric"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "sort records read from standard input",
	Long: `
Reads records from standard input, one per line, as values separated by '|'
optionally followed by a tab and a payload. Prints the records in order, each
followed by its payload. Records that compare equal keep their input order.
With --group, prints each distinct record once with all its payloads.

Inputs larger than --memory-budget are spilled to a store, kept in memory
unless --store-dir is given.`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func runSort(cmd *cobra.Command, _ []string) (resErr error) {
	ctx := logtags.AddTag(cmd.Context(), "sort", nil)
	metrics := sortmap.MakeMetrics()
	opts := sortmap.Options{
		Ordering:     cliCtx.ord,
		MemoryBudget: cliCtx.memoryBudget,
		Metrics:      metrics,
	}
	if cliCtx.storeDir != "" {
		dir, err := os.MkdirTemp(cliCtx.storeDir, "sort-")
		if err != nil {
			return errors.Wrap(err, "creating store directory")
		}
		defer func() {
			if err := os.RemoveAll(dir); err != nil {
				log.Warningf(ctx, "removing %s: %v", dir, err)
			}
		}()
		opts.Dir = dir
	}
	m, err := sortmap.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(ctx); err != nil && resErr == nil {
			resErr = err
		}
	}()

	if err := forEachLine(cmd, func(line string) error {
		record, payload, _ := strings.Cut(line, "\t")
		key, err := cliCtx.ord.Encode(splitValues(record))
		if err != nil {
			return inputError(err)
		}
		return m.Put(ctx, key, []byte(payload))
	}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cliCtx.group {
		err = m.Groups(ctx, func(key []byte, values [][]byte) error {
			_, err := fmt.Fprintf(out, "%s\t%s\n", cliCtx.ord.Format(key), bytes.Join(values, []byte(",")))
			return err
		})
	} else {
		err = printSorted(ctx, cmd, m)
	}
	if err != nil {
		return err
	}
	if cliCtx.printMetrics {
		registry := metric.NewRegistry()
		registry.AddMetricStruct(metrics)
		return registry.PrintAsText(cmd.ErrOrStderr())
	}
	return nil
}

func printSorted(ctx context.Context, cmd *cobra.Command, m *sortmap.Map) error {
	it, err := m.NewIterator(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()
	out := cmd.OutOrStdout()
	for ok := it.First(); ok; ok = it.Next() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", cliCtx.ord.Format(it.Key()), it.Value()); err != nil {
			return err
		}
	}
	return it.Close()
}
