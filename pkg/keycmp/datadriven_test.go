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


package keycmp

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestOrderingDataDriven runs the files in testdata. Every command takes
// the ordering on its first input line and one record per following line,
// with values separated by '|'.
//
//	compare   compares the two records
//	sort      sorts the records and prints them
//	format    prints each record and its length
//	encode    prints the encoded bytes of each record
func TestOrderingDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/ordering", func(t *testing.T, d *datadriven.TestData) string {
		lines := strings.Split(d.Input, "\n")
		ord, err := ParseOrdering(lines[0])
		if err != nil {
			return fmt.Sprintf("error: %v\n", err)
		}
		var out strings.Builder
		var keys [][]byte
		for _, line := range lines[1:] {
			key, err := ord.Encode(strings.Split(line, "|"))
			if err != nil {
				fmt.Fprintf(&out, "error: %v\n", err)
				continue
			}
			keys = append(keys, key)
		}
		switch d.Cmd {
		case "compare":
			if len(keys) != 2 {
				d.Fatalf(t, "compare expects two records, got %d", len(keys))
			}
			fmt.Fprintf(&out, "%d a=%d b=%d\n", ord.Compare(keys[0], keys[1]),
				ord.KeyLen(keys[0]), ord.KeyLen(keys[1]))
		case "sort":
			sort.SliceStable(keys, func(i, j int) bool { return ord.Less(keys[i], keys[j]) })
			for _, k := range keys {
				fmt.Fprintf(&out, "%s\n", ord.Format(k))
			}
		case "format":
			for _, k := range keys {
				fmt.Fprintf(&out, "%s len=%d\n", ord.Format(k), ord.KeyLen(k))
			}
		case "encode":
			for _, k := range keys {
				fmt.Fprintf(&out, "% x\n", k)
			}
		default:
			d.Fatalf(t, "unknown command %s", d.Cmd)
		}
		return out.String()
	})
}
