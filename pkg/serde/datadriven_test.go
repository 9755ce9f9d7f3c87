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

package serde

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDataDriven exercises the codec through the files in testdata. The
// supported commands are:
//
//	encode type=<type>          encodes each input line, printing the bytes
//	compact-int                 encodes each input line as a compact int
//	compare type=<type>         compares the first input line to the second
//	skip                        encodes "<type> <value>" lines back to back
//	                            and prints the offset after skipping each
//	format type=<type>          encodes and decodes each input line
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			lines := strings.Split(d.Input, "\n")
			var out strings.Builder
			switch d.Cmd {
			case "encode":
				typ := scanType(t, d)
				for _, line := range lines {
					enc, err := AppendValue(nil, typ, line)
					if err != nil {
						fmt.Fprintf(&out, "error: %v\n", err)
						continue
					}
					fmt.Fprintf(&out, "% x\n", enc)
				}

			case "compact-int":
				for _, line := range lines {
					v, err := strconv.ParseInt(line, 10, 64)
					if err != nil {
						d.Fatalf(t, "%v", err)
					}
					fmt.Fprintf(&out, "% x\n", AppendCompactInt(nil, v))
				}

			case "compare":
				typ := scanType(t, d)
				if len(lines) != 2 {
					d.Fatalf(t, "compare expects two values, got %d", len(lines))
				}
				a, b := encodeLine(t, d, typ, lines[0]), encodeLine(t, d, typ, lines[1])
				ca, cb := MakeCursor(a), MakeCursor(b)
				r := Compare(typ, &ca, &cb)
				fmt.Fprintf(&out, "%d a=%d b=%d\n", r, ca.Offset(), cb.Offset())

			case "skip":
				var buf []byte
				var types []Type
				for _, line := range lines {
					name, value, _ := strings.Cut(line, " ")
					typ, err := ParseType(name)
					if err != nil {
						d.Fatalf(t, "%v", err)
					}
					buf = encodeLineTo(t, d, buf, typ, value)
					types = append(types, typ)
				}
				c := MakeCursor(buf)
				for _, typ := range types {
					Skip(typ, &c)
					fmt.Fprintf(&out, "%d\n", c.Offset())
				}

			case "format":
				typ := scanType(t, d)
				for _, line := range lines {
					c := MakeCursor(encodeLine(t, d, typ, line))
					fmt.Fprintf(&out, "%s\n", FormatValue(typ, &c))
				}

			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}
			return out.String()
		})
	})
}

func scanType(t *testing.T, d *datadriven.TestData) Type {
	var name string
	d.ScanArgs(t, "type", &name)
	typ, err := ParseType(name)
	if err != nil {
		d.Fatalf(t, "%v", err)
	}
	return typ
}

func encodeLine(t *testing.T, d *datadriven.TestData, typ Type, text string) []byte {
	return encodeLineTo(t, d, nil, typ, text)
}

func encodeLineTo(t *testing.T, d *datadriven.TestData, b []byte, typ Type, text string) []byte {
	b, err := AppendValue(b, typ, text)
	if err != nil {
		d.Fatalf(t, "%v", err)
	}
	return b
}
