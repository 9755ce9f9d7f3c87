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


package sortmap

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/dagserde/pkg/keycmp"
	"github.com/cockroachdb/dagserde/pkg/serde"
	"github.com/cockroachdb/dagserde/pkg/util/encoding"
	"github.com/cockroachdb/pebble"
)

// seqSuffixLen is the length of the sequence number appended to every
// stored key.
const seqSuffixLen = 8

// compareKeys orders stored keys by the record they start with and then by
// the remaining bytes, which hold the sequence suffix. NaNs sort last in
// their column so that keys holding them keep a strict order.
func compareKeys(ord keycmp.Ordering, a, b []byte) int {
	if len(a) == 0 || len(b) == 0 {
		return bytes.Compare(a, b)
	}
	ca, cb := serde.MakeCursor(a), serde.MakeCursor(b)
	if c := ord.CompareCursorsTotal(&ca, &cb); c != 0 {
		return c
	}
	return bytes.Compare(ca.Rest(), cb.Rest())
}

// Comparer returns a pebble comparer for keys made of a record in ord
// followed by a sequence suffix. Records that compare equal under ord but
// differ in bytes, such as the decimals 5 and 5.0, are ordered by their
// suffixes only, which keeps them in insertion order.
func Comparer(ord keycmp.Ordering) *pebble.Comparer {
	return &pebble.Comparer{
		Compare: func(a, b []byte) int {
			return compareKeys(ord, a, b)
		},
		Equal: func(a, b []byte) bool {
			return compareKeys(ord, a, b) == 0
		},
		// Fixed-width prefixes of encoded records do not sort like the
		// records, so no abbreviation is consistent with Compare.
		AbbreviatedKey: func(key []byte) uint64 {
			return 0
		},
		FormatKey: func(key []byte) fmt.Formatter {
			return formattedKey{ord: ord, key: key}
		},
		Separator: func(dst, a, b []byte) []byte {
			return append(dst, a...)
		},
		Successor: func(dst, a []byte) []byte {
			return append(dst, a...)
		},
		ImmediateSuccessor: func(dst, a []byte) []byte {
			return append(append(dst, a...), 0)
		},
		// The whole key is the prefix: pebble never sees a bare suffix.
		Split: func(key []byte) int {
			return len(key)
		},
		Name: "dagserde.ordering(" + ord.String() + ")",
	}
}

type formattedKey struct {
	ord keycmp.Ordering
	key []byte
}

// Format implements fmt.Formatter.
func (k formattedKey) Format(s fmt.State, _ rune) {
	record, seq, err := encoding.SplitUint64Suffix(k.key)
	if err != nil || len(record) == 0 {
		fmt.Fprintf(s, "%x", k.key)
		return
	}
	fmt.Fprintf(s, "%s#%d", k.ord.Format(record), seq)
}
