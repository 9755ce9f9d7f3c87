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

import "bytes"

// CompareString compares two string fields byte-wise, treating bytes as
// unsigned. A string sorts before any longer string it is a prefix of.
func CompareString(a, b *Cursor) int {
	la, lb := DecodeCompactInt(a), DecodeCompactInt(b)
	if la < 0 || lb < 0 {
		skipStringBody(a, la)
		skipStringBody(b, lb)
		return compareNulls(la < 0, lb < 0)
	}
	ba, bb := a.Read(int(la)), b.Read(int(lb))
	n := min(len(ba), len(bb))
	if d := bytes.Compare(ba[:n], bb[:n]); d != 0 {
		return d
	}
	return compareValue(la, lb)
}

// SkipString advances past a string field.
func SkipString(c *Cursor) {
	skipStringBody(c, DecodeCompactInt(c))
}

func skipStringBody(c *Cursor, n int64) {
	if n > 0 {
		c.Advance(int(n))
	}
}
