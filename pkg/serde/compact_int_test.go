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
	"math"
	"testing"
)

func TestCompactIntBoundaries(t *testing.T) {
	testCases := []struct {
		value int64
		size  int
	}{
		{0, 1},
		{1, 1},
		{-1, 1},
		{CompactIntHeadMin, 1},
		{math.MaxInt8, 1},
		{CompactIntHeadMin - 1, 2},
		{math.MinInt8, 2},
		{math.MaxInt8 + 1, 3},
		{math.MinInt16, 3},
		{math.MaxInt16, 3},
		{math.MinInt16 - 1, 5},
		{math.MaxInt16 + 1, 5},
		{math.MinInt32, 5},
		{math.MaxInt32, 5},
		{math.MinInt32 - 1, 9},
		{math.MaxInt32 + 1, 9},
		{math.MinInt64, 9},
		{math.MaxInt64, 9},
	}
	for _, c := range testCases {
		enc := AppendCompactInt(nil, c.value)
		if len(enc) != c.size {
			t.Errorf("%d: expected %d encoded bytes, got %d (%x)", c.value, c.size, len(enc), enc)
		}
		if s := CompactIntSize(int8(enc[0])); s != c.size {
			t.Errorf("%d: expected size %d from header, got %d", c.value, c.size, s)
		}
		cur := MakeCursor(enc)
		if v := DecodeCompactInt(&cur); v != c.value {
			t.Errorf("expected %d, got %d", c.value, v)
		}
		if cur.Offset() != c.size {
			t.Errorf("%d: decode consumed %d bytes, expected %d", c.value, cur.Offset(), c.size)
		}
		skip := MakeCursor(enc)
		SkipCompactInt(&skip)
		if skip.Offset() != c.size {
			t.Errorf("%d: skip consumed %d bytes, expected %d", c.value, skip.Offset(), c.size)
		}
	}
}

func TestCompactIntSizeHeaders(t *testing.T) {
	for h := math.MinInt8; h <= math.MaxInt8; h++ {
		expected := 1
		switch h {
		case CompactIntHeadMin - 1:
			expected = 2
		case CompactIntHeadMin - 2:
			expected = 3
		case CompactIntHeadMin - 3:
			expected = 5
		case CompactIntHeadMin - 4:
			expected = 9
		}
		if s := CompactIntSize(int8(h)); s != expected {
			t.Errorf("header %d: expected size %d, got %d", h, expected, s)
		}
	}
}

// A decoder must accept wider encodings than the producer would choose.
func TestDecodeCompactIntNonMinimal(t *testing.T) {
	testCases := []struct {
		enc   []byte
		value int64
	}{
		{[]byte{compactHead1, 0x05}, 5},
		{[]byte{compactHead2, 0xff, 0xff}, -1},
		{[]byte{compactHead4, 0x07, 0x00, 0x00, 0x00}, 7},
		{[]byte{compactHead8, 0x80, 0, 0, 0, 0, 0, 0, 0}, 128},
	}
	for _, c := range testCases {
		cur := MakeCursor(c.enc)
		if v := DecodeCompactInt(&cur); v != c.value {
			t.Errorf("%x: expected %d, got %d", c.enc, c.value, v)
		}
		if cur.Remaining() != 0 {
			t.Errorf("%x: %d bytes left over", c.enc, cur.Remaining())
		}
	}
}
