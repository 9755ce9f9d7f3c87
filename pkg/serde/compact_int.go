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
	"encoding/binary"
	"math"
)

// CompactIntHeadMin is the smallest header byte that is itself the encoded
// value. Header bytes below it select the width of a payload that follows:
// CompactIntHeadMin-1 for one byte, -2 for two, -3 for four and -4 for
// eight.
const CompactIntHeadMin = math.MinInt8 + 4

// MaxCompactIntSize is the largest number of bytes a compact int occupies.
const MaxCompactIntSize = 9

// Header bytes for the multi-byte widths, as unsigned bytes.
const (
	compactHead1 byte = 256 + CompactIntHeadMin - 1
	compactHead2 byte = 256 + CompactIntHeadMin - 2
	compactHead4 byte = 256 + CompactIntHeadMin - 3
	compactHead8 byte = 256 + CompactIntHeadMin - 4
)

// CompactIntSize returns the total encoded size of the compact int whose
// header byte is head.
func CompactIntSize(head int8) int {
	if head >= CompactIntHeadMin {
		return 1
	}
	scale := int(CompactIntHeadMin) - int(head)
	return 1<<(scale-1) + 1
}

// DecodeCompactInt reads a compact int and advances the cursor past it.
func DecodeCompactInt(c *Cursor) int64 {
	head := c.readInt8()
	if head >= CompactIntHeadMin {
		return int64(head)
	}
	switch CompactIntHeadMin - head {
	case 1:
		return int64(c.readInt8())
	case 2:
		return int64(c.readInt16())
	case 3:
		return int64(c.readInt32())
	default:
		return c.readInt64()
	}
}

// SkipCompactInt advances the cursor past a compact int without decoding it.
func SkipCompactInt(c *Cursor) {
	c.Advance(CompactIntSize(c.Peek()))
}

// AppendCompactInt appends the narrowest compact int encoding of v to b.
func AppendCompactInt(b []byte, v int64) []byte {
	switch {
	case v >= CompactIntHeadMin && v <= math.MaxInt8:
		return append(b, byte(int8(v)))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return append(b, compactHead1, byte(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		b = append(b, compactHead2)
		return binary.LittleEndian.AppendUint16(b, uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		b = append(b, compactHead4)
		return binary.LittleEndian.AppendUint32(b, uint32(int32(v)))
	default:
		b = append(b, compactHead8)
		return binary.LittleEndian.AppendUint64(b, uint64(v))
	}
}
