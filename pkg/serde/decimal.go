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

// Decimal header bits. A null decimal has a zero header; every non-null
// header written by the producer has DecimalPresentMask set.
const (
	decimalNull        int8 = 0
	DecimalPresentMask int8 = 1 << 0
	DecimalPlusMask    int8 = 1 << 1
	DecimalCompactMask int8 = 1 << 2
)

// CompareDecimal compares two decimal fields.
//
// Only the compact form is ordered by value. A compact decimal sorts before
// a non-compact one of the same sign, and two non-compact decimals of the
// same sign compare as equal whatever their bodies hold.
func CompareDecimal(a, b *Cursor) int {
	ha, hb := a.readInt8(), b.readInt8()
	if ha == decimalNull || hb == decimalNull {
		skipDecimalBody(a, ha)
		skipDecimalBody(b, hb)
		return compareNulls(ha == decimalNull, hb == decimalNull)
	}
	plusA, plusB := ha&DecimalPlusMask != 0, hb&DecimalPlusMask != 0
	if plusA != plusB {
		skipDecimalBody(a, ha)
		skipDecimalBody(b, hb)
		if plusA {
			return +1
		}
		return -1
	}
	compactA, compactB := ha&DecimalCompactMask != 0, hb&DecimalCompactMask != 0
	scaleA := int32(DecodeCompactInt(a))
	scaleB := int32(DecodeCompactInt(b))
	if compactA && compactB {
		magA := DecodeCompactInt(a)
		magB := DecodeCompactInt(b)
		d := CompareCompactDecimal(scaleA, magA, scaleB, magB)
		if plusA {
			return d
		}
		return -d
	}
	skipDecimalMagnitude(a, compactA)
	skipDecimalMagnitude(b, compactB)
	switch {
	case compactA:
		return -1
	case compactB:
		return +1
	default:
		return 0
	}
}

// CompareCompactDecimal compares the magnitudes magA×10^-scaleA and
// magB×10^-scaleB.
//
// The operand with the finer scale is truncated towards the coarser scale
// one decimal digit at a time. If it runs out of digits the coarser operand
// is larger; otherwise the truncated value decides, and on a tie any
// non-zero digit dropped on the way makes the finer operand larger.
func CompareCompactDecimal(scaleA int32, magA int64, scaleB int32, magB int64) int {
	if scaleA == scaleB {
		return compareValue(magA, magB)
	}
	if magA == 0 || magB == 0 {
		return compareNulls(magA == 0, magB == 0)
	}
	if scaleA > scaleB {
		return compareTruncated(int64(scaleA)-int64(scaleB), magA, magB)
	}
	return -compareTruncated(int64(scaleB)-int64(scaleA), magB, magA)
}

// compareTruncated compares fine, which carries steps more fractional digits,
// against coarse.
func compareTruncated(steps int64, fine, coarse int64) int {
	truncated := fine
	dropped := false
	for i := int64(0); i < steps; i++ {
		dropped = dropped || truncated%10 != 0
		truncated /= 10
		if truncated == 0 {
			return -1
		}
	}
	if d := compareValue(truncated, coarse); d != 0 {
		return d
	}
	if dropped {
		return +1
	}
	return 0
}

// SkipDecimal advances past a decimal field.
func SkipDecimal(c *Cursor) {
	skipDecimalBody(c, c.readInt8())
}

func skipDecimalBody(c *Cursor, head int8) {
	if head == decimalNull {
		return
	}
	SkipCompactInt(c)
	skipDecimalMagnitude(c, head&DecimalCompactMask != 0)
}

func skipDecimalMagnitude(c *Cursor, compact bool) {
	if compact {
		SkipCompactInt(c)
		return
	}
	c.Advance(int(DecodeCompactInt(c)))
}
