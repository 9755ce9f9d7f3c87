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
	"cmp"
	"math"
)

// nullHeader is the presence byte of a null fixed-width value.
const nullHeader int8 = 0

// fixedWidth is the set of raw value types stored after a presence byte.
type fixedWidth interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// layout describes how a fixed-width value is stored.
type layout[T fixedWidth] struct {
	size int
	read func(*Cursor) T
}

var (
	byteLayout   = layout[int8]{size: 1, read: (*Cursor).readInt8}
	shortLayout  = layout[int16]{size: 2, read: (*Cursor).readInt16}
	intLayout    = layout[int32]{size: 4, read: (*Cursor).readInt32}
	longLayout   = layout[int64]{size: 8, read: (*Cursor).readInt64}
	floatLayout  = layout[float32]{size: 4, read: (*Cursor).readFloat32}
	doubleLayout = layout[float64]{size: 8, read: (*Cursor).readFloat64}
)

// compareValue orders a and b with the native operators. NaN is neither
// equal to nor less than anything, so it compares as greater.
func compareValue[T cmp.Ordered](a, b T) int {
	if a == b {
		return 0
	} else if a < b {
		return -1
	}
	return +1
}

// compareNulls orders two operands of which at least one is null.
func compareNulls(nullA, nullB bool) int {
	switch {
	case nullA && nullB:
		return 0
	case nullA:
		return -1
	default:
		return +1
	}
}

func compareNullable[T fixedWidth](a, b *Cursor, l layout[T]) int {
	na, nb := a.readInt8(), b.readInt8()
	if na == nullHeader || nb == nullHeader {
		if na != nullHeader {
			a.Advance(l.size)
		}
		if nb != nullHeader {
			b.Advance(l.size)
		}
		return compareNulls(na == nullHeader, nb == nullHeader)
	}
	return compareValue(l.read(a), l.read(b))
}

func skipNullable[T fixedWidth](c *Cursor, l layout[T]) {
	if c.readInt8() != nullHeader {
		c.Advance(l.size)
	}
}

// CompareBoolean compares two boolean fields. The single stored byte is
// compared as a signed value, which orders null before false before true.
func CompareBoolean(a, b *Cursor) int {
	return compareValue(a.readInt8(), b.readInt8())
}

// SkipBoolean advances past a boolean field.
func SkipBoolean(c *Cursor) {
	c.Advance(1)
}

// CompareByte compares two nullable byte fields.
func CompareByte(a, b *Cursor) int {
	return compareNullable(a, b, byteLayout)
}

// SkipByte advances past a nullable byte field.
func SkipByte(c *Cursor) {
	skipNullable(c, byteLayout)
}

// CompareShort compares two nullable short fields.
func CompareShort(a, b *Cursor) int {
	return compareNullable(a, b, shortLayout)
}

// SkipShort advances past a nullable short field.
func SkipShort(c *Cursor) {
	skipNullable(c, shortLayout)
}

// CompareInt compares two nullable int fields.
func CompareInt(a, b *Cursor) int {
	return compareNullable(a, b, intLayout)
}

// SkipInt advances past a nullable int field.
func SkipInt(c *Cursor) {
	skipNullable(c, intLayout)
}

// CompareLong compares two nullable long fields.
func CompareLong(a, b *Cursor) int {
	return compareNullable(a, b, longLayout)
}

// SkipLong advances past a nullable long field.
func SkipLong(c *Cursor) {
	skipNullable(c, longLayout)
}

// CompareFloat compares two nullable float fields.
func CompareFloat(a, b *Cursor) int {
	return compareNullable(a, b, floatLayout)
}

// SkipFloat advances past a nullable float field.
func SkipFloat(c *Cursor) {
	skipNullable(c, floatLayout)
}

// CompareDouble compares two nullable double fields.
func CompareDouble(a, b *Cursor) int {
	return compareNullable(a, b, doubleLayout)
}

// SkipDouble advances past a nullable double field.
func SkipDouble(c *Cursor) {
	skipNullable(c, doubleLayout)
}

// IsNaN reports whether the field under c is a present float or double NaN.
// It does not advance c. Fields of other types are never NaN.
func IsNaN(t Type, c *Cursor) bool {
	p := *c
	switch t {
	case Float:
		if p.readInt8() == nullHeader {
			return false
		}
		v := p.readFloat32()
		return v != v
	case Double:
		if p.readInt8() == nullHeader {
			return false
		}
		return math.IsNaN(p.readFloat64())
	default:
		return false
	}
}
