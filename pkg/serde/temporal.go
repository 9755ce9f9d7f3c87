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

type temporal interface {
	~int32 | ~int64
}

// compareUnsigned orders raw temporal values as unsigned magnitudes, except
// that two values with the sign bit set are always equal. The producer
// writes null temporal values as -1, so this is what makes two nulls equal
// and places null first.
func compareUnsigned[T temporal](a, b *Cursor, l layout[T]) int {
	va, vb := l.read(a), l.read(b)
	if va < 0 || vb < 0 {
		return compareNulls(va < 0, vb < 0)
	}
	return compareValue(va, vb)
}

// CompareDate compares two date fields.
func CompareDate(a, b *Cursor) int {
	return compareUnsigned(a, b, intLayout)
}

// SkipDate advances past a date field.
func SkipDate(c *Cursor) {
	c.Advance(intLayout.size)
}

// CompareDateTime compares two date-time fields.
func CompareDateTime(a, b *Cursor) int {
	return compareUnsigned(a, b, longLayout)
}

// SkipDateTime advances past a date-time field.
func SkipDateTime(c *Cursor) {
	c.Advance(longLayout.size)
}
