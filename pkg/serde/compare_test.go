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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeValue(t *testing.T, typ Type, text string) []byte {
	t.Helper()
	b, err := AppendValue(nil, typ, text)
	require.NoError(t, err)
	return b
}

// checkCompare compares a against b in both directions and verifies that
// both cursors end exactly past the encoded values.
func checkCompare(t *testing.T, typ Type, a, b []byte, expected int) {
	t.Helper()
	ca, cb := MakeCursor(a), MakeCursor(b)
	r, err := CheckedCompare(typ, &ca, &cb)
	require.NoError(t, err)
	require.Equal(t, expected, r, "compare %x %x", a, b)
	require.Equal(t, len(a), ca.Offset())
	require.Equal(t, len(b), cb.Offset())

	ca, cb = MakeCursor(b), MakeCursor(a)
	require.Equal(t, -expected, Compare(typ, &ca, &cb), "compare %x %x", b, a)
	require.Equal(t, len(b), ca.Offset())
	require.Equal(t, len(a), cb.Offset())
}

// checkOrdered verifies that the groups of text values are listed in
// ascending order and that the values inside a group compare equal.
func checkOrdered(t *testing.T, typ Type, groups [][]string) {
	t.Helper()
	for i, gi := range groups {
		for j, gj := range groups {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = +1
			}
			for _, x := range gi {
				for _, y := range gj {
					t.Run(fmt.Sprintf("%s/%s", x, y), func(t *testing.T) {
						checkCompare(t, typ, encodeValue(t, typ, x), encodeValue(t, typ, y), expected)
					})
				}
			}
		}
	}
}

func TestCompareBoolean(t *testing.T) {
	checkOrdered(t, Boolean, [][]string{{"NULL"}, {"false"}, {"true"}})
}

func TestCompareNumeric(t *testing.T) {
	testCases := []struct {
		typ    Type
		groups [][]string
	}{
		{Byte, [][]string{{"NULL"}, {"-128"}, {"-1"}, {"0"}, {"1"}, {"127"}}},
		{Short, [][]string{{"NULL"}, {"-32768"}, {"-1"}, {"0"}, {"255"}, {"32767"}}},
		{Int, [][]string{{"NULL"}, {"-2147483648"}, {"-1"}, {"0"}, {"65536"}, {"2147483647"}}},
		{Long, [][]string{{"NULL"}, {"-9223372036854775808"}, {"-1"}, {"0"}, {"4294967296"}, {"9223372036854775807"}}},
		{Float, [][]string{{"NULL"}, {"-Inf"}, {"-1.5"}, {"-0", "0"}, {"1e-30"}, {"1"}, {"3.4e38"}, {"+Inf"}}},
		{Double, [][]string{{"NULL"}, {"-Inf"}, {"-1e300"}, {"-0", "0"}, {"5e-324"}, {"1"}, {"1.0000000000000002"}, {"+Inf"}}},
	}
	for _, c := range testCases {
		t.Run(c.typ.String(), func(t *testing.T) {
			checkOrdered(t, c.typ, c.groups)
		})
	}
}

func TestCompareNaN(t *testing.T) {
	nan := AppendDouble(nil, math.NaN())
	one := AppendDouble(nil, 1)
	for _, c := range []struct {
		a, b []byte
	}{{nan, one}, {one, nan}, {nan, nan}} {
		ca, cb := MakeCursor(c.a), MakeCursor(c.b)
		require.Equal(t, +1, CompareDouble(&ca, &cb))
		require.Equal(t, len(c.a), ca.Offset())
		require.Equal(t, len(c.b), cb.Offset())
	}
}

func TestIsNaN(t *testing.T) {
	for _, c := range []struct {
		typ      Type
		b        []byte
		expected bool
	}{
		{Double, AppendDouble(nil, math.NaN()), true},
		{Double, AppendDouble(nil, math.Inf(1)), false},
		{Double, AppendNull(nil, Double), false},
		{Float, AppendFloat(nil, float32(math.NaN())), true},
		{Float, AppendFloat(nil, 2.5), false},
		{Long, AppendLong(nil, -1), false},
	} {
		cur := MakeCursor(c.b)
		require.Equal(t, c.expected, IsNaN(c.typ, &cur), "%s %x", c.typ, c.b)
		require.Zero(t, cur.Offset())
	}
}

func TestCompareTemporal(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		checkOrdered(t, Date, [][]string{
			{"NULL"}, {"0001-01-01", "0"}, {"1"}, {"1970-01-01", "719162"}, {"2024-02-29"},
		})
	})
	t.Run("date_time", func(t *testing.T) {
		checkOrdered(t, DateTime, [][]string{
			{"NULL"}, {"0001-01-01 00:00:00", "0"}, {"1970-01-01 00:00:00", "1970-01-01T00:00:00Z"},
			{"1970-01-01 00:00:01"}, {"2024-02-29 12:30:00"},
		})
	})
	t.Run("sign bit", func(t *testing.T) {
		// Any two values with the sign bit set are equal, whatever their
		// magnitudes.
		checkCompare(t, Date, AppendDate(nil, math.MinInt32), AppendDate(nil, -1), 0)
		checkCompare(t, Date, AppendDate(nil, -2), AppendDate(nil, 0), -1)
		checkCompare(t, DateTime, AppendDateTime(nil, math.MinInt64), AppendDateTime(nil, -7), 0)
		checkCompare(t, DateTime, AppendDateTime(nil, math.MaxInt64), AppendDateTime(nil, -7), +1)
	})
}

func TestCompareString(t *testing.T) {
	checkOrdered(t, String, [][]string{
		{"NULL"}, {`""`}, {"AAA"}, {"AAB"}, {"ABA"}, {"a"}, {"ab"}, {"abc"}, {"abd"}, {"b"}, {"日本"},
	})

	testCases := []struct {
		a, b     []byte
		expected int
	}{
		{AppendString(nil, "abc"), AppendString(nil, "abd"), -1},
		{AppendString(nil, "ab"), AppendString(nil, "abc"), -1},
		{AppendString(nil, ""), AppendString(nil, ""), 0},
		{AppendNull(nil, String), AppendString(nil, ""), -1},
		{AppendNull(nil, String), AppendNull(nil, String), 0},
		// Bytes compare unsigned.
		{AppendBytes(nil, []byte{0x01}), AppendBytes(nil, []byte{0xff}), -1},
		{AppendBytes(nil, []byte{0x7f, 0x00}), AppendBytes(nil, []byte{0x80}), -1},
		// A long string uses a multi-byte length.
		{AppendBytes(nil, make([]byte, 300)), AppendBytes(nil, make([]byte, 299)), +1},
	}
	for _, c := range testCases {
		checkCompare(t, String, c.a, c.b, c.expected)
	}
}

func TestCompareDecimal(t *testing.T) {
	checkOrdered(t, Decimal, [][]string{
		{"NULL"},
		{"-100"},
		{"-2"},
		{"-1.1", "-1.10"},
		{"-1"},
		{"0", "0.000", "-0", "0E+2"},
		{"0.05", "0.050"},
		{"1", "1.0", "1.00", "0.1E+1"},
		{"1.1", "1.10"},
		{"2"},
		{"12.34"},
		{"100", "1E+2"},
		{"9223372036854775807"},
	})
}

func TestCompareDecimalNonCompact(t *testing.T) {
	big1 := encodeValue(t, Decimal, "123456789012345678901234567890")
	big2 := encodeValue(t, Decimal, "99999999999999999999.5")
	negBig := encodeValue(t, Decimal, "-123456789012345678901234567890")
	require.Zero(t, big1[0]&byte(DecimalCompactMask))

	// Non-compact values of the same sign are not ordered by value.
	checkCompare(t, Decimal, big1, big2, 0)
	// A compact value sorts before a non-compact one of the same sign,
	// whichever the sign.
	checkCompare(t, Decimal, encodeValue(t, Decimal, "5"), big1, -1)
	checkCompare(t, Decimal, encodeValue(t, Decimal, "-5"), negBig, -1)
	// The sign still applies.
	checkCompare(t, Decimal, negBig, encodeValue(t, Decimal, "0"), -1)
	checkCompare(t, Decimal, negBig, big2, -1)
	checkCompare(t, Decimal, encodeValue(t, Decimal, "NULL"), negBig, -1)
}

func TestCompareCompactDecimal(t *testing.T) {
	testCases := []struct {
		scaleA   int32
		magA     int64
		scaleB   int32
		magB     int64
		expected int
	}{
		{0, 5, 1, 50, 0},
		{0, 5, 1, 51, -1},
		{0, 0, 3, 0, 0},
		{0, 0, 3, 1, -1},
		{3, 1, 0, 0, +1},
		{2, 7, 2, 9, -1},
		{2, 110, 0, 1, +1},
		{2, 110, 0, 2, -1},
		{0, 1, 2, 5, +1},
		{-2, 3, 0, 300, 0},
		{-2, 3, 0, 301, -1},
		{0, math.MaxInt64, 18, math.MaxInt64, +1},
		{1, 10, 1000, 1, +1},
	}
	for _, c := range testCases {
		if r := CompareCompactDecimal(c.scaleA, c.magA, c.scaleB, c.magB); r != c.expected {
			t.Errorf("(%d, %d) vs (%d, %d): expected %d, got %d",
				c.scaleA, c.magA, c.scaleB, c.magB, c.expected, r)
		}
		if r := CompareCompactDecimal(c.scaleB, c.magB, c.scaleA, c.magA); r != -c.expected {
			t.Errorf("(%d, %d) vs (%d, %d): expected %d, got %d",
				c.scaleB, c.magB, c.scaleA, c.magA, -c.expected, r)
		}
	}
}

func TestCompareNullOrdering(t *testing.T) {
	for _, typ := range Types() {
		if typ == Boolean {
			continue
		}
		t.Run(typ.String(), func(t *testing.T) {
			null := AppendNull(nil, typ)
			var value string
			switch typ {
			case Date:
				value = "2000-01-01"
			case DateTime:
				value = "2000-01-01 00:00:00"
			case String:
				value = `""`
			default:
				value = "0"
			}
			present := encodeValue(t, typ, value)
			checkCompare(t, typ, null, null, 0)
			checkCompare(t, typ, null, present, -1)
			checkCompare(t, typ, present, null, +1)
		})
	}
}

func TestCompareRecord(t *testing.T) {
	fields := []Type{Int, String, Decimal}
	makeRecord := func(unscaled int64) []byte {
		b := AppendInt(nil, 5)
		b = AppendString(b, "foo")
		return AppendCompactDecimal(b, false, 2, unscaled)
	}
	a, b := makeRecord(1234), makeRecord(1235)
	require.Equal(t, len(a), len(b))

	ca, cb := MakeCursor(a), MakeCursor(b)
	var results []int
	for _, typ := range fields {
		results = append(results, Compare(typ, &ca, &cb))
	}
	require.Equal(t, []int{0, 0, -1}, results)
	require.Equal(t, len(a), ca.Offset())
	require.Equal(t, len(b), cb.Offset())

	// Skipping every field lands at the same offset.
	c := MakeCursor(a)
	for _, typ := range fields {
		Skip(typ, &c)
	}
	require.Equal(t, len(a), c.Offset())
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
	typ, err := ParseType(" DateTime ")
	require.NoError(t, err)
	require.Equal(t, DateTime, typ)

	_, err = ParseType("varchar")
	require.Error(t, err)
	require.Equal(t, "unknown", Type(0).String())
	require.False(t, numTypes.Valid())
}

func TestCursorAtOffset(t *testing.T) {
	a := AppendString(nil, "prefix")
	b := AppendString(nil, "other prefix")
	offA, offB := len(a), len(b)
	a = AppendLong(a, 7)
	b = AppendLong(b, 9)

	ca, cb := MakeCursorAt(a, offA), MakeCursorAt(b, offB)
	require.Equal(t, -1, Long.Comparator()(&ca, &cb))
	require.Zero(t, ca.Remaining())
	require.Zero(t, cb.Remaining())

	c := MakeCursorAt(a, offA)
	Long.Skipper()(&c)
	require.Equal(t, len(a), c.Offset())
}
