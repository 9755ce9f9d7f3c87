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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Type identifies the layout of a serialized field.
type Type uint8

// Type values. The zero value is not a valid type.
const (
	_ Type = iota
	Boolean
	Byte
	Short
	Int
	Long
	Float
	Double
	Date
	DateTime
	String
	Decimal
	numTypes
)

// CompareFunc compares the fields under two cursors and advances both past
// them.
type CompareFunc func(a, b *Cursor) int

// SkipFunc advances a cursor past one field.
type SkipFunc func(c *Cursor)

type typeInfo struct {
	name    string
	compare CompareFunc
	skip    SkipFunc
}

var types = [numTypes]typeInfo{
	Boolean:  {"boolean", CompareBoolean, SkipBoolean},
	Byte:     {"byte", CompareByte, SkipByte},
	Short:    {"short", CompareShort, SkipShort},
	Int:      {"int", CompareInt, SkipInt},
	Long:     {"long", CompareLong, SkipLong},
	Float:    {"float", CompareFloat, SkipFloat},
	Double:   {"double", CompareDouble, SkipDouble},
	Date:     {"date", CompareDate, SkipDate},
	DateTime: {"date_time", CompareDateTime, SkipDateTime},
	String:   {"string", CompareString, SkipString},
	Decimal:  {"decimal", CompareDecimal, SkipDecimal},
}

// Types returns every valid type in tag order.
func Types() []Type {
	ts := make([]Type, 0, numTypes-1)
	for t := Boolean; t < numTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

// Valid reports whether t is one of the defined types.
func (t Type) Valid() bool {
	return t > 0 && t < numTypes
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return types[t].name
}

// SafeValue implements redact.SafeValue.
func (Type) SafeValue() {}

var _ redact.SafeValue = Type(0)

// ParseType returns the type with the given name. Names are matched
// case-insensitively and "datetime" is accepted for date_time.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "datetime" {
		return DateTime, nil
	}
	for t := Boolean; t < numTypes; t++ {
		if types[t].name == n {
			return t, nil
		}
	}
	return 0, errors.Newf("unknown field type %q", name)
}

// Comparator returns the compare function for t.
func (t Type) Comparator() CompareFunc {
	return types[t].compare
}

// Skipper returns the skip function for t.
func (t Type) Skipper() SkipFunc {
	return types[t].skip
}

// Compare compares one field of type t under each cursor and advances both
// cursors past it. The result is -1, 0 or +1.
func Compare(t Type, a, b *Cursor) int {
	return types[t].compare(a, b)
}

// Skip advances c past one field of type t.
func Skip(t Type, c *Cursor) {
	types[t].skip(c)
}

// CheckedCompare is Compare with a consistency check: when the fields
// compare equal, each field is skipped again from its starting offset and
// the skipped width must match the width Compare consumed.
func CheckedCompare(t Type, a, b *Cursor) (int, error) {
	skipA, skipB := *a, *b
	r := Compare(t, a, b)
	if r != 0 {
		return r, nil
	}
	fromA, fromB := skipA.off, skipB.off
	Skip(t, &skipA)
	Skip(t, &skipB)
	if skipA.off != a.off || skipB.off != b.off {
		return r, errors.AssertionFailedf(
			"%s: compare consumed (%d, %d) bytes but skip consumed (%d, %d)",
			t, a.off-fromA, b.off-fromB, skipA.off-fromA, skipB.off-fromB)
	}
	return r, nil
}
