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

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// The functions in this file produce the layouts read by the comparators.
// They follow the same conventions as the runtime that writes records:
// values are appended to the supplied buffer and the extended buffer is
// returned.

const (
	booleanNull  byte = 0
	booleanFalse byte = 1
	booleanTrue  byte = 2

	presentHeader byte = 1
)

// AppendNull appends the null encoding of a field of type t.
func AppendNull(b []byte, t Type) []byte {
	switch t {
	case Boolean:
		return append(b, booleanNull)
	case Byte, Short, Int, Long, Float, Double:
		return append(b, byte(nullHeader))
	case Date:
		return binary.LittleEndian.AppendUint32(b, math.MaxUint32)
	case DateTime:
		return binary.LittleEndian.AppendUint64(b, math.MaxUint64)
	case String:
		return AppendCompactInt(b, -1)
	case Decimal:
		return append(b, byte(decimalNull))
	default:
		panic(errors.AssertionFailedf("unknown type %d", t))
	}
}

// AppendBoolean appends a non-null boolean field.
func AppendBoolean(b []byte, v bool) []byte {
	if v {
		return append(b, booleanTrue)
	}
	return append(b, booleanFalse)
}

// AppendByte appends a non-null byte field.
func AppendByte(b []byte, v int8) []byte {
	return append(b, presentHeader, byte(v))
}

// AppendShort appends a non-null short field.
func AppendShort(b []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(append(b, presentHeader), uint16(v))
}

// AppendInt appends a non-null int field.
func AppendInt(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(append(b, presentHeader), uint32(v))
}

// AppendLong appends a non-null long field.
func AppendLong(b []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(append(b, presentHeader), uint64(v))
}

// AppendFloat appends a non-null float field.
func AppendFloat(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(append(b, presentHeader), math.Float32bits(v))
}

// AppendDouble appends a non-null double field.
func AppendDouble(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(append(b, presentHeader), math.Float64bits(v))
}

// AppendDate appends a date field holding the given number of elapsed days.
func AppendDate(b []byte, days int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(days))
}

// AppendDateTime appends a date-time field holding the given number of
// elapsed seconds.
func AppendDateTime(b []byte, seconds int64) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(seconds))
}

// AppendString appends a non-null string field.
func AppendString(b []byte, s string) []byte {
	b = AppendCompactInt(b, int64(len(s)))
	return append(b, s...)
}

// AppendBytes appends a non-null string field holding raw bytes.
func AppendBytes(b []byte, s []byte) []byte {
	b = AppendCompactInt(b, int64(len(s)))
	return append(b, s...)
}

func decimalHeader(negative, compact bool) byte {
	h := DecimalPresentMask
	if !negative {
		h |= DecimalPlusMask
	}
	if compact {
		h |= DecimalCompactMask
	}
	return byte(h)
}

// AppendCompactDecimal appends a decimal field in compact form. The value is
// magnitude×10^-scale, negated when negative is set; magnitude must not be
// negative.
func AppendCompactDecimal(b []byte, negative bool, scale int32, magnitude int64) []byte {
	b = append(b, decimalHeader(negative, true))
	b = AppendCompactInt(b, int64(scale))
	return AppendCompactInt(b, magnitude)
}

// AppendDecimal appends a non-null decimal field. The compact form is used
// whenever the coefficient fits in an int64; larger coefficients are written
// as big-endian magnitude bytes. Only finite values can be encoded.
func AppendDecimal(b []byte, d *apd.Decimal) ([]byte, error) {
	if d.Form != apd.Finite {
		return b, errors.Newf("cannot encode non-finite decimal %s", d)
	}
	negative := d.Negative && !d.IsZero()
	scale := -int64(d.Exponent)
	if d.Coeff.IsInt64() {
		return AppendCompactDecimal(b, negative, int32(scale), d.Coeff.Int64()), nil
	}
	body := d.Coeff.MathBigInt().Bytes()
	b = append(b, decimalHeader(negative, false))
	b = AppendCompactInt(b, scale)
	b = AppendCompactInt(b, int64(len(body)))
	return append(b, body...), nil
}
