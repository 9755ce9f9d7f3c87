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
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// NullLiteral is the text form of a null field.
const NullLiteral = "NULL"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	secondsPerDay  = 24 * 60 * 60
)

// epoch is the origin of the elapsed days and seconds stored in temporal
// fields.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// AppendValue parses the text form of a field of type t and appends its
// encoding. The literal NULL produces a null field; a string field holding
// the word itself can be written as the quoted literal "NULL".
func AppendValue(b []byte, t Type, text string) ([]byte, error) {
	if strings.EqualFold(text, NullLiteral) {
		if !t.Valid() {
			return b, errors.Newf("unknown type %d", t)
		}
		return AppendNull(b, t), nil
	}
	switch t {
	case Boolean:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return b, errors.Wrapf(err, "parsing %s", t)
		}
		return AppendBoolean(b, v), nil
	case Byte, Short, Int, Long:
		v, err := strconv.ParseInt(text, 10, integerBits(t))
		if err != nil {
			return b, errors.Wrapf(err, "parsing %s", t)
		}
		switch t {
		case Byte:
			return AppendByte(b, int8(v)), nil
		case Short:
			return AppendShort(b, int16(v)), nil
		case Int:
			return AppendInt(b, int32(v)), nil
		default:
			return AppendLong(b, v), nil
		}
	case Float:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return b, errors.Wrapf(err, "parsing %s", t)
		}
		return AppendFloat(b, float32(v)), nil
	case Double:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return b, errors.Wrapf(err, "parsing %s", t)
		}
		return AppendDouble(b, v), nil
	case Date:
		days, err := parseDate(text)
		if err != nil {
			return b, err
		}
		return AppendDate(b, days), nil
	case DateTime:
		seconds, err := parseDateTime(text)
		if err != nil {
			return b, err
		}
		return AppendDateTime(b, seconds), nil
	case String:
		if len(text) >= 2 && text[0] == '"' {
			s, err := strconv.Unquote(text)
			if err != nil {
				return b, errors.Wrapf(err, "parsing %s", t)
			}
			text = s
		}
		return AppendString(b, text), nil
	case Decimal:
		d, _, err := apd.NewFromString(text)
		if err != nil {
			return b, errors.Wrapf(err, "parsing %s", t)
		}
		return AppendDecimal(b, d)
	default:
		return b, errors.Newf("unknown type %d", t)
	}
}

func integerBits(t Type) int {
	switch t {
	case Byte:
		return 8
	case Short:
		return 16
	case Int:
		return 32
	default:
		return 64
	}
}

func parseDate(text string) (int32, error) {
	if v, err := strconv.ParseInt(text, 10, 32); err == nil {
		return int32(v), nil
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", Date)
	}
	return int32((t.Unix() - epoch) / secondsPerDay), nil
}

func parseDateTime(text string) (int64, error) {
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, nil
	}
	t, err := time.Parse(dateTimeLayout, text)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, text); err != nil {
			return 0, errors.Wrapf(err, "parsing %s", DateTime)
		}
	}
	return t.Unix() - epoch, nil
}

// FormatValue decodes the field of type t under c into its text form and
// advances c past it. It is meant for diagnostics and allocates freely.
func FormatValue(t Type, c *Cursor) string {
	switch t {
	case Boolean:
		switch v := c.readInt8(); byte(v) {
		case booleanNull:
			return NullLiteral
		case booleanFalse:
			return "false"
		case booleanTrue:
			return "true"
		default:
			return fmt.Sprintf("boolean(%d)", v)
		}
	case Byte, Short, Int, Long, Float, Double:
		if c.readInt8() == nullHeader {
			return NullLiteral
		}
		switch t {
		case Byte:
			return strconv.FormatInt(int64(c.readInt8()), 10)
		case Short:
			return strconv.FormatInt(int64(c.readInt16()), 10)
		case Int:
			return strconv.FormatInt(int64(c.readInt32()), 10)
		case Long:
			return strconv.FormatInt(c.readInt64(), 10)
		case Float:
			return strconv.FormatFloat(float64(c.readFloat32()), 'g', -1, 32)
		default:
			return strconv.FormatFloat(c.readFloat64(), 'g', -1, 64)
		}
	case Date:
		days := c.readInt32()
		if days < 0 {
			return NullLiteral
		}
		return time.Unix(epoch+int64(days)*secondsPerDay, 0).UTC().Format(dateLayout)
	case DateTime:
		seconds := c.readInt64()
		if seconds < 0 {
			return NullLiteral
		}
		return time.Unix(epoch+seconds, 0).UTC().Format(dateTimeLayout)
	case String:
		n := DecodeCompactInt(c)
		if n < 0 {
			return NullLiteral
		}
		s := string(c.Read(int(n)))
		if strings.EqualFold(s, NullLiteral) {
			return strconv.Quote(s)
		}
		return s
	case Decimal:
		return formatDecimal(c)
	default:
		panic(errors.AssertionFailedf("unknown type %d", t))
	}
}

func formatDecimal(c *Cursor) string {
	head := c.readInt8()
	if head == decimalNull {
		return NullLiteral
	}
	exponent := -int32(DecodeCompactInt(c))
	var d *apd.Decimal
	if head&DecimalCompactMask != 0 {
		d = apd.New(DecodeCompactInt(c), exponent)
	} else {
		body := c.Read(int(DecodeCompactInt(c)))
		coeff := new(apd.BigInt).SetMathBigInt(new(big.Int).SetBytes(body))
		d = apd.NewWithBigInt(coeff, exponent)
	}
	d.Negative = head&DecimalPlusMask == 0
	return d.String()
}
