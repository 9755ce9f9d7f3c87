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


// Package keycmp orders whole serialized records by a sequence of typed,
// directed columns.
package keycmp

import (
	"strings"

	"github.com/cockroachdb/dagserde/pkg/serde"
	"github.com/cockroachdb/dagserde/pkg/util/encoding"
	"github.com/cockroachdb/errors"
)

// Column is one term of an Ordering.
type Column struct {
	Type      serde.Type
	Direction encoding.Direction
}

// String returns the column in the form accepted by ParseOrdering.
func (c Column) String() string {
	return c.Direction.String() + c.Type.String()
}

// Ordering is a sequence of columns. Records are ordered by their first
// column, ties broken by the next one, and so on.
type Ordering []Column

// ParseOrdering parses a comma separated list of type names, each
// optionally prefixed with + (ascending, the default) or - (descending),
// e.g. "+int,-string,decimal".
func ParseOrdering(s string) (Ordering, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty ordering")
	}
	parts := strings.Split(s, ",")
	ord := make(Ordering, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		dir := encoding.Ascending
		switch {
		case strings.HasPrefix(part, "+"):
			part = part[1:]
		case strings.HasPrefix(part, "-"):
			dir = encoding.Descending
			part = part[1:]
		}
		typ, err := serde.ParseType(part)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing ordering %q", s)
		}
		ord = append(ord, Column{Type: typ, Direction: dir})
	}
	return ord, nil
}

// String returns the ordering in the form accepted by ParseOrdering.
func (o Ordering) String() string {
	var b strings.Builder
	for i, c := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// SafeValue implements redact.SafeValue. Orderings only name types.
func (Ordering) SafeValue() {}

// CompareCursors compares the records under a and b. The first column that
// differs decides the result; both cursors are always left past the whole
// record.
func (o Ordering) CompareCursors(a, b *serde.Cursor) int {
	return o.compareCursors(a, b, false /* total */)
}

// CompareCursorsTotal is like CompareCursors except that a float or double
// NaN sorts after every other value of its column, nulls included, and
// equal to another NaN, so the result is a total order.
func (o Ordering) CompareCursorsTotal(a, b *serde.Cursor) int {
	return o.compareCursors(a, b, true /* total */)
}

func (o Ordering) compareCursors(a, b *serde.Cursor, total bool) int {
	for i, c := range o {
		var d int
		nanA := total && serde.IsNaN(c.Type, a)
		nanB := total && serde.IsNaN(c.Type, b)
		if nanA || nanB {
			serde.Skip(c.Type, a)
			serde.Skip(c.Type, b)
			d = compareNaN(nanA, nanB)
		} else {
			d = serde.Compare(c.Type, a, b)
		}
		if d != 0 {
			for _, rest := range o[i+1:] {
				serde.Skip(rest.Type, a)
				serde.Skip(rest.Type, b)
			}
			return c.Direction.Apply(d)
		}
	}
	return 0
}

func compareNaN(nanA, nanB bool) int {
	switch {
	case nanA == nanB:
		return 0
	case nanA:
		return +1
	default:
		return -1
	}
}

// Compare compares the records at the start of a and b.
func (o Ordering) Compare(a, b []byte) int {
	ca, cb := serde.MakeCursor(a), serde.MakeCursor(b)
	return o.CompareCursors(&ca, &cb)
}

// CompareTotal compares the records at the start of a and b with
// CompareCursorsTotal.
func (o Ordering) CompareTotal(a, b []byte) int {
	ca, cb := serde.MakeCursor(a), serde.MakeCursor(b)
	return o.CompareCursorsTotal(&ca, &cb)
}

// Less reports whether the record in a sorts before the one in b.
func (o Ordering) Less(a, b []byte) bool {
	return o.Compare(a, b) < 0
}

// KeyLen returns the number of bytes taken by the record at the start of
// key.
func (o Ordering) KeyLen(key []byte) int {
	c := serde.MakeCursor(key)
	for _, col := range o {
		serde.Skip(col.Type, &c)
	}
	return c.Offset()
}

// Format decodes the record at the start of key into a string of the form
// /v1/v2/... for diagnostics.
func (o Ordering) Format(key []byte) string {
	var b strings.Builder
	c := serde.MakeCursor(key)
	for _, col := range o {
		b.WriteByte('/')
		b.WriteString(serde.FormatValue(col.Type, &c))
	}
	return b.String()
}

// Encode parses one text value per column and appends their encodings
// into a new record.
func (o Ordering) Encode(values []string) ([]byte, error) {
	if len(values) != len(o) {
		return nil, errors.Newf("ordering %s has %d columns, got %d values", o, len(o), len(values))
	}
	var key []byte
	for i, v := range values {
		var err error
		if key, err = serde.AppendValue(key, o[i].Type, v); err != nil {
			return nil, errors.Wrapf(err, "column %d", i+1)
		}
	}
	return key, nil
}
