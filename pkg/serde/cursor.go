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

	"github.com/cockroachdb/errors"
)

// Cursor is a forward-only read position into a caller-owned buffer. The
// zero value is an empty cursor.
type Cursor struct {
	buf []byte
	off int
}

// MakeCursor returns a cursor positioned at the start of buf.
func MakeCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// MakeCursorAt returns a cursor positioned at offset off of buf.
func MakeCursorAt(buf []byte, off int) Cursor {
	return Cursor{buf: buf, off: off}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Rest returns the unread portion of the buffer without advancing.
func (c *Cursor) Rest() []byte {
	return c.buf[c.off:]
}

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) {
	if n < 0 || n > len(c.buf)-c.off {
		panic(errCursorBounds)
	}
	c.off += n
}

// Read returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer.
func (c *Cursor) Read(n int) []byte {
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

// Peek returns the next byte as a signed value without advancing.
func (c *Cursor) Peek() int8 {
	return int8(c.buf[c.off])
}

func (c *Cursor) readInt8() int8 {
	v := int8(c.buf[c.off])
	c.off++
	return v
}

func (c *Cursor) readInt16() int16 {
	return int16(binary.LittleEndian.Uint16(c.Read(2)))
}

func (c *Cursor) readInt32() int32 {
	return int32(binary.LittleEndian.Uint32(c.Read(4)))
}

func (c *Cursor) readInt64() int64 {
	return int64(binary.LittleEndian.Uint64(c.Read(8)))
}

func (c *Cursor) readFloat32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c.Read(4)))
}

func (c *Cursor) readFloat64() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(c.Read(8)))
}

var errCursorBounds = errors.AssertionFailedf("cursor advanced out of bounds")
