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

/*
Package serde compares and skips record fields directly on their serialized
bytes.

Records are written by the dataflow runtime as a sequence of fields, each
field laid out according to its type:

	boolean              1 byte: 0 null, 1 false, 2 true
	byte/short/int/long  presence byte (0 null), then the little-endian value
	float/double         presence byte (0 null), then the IEEE-754 bits
	date                 4 bytes, elapsed days, -1 for null
	date_time            8 bytes, elapsed seconds, -1 for null
	string               compact int length (-1 null), then the raw bytes
	decimal              header byte (0 null), compact int scale, then either
	                     a compact int unscaled magnitude (compact form) or a
	                     compact int body length followed by the body

The comparators in this package never decode a field into a Go value and
never allocate. A caller holds one Cursor per operand and calls Compare or
Skip for each field in turn; every call leaves the cursors positioned just
past the field regardless of the result, so the next field can be visited
immediately.

Input is trusted. A truncated or malformed buffer panics with an index out
of range error; nothing here reports it as an error value.
*/
package serde
