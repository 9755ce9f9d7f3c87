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


// Package humanizeutil converts memory budgets between byte counts and the
// human-readable sizes accepted on the command line and in config files.
package humanizeutil

import (
	"math"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// IBytes is an int64 version of go-humanize's IBytes.
func IBytes(value int64) string {
	if value < 0 {
		return "-" + humanize.IBytes(uint64(-value))
	}
	return humanize.IBytes(uint64(value))
}

// ParseBytes is an int64 version of go-humanize's ParseBytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, errors.New("parsing \"\": invalid syntax")
	}
	negative := s[0] == '-'
	if negative {
		s = s[1:]
	}
	value, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing size")
	}
	if value > math.MaxInt64 {
		return 0, errors.Newf("too large: %s", s)
	}
	if negative {
		return -int64(value), nil
	}
	return int64(value), nil
}

// BytesValue implements pflag.Value for a size flag such as a memory
// budget. The value is written atomically.
type BytesValue struct {
	val   *int64
	isSet bool
}

var _ pflag.Value = &BytesValue{}

// NewBytesValue creates a new pflag.Value bound to the specified
// int64 variable.
func NewBytesValue(val *int64) *BytesValue {
	return &BytesValue{val: val}
}

// Set implements the pflag.Value interface. Negative sizes are rejected.
func (b *BytesValue) Set(s string) error {
	v, err := ParseBytes(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.Newf("size %s must not be negative", s)
	}
	atomic.StoreInt64(b.val, v)
	b.isSet = true
	return nil
}

// Type implements the pflag.Value interface.
func (b *BytesValue) Type() string {
	return "bytes"
}

// String implements the pflag.Value interface.
func (b *BytesValue) String() string {
	if b.val == nil {
		return IBytes(0)
	}
	// IBytes uses the MiB, GiB suffixes, matching the 1024 multiples that
	// ParseBytes accepts for them.
	return IBytes(atomic.LoadInt64(b.val))
}

// IsSet returns true iff Set has successfully been called.
func (b *BytesValue) IsSet() bool {
	return b.isSet
}
