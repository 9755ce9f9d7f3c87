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


package humanizeutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	testCases := []struct {
		in       string
		expected int64
		err      bool
	}{
		{"0", 0, false},
		{"64MiB", 64 << 20, false},
		{"1 KiB", 1024, false},
		{"1KB", 1000, false},
		{"-2KiB", -2048, false},
		{"", 0, true},
		{"lots", 0, true},
	}
	for _, c := range testCases {
		v, err := ParseBytes(c.in)
		if c.err {
			require.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		require.Equal(t, c.expected, v, c.in)
	}
}

func TestBytesValue(t *testing.T) {
	var budget int64
	v := NewBytesValue(&budget)
	require.False(t, v.IsSet())
	require.Equal(t, "0 B", v.String())

	require.NoError(t, v.Set("8MiB"))
	require.True(t, v.IsSet())
	require.Equal(t, int64(8<<20), budget)
	require.Equal(t, "8.0 MiB", v.String())

	require.Error(t, v.Set("-1KiB"))
	require.Equal(t, "-1.0 KiB", IBytes(-1024))
}
