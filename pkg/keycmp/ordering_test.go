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


package keycmp

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/dagserde/pkg/serde"
	"github.com/cockroachdb/dagserde/pkg/util/encoding"
	"github.com/stretchr/testify/require"
)

func TestParseOrdering(t *testing.T) {
	ord, err := ParseOrdering(" +int, -string ,decimal")
	require.NoError(t, err)
	require.Equal(t, Ordering{
		{Type: serde.Int, Direction: encoding.Ascending},
		{Type: serde.String, Direction: encoding.Descending},
		{Type: serde.Decimal, Direction: encoding.Ascending},
	}, ord)
	require.Equal(t, "+int,-string,+decimal", ord.String())

	for _, bad := range []string{"", " ", "int,", "+bogus", "--int"} {
		_, err := ParseOrdering(bad)
		require.Error(t, err, bad)
	}
}

func TestCompareCursorsConsumesRecord(t *testing.T) {
	ord, err := ParseOrdering("+int,-string,decimal")
	require.NoError(t, err)

	a1, err := ord.Encode([]string{"1", "x", "1.5"})
	require.NoError(t, err)
	a2, err := ord.Encode([]string{"7", "NULL", "NULL"})
	require.NoError(t, err)
	b1, err := ord.Encode([]string{"1", "x", "1.50"})
	require.NoError(t, err)
	b2, err := ord.Encode([]string{"2", "y", "100"})
	require.NoError(t, err)

	a := append(append([]byte(nil), a1...), a2...)
	b := append(append([]byte(nil), b1...), b2...)
	ca, cb := serde.MakeCursor(a), serde.MakeCursor(b)

	require.Equal(t, 0, ord.CompareCursors(&ca, &cb))
	require.Equal(t, len(a1), ca.Offset())
	require.Equal(t, len(b1), cb.Offset())

	require.Equal(t, 1, ord.CompareCursors(&ca, &cb))
	require.Equal(t, 0, ca.Remaining())
	require.Equal(t, 0, cb.Remaining())
}

func TestCompareTotalOrdersNaN(t *testing.T) {
	ord, err := ParseOrdering("double,+int")
	require.NoError(t, err)
	rec := func(d float64, i int32) []byte {
		return serde.AppendInt(serde.AppendDouble(nil, d), i)
	}
	nan1, nan2 := rec(math.NaN(), 1), rec(math.NaN(), 2)
	one := rec(1, 1)
	null := serde.AppendInt(serde.AppendNull(nil, serde.Double), 1)

	// CompareCursors keeps the native result: NaN is never equal or less.
	require.Equal(t, 1, ord.Compare(nan1, one))
	require.Equal(t, 1, ord.Compare(one, nan1))
	require.Equal(t, 1, ord.Compare(nan1, nan1))

	require.Equal(t, 1, ord.CompareTotal(nan1, one))
	require.Equal(t, -1, ord.CompareTotal(one, nan1))
	require.Equal(t, 1, ord.CompareTotal(nan1, null))
	require.Equal(t, 0, ord.CompareTotal(nan1, nan1))
	require.Equal(t, -1, ord.CompareTotal(nan1, nan2))
	require.Equal(t, -1, ord.CompareTotal(null, one))

	ca, cb := serde.MakeCursor(nan2), serde.MakeCursor(one)
	require.Equal(t, 1, ord.CompareCursorsTotal(&ca, &cb))
	require.Zero(t, ca.Remaining())
	require.Zero(t, cb.Remaining())
}

func TestLess(t *testing.T) {
	ord, err := ParseOrdering("-long")
	require.NoError(t, err)
	small, err := ord.Encode([]string{"-5"})
	require.NoError(t, err)
	big, err := ord.Encode([]string{"5"})
	require.NoError(t, err)
	require.True(t, ord.Less(big, small))
	require.False(t, ord.Less(small, big))
	require.False(t, ord.Less(big, big))
}

func TestConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
memory_budget: 64KiB
orderings:
  by_user: +int,-string
  by_amount: -decimal
`))
	require.NoError(t, err)
	require.Equal(t, []string{"by_amount", "by_user"}, cfg.Names())

	ord, err := cfg.Lookup("by_user")
	require.NoError(t, err)
	require.Equal(t, "+int,-string", ord.String())
	_, err = cfg.Lookup("missing")
	require.ErrorContains(t, err, `unknown ordering "missing"`)

	budget, err := cfg.Budget()
	require.NoError(t, err)
	require.Equal(t, int64(64<<10), budget)

	_, err = ParseConfig([]byte("orderings:\n  bad: +nope\n"))
	require.ErrorContains(t, err, "ordering bad")
	_, err = ParseConfig([]byte("memory_budget: lots\n"))
	require.Error(t, err)
	_, err = ParseConfig([]byte("orderings: [\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orderings:\n  by_day: date\n"), 0644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	ord, err := cfg.Lookup("by_day")
	require.NoError(t, err)
	require.Equal(t, Ordering{{Type: serde.Date, Direction: encoding.Ascending}}, ord)

	budget, err := cfg.Budget()
	require.NoError(t, err)
	require.Zero(t, budget)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
