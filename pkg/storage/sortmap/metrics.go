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


package sortmap

import "github.com/cockroachdb/dagserde/pkg/util/metric"

var (
	metaPuts = metric.Metadata{
		Name: "sortmap.puts",
		Help: "Number of records added to sorted maps",
	}
	metaSpills = metric.Metadata{
		Name: "sortmap.spills",
		Help: "Number of times buffered records were written to the store",
	}
	metaSpilledBytes = metric.Metadata{
		Name: "sortmap.spilled.bytes",
		Help: "Number of key and value bytes written to the store",
	}
	metaBufferedBytes = metric.Metadata{
		Name: "sortmap.buffered.bytes",
		Help: "Number of key and value bytes currently held in memory",
	}
)

// Metrics holds the counters updated by a Map. A single Metrics can be
// shared by several maps.
type Metrics struct {
	Puts          *metric.Counter
	Spills        *metric.Counter
	SpilledBytes  *metric.Counter
	BufferedBytes *metric.Gauge
}

// MakeMetrics creates a set of metrics.
func MakeMetrics() *Metrics {
	return &Metrics{
		Puts:          metric.NewCounter(metaPuts),
		Spills:        metric.NewCounter(metaSpills),
		SpilledBytes:  metric.NewCounter(metaSpilledBytes),
		BufferedBytes: metric.NewGauge(metaBufferedBytes),
	}
}
