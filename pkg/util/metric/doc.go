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
Package metric provides the counters and gauges used to instrument the
sorting and comparison code, together with a Registry that exports them in
the Prometheus text format.

Adding a new metric

Declare a Metadata describing the metric and create the metric from it:

	var metaPuts = metric.Metadata{
		Name: "sortmap.puts",
		Help: "Number of records added to sorted maps",
	}

	puts := metric.NewCounter(metaPuts)

Then add it to a Registry, either directly or by passing a struct whose
fields are metrics to AddMetricStruct:

	registry.AddMetricStruct(m)

Metric names use dots as separators; they are exported with the dots
replaced by underscores.
*/
package metric
