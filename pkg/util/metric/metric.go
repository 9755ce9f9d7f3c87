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


package metric

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metadata holds the information describing a metric.
type Metadata struct {
	Name string
	Help string
}

// GetName returns the metric's name.
func (m Metadata) GetName() string { return m.Name }

// GetHelp returns the metric's help string.
func (m Metadata) GetHelp() string { return m.Help }

// Iterable provides a method for synchronized access to the value of a
// metric.
type Iterable interface {
	// GetName returns the fully-qualified name of the metric.
	GetName() string
	// GetHelp returns the help text for the metric.
	GetHelp() string
	// Inspect calls the given closure with the metric's current value.
	Inspect(func(interface{}))
}

// PrometheusExportable is the standard interface for an individual metric
// that can be exported to prometheus.
type PrometheusExportable interface {
	Iterable
	// GetType returns the prometheus value type of the metric.
	GetType() prometheus.ValueType
	// Value returns the current value of the metric.
	Value() float64
}

// Counter is a cumulative metric that only goes up.
type Counter struct {
	Metadata
	count atomic.Int64
}

var _ PrometheusExportable = (*Counter)(nil)

// NewCounter creates a counter.
func NewCounter(metadata Metadata) *Counter {
	return &Counter{Metadata: metadata}
}

// Inc atomically increments the counter by the given value.
func (c *Counter) Inc(v int64) {
	c.count.Add(v)
}

// Count returns the current value of the counter.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// Inspect calls the given closure with the counter itself.
func (c *Counter) Inspect(f func(interface{})) { f(c) }

// GetType returns the prometheus type enum for this metric.
func (c *Counter) GetType() prometheus.ValueType { return prometheus.CounterValue }

// Value returns the counter as a float.
func (c *Counter) Value() float64 { return float64(c.Count()) }

// Gauge atomically stores a single integer value.
type Gauge struct {
	Metadata
	value atomic.Int64
}

var _ PrometheusExportable = (*Gauge)(nil)

// NewGauge creates a Gauge.
func NewGauge(metadata Metadata) *Gauge {
	return &Gauge{Metadata: metadata}
}

// Update updates the gauge's value.
func (g *Gauge) Update(v int64) {
	g.value.Store(v)
}

// Inc increments the gauge's value.
func (g *Gauge) Inc(i int64) {
	g.value.Add(i)
}

// Dec decrements the gauge's value.
func (g *Gauge) Dec(i int64) {
	g.value.Add(-i)
}

// Load returns the gauge's current value.
func (g *Gauge) Load() int64 {
	return g.value.Load()
}

// Inspect calls the given closure with the gauge itself.
func (g *Gauge) Inspect(f func(interface{})) { f(g) }

// GetType returns the prometheus type enum for this metric.
func (g *Gauge) GetType() prometheus.ValueType { return prometheus.GaugeValue }

// Value returns the gauge as a float.
func (g *Gauge) Value() float64 { return float64(g.Load()) }
