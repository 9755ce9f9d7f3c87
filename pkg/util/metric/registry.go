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
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	prometheusgo "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// A Registry is a list of metrics. It provides a simple way of iterating
// over them and of exporting them to prometheus.
type Registry struct {
	mu      sync.Mutex
	tracked map[string]PrometheusExportable
}

var _ prometheus.Collector = (*Registry)(nil)

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	return &Registry{
		tracked: map[string]PrometheusExportable{},
	}
}

// AddMetric adds the passed-in metric to the registry.
func (r *Registry) AddMetric(metric PrometheusExportable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tracked[metric.GetName()]; ok {
		return errors.Newf("metric %s already registered", metric.GetName())
	}
	r.tracked[metric.GetName()] = metric
	return nil
}

// MustAddMetric calls AddMetric and panics on error.
func (r *Registry) MustAddMetric(metric PrometheusExportable) {
	if err := r.AddMetric(metric); err != nil {
		panic(err)
	}
}

// AddMetricStruct examines all fields of metricStruct and adds all
// non-nil PrometheusExportable fields to the registry.
func (r *Registry) AddMetricStruct(metricStruct interface{}) {
	v := reflect.Indirect(reflect.ValueOf(metricStruct))
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanInterface() || field.Kind() != reflect.Ptr || field.IsNil() {
			continue
		}
		if m, ok := field.Interface().(PrometheusExportable); ok {
			r.MustAddMetric(m)
		}
	}
}

// Each calls the given closure for all metrics, in name order.
func (r *Registry) Each(f func(name string, val interface{})) {
	for _, m := range r.sorted() {
		m.Inspect(func(v interface{}) {
			f(m.GetName(), v)
		})
	}
}

func (r *Registry) sorted() []PrometheusExportable {
	r.mu.Lock()
	defer r.mu.Unlock()
	metrics := make([]PrometheusExportable, 0, len(r.tracked))
	for _, m := range r.tracked {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].GetName() < metrics[j].GetName()
	})
	return metrics
}

var nameReplacer = strings.NewReplacer(".", "_", "-", "_")

// exportedName converts a metric name into a valid prometheus name.
func exportedName(name string) string {
	return nameReplacer.Replace(name)
}

func desc(m PrometheusExportable) *prometheus.Desc {
	return prometheus.NewDesc(exportedName(m.GetName()), m.GetHelp(), nil, nil)
}

// Describe is part of the prometheus.Collector interface.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range r.sorted() {
		ch <- desc(m)
	}
}

// Collect is part of the prometheus.Collector interface.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	for _, m := range r.sorted() {
		ch <- prometheus.MustNewConstMetric(desc(m), m.GetType(), m.Value())
	}
}

// Gather returns the current value of every metric as prometheus metric
// families, sorted by name.
func (r *Registry) Gather() ([]*prometheusgo.MetricFamily, error) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(r); err != nil {
		return nil, errors.Wrap(err, "registering metrics")
	}
	families, err := reg.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "gathering metrics")
	}
	return families, nil
}

// PrintAsText writes every metric of the registry to w in the prometheus
// text exposition format.
func (r *Registry) PrintAsText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
