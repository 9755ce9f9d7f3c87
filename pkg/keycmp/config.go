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
	"os"
	"sort"

	"github.com/cockroachdb/dagserde/pkg/util/humanizeutil"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds named orderings and defaults read from a YAML file:
//
//	memory_budget: 64MiB
//	orderings:
//	  by_user: +int,-string
//	  by_amount: -decimal
type Config struct {
	MemoryBudget string            `yaml:"memory_budget"`
	Orderings    map[string]string `yaml:"orderings"`

	parsed map[string]Ordering
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// ParseConfig parses a YAML config. Every ordering must be valid.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	cfg.parsed = make(map[string]Ordering, len(cfg.Orderings))
	for name, s := range cfg.Orderings {
		ord, err := ParseOrdering(s)
		if err != nil {
			return nil, errors.Wrapf(err, "ordering %s", name)
		}
		cfg.parsed[name] = ord
	}
	if cfg.MemoryBudget != "" {
		if _, err := cfg.Budget(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Lookup returns the ordering registered under name.
func (c *Config) Lookup(name string) (Ordering, error) {
	ord, ok := c.parsed[name]
	if !ok {
		return nil, errors.Newf("unknown ordering %q, known orderings: %v", name, c.Names())
	}
	return ord, nil
}

// Names returns the names of the configured orderings, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.parsed))
	for name := range c.parsed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Budget returns the configured memory budget in bytes, or 0 if none is
// set.
func (c *Config) Budget() (int64, error) {
	if c.MemoryBudget == "" {
		return 0, nil
	}
	v, err := humanizeutil.ParseBytes(c.MemoryBudget)
	if err != nil {
		return 0, errors.Wrap(err, "memory_budget")
	}
	if v < 0 {
		return 0, errors.Newf("memory_budget %s must not be negative", c.MemoryBudget)
	}
	return v, nil
}
