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


// Package cliflags describes the command-line flags of the tool.
package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns the description, with the environment variable noted
// when there is one.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s += fmt.Sprintf("\nEnvironment variable: %s", f.EnvVar)
	}
	return s
}

// Flags shared by all commands.
var (
	Ordering = FlagInfo{
		Name:   "ordering",
		EnvVar: "DAGSERDE_ORDERING",
		Description: `
Columns of the records, as a comma separated list of types each optionally
prefixed with + (ascending) or - (descending), e.g. "+int,-string,decimal".`,
	}

	OrderingName = FlagInfo{
		Name:        "ordering-name",
		EnvVar:      "DAGSERDE_ORDERING_NAME",
		Description: `Name of an ordering defined in the --config file.`,
	}

	Config = FlagInfo{
		Name:        "config",
		EnvVar:      "DAGSERDE_CONFIG",
		Description: `YAML file with named orderings and a default memory budget.`,
	}

	LogLevel = FlagInfo{
		Name:        "log-level",
		EnvVar:      "DAGSERDE_LOG_LEVEL",
		Description: `Lowest severity written to the log: INFO, WARNING, ERROR or FATAL.`,
	}

	Verbosity = FlagInfo{
		Name:        "verbosity",
		Shorthand:   "v",
		Description: `Log verbosity level.`,
	}

	Redactable = FlagInfo{
		Name:        "redactable-logs",
		Description: `Enclose values that may be sensitive in redaction markers in log output.`,
	}
)

// Flags of the sort command.
var (
	MemoryBudget = FlagInfo{
		Name:   "memory-budget",
		EnvVar: "DAGSERDE_MEMORY_BUDGET",
		Description: `
Number of bytes of records buffered in memory before they are written to the
store, e.g. 64MiB.`,
	}

	StoreDir = FlagInfo{
		Name:        "store-dir",
		EnvVar:      "DAGSERDE_STORE_DIR",
		Description: `Directory of the on-disk store. By default records are kept in memory.`,
	}

	Group = FlagInfo{
		Name:        "group",
		Description: `Print one line per distinct record with all of its values.`,
	}

	Metrics = FlagInfo{
		Name:        "metrics",
		Description: `Print the sort metrics to standard error in the Prometheus text format.`,
	}
)
