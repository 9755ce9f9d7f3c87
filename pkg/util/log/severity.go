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


// Package log is a small fork of glog that writes severity-prefixed lines
// carrying the logging tags found in the context.
package log

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Severity identifies the sort of log: info, warning etc. It also implements
// the pflag.Value interface so that the threshold can be set from a flag.
type Severity int32 // sync/atomic int32

// These constants identify the log levels in order of increasing Severity.
const (
	InfoLog Severity = iota
	WarningLog
	ErrorLog
	FatalLog
	NumSeverity = 4
)

const severityChar = "IWEF"

// severityName provides a mapping from Severity level to a string.
var severityName = []string{
	InfoLog:     "INFO",
	WarningLog:  "WARNING",
	ErrorLog:    "ERROR",
	FatalLog:    "FATAL",
	NumSeverity: "NONE",
}

func (s *Severity) get() Severity {
	return Severity(atomic.LoadInt32((*int32)(s)))
}

func (s *Severity) set(val Severity) {
	atomic.StoreInt32((*int32)(s), int32(val))
}

// String is part of the pflag.Value interface.
func (s *Severity) String() string {
	if i := int(s.get()); i >= 0 && i < len(severityName) {
		return severityName[i]
	}
	return strconv.FormatInt(int64(*s), 10)
}

// Set is part of the pflag.Value interface.
func (s *Severity) Set(value string) error {
	if v, ok := SeverityByName(value); ok {
		s.set(v)
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	s.set(Severity(v))
	return nil
}

// Type is part of the pflag.Value interface.
func (s *Severity) Type() string {
	return "severity"
}

// SeverityByName attempts to parse the passed in string into a severity. (i.e.
// ERROR, INFO). If it succeeds, the returned bool is set to true.
func SeverityByName(s string) (Severity, bool) {
	s = strings.ToUpper(s)
	for i, name := range severityName {
		if name == s {
			return Severity(i), true
		}
	}
	return 0, false
}
