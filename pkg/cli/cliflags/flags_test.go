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


package cliflags

import "testing"

func TestUsage(t *testing.T) {
	if got, expected := Ordering.Usage(), `Columns of the records, as a comma separated list of types each optionally
prefixed with + (ascending) or - (descending), e.g. "+int,-string,decimal".
Environment variable: DAGSERDE_ORDERING`; got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if got := Group.Usage(); got != Group.Description {
		t.Errorf("expected %q, got %q", Group.Description, got)
	}
}
