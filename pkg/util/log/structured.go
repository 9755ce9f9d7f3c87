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


package log

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// formatTags writes the logging tags attached to ctx, in brackets.
func formatTags(ctx context.Context, buf *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return
	}
	buf.WriteByte('[')
	for i, t := range tags.Get() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if v := t.Value(); v != nil {
			if len(t.Key()) > 1 {
				buf.WriteByte('=')
			}
			fmt.Fprint(buf, v)
		}
	}
	buf.WriteString("] ")
}

// makeMessage renders the tags of ctx followed by the message. Arguments
// that are not marked safe are enclosed in redaction markers when the
// output is redactable.
func makeMessage(ctx context.Context, format string, args []interface{}) string {
	var buf strings.Builder
	formatTags(ctx, &buf)
	var msg redact.RedactableString
	if len(format) == 0 {
		msg = redact.Sprint(args...)
	} else {
		msg = redact.Sprintf(format, args...)
	}
	if logging.redactable.Load() {
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	return buf.String()
}

// addStructured creates a log entry for the caller depth frames above it.
func addStructured(ctx context.Context, s Severity, depth int, format string, args []interface{}) {
	if ctx == nil {
		panic("nil context")
	}
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file, line = "???", 1
	} else {
		file = filepath.Base(file)
	}
	logging.outputLogEntry(s, file, line, makeMessage(ctx, format, args))
}
