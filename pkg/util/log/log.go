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

import "context"

// Infof logs to the INFO log.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, InfoLog, 1, format, args)
}

// InfofDepth logs to the INFO log, offsetting the caller's stack frame by
// 'depth'.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	addStructured(ctx, InfoLog, depth+1, format, args)
}

// Warningf logs to the WARNING and INFO logs.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, WarningLog, 1, format, args)
}

// Errorf logs to the ERROR, WARNING, and INFO logs.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, ErrorLog, 1, format, args)
}

// ErrorfDepth logs to the ERROR log, offsetting the caller's stack frame by
// 'depth'.
func ErrorfDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	addStructured(ctx, ErrorLog, depth+1, format, args)
}

// Fatalf logs to the INFO, WARNING, ERROR, and FATAL logs, including a stack
// trace of the calling goroutine, then exits.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, FatalLog, 1, format, args)
}

// FatalfDepth is Fatalf with the caller's stack frame offset by 'depth'.
func FatalfDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	addStructured(ctx, FatalLog, depth+1, format, args)
}

// VEventf logs to the INFO log if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, InfoLog, 1, format, args)
	}
}
