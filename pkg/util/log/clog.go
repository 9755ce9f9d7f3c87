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
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// loggingT collects all the global state of the logging setup.
type loggingT struct {
	mu struct {
		sync.Mutex
		out    io.Writer
		colors *colorProfile
		// exitFunc is called after a fatal entry has been written.
		exitFunc func(int)
	}
	// Entries at or above this severity are written.
	threshold Severity
	// V logging level.
	verbosity int32
	// Whether to keep redaction markers around unsafe values.
	redactable atomic.Bool
	bufPool    sync.Pool
}

var logging loggingT

func init() {
	logging.threshold = InfoLog
	logging.mu.out = os.Stderr
	logging.mu.colors = stderrColorProfile()
	logging.mu.exitFunc = os.Exit
	logging.bufPool.New = func() interface{} { return new(buffer) }
}

// buffer holds a byte Buffer for reuse. The zero value is ready for use.
type buffer struct {
	bytes.Buffer
	tmp [64]byte // temporary byte array for creating headers.
}

func (l *loggingT) getBuffer() *buffer {
	b := l.bufPool.Get().(*buffer)
	b.Reset()
	return b
}

func (l *loggingT) putBuffer(b *buffer) {
	if b.Len() >= 256 {
		// Let big buffers die a natural death.
		return
	}
	l.bufPool.Put(b)
}

// SetOutput redirects log output to w. Colors are only used when w is a
// terminal.
func SetOutput(w io.Writer) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.out = w
	logging.mu.colors = nil
	if f, ok := w.(*os.File); ok {
		logging.mu.colors = colorProfileFor(f)
	}
}

// SetThreshold sets the lowest severity that is written.
func SetThreshold(s Severity) {
	logging.threshold.set(s)
}

// Threshold returns the flag.Value that controls the lowest severity that
// is written.
func Threshold() *Severity {
	return &logging.threshold
}

// SetVerbosity sets the level up to which V returns true.
func SetVerbosity(level int32) {
	atomic.StoreInt32(&logging.verbosity, level)
}

// SetRedactable controls whether unsafe values are wrapped in redaction
// markers in the output.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated. Call with a nil
// function to undo.
func SetExitFunc(f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	if f == nil {
		f = os.Exit
	}
	logging.mu.exitFunc = f
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return atomic.LoadInt32(&logging.verbosity) >= level
}

// formatHeader formats a log header using the provided file name and
// line number. Log lines are colorized depending on severity.
//
// Log lines have this form:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line  msg...
func (l *loggingT) formatHeader(
	s Severity, now time.Time, file string, line int, colors *colorProfile,
) *buffer {
	buf := l.getBuffer()
	if line < 0 {
		line = 0
	}
	if s > FatalLog {
		s = InfoLog
	}

	tmp := buf.tmp[:len(buf.tmp)]
	var n int
	if colors != nil {
		n += copy(tmp, colors.prefix(s))
	}
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	tmp[n] = severityChar[s]
	n++
	n += buf.twoDigits(n, year-2000)
	n += buf.twoDigits(n, int(month))
	n += buf.twoDigits(n, day)
	if colors != nil {
		n += copy(tmp[n:], colors.timePrefix)
	}
	tmp[n] = ' '
	n++
	n += buf.twoDigits(n, hour)
	tmp[n] = ':'
	n++
	n += buf.twoDigits(n, minute)
	tmp[n] = ':'
	n++
	n += buf.twoDigits(n, second)
	tmp[n] = '.'
	n++
	n += buf.nDigits(6, n, now.Nanosecond()/1000, '0')
	tmp[n] = ' '
	n++
	buf.Write(tmp[:n])
	buf.WriteString(file)
	fmt.Fprintf(buf, ":%d ", line)
	if colors != nil {
		buf.Write(colorReset)
	}
	buf.WriteByte(' ')
	return buf
}

const digits = "0123456789"

// twoDigits formats a zero-prefixed two-digit integer at buf.tmp[i].
func (buf *buffer) twoDigits(i, d int) int {
	buf.tmp[i+1] = digits[d%10]
	d /= 10
	buf.tmp[i] = digits[d%10]
	return 2
}

// nDigits formats an n-digit integer at buf.tmp[i], padding with pad on the
// left. It assumes d >= 0.
func (buf *buffer) nDigits(n, i, d int, pad byte) int {
	j := n - 1
	for ; j >= 0 && d > 0; j-- {
		buf.tmp[i+j] = digits[d%10]
		d /= 10
	}
	for ; j >= 0; j-- {
		buf.tmp[i+j] = pad
	}
	return n
}

// outputLogEntry writes a formatted entry to the configured output and
// exits the process after a fatal entry.
func (l *loggingT) outputLogEntry(s Severity, file string, line int, msg string) {
	if s < l.threshold.get() && s != FatalLog {
		return
	}
	l.mu.Lock()
	buf := l.formatHeader(s, time.Now(), file, line, l.mu.colors)
	buf.WriteString(msg)
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	if s == FatalLog {
		buf.Write(getStacks())
	}
	_, _ = l.mu.out.Write(buf.Bytes())
	l.putBuffer(buf)
	exit := l.mu.exitFunc
	l.mu.Unlock()
	if s == FatalLog {
		exit(255)
	}
}

func getStacks() []byte {
	n := 10000
	for {
		trace := make([]byte, n)
		nbytes := runtime.Stack(trace, false)
		if nbytes < len(trace) {
			return trace[:nbytes]
		}
		n *= 2
	}
}
