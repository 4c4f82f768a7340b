// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuttingplane

import (
	"fmt"
	"io"
	"os"
)

// LogLevel controls the frequency and type of logger output.
type LogLevel int

const (
	// LogNoop means no output is generated.
	LogNoop LogLevel = -1
	// LogLast prints only one line at the last iteration.
	LogLast LogLevel = 0
	// LogTrace prints tsq and cut status on every iteration.
	LogTrace LogLevel = 1
	// LogVerbose also prints the current center xc.
	LogVerbose LogLevel = 2
)

// Logger handles driver-loop logging. Writers must be safe to use from
// a single goroutine; a driver never logs concurrently with itself.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func (l *Logger) enable(level LogLevel) bool {
	return l != nil && l.Level >= level
}

func (l *Logger) log(format string, a ...any) {
	w := l.Out
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, format, a...)
}

// logXC prints xc wrapped six values per line, the same dump shape the
// teacher's LogVerbose uses for vector state.
func (l *Logger) logXC(xc []float64) {
	l.log("     xc = ")
	for i, v := range xc {
		l.log("%.2e ", v)
		if (i+1)%6 == 0 {
			l.log("\n          ")
		}
	}
	l.log("\n")
}
