// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/deepcut/ellalgo/cuttingplane"
)

// zerologWriter adapts cuttingplane.Logger's io.Writer sink to a
// zerolog.Debug() line per write, so --verbose turns the driver's own
// per-iteration trace into structured output instead of a second,
// unrelated logging path.
type zerologWriter struct{}

func (zerologWriter) Write(p []byte) (int, error) {
	logger.Debug().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// traceLogger returns a Logger that writes through zerolog when
// --verbose is set, or nil (silent) otherwise.
func traceLogger() *cuttingplane.Logger {
	if !verbose {
		return nil
	}
	return &cuttingplane.Logger{Level: cuttingplane.LogTrace, Out: zerologWriter{}}
}
