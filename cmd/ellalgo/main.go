// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ellalgo drives the ellipsoid-method cutting-plane engine
// against a handful of reference oracles, the Go-native counterpart of
// the original greeter demo binary: a small runnable entrypoint that
// exercises the library instead of leaving it as an importable-only
// package.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
