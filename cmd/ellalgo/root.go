// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	maxIters int
	tol      float64

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd = &cobra.Command{
		Use:   "ellalgo",
		Short: "Run the ellipsoid-method cutting-plane engine against a reference oracle",
		Long: `ellalgo wires one of the library's cutting-plane drivers to a
reference oracle from the oracles package and prints the result.

Oracle parameters are read from flags, optionally overlaid with a
--config file in YAML or JSON.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return loadConfig()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML/JSON oracle-parameter file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace tsq/cut status at every iteration")
	rootCmd.PersistentFlags().IntVar(&maxIters, "max-iters", 2000, "maximum driver iterations")
	rootCmd.PersistentFlags().Float64Var(&tol, "tol", 1e-8, "stop once tsq falls below this")

	rootCmd.AddCommand(feasCmd)
	rootCmd.AddCommand(optimCmd)
	rootCmd.AddCommand(discreteCmd)
	rootCmd.AddCommand(bisectCmd)
	rootCmd.AddCommand(lowpassCmd)
}

func loadConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("loading config %s: %w", cfgFile, err)
	}
	return nil
}
