// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/spf13/viper"

// ProfitConfig holds the Cobb-Douglas market parameters shared by the
// optim and discrete subcommands. Fields mirror the ones
// test_profit.cpp hardcodes; a --config file lets a caller override
// them without recompiling.
type ProfitConfig struct {
	Price       float64    `mapstructure:"price"`
	ScaleA      float64    `mapstructure:"scaleA"`
	Cap         float64    `mapstructure:"cap"`
	Elasticity  [2]float64 `mapstructure:"elasticity"`
	OutputPrice [2]float64 `mapstructure:"outputPrice"`
}

func init() {
	viper.SetDefault("price", 20.0)
	viper.SetDefault("scaleA", 40.0)
	viper.SetDefault("cap", 30.5)
	viper.SetDefault("elasticity", []float64{0.1, 0.4})
	viper.SetDefault("outputPrice", []float64{10.0, 35.0})
}

func loadProfitConfig() (ProfitConfig, error) {
	var cfg ProfitConfig
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
