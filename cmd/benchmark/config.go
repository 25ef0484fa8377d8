package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type config struct {
	Iterations int    `env:"REBOUND_BENCH_ITERATIONS" envDefault:"100"`
	Widths     []int  `env:"REBOUND_BENCH_WIDTHS" envDefault:"1,10,100"`
	Heights    []int  `env:"REBOUND_BENCH_HEIGHTS" envDefault:"1,10,100"`
	Repeats    int    `env:"REBOUND_BENCH_REPEATS" envDefault:"5"`
	Profile    string `env:"REBOUND_BENCH_PROFILE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
