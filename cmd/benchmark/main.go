package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	repeatsKey    = "repeats"
	outputKey     = "out"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure binding propagation",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Latency of batched engine writes through chains of bindings",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  iterationsKey,
						Usage: "Writes per graph shape",
						Value: int64(cfg.Iterations),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg.Iterations = int(cmd.Int(iterationsKey))
					log.Printf("warming up")
					if err := benchmarkPropagate(cfg, false); err != nil {
						return err
					}
					return benchmarkPropagate(cfg, true)
				},
			},
			{
				Name:  "sugar",
				Usage: "Throughput of expression bindings over layered graphs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  repeatsKey,
						Usage: "Runs per graph, the best one is reported",
						Value: int64(cfg.Repeats),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg.Repeats = int(cmd.Int(repeatsKey))
					return benchmarkSugar(cfg)
				},
			},
			{
				Name:  "dot",
				Usage: "Print the binding graph of the sample network as Graphviz DOT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  outputKey,
						Usage: "File to write, stdout when empty",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return dot(cmd.String(outputKey))
				},
			},
		},
	}
	if err := run(cmd, cfg.Profile); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cli.Command, profile string) error {
	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}
	return cmd.Run(context.Background(), os.Args)
}
