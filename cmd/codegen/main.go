package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/rebound/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey  = "arity"
	outputKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed BindN helpers of package binding",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest arity to generate a BindN helper for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "binding/bindn.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for bindings started !")
	defer func() {
		log.Printf("Codegen for bindings finished in %v", time.Since(start))
	}()

	arity := int(cmd.Uint(arityKey))
	if arity < 1 {
		return fmt.Errorf("arity must be at least 1, got %d", arity)
	}
	out := cmd.String(outputKey)
	log.Printf("Arity: %d, output: %s", arity, out)

	contents, err := format.Source([]byte(templates.BindNGen(arity)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
