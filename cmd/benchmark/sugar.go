package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/emitter"
	"github.com/delaneyj/rebound/expr"
	"github.com/delaneyj/rebound/sugar"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Expression bindings recompute once per changed input, so the work per
// write grows with nSources^layers. Shapes stay small on purpose.
type sugarTestConfig struct {
	name         string
	width        int
	layers       int
	nSources     int
	readFraction float64
	iterations   int64
}

var sugarTestConfigs = []sugarTestConfig{
	{name: "simple component", width: 10, layers: 5, nSources: 2, readFraction: 0.2, iterations: 20_000},
	{name: "wide", width: 200, layers: 3, nSources: 3, readFraction: 1, iterations: 500},
	{name: "deep", width: 5, layers: 200, nSources: 1, readFraction: 1, iterations: 500},
	{name: "square", width: 30, layers: 4, nSources: 2, readFraction: 0.5, iterations: 2_000},
}

type sugarGraph struct {
	sources []*attrs.Store
	leaves  []*attrs.Store
}

func nodeName(i int) string {
	return fmt.Sprintf("n%d", i)
}

// makeSugarGraph stacks layers rows on top of width sources. Node i of a row
// sums nSources consecutive nodes of the row below, wrapping around.
func makeSugarGraph(cfg sugarTestConfig, counter *int64) (*sugarGraph, error) {
	sources := make([]*attrs.Store, cfg.width)
	for i := range sources {
		sources[i] = attrs.New(map[string]any{"v": float64(i)})
	}

	prev := sources
	for l := 0; l < cfg.layers; l++ {
		ns := make(expr.Namespace, len(prev))
		for i, node := range prev {
			ns[nodeName(i)] = node
		}

		row := make([]*attrs.Store, len(prev))
		for i := range row {
			terms := make([]string, 0, cfg.nSources)
			for s := 0; s < cfg.nSources; s++ {
				terms = append(terms, "{"+nodeName((i+s)%len(prev))+".v}")
			}
			row[i] = attrs.New(nil)
			if _, err := sugar.Bind(row[i], "v", strings.Join(terms, " + "), ns); err != nil {
				return nil, err
			}
			row[i].On(emitter.UpdateEvent("v"), func(*emitter.Chain, ...any) {
				*counter++
			})
		}
		prev = row
	}

	return &sugarGraph{sources: sources, leaves: prev}, nil
}

func runSugarGraph(g *sugarGraph, cfg sugarTestConfig) float64 {
	random := rand.New(rand.NewSource(0))
	leaves := make([]*attrs.Store, len(g.leaves))
	copy(leaves, g.leaves)
	skip := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	for i := 0; i < skip; i++ {
		dex := random.Intn(len(leaves))
		leaves[dex] = leaves[len(leaves)-1]
		leaves = leaves[:len(leaves)-1]
	}

	sum := 0.0
	for i := 0; i < int(cfg.iterations); i++ {
		dex := i % len(g.sources)
		g.sources[dex].SetAttribute("v", float64(i+dex))
		for _, leaf := range leaves {
			sum += leaf.GetAttribute("v").(float64)
		}
	}
	return sum
}

func benchmarkSugar(cfg config) error {
	log.Print("Starting expression binding benchmark, please wait...")
	defer log.Print("Finished expression binding benchmark")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"size", "nSources", "read%", "nTimes", "test", "time", "updates", "updateRate"})

	for _, tc := range sugarTestConfigs {
		log.Printf("Running '%s' config", tc.name)
		counter := new(int64)
		g, err := makeSugarGraph(tc, counter)
		if err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
		runSugarGraph(g, tc)

		best := time.Duration(math.MaxInt64)
		var updates int64
		for i := 0; i < cfg.Repeats; i++ {
			*counter = 0
			start := time.Now()
			runSugarGraph(g, tc)
			if d := time.Since(start); d < best {
				best = d
				updates = *counter
			}
		}
		if cfg.Repeats < 1 {
			continue
		}

		updateRate := float64(updates) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprintf("%dx%d", tc.width, tc.layers),
			fmt.Sprint(tc.nSources),
			fmt.Sprint(tc.readFraction),
			humanize.Comma(tc.iterations),
			tc.name,
			fmt.Sprint(best),
			humanize.Comma(updates),
			humanize.Comma(int64(updateRate)),
		})
	}
	table.Render()
	return nil
}
