package main

import (
	"fmt"
	"os"
	"time"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/binding"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func addOne(v int) int {
	return v + 1
}

// buildChains hangs w chains of h bindings off src.v.
func buildChains(e *binding.Engine, src *attrs.Store, w, h int) ([]*attrs.Store, error) {
	leaves := make([]*attrs.Store, 0, w)
	for i := 0; i < w; i++ {
		prev := binding.Ref{Object: src, Attribute: "v"}
		var last *attrs.Store
		for j := 0; j < h; j++ {
			last = attrs.New(map[string]any{"v": 0})
			node := binding.Ref{Object: last, Attribute: "v"}
			if _, err := binding.Bind1(e, node, prev, addOne); err != nil {
				return nil, err
			}
			prev = node
		}
		leaves = append(leaves, last)
	}
	return leaves, nil
}

func benchmarkPropagate(cfg config, shouldRender bool) error {
	tbl := table.NewWriter()
	tbl.SetTitle("Batched propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "slots", "avg", "min", "p75", "p99", "max"})

	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})

			e := binding.New()
			src := attrs.New(map[string]any{"v": 0})
			leaves, err := buildChains(e, src, w, h)
			if err != nil {
				return err
			}

			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				if err := e.SetAttribute(src, "v", i); err != nil {
					return err
				}
				tach.AddTime(time.Since(start))
			}
			if len(leaves) > 0 && h > 0 && cfg.Iterations > 0 {
				if got, want := leaves[0].GetAttribute("v"), cfg.Iterations-1+h; got != want {
					return fmt.Errorf("propagate %d * %d: leaf is %v, want %d", w, h, got, want)
				}
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					e.Registry().Len(),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}
