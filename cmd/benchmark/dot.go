package main

import (
	"fmt"
	"math"
	"os"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/binding"
	"github.com/delaneyj/rebound/elements"
)

// sampleEngine wires a point, a unit conversion cycle and a trig network.
func sampleEngine() (*binding.Engine, error) {
	e := binding.New()
	if _, err := elements.NewPoint(e, 1, 2); err != nil {
		return nil, err
	}

	length := attrs.New(map[string]any{"mm": 1000.0, "m": 1.0})
	ref := func(obj binding.Object, attribute string) binding.Ref {
		return binding.Ref{Object: obj, Attribute: attribute}
	}
	if _, err := binding.Bind1(e, ref(length, "m"), ref(length, "mm"), func(mm float64) float64 {
		return mm / 1000
	}); err != nil {
		return nil, err
	}
	if _, err := binding.Bind1(e, ref(length, "mm"), ref(length, "m"), func(m float64) float64 {
		return m * 1000
	}); err != nil {
		return nil, err
	}

	wave := attrs.New(map[string]any{"t": 0.0})
	if _, err := binding.Bind1(e, ref(wave, "sin"), ref(wave, "t"), math.Sin); err != nil {
		return nil, err
	}
	if _, err := binding.Bind1(e, ref(wave, "cos"), ref(wave, "t"), math.Cos); err != nil {
		return nil, err
	}
	if _, err := binding.Bind2(e, ref(wave, "tan"), ref(wave, "sin"), ref(wave, "cos"), func(s, c float64) float64 {
		return s / c
	}); err != nil {
		return nil, err
	}
	return e, nil
}

func dot(path string) error {
	e, err := sampleEngine()
	if err != nil {
		return err
	}

	if path == "" {
		e.WriteDOT(os.Stdout)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	e.WriteDOT(f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
