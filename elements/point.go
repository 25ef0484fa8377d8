// Package elements holds geometric objects whose attributes are kept
// consistent by a binding.Engine.
package elements

import (
	"errors"
	"fmt"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/binding"
)

var ErrPointOptions = errors.New("expected either x and y attribute or position attribute (array of length 2)")

type Vec [2]float64

type PointOptions struct {
	X, Y     *float64
	Position []float64
}

// Point keeps x, y and position in sync: writing position updates x and y,
// writing either coordinate updates position.
type Point struct {
	*attrs.Store
	engine *binding.Engine
}

func NewPoint(e *binding.Engine, x, y float64) (*Point, error) {
	return New(e, PointOptions{X: &x, Y: &y})
}

func NewPointAt(e *binding.Engine, position Vec) (*Point, error) {
	return New(e, PointOptions{Position: position[:]})
}

func New(e *binding.Engine, opts PointOptions) (*Point, error) {
	var x, y float64
	switch {
	case opts.X != nil && opts.Y != nil:
		x, y = *opts.X, *opts.Y
	case len(opts.Position) == 2:
		x, y = opts.Position[0], opts.Position[1]
	default:
		return nil, ErrPointOptions
	}

	p := &Point{
		Store: attrs.New(map[string]any{
			"x":        x,
			"y":        y,
			"position": Vec{x, y},
		}),
		engine: e,
	}

	ref := func(attribute string) binding.Ref {
		return binding.Ref{Object: p, Attribute: attribute}
	}
	if _, err := binding.Bind2(e, ref("position"), ref("x"), ref("y"), func(x, y float64) Vec {
		return Vec{x, y}
	}); err != nil {
		return nil, fmt.Errorf("bind position: %w", err)
	}
	if _, err := binding.Bind1(e, ref("x"), ref("position"), func(position Vec) float64 {
		return position[0]
	}); err != nil {
		return nil, fmt.Errorf("bind x: %w", err)
	}
	if _, err := binding.Bind1(e, ref("y"), ref("position"), func(position Vec) float64 {
		return position[1]
	}); err != nil {
		return nil, fmt.Errorf("bind y: %w", err)
	}
	return p, nil
}

func (p *Point) X() float64 {
	x, _ := p.GetAttribute("x").(float64)
	return x
}

func (p *Point) Y() float64 {
	y, _ := p.GetAttribute("y").(float64)
	return y
}

func (p *Point) Position() Vec {
	v, _ := p.GetAttribute("position").(Vec)
	return v
}

func (p *Point) SetX(x float64) error {
	return p.engine.SetAttribute(p, "x", x)
}

func (p *Point) SetY(y float64) error {
	return p.engine.SetAttribute(p, "y", y)
}

func (p *Point) SetPosition(position Vec) error {
	return p.engine.SetAttribute(p, "position", position)
}

// Move writes both coordinates in one batch, so position is recomputed once.
func (p *Point) Move(x, y float64) error {
	return p.engine.SetAttributesFlat(p, "x", x, p, "y", y)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}
