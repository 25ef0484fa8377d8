package elements_test

import (
	"testing"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/binding"
	"github.com/delaneyj/rebound/elements"
	"github.com/delaneyj/rebound/emitter"
	"github.com/delaneyj/rebound/expr"
	"github.com/delaneyj/rebound/sugar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointValidatesOptions(t *testing.T) {
	e := binding.New()
	one := 1.0

	_, err := elements.New(e, elements.PointOptions{})
	assert.ErrorIs(t, err, elements.ErrPointOptions)

	_, err = elements.New(e, elements.PointOptions{X: &one})
	assert.ErrorIs(t, err, elements.ErrPointOptions)

	_, err = elements.New(e, elements.PointOptions{Position: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, elements.ErrPointOptions)

	assert.Empty(t, e.Bindings())
}

func TestPointUpdatesCoordinatesWithPosition(t *testing.T) {
	e := binding.New()
	p, err := elements.NewPointAt(e, elements.Vec{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.X())
	assert.Equal(t, 2.0, p.Y())

	require.NoError(t, p.SetPosition(elements.Vec{3, 4}))
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
}

func TestPointUpdatesPositionWithCoordinates(t *testing.T) {
	e := binding.New()
	p, err := elements.NewPoint(e, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, elements.Vec{1, 2}, p.Position())

	require.NoError(t, p.SetX(3))
	assert.Equal(t, elements.Vec{3, 2}, p.Position())

	require.NoError(t, p.SetY(4))
	assert.Equal(t, elements.Vec{3, 4}, p.Position())
	assert.Equal(t, "(3, 4)", p.String())
}

func TestPointMoveIsOneBatch(t *testing.T) {
	e := binding.New()
	p, err := elements.NewPoint(e, 0, 0)
	require.NoError(t, err)

	var positions []any
	p.OnUpdate("position", func(_ *emitter.Chain, _, newValue any) {
		positions = append(positions, newValue)
	})

	require.NoError(t, p.Move(5, 6))
	assert.Equal(t, []any{elements.Vec{5, 6}}, positions)
	assert.Equal(t, 5.0, p.X())
	assert.Equal(t, 6.0, p.Y())
}

// a ──┐
//     ├──> m.position ──> m.x, m.y
// b ──┘
func TestMidpointAcrossPoints(t *testing.T) {
	e := binding.New()
	a, err := elements.NewPoint(e, 0, 0)
	require.NoError(t, err)
	b, err := elements.NewPoint(e, 2, 4)
	require.NoError(t, err)
	m, err := elements.NewPoint(e, 1, 2)
	require.NoError(t, err)

	_, err = binding.Bind2(e,
		binding.Ref{Object: m, Attribute: "position"},
		binding.Ref{Object: a, Attribute: "position"},
		binding.Ref{Object: b, Attribute: "position"},
		func(a, b elements.Vec) elements.Vec {
			return elements.Vec{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
		},
	)
	require.NoError(t, err)

	require.NoError(t, a.Move(2, 2))
	assert.Equal(t, elements.Vec{2, 3}, m.Position())
	assert.Equal(t, 2.0, m.X())
	assert.Equal(t, 3.0, m.Y())
	assert.Equal(t, elements.Vec{2, 4}, b.Position())
}

func TestPointWrongPositionType(t *testing.T) {
	e := binding.New()
	p, err := elements.NewPoint(e, 1, 2)
	require.NoError(t, err)

	err = e.SetAttribute(p, "position", []float64{3, 4})
	assert.ErrorIs(t, err, binding.ErrInconsistent)
	assert.ErrorIs(t, err, binding.ErrArgument)
}

func TestPointDrivesExpressions(t *testing.T) {
	e := binding.New()
	p, err := elements.NewPoint(e, 1, 2)
	require.NoError(t, err)

	label := attrs.New(nil)
	_, err = sugar.Bind(label, "x", "{p.x} * 10 + 5", expr.Namespace{"p": p})
	require.NoError(t, err)
	assert.Equal(t, 15.0, label.GetAttribute("x"))

	require.NoError(t, p.SetPosition(elements.Vec{7, 8}))
	assert.Equal(t, 75.0, label.GetAttribute("x"))
}
