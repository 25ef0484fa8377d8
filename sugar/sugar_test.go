package sugar_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/delaneyj/rebound/attrs"
	"github.com/delaneyj/rebound/binding"
	"github.com/delaneyj/rebound/emitter"
	"github.com/delaneyj/rebound/expr"
	"github.com/delaneyj/rebound/sugar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFollowsReference(t *testing.T) {
	p := attrs.New(map[string]any{"x": 10})
	label := attrs.New(nil)

	b, err := sugar.Bind(label, "x", "{p.x} + 5", expr.Namespace{"p": p})
	require.NoError(t, err)
	assert.Equal(t, 15.0, label.GetAttribute("x"))
	assert.Equal(t, 1, b.Subscriptions())
	assert.Equal(t, "x", b.Attribute())
	assert.Equal(t, "{p.x} + 5", b.Expression().Text())

	p.SetAttribute("x", 20)
	assert.Equal(t, 25.0, label.GetAttribute("x"))
}

func TestInitialWriteNotifies(t *testing.T) {
	label := attrs.New(nil)
	var got any
	label.OnUpdate("x", func(chain *emitter.Chain, oldValue, newValue any) {
		got = newValue
	})
	_, err := sugar.Bind(label, "x", "2 + 3 * 4", nil)
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
}

// a -> b -> c
func TestChainedBindings(t *testing.T) {
	a := attrs.New(map[string]any{"v": 1})
	b := attrs.New(nil)
	c := attrs.New(nil)
	ns := expr.Namespace{"a": a, "b": b, "c": c}

	_, err := sugar.Bind(b, "v", "{a.v} * 2", ns)
	require.NoError(t, err)
	_, err = sugar.Bind(c, "v", "{b.v} + 1", ns)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.GetAttribute("v"))

	a.SetAttribute("v", 3)
	assert.Equal(t, 6.0, b.GetAttribute("v"))
	assert.Equal(t, 7.0, c.GetAttribute("v"))
}

// x = y + 1 and y = x - 1 watch each other; the notification chain stops the
// echo after one round trip.
func TestMutualBindingsTerminate(t *testing.T) {
	s := attrs.New(map[string]any{"x": 0, "y": 0})
	ns := expr.Namespace{"s": s}

	_, err := sugar.Bind(s, "x", "{s.y} + 1", ns)
	require.NoError(t, err)
	_, err = sugar.Bind(s, "y", "{s.x} - 1", ns)
	require.NoError(t, err)

	s.SetAttribute("x", 10)
	assert.Equal(t, 10.0, s.GetAttribute("x"))
	assert.Equal(t, 9.0, s.GetAttribute("y"))
}

func TestSelfReferenceThroughAlias(t *testing.T) {
	s := attrs.New(map[string]any{"x": 2, "double": 0})
	_, err := sugar.Bind(s, "double", "{!s.x} + s.x", expr.Namespace{"s": s})
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.GetAttribute("double"))

	s.SetAttribute("x", 5)
	assert.Equal(t, 10.0, s.GetAttribute("double"))
}

// total is registered on a before b is, so when a changes total recomputes
// against the old b first and only settles once b announces its own update.
func TestNoBatchAtomicity(t *testing.T) {
	s := attrs.New(map[string]any{"a": 0, "b": 0, "total": 0})
	ns := expr.Namespace{"s": s}

	_, err := sugar.Bind(s, "total", "{s.a} + {s.b}", ns)
	require.NoError(t, err)
	_, err = sugar.Bind(s, "b", "{s.a} * 2", ns)
	require.NoError(t, err)

	var seen []any
	s.OnUpdate("total", func(chain *emitter.Chain, oldValue, newValue any) {
		seen = append(seen, newValue)
	})

	s.SetAttribute("a", 1)
	assert.Equal(t, []any{1.0, 3.0}, seen)
	assert.Equal(t, 3.0, s.GetAttribute("total"))
}

// Engine batches finish before notifications, so sugar bindings reading
// engine-derived attributes only ever see the settled state.
func TestFollowsEngineBatches(t *testing.T) {
	e := binding.New()
	s := attrs.New(map[string]any{"a": 5, "b": 2, "diff": 3})
	_, err := binding.Bind2(e,
		binding.Ref{Object: s, Attribute: "diff"},
		binding.Ref{Object: s, Attribute: "a"},
		binding.Ref{Object: s, Attribute: "b"},
		func(a, b int) int { return a - b },
	)
	require.NoError(t, err)

	label := attrs.New(nil)
	_, err = sugar.Bind(label, "v", "{s.diff} * 10", expr.Namespace{"s": s})
	require.NoError(t, err)
	assert.Equal(t, 30.0, label.GetAttribute("v"))

	var seen []any
	label.OnUpdate("v", func(chain *emitter.Chain, oldValue, newValue any) {
		seen = append(seen, newValue)
	})

	require.NoError(t, e.SetAttributesFlat(s, "a", 10, s, "b", 3))
	assert.Equal(t, 70.0, label.GetAttribute("v"))
	assert.Equal(t, []any{70.0}, seen)
}

func TestUnobservableReference(t *testing.T) {
	label := attrs.New(nil)
	b, err := sugar.Bind(label, "v", "{k} * 3", expr.Namespace{"k": 2})
	require.NoError(t, err)
	assert.Equal(t, 6.0, label.GetAttribute("v"))
	assert.Equal(t, 0, b.Subscriptions())
}

func TestBindErrors(t *testing.T) {
	label := attrs.New(nil)
	ns := expr.Namespace{"p": attrs.New(map[string]any{"name": "p"})}

	_, err := sugar.Bind(label, "v", "1 +", ns)
	assert.ErrorIs(t, err, expr.ErrSyntax)

	_, err = sugar.Bind(label, "v", "{q.x}", ns)
	assert.ErrorIs(t, err, expr.ErrUnresolved)

	_, err = sugar.Bind(label, "v", "{p.name}", ns)
	assert.ErrorIs(t, err, expr.ErrNotNumeric)

	_, err = sugar.Bind(nil, "v", "1", ns)
	assert.Error(t, err)

	assert.False(t, label.HasAttribute("v"))
}

func TestNotificationErrorsGoToOnError(t *testing.T) {
	p := attrs.New(map[string]any{"x": 1})
	label := attrs.New(nil)

	var failures []error
	b, err := sugar.Bind(label, "v", "{p.x} * 2", expr.Namespace{"p": p},
		sugar.WithOnError(func(b *sugar.Binding, err error) {
			failures = append(failures, err)
		}),
	)
	require.NoError(t, err)

	p.SetAttribute("x", "oops")
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], expr.ErrNotNumeric)
	assert.Equal(t, 2.0, label.GetAttribute("v"))

	assert.ErrorIs(t, b.Refresh(), expr.ErrNotNumeric)
	p.StoreAttribute("x", 4)
	require.NoError(t, b.Refresh())
	assert.Equal(t, 8.0, label.GetAttribute("v"))
}

func TestNotificationErrorsAreLoggedByDefault(t *testing.T) {
	p := attrs.New(map[string]any{"x": 1})
	label := attrs.New(nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	_, err := sugar.Bind(label, "v", "{p.x}", expr.Namespace{"p": p}, sugar.WithLogger(logger))
	require.NoError(t, err)

	p.SetAttribute("x", "oops")
	assert.Contains(t, buf.String(), "expression binding failed")
	assert.Contains(t, buf.String(), "attribute=v")
}

func TestClose(t *testing.T) {
	p := attrs.New(map[string]any{"x": 1})
	label := attrs.New(nil)
	b, err := sugar.Bind(label, "v", "{p.x}", expr.Namespace{"p": p})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Listeners(emitter.UpdateEvent("x")))

	b.Close()
	assert.Equal(t, 0, p.Listeners(emitter.UpdateEvent("x")))
	p.SetAttribute("x", 2)
	assert.Equal(t, 1.0, label.GetAttribute("v"))
}
