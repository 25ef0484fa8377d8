package emitter_test

import (
	"testing"

	"github.com/delaneyj/rebound/emitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitInSubscriptionOrder(t *testing.T) {
	var e emitter.Emitter

	var calls []string
	e.On("tick", func(chain *emitter.Chain, args ...any) {
		calls = append(calls, "first")
		require.Len(t, args, 2)
		assert.Equal(t, 1, args[0])
		assert.Equal(t, "two", args[1])
	})
	e.On("tick", func(chain *emitter.Chain, args ...any) {
		calls = append(calls, "second")
	})
	e.On("tock", func(chain *emitter.Chain, args ...any) {
		calls = append(calls, "other")
	})

	e.Emit("tick", 1, "two")
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEmitWithoutListeners(t *testing.T) {
	var e emitter.Emitter
	assert.NotPanics(t, func() {
		e.Emit("nothing")
	})
	assert.Equal(t, 0, e.Listeners("nothing"))
}

func TestOff(t *testing.T) {
	var e emitter.Emitter
	callCount := 0
	off := e.On("tick", func(chain *emitter.Chain, args ...any) {
		callCount++
	})
	e.Emit("tick")
	assert.Equal(t, 1, callCount)

	off()
	e.Emit("tick")
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 0, e.Listeners("tick"))

	// removing twice is harmless
	off()
}

func TestOffDuringEmit(t *testing.T) {
	var e emitter.Emitter
	var calls []string
	var offSecond func()
	e.On("tick", func(chain *emitter.Chain, args ...any) {
		calls = append(calls, "first")
		offSecond()
	})
	offSecond = e.On("tick", func(chain *emitter.Chain, args ...any) {
		calls = append(calls, "second")
	})

	e.Emit("tick")
	assert.Equal(t, []string{"first", "second"}, calls)
	e.Emit("tick")
	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

// a <-> b echo each other; the chain stops the second round trip.
func TestReentrantEmitSkipsActiveCallbacks(t *testing.T) {
	var a, b emitter.Emitter

	aCount, bCount := 0, 0
	a.On("update", func(chain *emitter.Chain, args ...any) {
		aCount++
		b.EmitChain(chain, "update")
	})
	b.On("update", func(chain *emitter.Chain, args ...any) {
		bCount++
		a.EmitChain(chain, "update")
	})

	a.Emit("update")
	assert.Equal(t, 1, aCount)
	assert.Equal(t, 1, bCount)
}

//	  root
//	 /    \
//	l      r
//	 \    /
//	  leaf
//
// leaf runs once per branch because each branch pops it before the next.
func TestSameCallbackOnDifferentBranches(t *testing.T) {
	var root, left, right, leaf emitter.Emitter

	leafCount := 0
	depths := []int{}
	leaf.On("update", func(chain *emitter.Chain, args ...any) {
		leafCount++
		depths = append(depths, chain.Depth())
	})
	shared := func(chain *emitter.Chain, args ...any) {
		leaf.EmitChain(chain, "update")
	}
	left.On("update", shared)
	right.On("update", shared)
	root.On("update", func(chain *emitter.Chain, args ...any) {
		left.EmitChain(chain, "update")
		right.EmitChain(chain, "update")
	})

	root.Emit("update")
	assert.Equal(t, 2, leafCount)
	assert.Equal(t, []int{3, 3}, depths)
}

func TestChainIsReleasedAfterPanic(t *testing.T) {
	var e emitter.Emitter
	chain := emitter.NewChain()
	e.On("boom", func(chain *emitter.Chain, args ...any) {
		panic("boom")
	})
	assert.Panics(t, func() {
		e.EmitChain(chain, "boom")
	})
	assert.Equal(t, 0, chain.Depth())
}

func TestUpdateEvent(t *testing.T) {
	assert.Equal(t, "attribute:x:update", emitter.UpdateEvent("x"))
}
