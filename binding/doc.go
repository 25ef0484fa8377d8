// Package binding maintains a dependency graph between named attributes of
// objects and keeps derived attributes current.
//
// A Binding derives one target slot from an ordered list of dependency slots.
// Engine.SetAttributes applies a batch of external writes as one mutation:
// every slot reachable from the written ones is recomputed exactly once, after
// its own in-batch dependencies, and the batch never loops on cyclic graphs.
// Change notifications fire only once the whole batch has been applied.
//
// An Engine and everything it owns is meant for a single goroutine.
package binding
