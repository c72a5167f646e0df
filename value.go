// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

// ValueLifecycle is the boundary contract a Trie consumes to manage the
// lifetime of stored values. Acquire is called exactly once when a value is
// newly stored in a node; Release is called exactly once when that value is
// displaced by an overwrite or when its node is removed or the trie is torn
// down. Implementations abstract host-language reference counting; for
// ordinary Go values managed by the garbage collector both methods are
// no-ops, which is what a Trie uses when Options.Lifecycle is nil.
type ValueLifecycle[V any] interface {
	Acquire(v V)
	Release(v V)
}

// noopLifecycle is the zero-cost ValueLifecycle used when a Trie is
// constructed without an explicit one.
type noopLifecycle[V any] struct{}

func (noopLifecycle[V]) Acquire(V) {}
func (noopLifecycle[V]) Release(V) {}

// Cloner is an interface that enables deep cloning of values of type V. If a
// stored value implements Cloner[V], diagnostic export paths (MarshalJSON,
// DumpList) use Clone to hand the caller a defensive copy instead of the
// live value.
type Cloner[V any] interface {
	Clone() V
}

// Equaler is a generic interface for types that can decide their own
// equality logic. Trie.Equal and the test suite use it to avoid the
// potentially expensive default comparison with reflect.DeepEqual.
type Equaler[V any] interface {
	Equal(other V) bool
}

// cloneVal returns a defensive copy of v when V implements Cloner[V],
// otherwise it returns v unchanged.
func cloneVal[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

// valuesEqual compares a and b using Equaler[V] when available, falling
// back to the caller-supplied deepEqual function otherwise.
func valuesEqual[V any](a, b V, deepEqual func(a, b V) bool) bool {
	if e, ok := any(a).(Equaler[V]); ok {
		return e.Equal(b)
	}
	return deepEqual(a, b)
}
