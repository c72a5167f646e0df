// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import "fmt"

// Options configures a new Trie. The zero value selects a 32-bit IPv4 trie
// with no node ceiling, matching the specification's stated defaults.
type Options[V any] struct {
	// Maxbits is the maximum bit length the trie will accept. Zero means
	// "use Family's natural maxbits" (32 for V4, 128 for V6).
	Maxbits int

	// Family is the trie's address family. Zero means V4.
	Family Family

	// MaxNodes bounds the number of live nodes the trie's allocator will
	// hand out; zero means unbounded. See ErrCapacity.
	MaxNodes int

	// Lifecycle receives Acquire/Release notifications as values are
	// stored, replaced or removed. Nil installs a no-op lifecycle,
	// appropriate for ordinary garbage-collected Go values.
	Lifecycle ValueLifecycle[V]
}

// Trie is an in-memory PATRICIA trie mapping IP prefixes to values of type
// V, supporting longest-prefix-match lookup. The zero value is not usable;
// construct one with New.
//
// A Trie is not safe for concurrent use: callers performing concurrent
// reads and writes, or concurrent writes, must serialize access themselves
// (§5 of the specification this package implements).
type Trie[V any] struct {
	head    *node[V]
	maxbits int
	family  Family
	size    int // count of real nodes

	frozen bool
	arena  []node[V]

	pool      *nodePool[V]
	lifecycle ValueLifecycle[V]
}

// New constructs a Trie per opts.
func New[V any](opts Options[V]) (*Trie[V], error) {
	family := opts.Family
	if family == 0 {
		family = V4
	}
	if family != V4 && family != V6 {
		return nil, fmt.Errorf("patricia: invalid family %d", opts.Family)
	}

	maxbits := opts.Maxbits
	if maxbits == 0 {
		maxbits = family.Maxbits()
	}
	if maxbits < 0 || maxbits > family.Maxbits() {
		return nil, fmt.Errorf("patricia: maxbits %d out of range for %s", maxbits, family)
	}

	t := &Trie[V]{
		maxbits:   maxbits,
		family:    family,
		pool:      newNodePool[V](opts.MaxNodes),
		lifecycle: noopLifecycle[V]{},
	}
	if opts.Lifecycle != nil {
		t.lifecycle = opts.Lifecycle
	}
	return t, nil
}

// Family reports the trie's address family.
func (t *Trie[V]) Family() Family { return t.family }

// Maxbits reports the trie's configured maximum prefix length.
func (t *Trie[V]) Maxbits() int { return t.maxbits }

// Len returns the number of stored (prefix, value) entries.
func (t *Trie[V]) Len() int { return t.size }

// Frozen reports whether the trie is currently in frozen (arena) form.
func (t *Trie[V]) Frozen() bool { return t.frozen }

// Close walks the trie, releasing every stored value through the value
// lifecycle, then returns a thawed trie's nodes to the node pool or drops
// a frozen trie's arena. It is safe to call more than once and safe on an
// empty or frozen trie.
func (t *Trie[V]) Close() {
	var nodes []*node[V]
	t.walkAll(func(n *node[V]) {
		if n.hasValue {
			t.lifecycle.Release(n.value)
		}
		if !t.frozen {
			nodes = append(nodes, n)
		}
	})
	for _, n := range nodes {
		t.pool.put(n)
	}
	t.arena = nil
	t.frozen = false
	t.head = nil
	t.size = 0
}

func (t *Trie[V]) checkBitlen(bitlen int) error {
	if bitlen < 0 || bitlen > t.maxbits {
		return fmt.Errorf("patricia: bitlen %d out of range [0,%d]", bitlen, t.maxbits)
	}
	return nil
}
