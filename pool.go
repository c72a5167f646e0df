// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import "sync"

// nodePool is a type-safe wrapper around sync.Pool specialized for *node[V]
// instances. The trie is documented single-threaded (§5), so the pool buys
// nothing for concurrency here; it is kept for the same reason the teacher
// library keeps one — to cut allocator churn on hot insert/remove paths —
// and repurposed to give the specification's Capacity error kind a concrete,
// testable trigger: maxNodes, when non-zero, bounds how many live nodes the
// pool will ever hand out.
type nodePool[V any] struct {
	sync.Pool

	maxNodes int // 0 means unbounded
	live     int // nodes currently checked out, not yet returned
}

func newNodePool[V any](maxNodes int) *nodePool[V] {
	p := &nodePool[V]{maxNodes: maxNodes}
	p.New = func() any { return new(node[V]) }
	return p
}

// get allocates a node, or returns (nil, ErrCapacity) if maxNodes is set and
// already reached.
func (p *nodePool[V]) get() (*node[V], error) {
	if p.maxNodes > 0 && p.live >= p.maxNodes {
		return nil, ErrCapacity
	}
	p.live++
	return p.Pool.Get().(*node[V]), nil
}

// put resets n and returns it to the pool.
func (p *nodePool[V]) put(n *node[V]) {
	n.reset()
	p.live--
	p.Pool.Put(n)
}

// liveCount reports the number of nodes currently checked out of the pool.
func (p *nodePool[V]) liveCount() int { return p.live }
