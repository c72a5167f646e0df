// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// noLink marks the absence of a left/right link in the on-disk
// format. Slice indices are always >= 0, so -1 is a safe sentinel.
const noLink = int32(-1)

// snapshotEntry is the position-independent, on-disk counterpart of node:
// left/right are recorded as indices into snapshot.Nodes rather than as
// pointers, exactly as Freeze's in-memory arena links nodes by position
// rather than by address. Parent links are not stored; Restore re-derives
// them from the left/right links via setChild, the same way Freeze derives
// them from the arena.
type snapshotEntry struct {
	Bit          int32
	Left         int32
	Right        int32
	FamilyV6     bool
	Bitlen       int32
	Addr         []byte
	EncodedValue []byte // present iff Present.Test(i)
}

// snapshot is the full wire format written by Dump and read by Restore.
// Present is a bitset.BitSet flagging which entries are real (carry a
// stored value) versus glue, kept as a packed bitmap alongside the
// per-node struct fields rather than as a bool field on every entry.
type snapshot struct {
	Family   Family
	Maxbits  int32
	MaxNodes int32
	Nodes    []snapshotEntry
	Present  *bitset.BitSet
}

// Dump writes a complete binary snapshot of t to w: every node (real and
// glue), their structural links, and every stored value, gob-encoded.
// Dump works on both a live and a frozen trie.
func (t *Trie[V]) Dump(w io.Writer) error {
	var order []*node[V]
	index := make(map[*node[V]]int32)
	t.walkAll(func(n *node[V]) {
		index[n] = int32(len(order))
		order = append(order, n)
	})

	present := bitset.New(uint(len(order)))
	entries := make([]snapshotEntry, len(order))
	for i, n := range order {
		e := snapshotEntry{
			Bit:      int32(n.bit),
			Left:     noLink,
			Right:    noLink,
			FamilyV6: n.prefix.Family() == V6,
			Bitlen:   int32(n.prefix.Bitlen()),
			Addr:     n.prefix.Bytes(),
		}
		if n.left != nil {
			e.Left = index[n.left]
		}
		if n.right != nil {
			e.Right = index[n.right]
		}
		if n.hasValue {
			present.Set(uint(i))
			buf, err := encodeValue(n.value)
			if err != nil {
				return fmt.Errorf("patricia: dump: encoding value at node %d: %w", i, err)
			}
			e.EncodedValue = buf
		}
		entries[i] = e
	}

	snap := snapshot{
		Family:   t.family,
		Maxbits:  int32(t.maxbits),
		MaxNodes: int32(t.pool.maxNodes),
		Nodes:    entries,
		Present:  present,
	}
	return gob.NewEncoder(w).Encode(&snap)
}

// Restore reconstructs a Trie from a snapshot previously produced by Dump.
// The returned trie is unfrozen and ready for further mutation.
func Restore[V any](r io.Reader) (*Trie[V], error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("patricia: restore: decoding snapshot: %w", err)
	}

	t, err := New[V](Options[V]{
		Family:   snap.Family,
		Maxbits:  int(snap.Maxbits),
		MaxNodes: int(snap.MaxNodes),
	})
	if err != nil {
		return nil, err
	}
	if len(snap.Nodes) == 0 {
		return t, nil
	}
	if snap.Present == nil || snap.Present.Len() != uint(len(snap.Nodes)) {
		return nil, corruptState("presence bitmap length mismatch")
	}

	nodes := make([]*node[V], len(snap.Nodes))
	for i := range snap.Nodes {
		n, gerr := t.pool.get()
		if gerr != nil {
			for _, prev := range nodes {
				if prev != nil {
					t.pool.put(prev)
				}
			}
			return nil, gerr
		}
		nodes[i] = n
	}

	for i, e := range snap.Nodes {
		n := nodes[i]
		n.bit = int(e.Bit)

		family := V4
		if e.FamilyV6 {
			family = V6
		}
		p, perr := NewPrefix(family, e.Addr, int(e.Bitlen))
		if perr != nil {
			return nil, corruptState(fmt.Sprintf("node %d: %v", i, perr))
		}
		n.prefix = p

		if snap.Present.Test(uint(i)) {
			v, derr := decodeValue[V](e.EncodedValue)
			if derr != nil {
				return nil, corruptState(fmt.Sprintf("node %d: decoding value: %v", i, derr))
			}
			n.hasValue = true
			n.value = v
			t.size++
		}

		if err := linkIndex(nodes, i, e.Left, func(n, c *node[V]) { n.setChild(dirLeft, c) }); err != nil {
			return nil, err
		}
		if err := linkIndex(nodes, i, e.Right, func(n, c *node[V]) { n.setChild(dirRight, c) }); err != nil {
			return nil, err
		}
	}

	t.head = nodes[0]
	return t, nil
}

func linkIndex[V any](nodes []*node[V], parentIdx int, childIdx int32, link func(parent, child *node[V])) error {
	if childIdx == noLink {
		return nil
	}
	if childIdx < 0 || int(childIdx) >= len(nodes) {
		return corruptState(fmt.Sprintf("node %d: child index %d out of range", parentIdx, childIdx))
	}
	link(nodes[parentIdx], nodes[childIdx])
	return nil
}

func encodeValue[V any](v V) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeValue[V any](b []byte) (V, error) {
	var v V
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}
