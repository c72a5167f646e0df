// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import "encoding/json"

// DumpListNode is one entry of the recursive, sorted JSON representation
// produced by DumpList and MarshalJSON.
type DumpListNode[V any] struct {
	CIDR    string            `json:"cidr"`
	Value   V                 `json:"value"`
	Subnets []DumpListNode[V] `json:"subnets,omitempty"`
}

// MarshalJSON renders the trie as a single sorted, nested list: every
// top-level entry is a stored prefix with no covering ancestor in the
// trie, and its Subnets are its stored descendants, recursively. Order
// matters for round-tripping, so the tree is a JSON array, not an object
// keyed by CIDR.
func (t *Trie[V]) MarshalJSON() ([]byte, error) {
	list := t.DumpList()
	return json.Marshal(list)
}

// DumpList returns the same recursive structure MarshalJSON serializes,
// for callers that want the Go value rather than encoded bytes.
func (t *Trie[V]) DumpList() []DumpListNode[V] {
	if t.head == nil {
		return nil
	}
	// A detached root above head lets a real head appear as a top-level entry.
	return dumpListChildren(&node[V]{left: t.head})
}

func dumpListChildren[V any](n *node[V]) []DumpListNode[V] {
	kids := directRealChildren(n)
	out := make([]DumpListNode[V], 0, len(kids))
	for _, k := range kids {
		out = append(out, DumpListNode[V]{
			CIDR:    k.prefix.String(),
			Value:   cloneVal(k.value),
			Subnets: dumpListChildren(k),
		})
	}
	return out
}
