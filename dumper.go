// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements encoding.TextMarshaler as a wrapper for Fprint.
func (t *Trie[V]) MarshalText() ([]byte, error) {
	if t.head == nil {
		return nil, errors.New("patricia: empty trie")
	}
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the stored prefixes. If
// Fprint returns an error, String panics, matching the convention of
// fmt.Stringer implementations that cannot themselves return an error.
func (t *Trie[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored prefixes to w,
// nesting each prefix under its covering Parent.
//
//	▼
//	├─ 10.0.0.0/8 (V)
//	│  ├─ 10.0.0.0/24 (V)
//	│  └─ 10.0.1.0/24 (V)
//	└─ 192.168.0.0/16 (V)
//	   └─ 192.168.1.0/24 (V)
func (t *Trie[V]) Fprint(w io.Writer) error {
	if t.head == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	// A detached root above head lets a real head print as a top-level entry.
	return t.fprintChildren(w, &node[V]{left: t.head}, "")
}

// fprintChildren prints the direct real descendants of n (glue nodes are
// transparent to the printed hierarchy) and recurses into each.
func (t *Trie[V]) fprintChildren(w io.Writer, n *node[V], pad string) error {
	kids := directRealChildren(n)

	glyph, spacer := "├─ ", "│  "
	for i, k := range kids {
		if i == len(kids)-1 {
			glyph, spacer = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s (%v)\n", pad, glyph, k.prefix, k.value); err != nil {
			return err
		}
		if err := t.fprintChildren(w, k, pad+spacer); err != nil {
			return err
		}
	}
	return nil
}

// directRealChildren returns the real nodes reachable from n by descending
// through glue nodes, stopping the descent at the first real node found on
// each branch (its own deeper descendants are collected by a later,
// recursive call rather than here).
func directRealChildren[V any](n *node[V]) []*node[V] {
	var out []*node[V]
	var walk func(*node[V], bool)
	walk = func(c *node[V], isRoot bool) {
		if c == nil {
			return
		}
		if !isRoot && c.hasValue {
			out = append(out, c)
			return
		}
		walk(c.left, false)
		walk(c.right, false)
	}
	walk(n, true)
	return out
}

// DebugDump writes a low-level, line-per-node description of the trie's
// internal structure to w: every node's bit and glue/real kind, plus the
// prefix and value of each real node, in walk order. Unlike Fprint, which renders the logical CIDR hierarchy,
// DebugDump renders the physical trie shape, useful while debugging
// insert/remove splicing.
func (t *Trie[V]) DebugDump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "family=%s maxbits=%d size=%d frozen=%v\n", t.family, t.maxbits, t.size, t.frozen); err != nil {
		return err
	}
	var err error
	t.walkAll(func(n *node[V]) {
		if err != nil {
			return
		}
		kind := "glue"
		extra := ""
		if n.hasValue {
			kind = "real"
			extra = fmt.Sprintf(" prefix=%s value=%v", n.prefix, n.value)
		}
		_, err = fmt.Fprintf(w, "node bit=%d kind=%s%s\n", n.bit, kind, extra)
	})
	return err
}
