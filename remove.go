// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

// unlink detaches the real node n from the trie, splicing out any glue
// node left holding a single child, and returns n to the node pool.
// Grounded on patricia_remove.
func (t *Trie[V]) unlink(n *node[V]) {
	// A node with two children cannot be removed from the tree shape; it
	// becomes a glue node in place, satisfying invariant 4 (every glue
	// node has exactly two children) without disturbing either subtree.
	if n.left != nil && n.right != nil {
		n.hasValue = false
		var zero V
		n.value = zero
		return
	}

	if n.left == nil && n.right == nil {
		parent := n.parent
		t.pool.put(n)

		if parent == nil {
			t.head = nil
			return
		}

		if parent.right == n {
			parent.right = nil
		} else {
			parent.left = nil
		}

		if parent.hasValue {
			return
		}

		// parent is now a glue node with exactly one remaining child;
		// splice it out.
		child := parent.soleChild()
		grandparent := parent.parent
		if child != nil {
			child.parent = grandparent
		}
		if grandparent == nil {
			t.head = child
		} else if grandparent.right == parent {
			grandparent.right = child
		} else {
			grandparent.left = child
		}
		t.pool.put(parent)
		return
	}

	// Exactly one child.
	child := n.soleChild()
	parent := n.parent
	child.parent = parent
	if parent == nil {
		t.head = child
	} else if parent.right == n {
		parent.right = child
	} else {
		parent.left = child
	}
	t.pool.put(n)
}

// Delete removes the entry stored under the exact prefix resolved from
// key, releasing its value through the value lifecycle. It reports
// ErrNotFound if no entry has that exact prefix.
func (t *Trie[V]) Delete(key any) error {
	if t.frozen {
		return ErrFrozen
	}
	p, err := t.ParseKey(key)
	if err != nil {
		return err
	}

	n := t.searchExact(p)
	if n == nil {
		return ErrNotFound
	}

	v := n.value
	t.unlink(n)
	t.size--
	t.lifecycle.Release(v)
	return nil
}
