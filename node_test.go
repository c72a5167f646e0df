// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeSetChildLinksParent(t *testing.T) {
	parent := &node[int]{bit: 4}
	child := &node[int]{bit: 8}

	parent.setChild(dirRight, child)

	assert.Same(t, child, parent.right)
	assert.Same(t, parent, child.parent)
	assert.Equal(t, dirRight, child.dirFromParent())
}

func TestNodeChildCountAndSoleChild(t *testing.T) {
	n := &node[int]{}
	assert.Equal(t, 0, n.childCount())

	left := &node[int]{}
	n.setChild(dirLeft, left)
	assert.Equal(t, 1, n.childCount())
	assert.Same(t, left, n.soleChild())

	right := &node[int]{}
	n.setChild(dirRight, right)
	assert.Equal(t, 2, n.childCount())
}

func TestNodeReset(t *testing.T) {
	n := &node[string]{
		bit:      5,
		hasValue: true,
		value:    "x",
		left:     &node[string]{},
		right:    &node[string]{},
		parent:   &node[string]{},
	}
	n.reset()

	assert.Equal(t, 0, n.bit)
	assert.False(t, n.hasValue)
	assert.Equal(t, "", n.value)
	assert.Nil(t, n.left)
	assert.Nil(t, n.right)
	assert.Nil(t, n.parent)
}
