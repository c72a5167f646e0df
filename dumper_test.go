// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRendersHierarchy(t *testing.T) {
	tr := newV4(t)
	require.NoError(t, tr.Insert("10.0.0.0/8", "a"))
	require.NoError(t, tr.Insert("10.0.0.0/24", "b"))

	out := tr.String()
	assert.True(t, strings.Contains(out, "10.0.0.0/8"))
	assert.True(t, strings.Contains(out, "10.0.0.0/24"))
	assert.True(t, strings.Index(out, "10.0.0.0/8") < strings.Index(out, "10.0.0.0/24"))
}

func TestStringEmptyTrie(t *testing.T) {
	tr := newV4(t)
	assert.Equal(t, "", tr.String())
}

func TestDebugDumpIncludesNodeKinds(t *testing.T) {
	tr := newV4(t)
	require.NoError(t, tr.Insert("10.0.0.0/8", "a"))
	require.NoError(t, tr.Insert("192.168.0.0/16", "b"))

	var buf strings.Builder
	require.NoError(t, tr.DebugDump(&buf))
	out := buf.String()

	assert.True(t, strings.Contains(out, "kind=glue"))
	assert.True(t, strings.Contains(out, "kind=real"))
}
