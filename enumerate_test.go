// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysAndAllAgree(t *testing.T) {
	tr := newV4(t)
	want := map[string]string{
		"10.0.0.0/8":     "a",
		"10.1.0.0/16":    "b",
		"192.168.0.0/16": "c",
	}
	for k, v := range want {
		require.NoError(t, tr.Insert(k, v))
	}

	keys := tr.Keys()
	assert.Len(t, keys, len(want))

	got := map[string]string{}
	for p, v := range tr.All() {
		got[p.String()] = v
	}
	assert.Equal(t, want, got)
}

func TestAllEarlyExit(t *testing.T) {
	tr := newV4(t)
	require.NoError(t, tr.Insert("10.0.0.0/8", "a"))
	require.NoError(t, tr.Insert("192.168.0.0/16", "b"))

	n := 0
	for range tr.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestChildrenNotFound(t *testing.T) {
	tr := newV4(t)
	require.NoError(t, tr.Insert("10.0.0.0/8", "a"))

	p, err := NewPrefix(V4, []byte{192, 168, 0, 0}, 16)
	require.NoError(t, err)

	_, err = tr.Children(p)
	assert.ErrorIs(t, err, ErrNotFound)
}
