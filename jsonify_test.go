// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONNesting(t *testing.T) {
	tr := newV4(t)
	require.NoError(t, tr.Insert("10.0.0.0/8", "a"))
	require.NoError(t, tr.Insert("10.0.0.0/24", "b"))
	require.NoError(t, tr.Insert("192.168.0.0/16", "c"))

	buf, err := tr.MarshalJSON()
	require.NoError(t, err)

	var list []DumpListNode[string]
	require.NoError(t, json.Unmarshal(buf, &list))
	assert.Len(t, list, 2)

	for _, top := range list {
		if top.CIDR == "10.0.0.0/8" {
			require.Len(t, top.Subnets, 1)
			assert.Equal(t, "10.0.0.0/24", top.Subnets[0].CIDR)
		}
	}
}

func TestMarshalJSONEmptyTrie(t *testing.T) {
	tr := newV4(t)
	buf, err := tr.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(buf))
}
