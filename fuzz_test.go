// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// randomPrefixes generates n distinct, random V4 prefixes with gofuzz
// driving the address bytes and bit length. Distinct means pairwise unequal
// under Prefix.Equal, which ignores bits past the bit length, as the trie
// does.
func randomPrefixes(t *testing.T, n int, seed int64) []Prefix {
	t.Helper()
	f := fuzz.NewWithSeed(seed)

	out := make([]Prefix, 0, n)
	for len(out) < n {
		var addr [4]byte
		f.Fuzz(&addr)

		var bitlenByte byte
		f.Fuzz(&bitlenByte)
		bitlen := int(bitlenByte) % 33

		p, err := NewPrefix(V4, addr[:], bitlen)
		require.NoError(t, err)

		dup := false
		for _, q := range out {
			if q.Equal(p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// naiveLongestMatch finds the LPM over a flat slice, the reference
// implementation randomized trie behavior is checked against.
func naiveLongestMatch(prefixes []Prefix, values map[string]int, query Prefix) (int, bool) {
	best := -1
	var bestVal int
	for _, p := range prefixes {
		if p.Bitlen() > query.Bitlen() {
			continue
		}
		if !equalToLength(p, query, p.Bitlen()) {
			continue
		}
		if p.Bitlen() > best {
			best = p.Bitlen()
			bestVal = values[p.String()]
		}
	}
	return bestVal, best >= 0
}

func TestRandomizedLongestPrefixMatchAgreesWithNaiveScan(t *testing.T) {
	tr := newV4WithOptions(t)
	prefixes := randomPrefixes(t, 200, 1)

	values := map[string]int{}
	for i, p := range prefixes {
		values[p.String()] = i
		require.NoError(t, tr.Insert(p, i))
	}

	queries := randomPrefixes(t, 50, 2)
	for _, q := range queries {
		want, wantOK := naiveLongestMatch(prefixes, values, q)

		got, err := tr.Get(q)
		gotOK := err == nil

		if gotOK != wantOK {
			t.Fatalf("query %s: got found=%v, want found=%v", q, gotOK, wantOK)
		}
		if wantOK && got != want {
			t.Fatalf("query %s: got %d, want %d", q, got, want)
		}
	}
}

func TestRandomizedInsertThenKeysMatchesExpectedSet(t *testing.T) {
	tr := newV4WithOptions(t)
	prefixes := randomPrefixes(t, 100, 3)

	var want []string
	for i, p := range prefixes {
		want = append(want, p.String())
		require.NoError(t, tr.Insert(p, i))
	}

	var got []string
	for _, p := range tr.Keys() {
		got = append(got, p.String())
	}

	sort.Strings(want)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func newV4WithOptions(t *testing.T) *Trie[int] {
	t.Helper()
	tr, err := New[int](Options[int]{})
	require.NoError(t, err)
	return tr
}
