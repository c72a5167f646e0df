// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import "reflect"

// Get performs a longest-prefix-match lookup for key and returns the value
// stored at the most specific covering prefix. It reports ErrNotFound if no
// stored prefix covers key.
func (t *Trie[V]) Get(key any) (V, error) {
	var zero V
	p, err := t.ParseKey(key)
	if err != nil {
		return zero, err
	}
	n := t.searchBest(p, true)
	if n == nil {
		return zero, ErrNotFound
	}
	return n.value, nil
}

// GetDefault is Get, substituting def instead of returning ErrNotFound.
func (t *Trie[V]) GetDefault(key any, def V) V {
	v, err := t.Get(key)
	if err != nil {
		return def
	}
	return v
}

// GetKey performs a longest-prefix-match lookup and additionally returns
// the stored prefix that matched, for callers that need to know which
// prefix, not just which value, covered key.
func (t *Trie[V]) GetKey(key any) (matched Prefix, value V, err error) {
	p, perr := t.ParseKey(key)
	if perr != nil {
		return Prefix{}, value, perr
	}
	n := t.searchBest(p, true)
	if n == nil {
		return Prefix{}, value, ErrNotFound
	}
	return n.prefix, n.value, nil
}

// HasKey reports whether key resolves to a prefix stored with exact
// equality (not merely covered by a shorter prefix).
func (t *Trie[V]) HasKey(key any) bool {
	p, err := t.ParseKey(key)
	if err != nil {
		return false
	}
	return t.searchExact(p) != nil
}

// Contains reports whether any stored prefix covers key under
// longest-prefix-match, without retrieving the value.
func (t *Trie[V]) Contains(key any) bool {
	p, err := t.ParseKey(key)
	if err != nil {
		return false
	}
	return t.searchBest(p, true) != nil
}

// Equal reports whether t and other store the same set of (prefix, value)
// pairs, comparing values with Equaler[V] when the value type implements
// it and reflect.DeepEqual otherwise. Family and Maxbits are not compared
// directly; they are implied by the prefixes themselves.
func (t *Trie[V]) Equal(other *Trie[V]) bool {
	if t == other {
		return true
	}
	if other == nil || t.Len() != other.Len() {
		return false
	}

	match := true
	for p, v := range t.All() {
		ov, err := other.exactValue(p)
		if err != nil || !valuesEqual(v, ov, reflect.DeepEqual) {
			match = false
			break
		}
	}
	return match
}

func (t *Trie[V]) exactValue(p Prefix) (V, error) {
	var zero V
	n := t.searchExact(p)
	if n == nil {
		return zero, ErrNotFound
	}
	return n.value, nil
}
