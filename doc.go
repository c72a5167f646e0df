// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

// Package patricia provides an in-memory associative container keyed by
// IPv4 and IPv6 prefixes, supporting longest-prefix-match (LPM) lookup.
//
// The implementation is a classic PATRICIA trie (Practical Algorithm To
// Retrieve Information Coded In Alphanumeric) with path compression: every
// trie node carries an explicit decision bit, and "glue" nodes mark
// branching points that do not themselves correspond to a stored prefix.
// This is the data structure used by routing tables, ACL engines and
// geolocation lookups, where a query address or prefix must resolve to the
// most specific stored prefix that covers it.
//
// A Trie additionally supports a freeze/thaw mode: Freeze compacts every
// node into a contiguous arena suitable for bulk serialization with Dump,
// and Thaw restores the arena back into individually heap-allocated nodes.
// A frozen Trie rejects mutation but remains fully readable.
//
// The zero value of Options is ready to use and yields an IPv4-only Trie;
// see New.
package patricia
