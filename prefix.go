// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"fmt"
	"net/netip"
)

// Prefix is a bit-addressable trie key: an address family, a bit length and
// the address bytes themselves. Only the first Bitlen bits are semantically
// meaningful; trailing bits may be non-zero but are ignored by every
// comparison in this package.
//
// The zero Prefix has no valid family: String reports "<invalid prefix>"
// and Bytes panics. Build Prefix values with NewPrefix or Trie.ParseKey.
type Prefix struct {
	family Family
	bitlen int
	addr   [16]byte // first Family.Maxbits()/8 bytes are significant
}

// NewPrefix constructs a Prefix, validating bitlen against the family's
// maxbits. Bytes beyond the declared bitlen are retained verbatim, per
// design note in §9 of the specification this package implements.
func NewPrefix(family Family, addr []byte, bitlen int) (Prefix, error) {
	max := family.Maxbits()
	if bitlen < 0 || bitlen > max {
		return Prefix{}, fmt.Errorf("patricia: bitlen %d out of range [0,%d] for %s", bitlen, max, family)
	}

	var p Prefix
	p.family = family
	p.bitlen = bitlen
	copy(p.addr[:max/8], addr)
	return p, nil
}

// Family reports the address family of p.
func (p Prefix) Family() Family { return p.family }

// Bitlen reports the number of significant leading bits.
func (p Prefix) Bitlen() int { return p.bitlen }

// Bytes returns the declared-length address bytes (4 for V4, 16 for V6),
// including any non-significant trailing bits.
func (p Prefix) Bytes() []byte {
	n := p.family.Maxbits() / 8
	out := make([]byte, n)
	copy(out, p.addr[:n])
	return out
}

// bit returns bit i of p, numbered from the most significant bit of byte 0.
func (p Prefix) bit(i int) int {
	return int(p.addr[i/8]>>(7-uint(i%8))) & 1
}

// equalToLength reports whether the first n bits of a and b are identical.
// It compares whole bytes with a slice equality check, then masks the final
// partial byte, exactly as a memcmp-plus-mask implementation would.
func equalToLength(a, b Prefix, n int) bool {
	if n == 0 {
		return true
	}

	fullBytes := n / 8
	for i := 0; i < fullBytes; i++ {
		if a.addr[i] != b.addr[i] {
			return false
		}
	}

	if rem := n % 8; rem != 0 {
		mask := byte(0xFF << (8 - uint(rem)))
		if a.addr[fullBytes]&mask != b.addr[fullBytes]&mask {
			return false
		}
	}

	return true
}

// firstDiffBit returns the smallest i < upto at which a.bit(i) != b.bit(i),
// or upto if the two agree on every bit below upto.
func firstDiffBit(a, b Prefix, upto int) int {
	for i := 0; i < upto; i++ {
		if a.bit(i) != b.bit(i) {
			return i
		}
	}
	return upto
}

// String renders p as "A.B.C.D/N" for V4 or canonical "h:h::/N" for V6.
func (p Prefix) String() string {
	addr, ok := p.netipAddr()
	if !ok {
		return "<invalid prefix>"
	}
	return netip.PrefixFrom(addr, p.bitlen).String()
}

// netipAddr converts p's address bytes to a netip.Addr of the right family.
func (p Prefix) netipAddr() (netip.Addr, bool) {
	switch p.family {
	case V4:
		var b [4]byte
		copy(b[:], p.addr[:4])
		return netip.AddrFrom4(b), true
	case V6:
		return netip.AddrFrom16(p.addr), true
	default:
		return netip.Addr{}, false
	}
}

// AsBytes returns the raw form of a key: the declared-length address bytes
// together with the bit length, the tuple form described in §4.4 of the
// specification for callers that want to avoid textual formatting.
func (p Prefix) AsBytes() ([]byte, int) {
	return p.Bytes(), p.bitlen
}

// Equal reports whether p and other denote the same bits-significant
// prefix: same family, same bitlen, and identical significant bits.
func (p Prefix) Equal(other Prefix) bool {
	return p.family == other.family && p.bitlen == other.bitlen && equalToLength(p, other, p.bitlen)
}
