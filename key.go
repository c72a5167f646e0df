// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import (
	"encoding/binary"
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// BytesLen is the raw (bytes, bitlen) tuple form of a key: a fixed-width
// address (length 4 for V4, 16 for V6) paired with an explicit bit length.
// Unlike every other key form, an out-of-range Bitlen is not an error: it
// is clamped down to the family's maxbits, per §4.4.
type BytesLen struct {
	Bytes  []byte
	Bitlen int
}

// ParseKey resolves the many key forms described in §4.4 into a Prefix
// scoped to t's family. Accepted forms:
//
//   - string: CIDR text ("10.0.0.0/8", "2001:db8::/32"); a bare address
//     is treated as a host route (/32 or /128).
//   - Prefix: returned as-is after a family check.
//   - netip.Prefix, netip.Addr (host route).
//   - *net.IPNet, net.IP (host route).
//   - [4]byte, [16]byte, with the family's natural bitlen.
//   - int, uint32 (V4 only): the host-order integer value reinterpreted as
//     a network-order /32 address, i.e. its big-endian byte encoding.
//   - BytesLen: the raw (bytes, bitlen) tuple form.
//
// A key whose family does not match t's configured family is rejected
// with a BadKeyError.
func (t *Trie[V]) ParseKey(key any) (Prefix, error) {
	p, err := parseKey(key)
	if err != nil {
		return Prefix{}, badKey(key, err)
	}
	if p.family != t.family {
		return Prefix{}, badKey(key, fmt.Errorf("family %s does not match trie family %s", p.family, t.family))
	}
	if p.bitlen > t.maxbits {
		return Prefix{}, badKey(key, fmt.Errorf("bitlen %d exceeds trie maxbits %d", p.bitlen, t.maxbits))
	}
	return p, nil
}

func parseKey(key any) (Prefix, error) {
	switch k := key.(type) {
	case Prefix:
		return k, nil

	case string:
		return parseKeyString(k)

	case netip.Prefix:
		return prefixFromNetip(k)

	case netip.Addr:
		return prefixFromNetip(netip.PrefixFrom(k, k.BitLen()))

	case *net.IPNet:
		if k == nil {
			return Prefix{}, fmt.Errorf("nil *net.IPNet")
		}
		ones, bits := k.Mask.Size()
		if ones == 0 && bits == 0 {
			return Prefix{}, fmt.Errorf("non-canonical IPMask")
		}
		ip := k.IP
		family := V4
		if bits == 128 {
			family = V6
		} else if ip = ip.To4(); ip == nil {
			return Prefix{}, fmt.Errorf("IPv4 mask on a non-IPv4 address")
		}
		return NewPrefix(family, ip, ones)

	case net.IP:
		return prefixFromIP(k, -1)

	case [4]byte:
		return NewPrefix(V4, k[:], 32)

	case [16]byte:
		return NewPrefix(V6, k[:], 128)

	case int:
		if k < 0 || int64(k) > 0xFFFFFFFF {
			return Prefix{}, fmt.Errorf("integer key %d out of range for a 32-bit address", k)
		}
		return prefixFromUint32(uint32(k))

	case uint32:
		return prefixFromUint32(k)

	case BytesLen:
		return prefixFromBytesLen(k)

	default:
		return Prefix{}, fmt.Errorf("unsupported key type %T", key)
	}
}

// prefixFromUint32 reinterprets the host-order integer v as the big-endian
// byte encoding of a V4 /32 address, matching htonl's effect in the C
// implementation this adapter is modeled on.
func prefixFromUint32(v uint32) (Prefix, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return NewPrefix(V4, b[:], 32)
}

// prefixFromBytesLen resolves the raw (bytes, bitlen) tuple form: family is
// inferred from the address length, and an out-of-range bitlen is clamped
// down to the family's maxbits rather than rejected.
func prefixFromBytesLen(k BytesLen) (Prefix, error) {
	var family Family
	switch len(k.Bytes) {
	case 4:
		family = V4
	case 16:
		family = V6
	default:
		return Prefix{}, fmt.Errorf("invalid address length %d, want 4 or 16", len(k.Bytes))
	}

	bitlen := k.Bitlen
	if bitlen < 0 {
		return Prefix{}, fmt.Errorf("negative bitlen %d", bitlen)
	}
	if max := family.Maxbits(); bitlen > max {
		bitlen = max
	}
	return NewPrefix(family, k.Bytes, bitlen)
}

func parseKeyString(s string) (Prefix, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return Prefix{}, err
		}
		return prefixFromNetip(p)
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Prefix{}, err
	}
	return prefixFromNetip(netip.PrefixFrom(addr, addr.BitLen()))
}

func prefixFromNetip(p netip.Prefix) (Prefix, error) {
	addr := p.Addr()
	if !addr.IsValid() {
		return Prefix{}, fmt.Errorf("invalid netip.Addr")
	}
	family := V4
	if addr.Is6() && !addr.Is4In6() {
		family = V6
	}
	b, err := addr.MarshalBinary()
	if err != nil {
		return Prefix{}, err
	}
	if family == V4 && addr.Is4In6() {
		b = b[12:]
	}
	return NewPrefix(family, b, p.Bits())
}

func prefixFromIP(ip net.IP, bitlen int) (Prefix, error) {
	if v4 := ip.To4(); v4 != nil {
		if bitlen < 0 {
			bitlen = 32
		}
		return NewPrefix(V4, v4, bitlen)
	}
	if v6 := ip.To16(); v6 != nil {
		if bitlen < 0 {
			bitlen = 128
		}
		return NewPrefix(V6, v6, bitlen)
	}
	return Prefix{}, fmt.Errorf("invalid net.IP %q", ip.String())
}

// ParseCIDRLen parses a bare address string s and pairs it with an
// explicit prefix length, for callers building keys from separately
// transmitted address/length pairs (the byte/bitlen tuple form of §4.4).
func ParseCIDRLen(family Family, s string, bitlen int) (Prefix, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Prefix{}, err
	}
	b, err := addr.MarshalBinary()
	if err != nil {
		return Prefix{}, err
	}
	if family == V4 && addr.Is4In6() {
		b = b[12:]
	}
	return NewPrefix(family, b, bitlen)
}

// MustParseKey is ParseKey's panicking counterpart, for tests and
// program initialization where a malformed key is a programmer error.
func (t *Trie[V]) MustParseKey(key any) Prefix {
	p, err := t.ParseKey(key)
	if err != nil {
		panic("patricia: MustParseKey: " + err.Error())
	}
	return p
}
