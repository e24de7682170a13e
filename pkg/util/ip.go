package util

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseHostAddr parses a bare IPv4 or IPv6 host address.
// IPv4-mapped IPv6 forms are unmapped so "::ffff:10.0.0.1" reads as 10.0.0.1.
func ParseHostAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid IP address: %s", s)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("zoned addresses are not supported: %s", s)
	}
	return addr.Unmap(), nil
}

// ParseHostPrefix parses an address with an optional mask length, keeping the
// host bits (10.0.0.1/24 stays 10.0.0.1/24). A bare address gets a full host
// mask: /32 for IPv4, /128 for IPv6. An IPv4-mapped prefix is unmapped only
// when its mask covers the ::ffff:0:0/96 part.
func ParseHostPrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		addr, err := ParseHostAddr(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}
	p, err := netip.ParsePrefix(s)
	if err != nil || !p.IsValid() {
		return netip.Prefix{}, fmt.Errorf("invalid CIDR notation: %s", s)
	}
	if !p.Addr().Is4In6() {
		return p, nil
	}
	if p.Bits() < 96 {
		return netip.Prefix{}, fmt.Errorf("mask of IPv4-mapped prefix %s is shorter than /96", s)
	}
	return netip.PrefixFrom(p.Addr().Unmap(), p.Bits()-96), nil
}

// ParseNetwork parses a network in CIDR notation. Host bits must be zero
// (10.0.0.0/24 is accepted, 10.0.0.1/24 is not). A bare address is read as a
// host network with a /32 or /128 mask.
func ParseNetwork(s string) (netip.Prefix, error) {
	p, err := ParseHostPrefix(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	if p.Masked() != p {
		return netip.Prefix{}, fmt.Errorf("%s has host bits set (network is %s)", s, p.Masked())
	}
	return p, nil
}
