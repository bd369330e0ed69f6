package value

import (
	"net/netip"
	"strconv"
	"strings"
)

// ParseIPMask decodes a bare IPv4/IPv6 address, a CIDR "addr/prefixlen", or
// an explicit "addr/mask_addr". A missing mask means
// the host mask (all ones) for the address family. Whether the token after
// '/' is a prefix length or a mask address is decided by whether it
// contains a dot or a colon.
func ParseIPMask(s string) (Value, error) {
	addrStr, maskStr, hasMask := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Value{}, ErrValue
	}

	m := &IPMask{Addr: addr, Prefix: addr.BitLen()}
	if !hasMask {
		return Value{Kind: KindIPMask, IP: m}, nil
	}
	m.HasMask = true

	if strings.ContainsAny(maskStr, ".:") {
		maskAddr, err := netip.ParseAddr(maskStr)
		if err != nil {
			return Value{}, ErrValue
		}
		if maskAddr.Is4() != addr.Is4() {
			return Value{}, ErrMask
		}
		m.MaskIP = maskAddr
		m.Prefix = -1
		return Value{Kind: KindIPMask, IP: m}, nil
	}

	n, err := strconv.Atoi(maskStr)
	if err != nil || n < 0 || n > addr.BitLen() {
		return Value{}, ErrMask
	}
	m.Prefix = n
	return Value{Kind: KindIPMask, IP: m}, nil
}

// ParseIPAddress decodes a bare IPv4/IPv6 address with no mask, as used for the endpoints of an address Range.
func ParseIPAddress(s string) (Value, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Value{}, ErrValue
	}
	return Value{Kind: KindIPAddress, IP: &IPMask{Addr: addr, Prefix: addr.BitLen()}}, nil
}

// looksLikeIP reports whether s (minus any "/mask" suffix) parses as an IP
// literal, for the nested-value parser's dispatch.
func looksLikeIP(s string) bool {
	addrStr, _, _ := strings.Cut(s, "/")
	_, err := netip.ParseAddr(addrStr)
	return err == nil
}
