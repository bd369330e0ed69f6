package value

import "strings"

// ParseEthMask decodes "hh:hh:hh:hh:hh:hh" optionally followed by
// "/hh:hh:hh:hh:hh:hh". Hex digits are
// case-insensitive; a missing mask means all-ones.
func ParseEthMask(s string) (Value, error) {
	macStr, maskStr, hasMask := strings.Cut(s, "/")

	mac, err := parseMAC(macStr)
	if err != nil {
		return Value{}, err
	}

	e := &EthMask{MAC: mac, Mask: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
	if hasMask {
		mask, err := parseMAC(maskStr)
		if err != nil {
			return Value{}, err
		}
		e.Mask = mask
		e.HasMask = true
	}

	return Value{Kind: KindEthMask, Eth: e}, nil
}

func parseMAC(s string) ([6]byte, error) {
	var mac [6]byte
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return mac, ErrValue
	}
	for i, p := range parts {
		if len(p) != 2 {
			return mac, ErrValue
		}
		b, err := hexByte(p)
		if err != nil {
			return mac, ErrValue
		}
		mac[i] = b
	}
	return mac, nil
}

func hexByte(s string) (byte, error) {
	var v byte
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= byte(c - '0')
		case c >= 'a' && c <= 'f':
			v |= byte(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= byte(c-'A') + 10
		default:
			return 0, ErrValue
		}
	}
	return v, nil
}

// looksLikeMAC reports whether s (minus any "/mask" suffix) has the five
// colons of a MAC address, without allocating; the hex pairs themselves are
// only checked by ParseEthMask.
func looksLikeMAC(s string) bool {
	macPart, _, _ := strings.Cut(s, "/")
	return strings.Count(macPart, ":") == 5
}
