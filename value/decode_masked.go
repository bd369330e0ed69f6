package value

import (
	"math/big"
	"strings"
)

// supportedWidths enumerates the fixed bitfield widths OVS emits.
var supportedWidths = map[int]bool{8: true, 16: true, 32: true, 64: true, 128: true}

// ParseMasked decodes "value" or "value/mask" as an N-bit unsigned bitfield
//. A missing mask defaults to the all-ones value of
// width bits. N=128 uses arbitrary-precision arithmetic; all other widths
// fit in a uint64.
func ParseMasked(s string, width int) (Value, error) {
	if !supportedWidths[width] {
		return Value{}, ErrWidth
	}

	valStr, maskStr, hasMask := strings.Cut(s, "/")

	if width == 128 {
		return parseMasked128(valStr, maskStr, hasMask)
	}
	return parseMaskedWord(valStr, maskStr, hasMask, width)
}

func maxForWidth(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

func parseMaskedWord(valStr, maskStr string, hasMask bool, width int) (Value, error) {
	v, err := parseUint(valStr)
	if err != nil {
		return Value{}, err
	}

	max := maxForWidth(width)

	var mask uint64
	if hasMask {
		mask, err = parseUint(maskStr)
		if err != nil {
			return Value{}, err
		}
		if mask > max {
			return Value{}, ErrMask
		}
	} else {
		mask = max
	}
	if mask == 0 {
		return Value{}, ErrMask
	}

	return Value{
		Kind: KindMasked,
		Masked: &MaskedInt{
			Width:  width,
			Lo:     v,
			MaskLo: mask,
		},
	}, nil
}

func parseBigHexOrDec(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrValue
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	n := new(big.Int)
	if _, ok := n.SetString(s, base); !ok {
		return nil, ErrValue
	}
	if n.Sign() < 0 {
		return nil, ErrValue
	}
	return n, nil
}

func parseMasked128(valStr, maskStr string, hasMask bool) (Value, error) {
	v, err := parseBigHexOrDec(valStr)
	if err != nil {
		return Value{}, err
	}

	maxBits := 128
	var mask *big.Int
	if hasMask {
		mask, err = parseBigHexOrDec(maskStr)
		if err != nil {
			return Value{}, err
		}
		if mask.BitLen() > maxBits {
			return Value{}, ErrMask
		}
	} else {
		mask = new(big.Int).Lsh(big.NewInt(1), uint(maxBits))
		mask.Sub(mask, big.NewInt(1))
	}
	if mask.Sign() == 0 {
		return Value{}, ErrMask
	}

	return Value{
		Kind: KindMasked,
		Masked: &MaskedInt{
			Width:   128,
			Big:     v,
			MaskBig: mask,
		},
	}, nil
}
