// Package json provides byte-slice-oriented JSON helpers for the parsed
// Value tree's interchange format:
// downstream tools (syntax highlighting, graph rendering, log
// cross-referencing) consume a Flow as JSON rather than linking against
// this module's Go types directly.
package json

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"
	"unsafe"

	jsp "github.com/buger/jsonparser"
)

const hextable = "0123456789abcdef"

var ErrValue = errors.New("invalid value")

// Hex appends src as a quoted "0x..." JSON string, JSON null for a nil
// slice, or "" for an empty one.
func Hex(dst []byte, src []byte) []byte {
	if src == nil {
		return append(dst, `null`...)
	} else if len(src) == 0 {
		return append(dst, `""`...)
	}

	dst = append(dst, `"0x`...)
	for _, v := range src {
		dst = append(dst, hextable[v>>4], hextable[v&0x0f])
	}
	return append(dst, '"')
}

// UnHex reads a "0x..." (or bare hex) JSON string back into bytes.
func UnHex(dst []byte, src []byte) ([]byte, error) {
	src = Q(src)
	if len(src) < 2 {
		return dst, nil
	} else if src[0] == '0' && src[1] == 'x' {
		src = src[2:]
	}
	bl := len(src) / 2
	if cap(dst) >= bl {
		dst = dst[:bl]
	} else {
		dst = make([]byte, bl)
	}
	_, err := hex.Decode(dst, src)
	return dst, err
}

// Uint64 appends src as a bare JSON number.
func Uint64(dst []byte, src uint64) []byte {
	return strconv.AppendUint(dst, src, 10)
}

// UnUint64 parses a JSON number (decimal or 0x-hex) into a uint64.
func UnUint64(src []byte) (uint64, error) {
	v, err := strconv.ParseUint(S(Q(src)), 0, 64)
	if err != nil {
		return 0, ErrValue
	}
	return v, nil
}

// BigHex appends src as a quoted "0x..." JSON string for values that do not
// fit a uint64 (the 128-bit masked CT-label width).
func BigHex(dst []byte, src *big.Int) []byte {
	if src == nil {
		return append(dst, `null`...)
	}
	dst = append(dst, `"0x`...)
	return append(append(dst, src.Text(16)...), '"')
}

// UnBigHex parses a quoted "0x..." (or bare decimal) JSON string into a
// *big.Int.
func UnBigHex(src []byte) (*big.Int, error) {
	s := S(Q(src))
	n := new(big.Int)
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	if _, ok := n.SetString(s, base); !ok {
		return nil, ErrValue
	}
	return n, nil
}

// Bool appends src as a bare JSON boolean.
func Bool(dst []byte, val bool) []byte {
	if val {
		return append(dst, `true`...)
	}
	return append(dst, `false`...)
}

// UnBool parses a JSON boolean (or 0/1) into a bool.
func UnBool(src []byte) (bool, error) {
	switch SQ(src) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, ErrValue
	}
}

// String appends s as a properly escaped JSON string.
func String(dst []byte, s string) []byte {
	return strconv.AppendQuote(dst, s)
}

// UnString reads a quoted JSON string back into a Go string, honoring
// standard JSON escapes.
func UnString(src []byte) (string, error) {
	s, err := strconv.Unquote(S(src))
	if err != nil {
		return "", ErrValue
	}
	return s, nil
}

// S returns string from byte slice, in an unsafe way
func S(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// Q removes "double quotes" in buf, if present
func Q(buf []byte) []byte {
	if l := len(buf); l > 1 && buf[0] == '"' && buf[l-1] == '"' {
		return buf[1 : l-1]
	}
	return buf
}

// SQ returns string from byte slice, unquoting if necessary
func SQ(buf []byte) string {
	if l := len(buf); l > 1 && buf[0] == '"' && buf[l-1] == '"' {
		buf = buf[1 : l-1]
	}
	return *(*string)(unsafe.Pointer(&buf))
}

// ArrayEach calls cb for each element in the src JSON array.
// If the callback returns a non-nil error, it breaks immediately and returns it.
func ArrayEach(src []byte, cb func(val []byte, typ jsp.ValueType) error) (reterr error) {
	defer func() {
		if r, ok := recover().(error); ok {
			reterr = r
		}
	}()

	jsp.ArrayEach(src, func(val []byte, typ jsp.ValueType, _ int, _ error) {
		if err := cb(val, typ); err != nil {
			panic(err) // the only way to break from ArrayEach
		}
	})

	return nil
}

// ObjectEach calls cb for each key/value pair in the src JSON object.
// If the callback returns a non-nil error, it breaks immediately and returns it.
func ObjectEach(src []byte, cb func(key, val []byte, typ jsp.ValueType) error) error {
	return jsp.ObjectEach(src, func(key, val []byte, typ jsp.ValueType, _ int) error {
		return cb(key, val, typ)
	})
}
