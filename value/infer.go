package value

import "strings"

// Infer guesses the Value for raw text no schema entry covers, by shape:
// MAC, IP literal (optionally masked), masked integer, plain integer,
// integer range. Reports ok == false when no shape matches, leaving the
// caller to fall back to a bool or opaque string.
func Infer(s string) (Value, bool) {
	switch {
	case looksLikeMAC(s):
		if v, err := ParseEthMask(s); err == nil {
			return v, true
		}
	case looksLikeIP(s):
		if v, err := ParseIPMask(s); err == nil {
			return v, true
		}
	case looksLikeInteger(s):
		if v, err := ParseInteger(s); err == nil {
			return v, true
		}
	case strings.ContainsRune(s, '/'):
		if v, err := ParseMasked(s, 64); err == nil {
			return v, true
		}
	case looksLikeRange(s):
		if v, err := ParseRange(s, ParseInteger); err == nil {
			return v, true
		}
	}
	return Value{}, false
}
