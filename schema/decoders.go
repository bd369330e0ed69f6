package schema

import (
	"strings"

	"github.com/ovsfix/ovsfix/value"
)

// Int decodes a plain (possibly hex) integer value.
func Int(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.ParseInteger(raw)
}

// Masked decodes a width-bit plain-or-masked integer ("port=6653" or
// "ct_mark=0x5/0xf"). width must be one of 8/16/32/64/128.
func Masked(width int) Decoder {
	return func(raw string, hasValue bool) (value.Value, error) {
		if !hasValue {
			return value.Value{}, ErrNoValue
		}
		return value.ParseMasked(raw, width)
	}
}

// EthMask decodes a MAC address, optionally masked ("eth_src=.../...").
func EthMask(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.ParseEthMask(raw)
}

// IPMask decodes an IPv4/IPv6 address, optionally masked or CIDR-prefixed.
func IPMask(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.ParseIPMask(raw)
}

// IPAddress decodes a bare (never masked) IPv4/IPv6 address.
func IPAddress(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.ParseIPAddress(raw)
}

// RangeOf decodes a "start-end" range whose endpoints are parsed by elem
//.
func RangeOf(elem value.ElementDecoder) Decoder {
	return func(raw string, hasValue bool) (value.Value, error) {
		if !hasValue {
			return value.Value{}, ErrNoValue
		}
		return value.ParseRange(raw, elem)
	}
}

// Flag decodes a bare key with no value into Bool(true) (eg. "commit",
// "strip_vlan"); a value is an error.
func Flag(raw string, hasValue bool) (value.Value, error) {
	if hasValue {
		return value.Value{}, ErrUnexpectedValue
	}
	return value.BoolValue(true), nil
}

// StringField decodes a raw value as an opaque string.
func StringField(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.StringValue(raw), nil
}

// Enum decodes a value that must be one of a fixed set of symbolic names
//; unknown names are
// still accepted as Enum (callers wanting strict validation compare
// Value.Enum against their own allowed set after decoding).
func Enum(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.EnumValue(raw), nil
}

// Flags decodes a "+"-or-comma-joined set of named bits stored verbatim
//; the grammar package is responsible for splitting/
// validating the individual names if it cares to.
func Flags(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, ErrNoValue
	}
	return value.FlagsValue(raw), nil
}

// Record decodes a "(...)" nested group against sub.
func Record(sub *Schema) Decoder {
	return func(raw string, hasValue bool) (value.Value, error) {
		if !hasValue {
			return value.Value{}, ErrNoValue
		}
		rec, _, err := ParseRecord(raw, sub)
		if err != nil {
			return value.Value{}, err
		}
		return value.RecordValue(rec), nil
	}
}

// ListOf decodes a sep-joined list of elements each parsed by elem.
func ListOf(elem Decoder, sep byte) Decoder {
	return func(raw string, hasValue bool) (value.Value, error) {
		if !hasValue {
			return value.Value{}, ErrNoValue
		}
		parts := strings.Split(raw, string(rune(sep)))
		out := make([]value.Value, 0, len(parts))
		for _, p := range parts {
			v, err := elem(p, true)
			if err != nil {
				return value.Value{}, err
			}
			out = append(out, v)
		}
		return value.ListValue(out), nil
	}
}
