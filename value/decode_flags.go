package value

// ParseFlags wraps the verbatim right-hand side of "flags(...)" or
// "flags=..." as a single string; OVS flag unions are
// retained as-is, eg. "csum|key|df".
func ParseFlags(s string) Value { return FlagsValue(s) }

// ParseEnum wraps a bare identifier verbatim. The
// schema names the accepted set for a given key, but the decoder itself
// never rejects an unrecognised value -- future OVS versions add enums.
func ParseEnum(s string) Value { return EnumValue(s) }
