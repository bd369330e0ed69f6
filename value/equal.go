package value

// Equal performs a deep structural comparison of two Values, used by the
// property tests to check that parsing is deterministic.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Int == o.Int
	case KindMasked:
		return v.Masked.Equal(o.Masked)
	case KindEthMask:
		return v.Eth.Equal(o.Eth)
	case KindIPMask, KindIPAddress:
		return v.IP.Equal(o.IP)
	case KindRange:
		return v.Rng.Start.Equal(o.Rng.Start) && v.Rng.End.Equal(o.Rng.End)
	case KindFlags:
		return v.Flags == o.Flags
	case KindEnum:
		return v.Enum == o.Enum
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return v.Str == o.Str
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindRecord:
		return v.Record.Equal(o.Record)
	default:
		return false
	}
}

// Equal performs a deep comparison of two Records, order-insensitive on
// keys (order is metadata, not part of the logical mapping).
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.keys) != len(o.keys) {
		return false
	}
	for _, k := range r.keys {
		rv, ok := r.Get(k)
		if !ok {
			return false
		}
		ov, ok := o.Get(k)
		if !ok || !rv.Equal(ov) {
			return false
		}
	}
	return true
}
