package value

import (
	"strconv"

	ovsjson "github.com/ovsfix/ovsfix/json"
	jsp "github.com/buger/jsonparser"
)

// ToJSON appends the JSON representation of v to dst. Scalar Kinds encode as
// a plain number, string or bool; Masked as {"width","value","mask"}, Range
// as {"start","end"}, List as an array and Record as a plain object. There
// is no explicit kind tag: FromJSON tells the object shapes apart by their
// keys.
func (v Value) ToJSON(dst []byte) []byte {
	switch v.Kind {
	case KindInteger:
		return ovsjson.Uint64(dst, v.Int)
	case KindMasked:
		return maskedToJSON(dst, v.Masked)
	case KindEthMask:
		return ethToJSON(dst, v.Eth)
	case KindIPMask, KindIPAddress:
		return ipToJSON(dst, v.IP)
	case KindRange:
		dst = append(dst, `{"start":`...)
		dst = v.Rng.Start.ToJSON(dst)
		dst = append(dst, `,"end":`...)
		dst = v.Rng.End.ToJSON(dst)
		return append(dst, '}')
	case KindFlags:
		return ovsjson.String(dst, v.Flags)
	case KindEnum:
		return ovsjson.String(dst, v.Enum)
	case KindBool:
		return ovsjson.Bool(dst, v.Bool)
	case KindString:
		return ovsjson.String(dst, v.Str)
	case KindList:
		dst = append(dst, '[')
		for i := range v.List {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = v.List[i].ToJSON(dst)
		}
		return append(dst, ']')
	case KindRecord:
		return recordToJSON(dst, v.Record)
	default:
		return append(dst, "null"...)
	}
}

func maskedToJSON(dst []byte, m *MaskedInt) []byte {
	dst = append(dst, `{"width":`...)
	dst = strconv.AppendInt(dst, int64(m.Width), 10)
	if m.Width == 128 {
		dst = append(dst, `,"value":`...)
		dst = ovsjson.BigHex(dst, m.Big)
		dst = append(dst, `,"mask":`...)
		dst = ovsjson.BigHex(dst, m.MaskBig)
	} else {
		dst = append(dst, `,"value":`...)
		dst = ovsjson.Uint64(dst, m.Lo)
		dst = append(dst, `,"mask":`...)
		dst = ovsjson.Uint64(dst, m.MaskLo)
	}
	return append(dst, '}')
}

func ethToJSON(dst []byte, e *EthMask) []byte {
	dst = append(dst, '"')
	dst = appendMAC(dst, e.MAC)
	if e.HasMask {
		dst = append(dst, '/')
		dst = appendMAC(dst, e.Mask)
	}
	return append(dst, '"')
}

func appendMAC(dst []byte, mac [6]byte) []byte {
	const hextable = "0123456789abcdef"
	for i, b := range mac {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = append(dst, hextable[b>>4], hextable[b&0xf])
	}
	return dst
}

func ipToJSON(dst []byte, m *IPMask) []byte {
	dst = append(dst, '"')
	dst = m.Addr.AppendTo(dst)
	if m.HasMask {
		dst = append(dst, '/')
		if m.MaskIP.IsValid() {
			dst = m.MaskIP.AppendTo(dst)
		} else {
			dst = strconv.AppendInt(dst, int64(m.Prefix), 10)
		}
	}
	return append(dst, '"')
}

func recordToJSON(dst []byte, r *Record) []byte {
	dst = append(dst, '{')
	for i, k := range r.Keys() {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = ovsjson.String(dst, k)
		dst = append(dst, ':')
		val, _ := r.Get(k)
		dst = val.ToJSON(dst)
	}
	return append(dst, '}')
}

// FromJSON parses src (as produced by ToJSON) back into v. Only the tagged
// compound shapes written by ToJSON round-trip faithfully; scalar encodings
// (bare numbers/strings/bools) are interpreted heuristically.
func (v *Value) FromJSON(src []byte) error {
	src = trimSpaceBytes(src)
	if len(src) == 0 {
		return ovsjson.ErrValue
	}

	switch src[0] {
	case '{':
		return v.objectFromJSON(src)
	case '[':
		return v.listFromJSON(src)
	case '"':
		s, err := ovsjson.UnString(src)
		if err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case 't', 'f':
		b, err := ovsjson.UnBool(src)
		if err != nil {
			return err
		}
		*v = BoolValue(b)
		return nil
	default:
		n, err := ovsjson.UnUint64(src)
		if err != nil {
			return err
		}
		*v = Integer(n)
		return nil
	}
}

func (v *Value) objectFromJSON(src []byte) error {
	// disambiguate the tagged object shapes by probing for a "width"
	// (Masked), "start" (Range) key before falling back to Record.
	if _, _, _, err := jsp.Get(src, "width"); err == nil {
		return v.maskedFromJSON(src)
	}
	if _, _, _, err := jsp.Get(src, "start"); err == nil {
		return v.rangeFromJSON(src)
	}

	r := NewRecord()
	err := ovsjson.ObjectEach(src, func(key, val []byte, _ jsp.ValueType) error {
		var elem Value
		if err := elem.FromJSON(val); err != nil {
			return err
		}
		r.Set(string(key), elem)
		return nil
	})
	if err != nil {
		return err
	}
	*v = RecordValue(r)
	return nil
}

func (v *Value) maskedFromJSON(src []byte) error {
	widthB, _, _, err := jsp.Get(src, "width")
	if err != nil {
		return ovsjson.ErrValue
	}
	width, err := strconv.Atoi(string(widthB))
	if err != nil {
		return ovsjson.ErrValue
	}

	valB, _, _, err := jsp.Get(src, "value")
	if err != nil {
		return ovsjson.ErrValue
	}
	maskB, _, _, err := jsp.Get(src, "mask")
	if err != nil {
		return ovsjson.ErrValue
	}

	if width == 128 {
		val, err := ovsjson.UnBigHex(valB)
		if err != nil {
			return err
		}
		mask, err := ovsjson.UnBigHex(maskB)
		if err != nil {
			return err
		}
		*v = Value{Kind: KindMasked, Masked: &MaskedInt{Width: 128, Big: val, MaskBig: mask}}
		return nil
	}

	val, err := ovsjson.UnUint64(valB)
	if err != nil {
		return err
	}
	mask, err := ovsjson.UnUint64(maskB)
	if err != nil {
		return err
	}
	*v = Value{Kind: KindMasked, Masked: &MaskedInt{Width: width, Lo: val, MaskLo: mask}}
	return nil
}

func (v *Value) rangeFromJSON(src []byte) error {
	startB, _, _, err := jsp.Get(src, "start")
	if err != nil {
		return ovsjson.ErrValue
	}
	endB, _, _, err := jsp.Get(src, "end")
	if err != nil {
		return ovsjson.ErrValue
	}

	var start, end Value
	if err := start.FromJSON(startB); err != nil {
		return err
	}
	if err := end.FromJSON(endB); err != nil {
		return err
	}
	*v = Value{Kind: KindRange, Rng: &Range{Start: start, End: end}}
	return nil
}

func (v *Value) listFromJSON(src []byte) error {
	var list []Value
	err := ovsjson.ArrayEach(src, func(val []byte, _ jsp.ValueType) error {
		var elem Value
		if err := elem.FromJSON(val); err != nil {
			return err
		}
		list = append(list, elem)
		return nil
	})
	if err != nil {
		return err
	}
	*v = ListValue(list)
	return nil
}

func trimSpaceBytes(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t' || b[0] == '\n' || b[0] == '\r') {
		b = b[1:]
	}
	for len(b) > 0 {
		last := b[len(b)-1]
		if last == ' ' || last == '\t' || last == '\n' || last == '\r' {
			b = b[:len(b)-1]
		} else {
			break
		}
	}
	return b
}
