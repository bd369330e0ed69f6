package openflow

import (
	"strconv"
	"strings"

	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/value"
)

// FieldRef is a decoded load/move/set_field operand: a field name plus an
// optional [start..end] bit-slice.
type FieldRef struct {
	Field      string
	HasRange   bool
	Start, End int
}

func (r FieldRef) String() string {
	if !r.HasRange {
		return r.Field
	}
	return r.Field + "[" + strconv.Itoa(r.Start) + ".." + strconv.Itoa(r.End) + "]"
}

// ToValue renders r as the nested Record the field-reference sub-grammar
// produces.
func (r FieldRef) ToValue() value.Value {
	rec := value.NewRecord()
	rec.Set("field", value.StringValue(r.Field))
	if r.HasRange {
		rec.Set("start", value.Integer(uint64(r.Start)))
		rec.Set("end", value.Integer(uint64(r.End)))
	}
	return value.RecordValue(rec)
}

// parseFieldRef parses "NAME" (whole field), "NAME[]" (also whole field),
// "NAME[idx]" (a single bit index, start == end), or
// "NAME[start..end]" (a bit-slice range).
func parseFieldRef(s string) (FieldRef, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return FieldRef{Field: s}, nil
	}
	if !strings.HasSuffix(s, "]") {
		return FieldRef{}, value.ErrValue
	}
	name := s[:open]
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return FieldRef{Field: name}, nil
	}
	dots := strings.Index(inner, "..")
	if dots < 0 {
		idx, err := strconv.Atoi(inner)
		if err != nil {
			return FieldRef{}, value.ErrValue
		}
		return FieldRef{Field: name, HasRange: true, Start: idx, End: idx}, nil
	}
	start, err := strconv.Atoi(inner[:dots])
	if err != nil {
		return FieldRef{}, value.ErrValue
	}
	end, err := strconv.Atoi(inner[dots+2:])
	if err != nil {
		return FieldRef{}, value.ErrValue
	}
	return FieldRef{Field: name, HasRange: true, Start: start, End: end}, nil
}

// loadMoveCustom decodes "load:<value>->dst[range]" and
// "move:src[range]->dst[range]": the '->' arrow splits a source operand (a literal value
// for load, a FieldRef for move) from a destination FieldRef. Neither half
// is expressible as a plain Decoder since the arrow isn't a KV-tokenizer
// separator at all -- it's ordinary text inside one value token.
func loadMoveCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, errMissingArrow
	}
	lhs, rhs, ok := strings.Cut(tok.ValueText, "->")
	if !ok {
		return value.Value{}, errMissingArrow
	}

	dst, err := parseFieldRef(rhs)
	if err != nil {
		return value.Value{}, err
	}

	rec := value.NewRecord()
	rec.Set("dst", dst.ToValue())

	if looksLikeFieldRef(lhs) {
		src, err := parseFieldRef(lhs)
		if err != nil {
			return value.Value{}, err
		}
		rec.Set("src", src.ToValue())
	} else {
		rec.Set("value", fieldValueOperand(lhs))
	}

	return value.RecordValue(rec), nil
}

// setFieldCustom decodes "set_field:<value>[/mask]->dst".
func setFieldCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, errMissingArrow
	}
	lhs, rhs, ok := strings.Cut(tok.ValueText, "->")
	if !ok {
		return value.Value{}, errMissingArrow
	}
	dst, err := parseFieldRef(rhs)
	if err != nil {
		return value.Value{}, err
	}
	rec := value.NewRecord()
	rec.Set("dst", dst.ToValue())
	rec.Set("value", fieldValueOperand(lhs))
	return value.RecordValue(rec), nil
}

// fieldValueOperand decodes the left-hand side of a load/set_field
// assignment: a masked or plain integer literal (eg. "0x1/0xff", "12").
func fieldValueOperand(lhs string) value.Value {
	if strings.Contains(lhs, "/") {
		if v, err := value.ParseMasked(lhs, 64); err == nil {
			return v
		}
	}
	if v, err := value.ParseInteger(lhs); err == nil {
		return v
	}
	return value.StringValue(lhs)
}

func looksLikeFieldRef(s string) bool {
	return strings.HasPrefix(s, "NXM_") || strings.HasPrefix(s, "OXM_") || strings.HasPrefix(s, "reg")
}

var errMissingArrow = value.ErrValue

// bundleCustom decodes bundle(fields,basis,algorithm,slave_type,slaves) and
// bundle_load(fields,basis,algorithm,slave_type,dst,slaves): a mix of
// positional basis/algorithm/slave_type slots (one of which, "ofport", is
// a discardable type marker rather than a bound value) followed by a
// colon-prefixed slave list -- a shape that needs splitTopComma plus
// explicit slot bookkeeping rather than a generic Positional list, because
// the final "slaves" slot's own separator is ':' then ',', not the outer
// record's separator.
func bundleCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, errMissingArrow
	}
	parts := splitTopComma(tok.ValueText)

	rec := value.NewRecord()
	var fields []string
	i := 0
	for ; i < len(parts); i++ {
		p := strings.TrimSpace(parts[i])
		if strings.Contains(p, ":") {
			break
		}
		if isAlgorithmName(p) {
			rec.Set("algorithm", value.EnumValue(p))
			continue
		}
		if p == "ofport" {
			continue // slave_type marker, discarded
		}
		if n, err := strconv.ParseUint(p, 0, 64); err == nil {
			rec.Set("basis", value.Integer(n))
			continue
		}
		fields = append(fields, p)
	}
	if len(fields) > 0 {
		rec.Set("fields", value.StringValue(strings.Join(fields, ",")))
	}

	if i < len(parts) {
		key, first, _ := strings.Cut(strings.TrimSpace(parts[i]), ":")
		members := []value.Value{outputPortValue(first)}
		for _, p := range parts[i+1:] {
			members = append(members, outputPortValue(strings.TrimSpace(p)))
		}
		rec.Set(key, value.ListValue(members))
	}

	return value.RecordValue(rec), nil
}

func isAlgorithmName(s string) bool {
	switch s {
	case "hrw", "active_backup", "hash":
		return true
	default:
		return false
	}
}

// splitTopComma splits s on commas outside any nested bracket/paren group.
func splitTopComma(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
