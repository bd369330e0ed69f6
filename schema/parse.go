package schema

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/value"
)

// ParseRecord tokenizes text and decodes each token against sch, returning
// both the assembled Record and the flat KeyValue list (with position
// metadata relative to text) that downstream tooling needs.
func ParseRecord(text string, sch *Schema) (*value.Record, []kv.KeyValue, error) {
	toks, err := kv.Tokenize(text)
	if err != nil {
		return nil, nil, err
	}

	rec := value.NewRecord()
	kvs := make([]kv.KeyValue, 0, len(toks))
	posIdx := 0

	for _, tok := range toks {
		f, canon, ok := (*Field)(nil), tok.Key, false
		if tok.Key != "" {
			f, canon, ok = sch.resolve(tok.Key)
		}

		var v value.Value
		if ok {
			v, err = decodeField(f, tok.ValueText, tok.HasValue, tok)
		} else {
			f, ok = sch.claimPositional(&posIdx, tok)
			if ok {
				canon = f.Name
				v, err = decodeField(f, rawText(tok), true, tok)
			} else if sch.Default != nil {
				canon = sch.Default.Name
				v, err = decodeField(sch.Default, rawText(tok), true, tok)
			} else if sch.Strict {
				return nil, nil, kv.NewError(kv.InvalidStructure, tok.KPos, tok.Key, ErrUnknownKey)
			} else {
				canon = tok.Key
				v = guessValue(rawText(tok))
			}
		}
		if err != nil {
			return nil, nil, kv.NewError(kv.InvalidValue, tok.VPos, canon, err)
		}

		rec.Set(canon, v)
		kvs = append(kvs, kv.KeyValue{
			Key:   canon,
			Value: v,
			Meta: kv.Position{
				KPos:    tok.KPos,
				KString: tok.Key,
				VPos:    tok.VPos,
				VString: tok.ValueText,
			},
		})
	}

	return rec, kvs, nil
}

// rawText is the text a Positional/Default Field should decode: the value
// text for a parenthesized or '='/':'-valued token, otherwise the bare key
// itself (a word with no value is the value, for positional purposes).
func rawText(tok kv.Token) string {
	if tok.HasValue {
		return tok.ValueText
	}
	return tok.Key
}

func decodeField(f *Field, raw string, hasValue bool, tok kv.Token) (value.Value, error) {
	if f.Custom != nil {
		return f.Custom(tok)
	}
	if f.Decode == nil {
		return value.Value{}, fmt.Errorf("schema: field %q has no decoder", f.Name)
	}
	return f.Decode(raw, hasValue)
}

// guessValue is the non-strict fallback for a key the Schema has no Field,
// Positional slot, or Default for: value.Infer handles the shaped kinds
// (MAC, IP, masked/plain integer, range), then cast.ToBoolE recognizes
// the boolean spellings strconv.ParseBool accepts (true/false, t/f, and
// their capitalized forms). Anything that fits neither is kept as a string.
func guessValue(raw string) value.Value {
	if v, ok := value.Infer(raw); ok {
		return v
	}
	if b, err := cast.ToBoolE(raw); err == nil {
		return value.BoolValue(b)
	}
	return value.StringValue(raw)
}

// claimPositional resolves an unrecognized token against the Positional
// slot list, skipping (without consuming) any Optional slot whose Match
// rejects the token, and advancing *posIdx past every slot it consumes.
func (s *Schema) claimPositional(posIdx *int, tok kv.Token) (*Field, bool) {
	text := rawText(tok)
	for *posIdx < len(s.Positional) {
		cand := s.Positional[*posIdx]
		if cand.Match == nil || cand.Match(text) {
			*posIdx++
			return cand, true
		}
		if cand.Optional {
			*posIdx++
			continue
		}
		return nil, false
	}
	return nil, false
}
