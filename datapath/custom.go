package datapath

import (
	"strings"

	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/schema"
	"github.com/ovsfix/ovsfix/value"
)

// encapCustom resolves encap's two shapes: a bare flag ("encap" with no
// value, meaning "push an encapsulating header with defaulted fields") and
// a full nested record ("encap(eth_type=...,vlan(...))"). Both are
// valid; a plain Field can't express "Decode differently
// based on whether a value is present at all", hence Custom.
func encapCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.BoolValue(true), nil
	}
	rec, _, err := schema.ParseRecord(tok.ValueText, encapRecord)
	if err != nil {
		return value.Value{}, err
	}
	return value.RecordValue(rec), nil
}

var encapRecord = schema.New()

func init() {
	encapRecord.Field(&schema.Field{Name: "eth_type", Decode: masked16})
	encapRecord.Field(&schema.Field{Name: "vlan", Decode: schema.Record(vlanRecord)})
}

// geneveCustom decodes both geneve spellings: the flat
// "geneve(class=0xffff,type=0x80,0xa/0xff)" single-option form, decoded
// straight against geneveRecord, and the braced option-list form
// "geneve({class=0xffff,type=0x80,len=4},{...})", decoded as a List of
// option records.
func geneveCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, schema.ErrNoValue
	}

	if !strings.HasPrefix(strings.TrimSpace(tok.ValueText), "{") {
		rec, _, err := schema.ParseRecord(tok.ValueText, geneveRecord)
		if err != nil {
			return value.Value{}, err
		}
		return value.RecordValue(rec), nil
	}

	var opts []value.Value
	for _, part := range splitTopComma(tok.ValueText) {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") {
			return value.Value{}, kv.ErrStructure
		}
		rec, _, err := schema.ParseRecord(part[1:len(part)-1], geneveRecord)
		if err != nil {
			return value.Value{}, err
		}
		opts = append(opts, value.RecordValue(rec))
	}
	return value.ListValue(opts), nil
}

// natCustom decodes ct(nat | nat(src|dst=addr[:port][,flags...])): a bare
// "nat" flag, or a record whose first token is the bare "src"/"dst" type
// marker followed by an address range, an optional ":port-port" range and
// trailing flag words (persistent, hash, random) -- a shape no generic
// Field composition expresses cleanly because "src"/"dst" here is a type
// marker, not a key, and the port range's ':' separator collides with the
// KV tokenizer's own value-introducer character.
func natCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.BoolValue(true), nil
	}

	rec := value.NewRecord()
	text := tok.ValueText

	for _, part := range splitTopComma(text) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.HasPrefix(part, "src="), strings.HasPrefix(part, "dst="):
			kind := part[:3]
			rest := part[4:]
			addrPort := rest
			portStr := ""
			if idx := topLevelColon(rest); idx >= 0 {
				addrPort = rest[:idx]
				portStr = rest[idx+1:]
			}
			rec.Set("type", value.EnumValue(kind))
			addrVal, err := parseAddrOrRange(addrPort)
			if err != nil {
				return value.Value{}, err
			}
			rec.Set("addrs", addrVal)
			if portStr != "" {
				pv, err := value.ParseRange(portStr, value.ParseInteger)
				if err != nil {
					return value.Value{}, err
				}
				rec.Set("ports", pv)
			}
		default:
			rec.Set(part, value.BoolValue(true))
		}
	}

	return value.RecordValue(rec), nil
}

// topLevelColon returns the index of the first ':' in s that is outside
// any "[...]" bracket nesting, or -1 if none. A bare IPv6 literal is full
// of colons of its own; the actual port-range separator is the one that
// follows both address brackets having closed (or, for an unbracketed
// IPv4 address-range, the only ':' at all).
func topLevelColon(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseAddrOrRange parses either a bare address or an "addr1-addr2" range.
func parseAddrOrRange(s string) (value.Value, error) {
	if strings.ContainsRune(s, '-') && !strings.HasPrefix(s, "[") {
		return value.ParseRange(s, value.ParseIPAddress)
	}
	if strings.HasPrefix(s, "[") {
		return value.ParseRange(s, value.ParseIPAddress)
	}
	return value.ParseIPAddress(s)
}

// splitTopComma splits s on commas that are not inside a nested
// bracket/paren group (the ct(nat(...)) interior mixes flag words and
// key=value pairs at the same top level).
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

// ctRecord covers ct(commit,zone=...,mark=...,label=...,nat(...),...).
var ctRecord = schema.New()

func init() {
	ctRecord.Field(&schema.Field{Name: "commit", Decode: schema.Flag})
	ctRecord.Field(&schema.Field{Name: "force", Decode: schema.Flag})
	ctRecord.Field(&schema.Field{Name: "zone", Decode: masked16})
	ctRecord.Field(&schema.Field{Name: "mark", Decode: masked32})
	ctRecord.Field(&schema.Field{Name: "label", Decode: masked128})
	ctRecord.Field(&schema.Field{Name: "helper", Decode: schema.StringField})
	ctRecord.Field(&schema.Field{Name: "nat", Custom: natCustom})
	ctRecord.Field(&schema.Field{Name: "alg", Decode: schema.StringField})
}

// checkPktLenCustom decodes check_pkt_len(size=N,gt(...),le(...)): both
// the gt and le branches are themselves nested action lists, each
// recursively parsed against ActionsSchema.
func checkPktLenCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, schema.ErrNoValue
	}
	toks, err := kv.Tokenize(tok.ValueText)
	if err != nil {
		return value.Value{}, err
	}
	rec := value.NewRecord()
	for _, t := range toks {
		switch t.Key {
		case "size":
			v, err := value.ParseInteger(t.ValueText)
			if err != nil {
				return value.Value{}, err
			}
			rec.Set("size", v)
		case "gt", "le":
			actions, _, err := schema.ParseRecord(t.ValueText, ActionsSchema)
			if err != nil {
				return value.Value{}, err
			}
			rec.Set(t.Key, value.RecordValue(actions))
		}
	}
	return value.RecordValue(rec), nil
}
