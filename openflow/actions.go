package openflow

import (
	"strings"

	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/schema"
	"github.com/ovsfix/ovsfix/value"
)

// outputPortNames are the reserved output-port words OpenFlow accepts
// bare (no "output:" prefix).
var outputPortNames = map[string]bool{
	"local": true, "controller": true, "normal": true, "flood": true,
	"all": true, "in_port": true, "none": true,
}

// outputPortValue decodes one output-port token: a reserved word (Enum), a
// plain port number (Integer), or -- the only way a non-reserved,
// non-numeric word reaches here -- a port name (String), eg. "output:foo".
func outputPortValue(text string) value.Value {
	if outputPortNames[text] {
		return value.EnumValue(text)
	}
	if v, err := value.ParseInteger(text); err == nil {
		return v
	}
	return value.StringValue(text)
}

// outputCustom decodes a bare output-port shorthand token: either a
// reserved word (the set above), a plain port number, or a port name, all
// written with no key at all in the actions list (eg. "...,local,2,3").
// This is the Schema's Default handler, since such a token never resolves
// against a named Field. The result is always a Record{port: ...}, matching the explicit "output:N" form's shape.
func outputCustom(tok kv.Token) (value.Value, error) {
	text := tok.Key
	if tok.HasValue {
		text = tok.ValueText
	}
	rec := value.NewRecord()
	rec.Set("port", outputPortValue(text))
	return value.RecordValue(rec), nil
}

// ActionsSchema is the OpenFlow action-list Schema.
var ActionsSchema = schema.New()

func init() {
	a := ActionsSchema
	a.Default = &schema.Field{Name: "output", Custom: outputCustom}

	a.Field(&schema.Field{Name: "output", Decode: outputDecode})
	a.Field(&schema.Field{Name: "drop", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "controller", Decode: controllerDecode})
	a.Field(&schema.Field{Name: "enqueue", Decode: enqueueDecode})
	a.Field(&schema.Field{Name: "mod_vlan_vid", Decode: masked16})
	a.Field(&schema.Field{Name: "mod_vlan_pcp", Decode: masked8})
	a.Field(&schema.Field{Name: "push_vlan", Decode: pushVlanDecode})
	a.Field(&schema.Field{Name: "strip_vlan", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "pop_vlan", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "mod_dl_src", Decode: schema.EthMask})
	a.Field(&schema.Field{Name: "mod_dl_dst", Decode: schema.EthMask})
	a.Field(&schema.Field{Name: "mod_nw_src", Decode: schema.IPMask})
	a.Field(&schema.Field{Name: "mod_nw_dst", Decode: schema.IPMask})
	a.Field(&schema.Field{Name: "mod_nw_tos", Decode: masked8})
	a.Field(&schema.Field{Name: "mod_nw_ecn", Decode: masked8})
	a.Field(&schema.Field{Name: "mod_nw_ttl", Decode: masked8})
	a.Field(&schema.Field{Name: "mod_tp_src", Decode: masked16})
	a.Field(&schema.Field{Name: "mod_tp_dst", Decode: masked16})
	a.Field(&schema.Field{Name: "dec_ttl", Decode: decTTLDecode})
	a.Field(&schema.Field{Name: "set_mpls_ttl", Decode: masked8})
	a.Field(&schema.Field{Name: "dec_mpls_ttl", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "push_mpls", Decode: masked16})
	a.Field(&schema.Field{Name: "pop_mpls", Decode: masked16})
	a.Field(&schema.Field{Name: "resubmit", Decode: schema.StringField})
	a.Field(&schema.Field{Name: "group", Decode: schema.Int})
	a.Field(&schema.Field{Name: "goto_table", Decode: schema.Int})
	a.Field(&schema.Field{Name: "set_field", Custom: setFieldCustom})
	a.Field(&schema.Field{Name: "load", Custom: loadMoveCustom})
	a.Field(&schema.Field{Name: "move", Custom: loadMoveCustom})
	a.Field(&schema.Field{Name: "bundle", Custom: bundleCustom})
	a.Field(&schema.Field{Name: "bundle_load", Custom: bundleCustom})
	a.Field(&schema.Field{Name: "learn", Decode: schema.StringField})
	a.Field(&schema.Field{Name: "note", Decode: schema.StringField})
	a.Field(&schema.Field{Name: "check_pkt_larger", Custom: checkPktLargerCustom})
	a.Field(&schema.Field{Name: "clone", Decode: schema.Record(ActionsSchema)})
	a.Field(&schema.Field{Name: "encap", Decode: encapDecode})
}

// vlanRecord covers the record spelling of push_vlan, the one that appears
// inside clone() and other nested action lists ("push_vlan(vid=12,pcp=0)")
// as opposed to the plain "push_vlan:0x8100" ethertype shorthand.
var vlanRecord = schema.New().
	Field(&schema.Field{Name: "vid", Decode: schema.Int}).
	Field(&schema.Field{Name: "pcp", Decode: schema.Int})

// pushVlanDecode accepts both push_vlan spellings: "push_vlan:0x8100"
// (the ethertype to push, an integer) and "push_vlan(vid=12,pcp=0)" (the
// tag contents, a record).
func pushVlanDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, schema.ErrNoValue
	}
	if v, err := value.ParseMasked(raw, 16); err == nil {
		return v, nil
	}
	rec, _, err := schema.ParseRecord(raw, vlanRecord)
	if err != nil {
		return value.Value{}, err
	}
	return value.RecordValue(rec), nil
}

// nshRecord covers encap(nsh(md_type=...,tlv(...)...)); tlv payloads are
// kept opaque since their interior is vendor-defined.
var nshRecord = schema.New().
	Field(&schema.Field{Name: "md_type", Decode: schema.Int}).
	Field(&schema.Field{Name: "np", Decode: schema.Int}).
	Field(&schema.Field{Name: "spi", Decode: schema.Int}).
	Field(&schema.Field{Name: "si", Decode: schema.Int}).
	Field(&schema.Field{Name: "tlv", Decode: schema.StringField})

var encapRecord = schema.New().
	Field(&schema.Field{Name: "nsh", Decode: schema.Record(nshRecord)})

// encapDecode accepts encap's two shapes: a bare ethertype
// ("encap(0x0800)") and a nested header record ("encap(nsh(md_type=1))").
func encapDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, schema.ErrNoValue
	}
	if v, err := value.ParseInteger(raw); err == nil {
		return v, nil
	}
	rec, _, err := schema.ParseRecord(raw, encapRecord)
	if err != nil {
		return value.Value{}, err
	}
	return value.RecordValue(rec), nil
}

// outputDecode handles "output:N", "output:controller"/"output:local"
// shorthand, and "output:foo" (a named port), all written after an
// explicit "output:" key. Always yields a Record{port: ...}.
func outputDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, schema.ErrNoValue
	}
	rec := value.NewRecord()
	rec.Set("port", outputPortValue(raw))
	return value.RecordValue(rec), nil
}

// controllerDecode handles bare "controller" (flag) and "controller:N".
func controllerDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.BoolValue(true), nil
	}
	return value.ParseInteger(raw)
}

// enqueueDecode handles OpenFlow's two enqueue spellings:
// "enqueue:port:queue" (the tokenizer hands us "port:queue", since only
// the first ':' after the key is consumed as the terminator) and the
// parenthesised "enqueue(port,queue)".
func enqueueDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, schema.ErrNoValue
	}
	port, queue, ok := strings.Cut(raw, ":")
	if !ok {
		port, queue, ok = strings.Cut(raw, ",")
	}
	if !ok {
		return value.Value{}, schema.ErrNoValue
	}
	rec := value.NewRecord()
	p, err := value.ParseInteger(port)
	if err != nil {
		return value.Value{}, err
	}
	q, err := value.ParseInteger(queue)
	if err != nil {
		return value.Value{}, err
	}
	rec.Set("port", p)
	rec.Set("queue", q)
	return value.RecordValue(rec), nil
}

// decTTLDecode handles bare "dec_ttl" and the list form "dec_ttl(1,2,3)".
func decTTLDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.BoolValue(true), nil
	}
	return schema.ListOf(schema.Int, ',')(raw, hasValue)
}

// checkPktLargerCustom decodes OpenFlow's check_pkt_larger(size)->dst
// (distinct from the datapath grammar's gt/le-branching action of the
// same family name).
func checkPktLargerCustom(tok kv.Token) (value.Value, error) {
	if !tok.HasValue {
		return value.Value{}, schema.ErrNoValue
	}
	lhs, rhs, ok := strings.Cut(tok.ValueText, "->")
	if !ok {
		return value.Value{}, errMissingArrow
	}
	size, err := value.ParseInteger(lhs)
	if err != nil {
		return value.Value{}, err
	}
	dst, err := parseFieldRef(rhs)
	if err != nil {
		return value.Value{}, err
	}
	rec := value.NewRecord()
	rec.Set("size", size)
	rec.Set("dst", dst.ToValue())
	return value.RecordValue(rec), nil
}
