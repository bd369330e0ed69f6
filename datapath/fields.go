// Package datapath binds the KV tokenizer and schema driver to the
// ovs-dpctl / ovs-appctl dpctl/dump-flows grammar: the
// megaflow match keys, their nested sub-records, and the datapath action
// vocabulary.
package datapath

import (
	"github.com/ovsfix/ovsfix/schema"
)

// masked8/16/32/64/128 are thin aliases kept for readability at call
// sites below; megaflow masked fields are always one of these widths.
var (
	masked8   = schema.Masked(8)
	masked16  = schema.Masked(16)
	masked32  = schema.Masked(32)
	masked64  = schema.Masked(64)
	masked128 = schema.Masked(128)
)

// ethRecord covers eth(src=.../..,dst=.../..).
var ethRecord = schema.New().
	Field(&schema.Field{Name: "src", Decode: schema.EthMask}).
	Field(&schema.Field{Name: "dst", Decode: schema.EthMask})

// vlanRecord covers vlan(vid=.../..,pcp=.../..).
var vlanRecord = schema.New().
	Field(&schema.Field{Name: "vid", Decode: masked16}).
	Field(&schema.Field{Name: "pcp", Decode: masked8})

// ipv4Record covers ipv4(src=...,dst=...,proto=...,tos=...,ttl=...,frag=...).
var ipv4Record = schema.New().
	Field(&schema.Field{Name: "src", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "dst", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "proto", Decode: masked8}).
	Field(&schema.Field{Name: "tos", Decode: masked8}).
	Field(&schema.Field{Name: "ttl", Decode: masked8}).
	Field(&schema.Field{Name: "frag", Decode: schema.Enum})

// ipv6Record covers ipv6(src=...,dst=...,label=...,proto=...,tclass=...,hlimit=...,frag=...).
var ipv6Record = schema.New().
	Field(&schema.Field{Name: "src", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "dst", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "label", Decode: masked32}).
	Field(&schema.Field{Name: "proto", Decode: masked8}).
	Field(&schema.Field{Name: "tclass", Decode: masked8}).
	Field(&schema.Field{Name: "hlimit", Decode: masked8}).
	Field(&schema.Field{Name: "frag", Decode: schema.Enum})

// portRecord covers tcp/udp/sctp(src=.../..,dst=.../..).
var portRecord = schema.New().
	Field(&schema.Field{Name: "src", Decode: masked16}).
	Field(&schema.Field{Name: "dst", Decode: masked16})

// icmpRecord covers icmp/icmpv6(type=.../..,code=.../..).
var icmpRecord = schema.New().
	Field(&schema.Field{Name: "type", Decode: masked8}).
	Field(&schema.Field{Name: "code", Decode: masked8})

// arpRecord covers arp(sip=...,tip=...,op=...,sha=...,tha=...).
var arpRecord = schema.New().
	Field(&schema.Field{Name: "sip", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "tip", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "op", Decode: masked16}).
	Field(&schema.Field{Name: "sha", Decode: schema.EthMask}).
	Field(&schema.Field{Name: "tha", Decode: schema.EthMask})

// ndRecord covers nd(target=...,sll=...,tll=...).
var ndRecord = schema.New().
	Field(&schema.Field{Name: "target", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "sll", Decode: schema.EthMask}).
	Field(&schema.Field{Name: "tll", Decode: schema.EthMask})

// mplsRecord covers mpls(label=.../..,tc=.../..,ttl=.../..,bos=.../..).
var mplsRecord = schema.New().
	Field(&schema.Field{Name: "label", Decode: masked32}).
	Field(&schema.Field{Name: "tc", Decode: masked8}).
	Field(&schema.Field{Name: "ttl", Decode: masked8}).
	Field(&schema.Field{Name: "bos", Decode: masked8})

// ctTupleRecord covers ct_tuple4/ct_tuple6's src/dst/tp_src/tp_dst/ct_proto.
var ctTupleRecord = schema.New().
	Field(&schema.Field{Name: "src", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "dst", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "tp_src", Decode: masked16}).
	Field(&schema.Field{Name: "tp_dst", Decode: masked16}).
	Field(&schema.Field{Name: "ct_proto", Decode: masked8})

// geneveRecord covers one geneve option: class=, type=, len=, followed by
// an optional bare masked payload with no key at all, resolved via a
// Positional slot rather than a named Field.
var geneveRecord = schema.New()

func init() {
	geneveRecord.Field(&schema.Field{Name: "class", Decode: masked16})
	geneveRecord.Field(&schema.Field{Name: "type", Decode: masked8})
	geneveRecord.Field(&schema.Field{Name: "len", Decode: schema.Int})
	geneveRecord.Positional = []*schema.Field{
		{Name: "data", Decode: masked128},
	}
}

// vxlanRecord covers vxlan(gbp(id=...,flags=...)).
var vxlanGbpRecord = schema.New().
	Field(&schema.Field{Name: "id", Decode: masked16}).
	Field(&schema.Field{Name: "flags", Decode: masked8})

var vxlanRecord = schema.New().
	Field(&schema.Field{Name: "gbp", Decode: schema.Record(vxlanGbpRecord)})

// erspanRecord covers erspan(ver=...,idx=...,dir=...,hwid=...) (v1) and the
// v2 session_id/hwid layout; both sets of keys are registered so either
// form decodes without the caller declaring a version up front.
var erspanRecord = schema.New().
	Field(&schema.Field{Name: "ver", Decode: schema.Int}).
	Field(&schema.Field{Name: "idx", Decode: masked32}).
	Field(&schema.Field{Name: "dir", Decode: masked8}).
	Field(&schema.Field{Name: "hwid", Decode: masked8}).
	Field(&schema.Field{Name: "session_id", Decode: masked32})

// tunnelRecord covers tunnel(tun_id=...,src=...,dst=...,tp_src=...,
// tp_dst=...,flags(...),geneve(...),vxlan(...),erspan(...)).
var tunnelRecord = schema.New().
	Field(&schema.Field{Name: "tun_id", Decode: masked64}).
	Field(&schema.Field{Name: "src", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "dst", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "ipv6_src", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "ipv6_dst", Decode: schema.IPMask}).
	Field(&schema.Field{Name: "tp_src", Decode: masked16}).
	Field(&schema.Field{Name: "tp_dst", Decode: masked16}).
	Field(&schema.Field{Name: "tos", Decode: masked8}).
	Field(&schema.Field{Name: "ttl", Decode: masked8}).
	Field(&schema.Field{Name: "flags", Decode: schema.Flags}).
	Field(&schema.Field{Name: "geneve", Custom: geneveCustom}).
	Field(&schema.Field{Name: "vxlan", Decode: schema.Record(vxlanRecord)}).
	Field(&schema.Field{Name: "erspan", Decode: schema.Record(erspanRecord)})

// FieldsSchema is the top-level megaflow match-and-statistics Schema.
// Stats keys (packets/bytes/used) share this Schema since they appear in
// the same comma-separated top-level span as the match keys.
var FieldsSchema = schema.New()

func init() {
	f := FieldsSchema
	f.Field(&schema.Field{Name: "recirc_id", Decode: schema.Int})
	f.Field(&schema.Field{Name: "dp_hash", Decode: masked32})
	f.Field(&schema.Field{Name: "skb_priority", Decode: masked32})
	f.Field(&schema.Field{Name: "skb_mark", Decode: masked32})
	f.Field(&schema.Field{Name: "ct_state", Decode: schema.Flags})
	f.Field(&schema.Field{Name: "ct_zone", Decode: masked16})
	f.Field(&schema.Field{Name: "ct_mark", Decode: masked32})
	f.Field(&schema.Field{Name: "ct_label", Decode: masked128})
	f.Field(&schema.Field{Name: "ct_tuple4", Decode: schema.Record(ctTupleRecord)})
	f.Field(&schema.Field{Name: "ct_tuple6", Decode: schema.Record(ctTupleRecord)})
	f.Field(&schema.Field{Name: "in_port", Decode: schema.Int})
	f.Field(&schema.Field{Name: "eth", Decode: schema.Record(ethRecord)})
	f.Field(&schema.Field{Name: "eth_type", Decode: masked16})
	f.Field(&schema.Field{Name: "vlan", Decode: schema.Record(vlanRecord)})
	f.Field(&schema.Field{Name: "encap", Custom: encapCustom})
	f.Field(&schema.Field{Name: "ipv4", Decode: schema.Record(ipv4Record)})
	f.Field(&schema.Field{Name: "ipv6", Decode: schema.Record(ipv6Record)})
	f.Field(&schema.Field{Name: "tcp", Decode: schema.Record(portRecord)})
	f.Field(&schema.Field{Name: "tcp_flags", Decode: schema.Flags})
	f.Field(&schema.Field{Name: "udp", Decode: schema.Record(portRecord)})
	f.Field(&schema.Field{Name: "sctp", Decode: schema.Record(portRecord)})
	f.Field(&schema.Field{Name: "icmp", Decode: schema.Record(icmpRecord)})
	f.Field(&schema.Field{Name: "icmpv6", Decode: schema.Record(icmpRecord)})
	f.Field(&schema.Field{Name: "arp", Decode: schema.Record(arpRecord)})
	f.Field(&schema.Field{Name: "nd", Decode: schema.Record(ndRecord)})
	f.Field(&schema.Field{Name: "mpls", Decode: schema.Record(mplsRecord)})
	f.Field(&schema.Field{Name: "tunnel", Decode: schema.Record(tunnelRecord)})
	f.Field(&schema.Field{Name: "packets", Decode: schema.Int})
	f.Field(&schema.Field{Name: "bytes", Decode: schema.Int})
	f.Field(&schema.Field{Name: "used", Decode: schema.StringField})
	f.Field(&schema.Field{Name: "dp", Decode: schema.StringField})
	f.Field(&schema.Field{Name: "flags", Decode: schema.Flags})
	f.Field(&schema.Field{Name: "ufid", Decode: schema.StringField})
}
