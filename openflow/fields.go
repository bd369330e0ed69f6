// Package openflow binds the KV tokenizer and schema driver to the
// ovs-ofctl dump-flows grammar: OpenFlow match fields,
// flow statistics, and the action-list instruction set.
package openflow

import (
	"strconv"

	"github.com/ovsfix/ovsfix/schema"
)

var (
	masked8  = schema.Masked(8)
	masked16 = schema.Masked(16)
	masked32 = schema.Masked(32)
	masked64 = schema.Masked(64)
)

// FieldsSchema is the combined match-and-statistics Schema: every key in
// the comma-separated span that precedes "actions=".
var FieldsSchema = schema.New()

func init() {
	f := FieldsSchema

	// flow/table bookkeeping
	f.Field(&schema.Field{Name: "cookie", Decode: masked64})
	f.Field(&schema.Field{Name: "duration", Decode: schema.StringField})
	f.Field(&schema.Field{Name: "table", Decode: schema.Int})
	f.Field(&schema.Field{Name: "n_packets", Decode: schema.Int})
	f.Field(&schema.Field{Name: "n_bytes", Decode: schema.Int})
	f.Field(&schema.Field{Name: "idle_age", Decode: schema.Int})
	f.Field(&schema.Field{Name: "hard_age", Decode: schema.Int})
	f.Field(&schema.Field{Name: "idle_timeout", Decode: schema.Int})
	f.Field(&schema.Field{Name: "hard_timeout", Decode: schema.Int})
	f.Field(&schema.Field{Name: "priority", Decode: schema.Int})
	f.Field(&schema.Field{Name: "send_flow_rem", Decode: schema.Flag})

	// L2
	f.Field(&schema.Field{Name: "in_port", Decode: schema.Int})
	f.Field(&schema.Field{Name: "eth_src", Decode: schema.EthMask})
	f.Field(&schema.Field{Name: "eth_dst", Decode: schema.EthMask})
	f.Field(&schema.Field{Name: "eth_type", Decode: masked16})
	f.Field(&schema.Field{Name: "dl_vlan", Decode: masked16})
	f.Field(&schema.Field{Name: "dl_vlan_pcp", Decode: masked8})
	f.Field(&schema.Field{Name: "vlan_tci", Decode: masked16})
	f.Alias("dl_src", "eth_src")
	f.Alias("dl_dst", "eth_dst")
	f.Alias("dl_type", "eth_type")

	// L3/L4
	f.Field(&schema.Field{Name: "ip", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "ip6", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "arp", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "tcp", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "udp", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "icmp", Decode: schema.Flag})
	f.Field(&schema.Field{Name: "nw_src", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "nw_dst", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "ipv6_src", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "ipv6_dst", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "nw_proto", Decode: masked8})
	f.Field(&schema.Field{Name: "nw_tos", Decode: masked8})
	f.Field(&schema.Field{Name: "nw_ecn", Decode: masked8})
	f.Field(&schema.Field{Name: "nw_ttl", Decode: masked8})
	f.Field(&schema.Field{Name: "tp_src", Decode: masked16})
	f.Field(&schema.Field{Name: "tp_dst", Decode: masked16})
	f.Field(&schema.Field{Name: "icmp_type", Decode: masked8})
	f.Field(&schema.Field{Name: "icmp_code", Decode: masked8})
	f.Field(&schema.Field{Name: "arp_spa", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "arp_tpa", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "arp_op", Decode: masked16})
	f.Field(&schema.Field{Name: "arp_sha", Decode: schema.EthMask})
	f.Field(&schema.Field{Name: "arp_tha", Decode: schema.EthMask})

	// metadata/registers
	f.Field(&schema.Field{Name: "metadata", Decode: masked64})
	f.Field(&schema.Field{Name: "tun_id", Decode: masked64})
	f.Field(&schema.Field{Name: "tun_src", Decode: schema.IPMask})
	f.Field(&schema.Field{Name: "tun_dst", Decode: schema.IPMask})
	for i := 0; i < 16; i++ {
		f.Field(&schema.Field{Name: regName(i), Decode: masked32})
	}
	f.Field(&schema.Field{Name: "conj_id", Decode: schema.Int})
}

func regName(i int) string {
	return "reg" + strconv.Itoa(i)
}
