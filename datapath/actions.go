package datapath

import (
	"github.com/ovsfix/ovsfix/schema"
	"github.com/ovsfix/ovsfix/value"
)

// outputPortDecode decodes a bare numeric output-port action (eg. the "2"
// in "clone(push_vlan(...),2)") into a Record{port: N}, the same shape
// openflow's output action uses.
func outputPortDecode(raw string, hasValue bool) (value.Value, error) {
	if !hasValue {
		return value.Value{}, schema.ErrNoValue
	}
	v, err := value.ParseInteger(raw)
	if err != nil {
		return value.Value{}, err
	}
	rec := value.NewRecord()
	rec.Set("port", v)
	return value.RecordValue(rec), nil
}

// tnlHeaderRecord covers tnl_push(tnl_port(...),header(...),...)'s
// header sub-record: eth(...), ipv4(...)/ipv6(...), and one tunnel-type
// record (udp/vxlan/gre/geneve/erspan).
var tnlHeaderRecord = schema.New()
var tnlPushRecord = schema.New()

func init() {
	tnlHeaderRecord.Field(&schema.Field{Name: "eth", Decode: schema.Record(ethRecord)})
	tnlHeaderRecord.Field(&schema.Field{Name: "ipv4", Decode: schema.Record(ipv4Record)})
	tnlHeaderRecord.Field(&schema.Field{Name: "ipv6", Decode: schema.Record(ipv6Record)})
	tnlHeaderRecord.Field(&schema.Field{Name: "udp", Decode: schema.Record(portRecord)})
	tnlHeaderRecord.Field(&schema.Field{Name: "vxlan", Decode: schema.Record(vxlanRecord)})
	tnlHeaderRecord.Field(&schema.Field{Name: "geneve", Custom: geneveCustom})
	tnlHeaderRecord.Field(&schema.Field{Name: "erspan", Decode: schema.Record(erspanRecord)})
	// gre's header is an anonymous leading record: no "gre(" key wrapper
	// in the wire syntax, just a bare positional sub-record ahead of the
	// keyed fields.
	tnlHeaderRecord.Positional = []*schema.Field{
		{Name: "gre", Decode: schema.Record(schema.New().
			Field(&schema.Field{Name: "flags", Decode: schema.Flags}).
			Field(&schema.Field{Name: "proto", Decode: masked16}))},
	}

	tnlPushRecord.Field(&schema.Field{Name: "tnl_port", Decode: schema.Int})
	tnlPushRecord.Field(&schema.Field{Name: "header", Decode: schema.Record(tnlHeaderRecord)})
	tnlPushRecord.Field(&schema.Field{Name: "out_port", Decode: schema.Int})
}

// sampleRecord covers sample(sample=N%,actions(...)).
var sampleRecord = schema.New()

func init() {
	sampleRecord.Field(&schema.Field{Name: "sample", Decode: schema.StringField})
	sampleRecord.Field(&schema.Field{Name: "actions", Decode: schema.Record(ActionsSchema)})
}

// ActionsSchema is the datapath action-list Schema. Every
// action that can itself contain a nested action list (sample, clone,
// check_pkt_len) closes the recursion back through this same Schema.
var ActionsSchema = schema.New()

func init() {
	a := ActionsSchema
	a.Default = &schema.Field{Name: "output", Decode: outputPortDecode}

	a.Field(&schema.Field{Name: "drop", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "recirc", Decode: schema.Int})
	a.Field(&schema.Field{Name: "hash", Decode: schema.StringField})
	a.Field(&schema.Field{Name: "push_vlan", Decode: schema.Record(vlanRecord)})
	a.Field(&schema.Field{Name: "pop_vlan", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "push_mpls", Decode: schema.Record(mplsRecord)})
	a.Field(&schema.Field{Name: "pop_mpls", Decode: masked16})
	a.Field(&schema.Field{Name: "push_eth", Decode: schema.Record(ethRecord)})
	a.Field(&schema.Field{Name: "pop_eth", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "ct_clear", Decode: schema.Flag})
	a.Field(&schema.Field{Name: "ct", Decode: schema.Record(ctRecord)})
	a.Field(&schema.Field{Name: "trunc", Decode: schema.Int})
	a.Field(&schema.Field{Name: "meter", Decode: schema.Int})
	a.Field(&schema.Field{Name: "sample", Decode: schema.Record(sampleRecord)})
	a.Field(&schema.Field{Name: "clone", Decode: schema.Record(ActionsSchema)})
	a.Field(&schema.Field{Name: "check_pkt_len", Custom: checkPktLenCustom})
	a.Field(&schema.Field{Name: "tnl_push", Decode: schema.Record(tnlPushRecord)})
	a.Field(&schema.Field{Name: "tnl_pop", Decode: schema.Int})
	a.Field(&schema.Field{Name: "userspace", Decode: schema.StringField})
	a.Field(&schema.Field{Name: "set", Decode: schema.Record(FieldsSchema)})
	a.Field(&schema.Field{Name: "set_masked", Decode: schema.Record(FieldsSchema)})
}
