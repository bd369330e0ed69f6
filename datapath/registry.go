package datapath

import "github.com/ovsfix/ovsfix/schema"

// Schemas is the datapath grammar's Registry:
// the top-level Schemas and the named nested-record Schemas this package
// builds are registered here (vxlan's gbp sub-record and tnl_push's
// anonymous gre header record are not) so a
// caller can introspect the grammar (eg. to generate documentation or
// validate a hand-written record against the same rules Parse uses)
// without importing package internals.
var Schemas = schema.NewRegistry()

func init() {
	Schemas.Register("fields", FieldsSchema)
	Schemas.Register("actions", ActionsSchema)
	Schemas.Register("eth", ethRecord)
	Schemas.Register("vlan", vlanRecord)
	Schemas.Register("ipv4", ipv4Record)
	Schemas.Register("ipv6", ipv6Record)
	Schemas.Register("port", portRecord)
	Schemas.Register("icmp", icmpRecord)
	Schemas.Register("arp", arpRecord)
	Schemas.Register("nd", ndRecord)
	Schemas.Register("mpls", mplsRecord)
	Schemas.Register("ct_tuple", ctTupleRecord)
	Schemas.Register("tunnel", tunnelRecord)
	Schemas.Register("geneve", geneveRecord)
	Schemas.Register("vxlan", vxlanRecord)
	Schemas.Register("erspan", erspanRecord)
	Schemas.Register("ct", ctRecord)
	Schemas.Register("encap", encapRecord)
	Schemas.Register("tnl_push", tnlPushRecord)
	Schemas.Register("tnl_header", tnlHeaderRecord)
	Schemas.Register("sample", sampleRecord)
}
