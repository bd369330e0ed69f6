package openflow

import "github.com/ovsfix/ovsfix/schema"

// Schemas is the OpenFlow grammar's Registry, mirroring datapath.Schemas.
var Schemas = schema.NewRegistry()

func init() {
	Schemas.Register("fields", FieldsSchema)
	Schemas.Register("actions", ActionsSchema)
}
