// Package kv implements the key/value tokeniser shared by the OpenFlow and
// datapath grammars: splitting a section's text into (key, raw value)
// pairs at the correct top-level separators while preserving, for every
// key and value, its byte offset within the section.
package kv

import "github.com/ovsfix/ovsfix/value"

// Position is the positional metadata carried by every KeyValue.
// KPos/VPos are offsets relative to the *section* string they came from,
// not the whole flow line -- that is what the invariant tests check.
type Position struct {
	KPos    int
	KString string
	VPos    int // -1 iff the key had no value (bare flag form)
	VString string
}

// KeyValue is one parsed key together with its typed value and position.
type KeyValue struct {
	Key   string
	Value value.Value
	Meta  Position
}

// Section is a named, positioned slice of a flow line together with its
// parsed KeyValues.
type Section struct {
	Name   string
	Pos    int
	String string
	KVs    []KeyValue
}
