// Package schema binds a kv.Token stream to typed value.Values: it is the
// layer that knows, per grammar (openflow/datapath), what each key means --
// a plain integer, a masked field of a given width, a nested record, a
// range, or something requiring bespoke logic.
//
// The tokenizer (package kv) cannot tell a bare flag from an anonymous
// positional value on its own; that ambiguity is resolved here, by
// consulting the Schema's named Fields first, then its Positional slots,
// then its Default fallback.
package schema

import (
	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/value"
)

// Decoder turns a raw value token (the text between '=' / ':' / '(' ')')
// into a typed Value. raw is "" and hasValue is false for bare flags.
type Decoder func(raw string, hasValue bool) (value.Value, error)

// CustomFunc gets full control over a single token, including its Key and
// Position -- used for fields whose shape can't be expressed by a plain
// Decoder (nat's dual bare-or-valued form, datapath encap's bare-flag-or-
// record form, the field-reference sub-grammar of load/move/set_field).
type CustomFunc func(tok kv.Token) (value.Value, error)

// Field describes how one recognized key (or positional slot) decodes.
type Field struct {
	// Name is the canonical key this field binds to when used in
	// Schema.Fields; for Positional/Default entries it is only used for
	// error messages and JSON record keys.
	Name string

	// Decode is consulted when non-nil and Custom is nil.
	Decode Decoder

	// Custom, when set, takes priority over Decode and receives the raw
	// token directly.
	Custom CustomFunc

	// Optional marks a Positional slot that may be silently absent: when
	// its Match rejects the next positional token, the slot is skipped
	// rather than bound and the token goes on to the following slot.
	Optional bool

	// Match, for a Positional/Default slot, reports whether this field
	// should claim the given bare token text; nil means "always claims".
	Match func(raw string) bool
}

// Schema is a key/record shape: the set of keys a record or section may
// contain, their decoders, and how to resolve tokens that carry no
// recognized key.
type Schema struct {
	// Fields binds a named key ("eth_src", "priority", ...) to its Field.
	Fields map[string]*Field

	// Aliases maps an alternate spelling to a canonical key already
	// present in Fields (eg. openflow's "dl_src" -> "eth_src").
	Aliases map[string]string

	// Positional holds ordered slots consumed, in order, by tokens whose
	// Key is "" (anonymous) or that otherwise fail the Fields/Aliases
	// lookup -- eg. the bare masked payload at the end of a datapath
	// geneve option, or tnl_push header's unlabelled "(flags=...,proto=...)"
	// gre record.
	Positional []*Field

	// Default handles any token that matches neither Fields, Aliases nor
	// an available Positional slot (eg. OpenFlow's bare output-port
	// shorthand "3", "local", "controller").
	Default *Field

	// Strict, when true, makes an unresolved token a hard error instead
	// of being appended to the Record under its literal key.
	Strict bool
}

// New builds an empty Schema ready for Field registration.
func New() *Schema {
	return &Schema{
		Fields:  make(map[string]*Field),
		Aliases: make(map[string]string),
	}
}

// Field registers f under its Name and returns the Schema for chaining.
func (s *Schema) Field(f *Field) *Schema {
	s.Fields[f.Name] = f
	return s
}

// Alias registers an alternate spelling for an already-registered key.
func (s *Schema) Alias(alt, canonical string) *Schema {
	s.Aliases[alt] = canonical
	return s
}

// WithStrict returns a shallow copy of s with Strict set to strict. Fields,
// Aliases, Positional and Default are shared by reference (read-only after
// package init), so a grammar package's single shared Schema can still be
// parsed both strictly and leniently per call without a data race on the
// original -- see openflow.Parse/datapath.Parse.
func (s *Schema) WithStrict(strict bool) *Schema {
	cp := *s
	cp.Strict = strict
	return &cp
}

// resolve finds the Field bound to key, following Aliases, and reports the
// canonical name to store the decoded Value under.
func (s *Schema) resolve(key string) (*Field, string, bool) {
	if canon, ok := s.Aliases[key]; ok {
		key = canon
	}
	f, ok := s.Fields[key]
	return f, key, ok
}
