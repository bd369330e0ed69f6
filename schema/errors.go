package schema

import "errors"

// ErrUnknownKey is wrapped into a kv.ParseError when a section contains a
// key that matches neither a named Field, a Positional slot, nor a Default
// handler, and the schema was built with Strict set.
var ErrUnknownKey = errors.New("unrecognized key")

// ErrNoValue is returned by a Field whose Decode expects a value but the
// token carried none (bare flag where a value was required).
var ErrNoValue = errors.New("missing value")

// ErrUnexpectedValue is returned by a Field built for a bare flag when the
// token unexpectedly carried a value.
var ErrUnexpectedValue = errors.New("unexpected value")
