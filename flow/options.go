package flow

import "github.com/rs/zerolog"

// Options configures a grammar package's Parse entry point: a
// *zerolog.Logger plus a handful of behaviour flags, filled in with
// DefaultOptions when the caller leaves it zero-valued.
type Options struct {
	// Logger receives parse diagnostics (a debug line when a Parse call
	// fails). Nil disables logging.
	Logger *zerolog.Logger

	// Strict rejects a key of the top-level fields or actions list that
	// the grammar's Schema does not recognize and that no Positional slot
	// or Default handler claims, instead of keeping it with a heuristically
	// inferred value. Keys inside nested records are always decoded
	// leniently, whatever Strict says.
	Strict bool
}

// DefaultOptions is used by every grammar Parse* entry point that receives
// a zero Options value.
var DefaultOptions = Options{
	Logger: &defaultLogger,
}

var defaultLogger = zerolog.Nop()

// Logf is a nil-safe helper so callers needn't guard every Logger use.
func (o Options) Logf() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return &defaultLogger
}
