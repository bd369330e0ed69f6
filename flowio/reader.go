// Package flowio provides a streaming convenience over the openflow and
// datapath Parse entry points: reading a whole dump-flows capture (or any
// io.Reader of flow lines) and decoding each line in turn.
package flowio

import (
	"bufio"
	"io"
	"strings"

	"github.com/ovsfix/ovsfix/flow"
	"github.com/rs/zerolog"
)

// ParseFunc is the signature shared by openflow.Parse and datapath.Parse.
type ParseFunc func(line string, opts flow.Options) (*flow.Flow, error)

// ReaderStats counts what a Reader has seen so far.
type ReaderStats struct {
	Lines   uint64 // non-blank, non-comment lines handed to the parser
	Skipped uint64 // blank lines / comments skipped
	Parsed  uint64 // lines successfully decoded
	Errored uint64 // lines that failed to decode
}

// ReaderOptions configures a Reader; NewReader starts from
// DefaultReaderOptions. A non-nil Logger set before ReadAll is used for that
// call's diagnostics.
type ReaderOptions struct {
	Logger *zerolog.Logger

	// Strict is forwarded to each Parse call.
	Strict bool

	// SkipErrors makes ReadAll collect per-line errors into Stats and keep
	// going instead of returning on the first one.
	SkipErrors bool
}

var nopLogger = zerolog.Nop()

// DefaultReaderOptions is the Options every NewReader starts with.
var DefaultReaderOptions = ReaderOptions{Logger: &nopLogger, SkipErrors: true}

// Reader decodes a stream of flow-dump lines with a single grammar's
// Parse function.
type Reader struct {
	*zerolog.Logger

	Stats   ReaderStats
	Options ReaderOptions

	parse ParseFunc
}

// NewReader returns a Reader that decodes each line with parse (typically
// openflow.Parse or datapath.Parse).
func NewReader(parse ParseFunc) *Reader {
	r := &Reader{parse: parse, Options: DefaultReaderOptions}
	r.Logger = r.Options.Logger
	return r
}

// ReadAll scans src line by line, decoding every non-blank, non-comment
// ('#'-prefixed) line. When Options.SkipErrors is false, it returns
// immediately on the first parse error; otherwise it keeps going and the
// error is only reflected in r.Stats.Errored and the log.
func (r *Reader) ReadAll(src io.Reader) ([]*flow.Flow, error) {
	if r.Options.Logger != nil {
		r.Logger = r.Options.Logger
	}
	if r.Logger == nil {
		l := zerolog.Nop()
		r.Logger = &l
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var flows []*flow.Flow
	opts := flow.Options{Logger: r.Logger, Strict: r.Options.Strict}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			r.Stats.Skipped++
			continue
		}
		r.Stats.Lines++

		f, err := r.parse(line, opts)
		if err != nil {
			r.Stats.Errored++
			r.Logger.Error().Err(err).Str("line", line).Msg("flowio: parse error")
			if !r.Options.SkipErrors {
				return flows, err
			}
			continue
		}

		r.Stats.Parsed++
		flows = append(flows, f)
	}

	return flows, sc.Err()
}
