package openflow

import "github.com/ovsfix/ovsfix/flow"

// Parse decodes one ovs-ofctl dump-flows line into a flow.Flow. opts may
// be the zero value, in which case flow.DefaultOptions applies.
func Parse(line string, opts flow.Options) (*flow.Flow, error) {
	f, err := flow.Assemble(line, "actions=", FieldsSchema.WithStrict(opts.Strict), ActionsSchema.WithStrict(opts.Strict))
	if err != nil {
		opts.Logf().Debug().Err(err).Str("line", line).Msg("openflow: parse failed")
		return nil, err
	}
	return f, nil
}
