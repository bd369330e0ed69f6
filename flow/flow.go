// Package flow assembles a decoded kv.Section list into the top-level
// Flow, and provides the grammar-agnostic splitting logic
// (Assemble) that both the openflow and datapath packages drive with their
// own Schemas.
package flow

import "github.com/ovsfix/ovsfix/kv"

// Flow is the parsed form of one dump-flows line: a small, named set of
// Sections, each carrying its own KeyValues with section-relative
// positions.
type Flow struct {
	Raw      string
	Sections []kv.Section
}

// Section returns the named Section, or nil if the flow has none by that
// name (eg. a line with no actions=... suffix at all).
func (f *Flow) Section(name string) *kv.Section {
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i]
		}
	}
	return nil
}

// KVs returns the KeyValues of the named Section, or nil if absent.
func (f *Flow) KVs(name string) []kv.KeyValue {
	if s := f.Section(name); s != nil {
		return s.KVs
	}
	return nil
}

// Fields is the combined match-field-and-statistic KeyValue list. Both
// grammars interleave match fields (eth_type, nw_dst, ...) and flow
// statistics (n_packets, duration, ...) in one comma-separated span ahead
// of the actions keyword, so they share a single "fields" Section rather
// than being forced into separate match/stats spans that don't exist as
// contiguous text.
func (f *Flow) Fields() []kv.KeyValue { return f.KVs("fields") }

// Actions is the action-list KeyValue list.
func (f *Flow) Actions() []kv.KeyValue { return f.KVs("actions") }

// MatchKV returns the match/stats KeyValues ahead of the actions
// keyword; an alias of Fields.
func (f *Flow) MatchKV() []kv.KeyValue { return f.Fields() }

// ActionsKV returns the action-list KeyValues; an alias of Actions.
func (f *Flow) ActionsKV() []kv.KeyValue { return f.Actions() }

// Get looks a key up across every Section, first match wins. Most callers
// know which Section a key lives in and should use Fields()/Actions()
// directly; Get is a convenience for ufid/packet-id style keys that can
// appear outside either of those two spans.
func (f *Flow) Get(key string) (kv.KeyValue, bool) {
	for _, s := range f.Sections {
		for _, item := range s.KVs {
			if item.Key == key {
				return item, true
			}
		}
	}
	return kv.KeyValue{}, false
}
