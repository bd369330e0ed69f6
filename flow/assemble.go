package flow

import (
	"errors"
	"strings"

	"github.com/ovsfix/ovsfix/kv"
	"github.com/ovsfix/ovsfix/schema"
)

// Assemble splits raw at the top-level occurrence of actionsKey (eg.
// "actions=" for the OpenFlow grammar, "actions:" for the datapath one)
// into a "fields" span (everything before it: match fields and flow
// statistics, interleaved) and an "actions" span (everything after it),
// then decodes each span against its own Schema. A line with
// no actionsKey at all (eg. a bare ufid-only datapath line) yields only
// the "fields" Section.
func Assemble(raw string, actionsKey string, fieldsSchema, actionsSchema *schema.Schema) (*Flow, error) {
	head, actionRaw, actionStart, found := splitTopLevel(raw, actionsKey)

	f := &Flow{Raw: raw}

	headStr := strings.TrimSpace(head)
	headPos := leadingTrimLen(head)
	_, fieldKVs, err := schema.ParseRecord(headStr, fieldsSchema)
	if err != nil {
		return nil, rebaseError(err, headPos)
	}
	f.Sections = append(f.Sections, kv.Section{Name: "fields", Pos: headPos, String: headStr, KVs: fieldKVs})

	if found {
		action := strings.TrimSpace(actionRaw)
		actionPos := actionStart + leadingTrimLen(actionRaw)
		_, actionKVs, err := schema.ParseRecord(action, actionsSchema)
		if err != nil {
			return nil, rebaseError(err, actionPos)
		}
		f.Sections = append(f.Sections, kv.Section{Name: "actions", Pos: actionPos, String: action, KVs: actionKVs})
	}

	return f, nil
}

// rebaseError shifts a ParseError's section-relative offset by the
// section's own position, so the caller always sees an absolute byte
// offset into the original flow line.
func rebaseError(err error, base int) error {
	var pe *kv.ParseError
	if errors.As(err, &pe) {
		cp := *pe
		cp.Offset += base
		return &cp
	}
	return err
}

// leadingTrimLen returns how many bytes of leading whitespace TrimSpace
// would strip from s, so a caller can shift an absolute offset by the same
// amount after trimming.
func leadingTrimLen(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t\r\n"))
}

// splitTopLevel finds the first occurrence of key at nesting depth 0 whose
// start is either the beginning of raw or preceded by a separator (comma
// or whitespace), so it can't fire inside a nested record or as a suffix
// of some other identifier. It returns the text before key (head), the
// untrimmed text after key (action), the offset immediately after key
// (actionPos), and whether key was found at all. Trimming is left to the
// caller so it can account for the whitespace it strips against actionPos.
func splitTopLevel(raw string, key string) (head, action string, actionPos int, found bool) {
	depth := 0
	n := len(raw)
	klen := len(key)

	for i := 0; i+klen <= n; i++ {
		c := raw[i]
		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		}

		if depth != 0 {
			continue
		}
		if raw[i:i+klen] != key {
			continue
		}
		if i > 0 && !isBoundary(raw[i-1]) {
			continue
		}
		return raw[:i], raw[i+klen:], i + klen, true
	}

	return raw, "", 0, false
}

func isBoundary(c byte) bool {
	return c == ',' || c == ' ' || c == '\t'
}
