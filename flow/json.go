package flow

import (
	ovsjson "github.com/ovsfix/ovsfix/json"
	"github.com/ovsfix/ovsfix/kv"
)

// ToJSON appends the JSON representation of f to dst: an object
// keyed by Section name, each holding an object of its KeyValues.
func (f *Flow) ToJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, s := range f.Sections {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = ovsjson.String(dst, s.Name)
		dst = append(dst, ':')
		dst = sectionToJSON(dst, &s)
	}
	return append(dst, '}')
}

func sectionToJSON(dst []byte, s *kv.Section) []byte {
	dst = append(dst, '{')
	for i, item := range s.KVs {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = ovsjson.String(dst, item.Key)
		dst = append(dst, ':')
		dst = item.Value.ToJSON(dst)
	}
	return append(dst, '}')
}
