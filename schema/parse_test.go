package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsfix/ovsfix/value"
)

func TestParseRecordNamedField(t *testing.T) {
	sch := New()
	sch.Field(&Field{Name: "priority", Decode: Int})

	rec, kvs, err := ParseRecord("priority=100", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)

	assert.Equal(t, "priority", kvs[0].Key)
	v, ok := rec.Get("priority")
	require.True(t, ok)
	assert.Equal(t, value.Integer(100), v)
}

func TestParseRecordAlias(t *testing.T) {
	sch := New()
	sch.Field(&Field{Name: "eth_src", Decode: EthMask})
	sch.Alias("dl_src", "eth_src")

	_, kvs, err := ParseRecord("dl_src=00:11:22:33:44:55", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, "eth_src", kvs[0].Key)
	assert.Equal(t, "dl_src", kvs[0].Meta.KString)
}

func TestParseRecordBareFlag(t *testing.T) {
	sch := New()
	sch.Field(&Field{Name: "strip_vlan", Decode: Flag})

	_, kvs, err := ParseRecord("strip_vlan", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, value.BoolValue(true), kvs[0].Value)
	assert.Equal(t, -1, kvs[0].Meta.VPos)
}

// TestParseRecordPositional covers the Positional-slot resolution that
// tells a bare anonymous token apart from an unrecognized one.
func TestParseRecordPositional(t *testing.T) {
	sch := New()
	sch.Positional = []*Field{
		{Name: "fields", Decode: StringField},
		{Name: "basis", Decode: Int},
	}

	_, kvs, err := ParseRecord("eth_src,50", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 2)
	assert.Equal(t, "fields", kvs[0].Key)
	assert.Equal(t, "basis", kvs[1].Key)
	assert.Equal(t, value.Integer(50), kvs[1].Value)
}

// TestParseRecordPositionalOptionalSkip covers an Optional slot whose
// Match rejects the candidate token, so the slot is skipped and the token
// binds to the next slot.
func TestParseRecordPositionalOptionalSkip(t *testing.T) {
	sch := New()
	sch.Positional = []*Field{
		{Name: "marker", Optional: true, Match: func(raw string) bool { return raw == "ofport" }},
		{Name: "basis", Decode: Int},
	}

	_, kvs, err := ParseRecord("50", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, "basis", kvs[0].Key)
}

// TestParseRecordDefaultCanonicalizesKey: a Default-fallback token must
// be stored under the Default
// field's declared Name, not the literal raw token text, so that five
// differently-spelled output shorthands collapse to one KeyValue key.
func TestParseRecordDefaultCanonicalizesKey(t *testing.T) {
	sch := New()
	sch.Default = &Field{Name: "output", Decode: Int}

	_, kvs, err := ParseRecord("3", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, "output", kvs[0].Key)
	assert.Equal(t, "3", kvs[0].Meta.KString)
}

func TestParseRecordStrictRejectsUnknownKey(t *testing.T) {
	sch := New()
	sch.Strict = true

	_, _, err := ParseRecord("nonexistent=1", sch)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

// TestParseRecordLenientGuessesValue is the non-strict fallback: an unrecognized key is kept, with its value type heuristically
// inferred the way a loosely-typed config value would be -- integer, then
// bool, then opaque string.
func TestParseRecordLenientGuessesValue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want value.Value
	}{
		{"integer", "future_field=42", value.Integer(42)},
		{"bool-true", "future_flag=true", value.BoolValue(true)},
		{"bool-false", "future_flag=false", value.BoolValue(false)},
		{"string", "future_field=gibberish", value.StringValue("gibberish")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sch := New()
			_, kvs, err := ParseRecord(tc.text, sch)
			require.NoError(t, err)
			require.Len(t, kvs, 1)
			assert.Equal(t, tc.want, kvs[0].Value)
		})
	}
}

func TestParseRecordNestedRecord(t *testing.T) {
	inner := New()
	inner.Field(&Field{Name: "tun_id", Decode: Masked(64)})

	outer := New()
	outer.Field(&Field{Name: "tunnel", Decode: Record(inner)})

	rec, _, err := ParseRecord("tunnel(tun_id=0x5)", outer)
	require.NoError(t, err)

	tv, ok := rec.Get("tunnel")
	require.True(t, ok)
	require.Equal(t, value.KindRecord, tv.Kind)

	inner_v, ok := tv.Record.Get("tun_id")
	require.True(t, ok)
	assert.Equal(t, uint64(5), inner_v.Masked.Uint64())
}

func TestParseRecordPositionsRelativeToSectionText(t *testing.T) {
	text := "priority=100,ip"
	sch := New()
	sch.Field(&Field{Name: "priority", Decode: Int})
	sch.Field(&Field{Name: "ip", Decode: Flag})

	_, kvs, err := ParseRecord(text, sch)
	require.NoError(t, err)
	for _, item := range kvs {
		assert.Equal(t, item.Meta.KString, text[item.Meta.KPos:item.Meta.KPos+len(item.Meta.KString)])
		if item.Meta.VPos >= 0 {
			assert.Equal(t, item.Meta.VString, text[item.Meta.VPos:item.Meta.VPos+len(item.Meta.VString)])
		}
	}
}

// TestParseRecordEmptyParens: "key()" must produce an empty nested
// Record, not a bare flag and not an error.
func TestParseRecordEmptyParens(t *testing.T) {
	sch := New()
	sch.Field(&Field{Name: "tunnel", Decode: Record(New())})

	rec, kvs, err := ParseRecord("tunnel()", sch)
	require.NoError(t, err)
	require.Len(t, kvs, 1)

	tv, ok := rec.Get("tunnel")
	require.True(t, ok)
	require.Equal(t, value.KindRecord, tv.Kind)
	assert.Zero(t, tv.Record.Len())
}
