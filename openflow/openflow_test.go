package openflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsfix/ovsfix/flow"
	"github.com/ovsfix/ovsfix/value"
)

func portRecord(t *testing.T, v value.Value) value.Value {
	t.Helper()
	require.Equal(t, value.KindRecord, v.Kind)
	port, ok := v.Record.Get("port")
	require.True(t, ok)
	return port
}

// TestParseListShorthand: every bare token in an
// action list's output-shorthand run resolves to a KeyValue named
// "output", whatever spelling produced it.
func TestParseListShorthand(t *testing.T) {
	f, err := Parse("actions=local,3,4,5,output:foo", flow.Options{})
	require.NoError(t, err)

	actions := f.Actions()
	require.Len(t, actions, 5)

	want := []struct {
		key  string
		port value.Value
	}{
		{"output", value.EnumValue("local")},
		{"output", value.Integer(3)},
		{"output", value.Integer(4)},
		{"output", value.Integer(5)},
		{"output", value.StringValue("foo")},
	}

	for i, w := range want {
		assert.Equal(t, w.key, actions[i].Key, "action %d", i)
		assert.Equal(t, w.port, portRecord(t, actions[i].Value), "action %d port", i)
	}
}

// TestParseLoadFieldSlice: load's field-reference sub-grammar must
// decode the destination as a nested {field, start, end}
// record, not a flattened string.
func TestParseLoadFieldSlice(t *testing.T) {
	f, err := Parse("actions=load:1->eth_src[1]", flow.Options{})
	require.NoError(t, err)

	actions := f.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, "load", actions[0].Key)

	rec := actions[0].Value.Record
	val, ok := rec.Get("value")
	require.True(t, ok)
	assert.Equal(t, value.Integer(1), val)

	dstV, ok := rec.Get("dst")
	require.True(t, ok)
	require.Equal(t, value.KindRecord, dstV.Kind)

	field, ok := dstV.Record.Get("field")
	require.True(t, ok)
	assert.Equal(t, value.StringValue("eth_src"), field)

	start, ok := dstV.Record.Get("start")
	require.True(t, ok)
	assert.Equal(t, value.Integer(1), start)

	end, ok := dstV.Record.Get("end")
	require.True(t, ok)
	assert.Equal(t, value.Integer(1), end)
}

func TestParseLoadWholeFieldNoRange(t *testing.T) {
	f, err := Parse("actions=load:0x1->NXM_OF_IP_SRC[]", flow.Options{})
	require.NoError(t, err)

	rec := f.Actions()[0].Value.Record
	dstV, _ := rec.Get("dst")
	assert.False(t, dstV.Record.Has("start"))
	assert.False(t, dstV.Record.Has("end"))
}

func TestParseMoveBetweenFields(t *testing.T) {
	f, err := Parse("actions=move:NXM_OF_IP_SRC[]->NXM_OF_IP_DST[]", flow.Options{})
	require.NoError(t, err)

	rec := f.Actions()[0].Value.Record
	src, ok := rec.Get("src")
	require.True(t, ok)
	field, _ := src.Record.Get("field")
	assert.Equal(t, value.StringValue("NXM_OF_IP_SRC"), field)
}

func TestParseFieldsAndMaskedValues(t *testing.T) {
	f, err := Parse("priority=100,eth_type=0x0800,nw_dst=10.0.0.0/24 actions=drop", flow.Options{})
	require.NoError(t, err)

	fields := f.Fields()
	require.Len(t, fields, 3)

	get := func(key string) value.Value {
		for _, kv := range fields {
			if kv.Key == key {
				return kv.Value
			}
		}
		t.Fatalf("missing field %q", key)
		return value.Value{}
	}

	assert.Equal(t, value.Integer(100), get("priority"))
	assert.Equal(t, uint64(0x0800), get("eth_type").Masked.Uint64())
	assert.True(t, get("nw_dst").IP.HasMask == false && get("nw_dst").IP.Prefix == 24)
}

func TestParseAliasResolvesToCanonicalKey(t *testing.T) {
	f, err := Parse("dl_src=00:11:22:33:44:55 actions=drop", flow.Options{})
	require.NoError(t, err)
	fields := f.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "eth_src", fields[0].Key)
}

func TestParseStrictRejectsUnknownField(t *testing.T) {
	_, err := Parse("bogus_key=1 actions=drop", flow.Options{Strict: true})
	assert.Error(t, err)
}

func TestParseLenientAcceptsUnknownField(t *testing.T) {
	f, err := Parse("bogus_key=1 actions=drop", flow.Options{Strict: false})
	require.NoError(t, err)
	fields := f.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "bogus_key", fields[0].Key)
}

func TestSchemasRegistryLookup(t *testing.T) {
	sch, ok := Schemas.Lookup("fields")
	require.True(t, ok)
	assert.Same(t, FieldsSchema, sch)

	_, ok = Schemas.Lookup("nonexistent")
	assert.False(t, ok)
}

// TestParseRecursiveClone exercises nested clone actions: each clone level
// is itself an action list, so the decoder must recurse through the same
// schema it started from.
func TestParseRecursiveClone(t *testing.T) {
	f, err := Parse("actions=clone(clone(push_vlan(vid=12,pcp=0),2),1)", flow.Options{})
	require.NoError(t, err)

	actions := f.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, "clone", actions[0].Key)

	outer := actions[0].Value.Record
	out, ok := outer.Get("output")
	require.True(t, ok)
	assert.Equal(t, value.Integer(1), portRecord(t, out))

	innerV, ok := outer.Get("clone")
	require.True(t, ok)
	require.Equal(t, value.KindRecord, innerV.Kind)
	inner := innerV.Record

	out2, ok := inner.Get("output")
	require.True(t, ok)
	assert.Equal(t, value.Integer(2), portRecord(t, out2))

	pv, ok := inner.Get("push_vlan")
	require.True(t, ok)
	require.Equal(t, value.KindRecord, pv.Kind)
	vid, _ := pv.Record.Get("vid")
	pcp, _ := pv.Record.Get("pcp")
	assert.Equal(t, value.Integer(12), vid)
	assert.Equal(t, value.Integer(0), pcp)
}

func TestParsePushVlanEthertypeShorthand(t *testing.T) {
	f, err := Parse("actions=push_vlan:0x8100", flow.Options{})
	require.NoError(t, err)

	actions := f.Actions()
	require.Len(t, actions, 1)
	require.Equal(t, value.KindMasked, actions[0].Value.Kind)
	assert.Equal(t, uint64(0x8100), actions[0].Value.Masked.Uint64())
}

func TestParseEncapBothForms(t *testing.T) {
	f, err := Parse("actions=encap(0x0800)", flow.Options{})
	require.NoError(t, err)
	assert.Equal(t, value.Integer(0x0800), f.Actions()[0].Value)

	f, err = Parse("actions=encap(nsh(md_type=1))", flow.Options{})
	require.NoError(t, err)
	nsh, ok := f.Actions()[0].Value.Record.Get("nsh")
	require.True(t, ok)
	md, _ := nsh.Record.Get("md_type")
	assert.Equal(t, value.Integer(1), md)
}

func TestParseEnqueueBothForms(t *testing.T) {
	for _, in := range []string{"actions=enqueue:5:1", "actions=enqueue(5,1)"} {
		f, err := Parse(in, flow.Options{})
		require.NoError(t, err, in)
		rec := f.Actions()[0].Value.Record
		port, _ := rec.Get("port")
		queue, _ := rec.Get("queue")
		assert.Equal(t, value.Integer(5), port, in)
		assert.Equal(t, value.Integer(1), queue, in)
	}
}
