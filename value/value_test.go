package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"0x2a", 42, false},
		{"0X2A", 42, false},
		{"-1", 0, true},
		{"not_a_number", 0, true},
	}

	for _, tt := range tests {
		v, err := ParseInteger(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, KindInteger, v.Kind, tt.in)
		assert.Equal(t, tt.want, v.Int, tt.in)
	}
}

func TestParseMasked(t *testing.T) {
	v, err := ParseMasked("0x5/0xf", 32)
	assert.NoError(t, err)
	assert.Equal(t, KindMasked, v.Kind)
	assert.Equal(t, uint64(0x5), v.Masked.Lo)
	assert.Equal(t, uint64(0xf), v.Masked.MaskLo)

	_, err = ParseMasked("0x5/0x0", 32)
	assert.Error(t, err, "a zero mask is meaningless and must be rejected")

	v128, err := ParseMasked("0x1/0xffffffffffffffffffffffffffffffff", 128)
	assert.NoError(t, err)
	assert.Equal(t, 128, v128.Masked.Width)
	assert.NotNil(t, v128.Masked.Big)
}

func TestParseEthMask(t *testing.T) {
	v, err := ParseEthMask("01:02:03:04:05:06/ff:ff:ff:00:00:00")
	assert.NoError(t, err)
	assert.Equal(t, KindEthMask, v.Kind)
	assert.True(t, v.Eth.HasMask)

	_, err = ParseEthMask("not-a-mac")
	assert.Error(t, err)
}

func TestParseIPMask(t *testing.T) {
	v, err := ParseIPMask("10.0.0.0/24")
	assert.NoError(t, err)
	assert.Equal(t, 24, v.IP.Prefix)

	v, err = ParseIPMask("10.0.0.1/255.255.255.0")
	assert.NoError(t, err)
	assert.True(t, v.IP.MaskIP.IsValid())

	v, err = ParseIPAddress("::1")
	assert.NoError(t, err)
	assert.Equal(t, KindIPAddress, v.Kind)
}

func TestParseRange(t *testing.T) {
	v, err := ParseRange("2000-3000", ParseInteger)
	assert.NoError(t, err)
	assert.Equal(t, KindRange, v.Kind)
	assert.Equal(t, uint64(2000), v.Rng.Start.Int)
	assert.Equal(t, uint64(3000), v.Rng.End.Int)

	_, err = ParseRange("3000-2000", ParseInteger)
	assert.Error(t, err, "a range whose start exceeds its end must be rejected")
}

func TestValueEqual(t *testing.T) {
	a := Integer(5)
	b := Integer(5)
	c := Integer(6)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	r1 := NewRecord()
	r1.Set("x", Integer(1))
	r2 := NewRecord()
	r2.Set("x", Integer(1))
	assert.True(t, RecordValue(r1).Equal(RecordValue(r2)))
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []Value{
		Integer(42),
		BoolValue(true),
		StringValue("hello"),
		ListValue([]Value{Integer(1), Integer(2)}),
	}
	for _, v := range tests {
		buf := v.ToJSON(nil)
		var got Value
		assert.NoError(t, got.FromJSON(buf), string(buf))
		assert.True(t, v.Equal(got), string(buf))
	}

	masked, err := ParseMasked("0x5/0xf", 32)
	assert.NoError(t, err)
	buf := masked.ToJSON(nil)
	var gotMasked Value
	assert.NoError(t, gotMasked.FromJSON(buf))
	assert.Equal(t, masked.Masked.Lo, gotMasked.Masked.Lo)
	assert.Equal(t, masked.Masked.MaskLo, gotMasked.Masked.MaskLo)
}

func TestInfer(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		ok   bool
	}{
		{"42", KindInteger, true},
		{"0x2a", KindInteger, true},
		{"00:11:22:33:44:55", KindEthMask, true},
		{"10.0.0.1/24", KindIPMask, true},
		{"fe80::1", KindIPMask, true},
		{"0x5/0xff", KindMasked, true},
		{"100-200", KindRange, true},
		{"gibberish", 0, false},
		{"true", 0, false},
	}

	for _, tt := range tests {
		v, ok := Infer(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.kind, v.Kind, tt.in)
		}
	}
}
