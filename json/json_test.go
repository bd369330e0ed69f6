package json

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	src := []byte{0xde, 0xad, 0xbe, 0xef}
	buf := Hex(nil, src)
	assert.Equal(t, `"0xdeadbeef"`, string(buf))

	back, err := UnHex(nil, buf)
	require.NoError(t, err)
	assert.Equal(t, src, back)

	assert.Equal(t, "null", string(Hex(nil, nil)))
	assert.Equal(t, `""`, string(Hex(nil, []byte{})))
}

func TestUint64(t *testing.T) {
	assert.Equal(t, "42", string(Uint64(nil, 42)))

	v, err := UnUint64([]byte("42"))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	v, err = UnUint64([]byte(`"0x2a"`))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	_, err = UnUint64([]byte("bogus"))
	assert.Error(t, err)
}

func TestBigHexRoundTrip(t *testing.T) {
	n, ok := new(big.Int).SetString("1234567890abcdef1234567890abcdef", 16)
	require.True(t, ok)

	buf := BigHex(nil, n)
	assert.Equal(t, `"0x1234567890abcdef1234567890abcdef"`, string(buf))

	back, err := UnBigHex(buf)
	require.NoError(t, err)
	assert.Zero(t, n.Cmp(back))

	assert.Equal(t, "null", string(BigHex(nil, nil)))
}

func TestBool(t *testing.T) {
	assert.Equal(t, "true", string(Bool(nil, true)))
	assert.Equal(t, "false", string(Bool(nil, false)))

	v, err := UnBool([]byte("true"))
	require.NoError(t, err)
	assert.True(t, v)

	v, err = UnBool([]byte(`"0"`))
	require.NoError(t, err)
	assert.False(t, v)

	_, err = UnBool([]byte("maybe"))
	assert.Error(t, err)
}

func TestStringEscaping(t *testing.T) {
	buf := String(nil, `with "quotes" and \`)
	s, err := UnString(buf)
	require.NoError(t, err)
	assert.Equal(t, `with "quotes" and \`, s)
}

func TestQ(t *testing.T) {
	assert.Equal(t, "abc", string(Q([]byte(`"abc"`))))
	assert.Equal(t, "abc", string(Q([]byte("abc"))))
	assert.Equal(t, `"`, string(Q([]byte(`"`))))
}
