package flowio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsfix/ovsfix/datapath"
	"github.com/ovsfix/ovsfix/openflow"
)

func TestReadAllOpenflow(t *testing.T) {
	src := strings.NewReader(`
# dumped via ovs-ofctl
priority=100,ip actions=drop
priority=50 actions=output:3,controller

`)
	r := NewReader(openflow.Parse)
	flows, err := r.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, flows, 2)

	assert.Equal(t, uint64(2), r.Stats.Lines)
	assert.Equal(t, uint64(2), r.Stats.Parsed)
	assert.Equal(t, uint64(0), r.Stats.Errored)
	assert.Equal(t, uint64(3), r.Stats.Skipped, "blank lines and comments are skipped")

	assert.Len(t, flows[1].Actions(), 2)
}

func TestReadAllDatapathSkipsBadLines(t *testing.T) {
	src := strings.NewReader(
		"in_port(2),eth_type(0x800) actions:3\n" +
			"in_port(2),eth_type(0x800 actions:3\n") // unbalanced paren

	r := NewReader(datapath.Parse)
	flows, err := r.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, flows, 1)
	assert.Equal(t, uint64(1), r.Stats.Errored)
}

func TestReadAllStopsOnErrorWhenAsked(t *testing.T) {
	src := strings.NewReader(
		"in_port(2 actions:3\n" +
			"in_port(2),eth_type(0x800) actions:3\n")

	r := NewReader(datapath.Parse)
	r.Options.SkipErrors = false
	flows, err := r.ReadAll(src)
	assert.Error(t, err)
	assert.Empty(t, flows)
}
