package main

import (
	"testing"

	"github.com/LdDl/delta-range/deltarange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBox(t *testing.T) {
	box, err := parseBox("0, 0,10,10.5")
	require.NoError(t, err)
	assert.Equal(t, deltarange.NewBox(0, 0, 10, 10.5), box)

	_, err = parseBox("1,2,3")
	assert.Error(t, err)
	_, err = parseBox("1,2,x,4")
	assert.Error(t, err)
}

func TestFormatBoxRoundTrip(t *testing.T) {
	ref := deltarange.DefaultConfig().Reference
	assert.Equal(t, "0,0,10,10", formatBox(ref))
	box, err := parseBox(formatBox(ref))
	require.NoError(t, err)
	assert.Equal(t, ref, box)
}
