package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRNGServesFromHead(t *testing.T) {
	rng := NewFixedRNG([]byte{0x01, 0x02, 0x03, 0x04})

	first := make([]byte, 2)
	require.NoError(t, rng.Fill(first))
	assert.Equal(t, []byte{0x01, 0x02}, first)

	// A second Fill call of the same size must return the same bytes: the
	// source has no read cursor, it always serves from the start.
	second := make([]byte, 2)
	require.NoError(t, rng.Fill(second))
	assert.Equal(t, first, second)
}

func TestFixedRNGExhaustion(t *testing.T) {
	rng := NewFixedRNG([]byte{0x01, 0x02})
	err := rng.Fill(make([]byte, 3))
	assert.ErrorIs(t, err, errRNGExhausted)
}

func TestNewFixedRNGPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewFixedRNG(nil) })
}

func TestSystemRNGFillsRequestedLength(t *testing.T) {
	var rng SystemRNG
	dest := make([]byte, 32)
	require.NoError(t, rng.Fill(dest))
}
