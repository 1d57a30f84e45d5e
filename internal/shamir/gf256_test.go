package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 5: table sanity.
func TestTableSanity(t *testing.T) {
	initTables()

	assert.Equal(t, byte(1), expTable[0], "exp[0] must be 1")
	assert.Equal(t, byte(1), expTable[255], "exp[255] must be 1")

	for p := 0; p < 255; p++ {
		require.Equal(t, byte(p), logTable[expTable[p]], "log[exp[p]] must equal p for p=%d", p)
	}

	seen := make(map[byte]bool, 255)
	for p := 0; p < 255; p++ {
		v := expTable[p]
		require.False(t, seen[v], "exp must be a permutation of [1,255]; duplicate %d at p=%d", v, p)
		seen[v] = true
	}
	assert.Len(t, seen, 255)
}

// Property 6: GF laws.
func TestGFDistributivity(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b += 17 {
			for c := 1; c < 256; c += 23 {
				lhs := gfMul(byte(a), gfAdd(byte(b), byte(c)))
				rhs := gfAdd(gfMul(byte(a), byte(b)), gfMul(byte(a), byte(c)))
				assert.Equal(t, rhs, lhs, "a*(b+c) != a*b+a*c for a=%d b=%d c=%d", a, b, c)
			}
		}
	}
}

func TestGFMulInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := gfInv(byte(a))
		assert.Equal(t, byte(1), gfMul(byte(a), inv), "a * inv(a) must be 1 for a=%d", a)
	}
}

func TestGFInvZeroPanics(t *testing.T) {
	assert.Panics(t, func() { gfInv(0) })
}

func TestGFDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { gfDiv(1, 0) })
}

func TestGFPow(t *testing.T) {
	assert.Equal(t, byte(1), gfPow(5, 0))
	assert.Equal(t, byte(5), gfPow(5, 1))
	assert.Equal(t, gfMul(5, 5), gfPow(5, 2))
}
