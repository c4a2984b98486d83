package biguint_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biguint/biguint"
	bgrand "github.com/biguint/biguint/libs/rand"
)

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"Equal", "01020309", "01020309", 0},
		{"FirstByteDecides", "02000000", "01ffffff", 1},
		{"LastByteDecides", "01020308", "01020309", -1},
		{"ZeroVsMax", "00000000", "ffffffff", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := biguint.FromHex(4, tc.a)
			require.NoError(t, err)
			b, err := biguint.FromHex(4, tc.b)
			require.NoError(t, err)

			assert.Equal(t, tc.want, a.Cmp(b))
			assert.Equal(t, -tc.want, b.Cmp(a))
		})
	}
}

func TestOrderingPredicates(t *testing.T) {
	lo, err := biguint.FromHex(4, "01020309")
	require.NoError(t, err)
	hi, err := biguint.FromHex(4, "020304f8")
	require.NoError(t, err)

	assert.True(t, lo.Less(hi))
	assert.True(t, lo.LessOrEqual(hi))
	assert.True(t, lo.LessOrEqual(lo))
	assert.True(t, hi.Greater(lo))
	assert.True(t, hi.GreaterOrEqual(lo))
	assert.True(t, hi.GreaterOrEqual(hi))
	assert.True(t, lo.Equal(lo))
	assert.False(t, lo.Equal(hi))
	assert.False(t, hi.Less(lo))
}

// Structural comparison of the big-endian bytes must agree with numeric
// comparison of the represented values.
func TestCmpMatchesNumericOrder(t *testing.T) {
	bgrand.Seed(7)
	for i := 0; i < 500; i++ {
		a := bgrand.Uint(8)
		b := bgrand.Uint(8)

		na := binary.BigEndian.Uint64(a.Bytes())
		nb := binary.BigEndian.Uint64(b.Bytes())

		switch {
		case na < nb:
			assert.Equal(t, -1, a.Cmp(b))
		case na > nb:
			assert.Equal(t, 1, a.Cmp(b))
		default:
			assert.Zero(t, a.Cmp(b))
		}
	}
}
