package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandBytes(t *testing.T) {
	l := 243
	b := Bytes(l)
	assert.Len(t, b, l)
}

func TestRandIntn(t *testing.T) {
	n := 243
	for i := 0; i < 100; i++ {
		x := Intn(n)
		assert.Less(t, x, n)
	}
}

func TestRandUintWidth(t *testing.T) {
	for _, width := range []int{1, 8, 32} {
		v := Uint(width)
		assert.Equal(t, width, v.Width())
	}
}

// Seeding must make the sequence reproducible.
func TestDeterminism(t *testing.T) {
	r := NewRand()

	r.Seed(42)
	first := r.Bytes(64)
	firstU := r.Uint(16)

	r.Seed(42)
	assert.Equal(t, first, r.Bytes(64))
	assert.True(t, firstU.Equal(r.Uint(16)))
}
