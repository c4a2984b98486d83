package biguint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biguint/biguint"
	bgrand "github.com/biguint/biguint/libs/rand"
)

func TestAddChecked(t *testing.T) {
	a := fromHex(t, 4, "01020309")
	b := fromHex(t, 4, "020304f8")

	sum, err := a.AddChecked(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(a.Add(b)))

	_, err = biguint.Max(4).AddChecked(biguint.One(4))
	var overflow biguint.ErrOverflow
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "add", overflow.Op)
	assert.Equal(t, 4, overflow.Width)

	// the largest sum that still fits
	sum, err = biguint.Max(4).AddChecked(biguint.Zero(4))
	require.NoError(t, err)
	assert.True(t, sum.Equal(biguint.Max(4)))
}

func TestSubChecked(t *testing.T) {
	a := fromHex(t, 4, "03050801")
	b := fromHex(t, 4, "01020309")

	diff, err := a.SubChecked(b)
	require.NoError(t, err)
	assert.True(t, diff.Equal(a.Sub(b)))

	_, err = b.SubChecked(a)
	var underflow biguint.ErrUnderflow
	require.ErrorAs(t, err, &underflow)
	assert.Equal(t, "sub", underflow.Op)

	diff, err = a.SubChecked(a)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
}

func TestMulChecked(t *testing.T) {
	a := fromHex(t, 4, "00001801")
	b := fromHex(t, 4, "00001309")

	product, err := a.MulChecked(b)
	require.NoError(t, err)
	assert.Equal(t, "01c8eb09", product.Hex())

	_, err = biguint.Max(4).MulChecked(biguint.FromUint64(4, 2))
	var overflow biguint.ErrOverflow
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "mul", overflow.Op)

	_, err = biguint.Max(4).MulChecked(biguint.Max(4))
	require.ErrorAs(t, err, &overflow)

	product, err = a.MulChecked(biguint.Zero(4))
	require.NoError(t, err)
	assert.True(t, product.IsZero())

	product, err = a.MulChecked(biguint.One(4))
	require.NoError(t, err)
	assert.True(t, product.Equal(a))
}

// When both operands fit in 32 bits their 8-byte product cannot
// overflow, and the checked result must match the wrapping one.
func TestMulCheckedMatchesMul(t *testing.T) {
	bgrand.Seed(23)
	for i := 0; i < 100; i++ {
		a := biguint.FromUint64(8, uint64(bgrand.Intn(1<<31)))
		b := biguint.FromUint64(8, uint64(bgrand.Intn(1<<31)))

		checked, err := a.MulChecked(b)
		require.NoError(t, err)
		assert.True(t, checked.Equal(a.Mul(b)))
	}
}

// Operands both above 2^32 always overflow an 8-byte width.
func TestMulCheckedOverflow(t *testing.T) {
	bgrand.Seed(29)
	for i := 0; i < 50; i++ {
		a := biguint.FromUint64(8, 1<<32+uint64(bgrand.Intn(1<<31)))
		b := biguint.FromUint64(8, 1<<32+uint64(bgrand.Intn(1<<31)))

		_, err := a.MulChecked(b)
		var overflow biguint.ErrOverflow
		require.ErrorAs(t, err, &overflow)
	}
}
