package biguint_test

import (
	"testing"

	"github.com/biguint/biguint"
)

var sink any

var benchOperands = []struct {
	name string
	a, b string
}{
	{"sparse", "0000000000000000000000000000000000000000000000000000000000001801", "0000000000000000000000000000000000000000000000000000000000001309"},
	{"dense", "73dce4a773dce4a773dce4a773dce4a773dce4a773dce4a773dce4a773dce4a7", "01c8eb0901c8eb0901c8eb0901c8eb0901c8eb0901c8eb0901c8eb0901c8eb09"},
}

func benchPair(b *testing.B, idx int) (biguint.Uint, biguint.Uint) {
	b.Helper()
	x, err := biguint.FromHex(32, benchOperands[idx].a)
	if err != nil {
		b.Fatal(err)
	}
	y, err := biguint.FromHex(32, benchOperands[idx].b)
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	x, y := benchPair(b, 1)

	for i := 0; i < b.N; i++ {
		sink = x.Add(y)
	}

	if sink == nil {
		b.Fatal("Benchmark did not run!")
	}
	sink = nil
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()

	for _, tt := range benchOperands {
		tt := tt
		b.Run(tt.name, func(b *testing.B) {
			x, err := biguint.FromHex(32, tt.a)
			if err != nil {
				b.Fatal(err)
			}
			y, err := biguint.FromHex(32, tt.b)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				sink = x.Mul(y)
			}
		})
	}

	if sink == nil {
		b.Fatal("Benchmark did not run!")
	}
	sink = nil
}

func BenchmarkDiv(b *testing.B) {
	b.ReportAllocs()
	x, y := benchPair(b, 1)

	for i := 0; i < b.N; i++ {
		q, err := x.Div(y)
		if err != nil {
			b.Fatal(err)
		}
		sink = q
	}

	if sink == nil {
		b.Fatal("Benchmark did not run!")
	}
	sink = nil
}
