package tinyfft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func randomComplex128(rnd *rand.Rand, n int) []complex128 {
	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return buf
}

func randomFloat64(rnd *rand.Rand, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rnd.Float64()*2 - 1
	}

	return buf
}

// interleave writes the real and imaginary parts of src into a flat float64
// slice, for L1 distance comparisons.
func interleave(src []complex128) []float64 {
	out := make([]float64, 2*len(src))
	for i, v := range src {
		out[2*i] = real(v)
		out[2*i+1] = imag(v)
	}

	return out
}
