// Package dsputil fills caller-owned FFT support tables: bit-reversal
// permutation indices and twiddle factor tables. The fill functions assume
// the destination slices have already been validated by the plan
// constructors and do not allocate.
package dsputil

import (
	"math"

	"github.com/cwbudde/tinyfft/fxp"
	"github.com/cwbudde/tinyfft/internal/fftypes"
)

// FillBitReversalIndices writes the bit-reversal permutation for a size-n
// radix-2 FFT into bitrev. Caller guarantees len(bitrev) >= n and n >= 1.
func FillBitReversalIndices(bitrev []int, n int) {
	bitrev[0] = 0

	j := 0
	for i := 1; i < n; i++ {
		k := n >> 1
		for j >= k {
			j -= k
			k >>= 1
		}

		j += k
		bitrev[i] = j
	}
}

// FillTwiddleFactors writes the first n/2 rotation factors
// W_n^k = exp(-2*pi*i*k/n) into tw. Caller guarantees len(tw) >= n/2.
func FillTwiddleFactors[T fftypes.Complex](tw []T, n int) {
	for k := 0; k < n/2; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		tw[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}
}

// FillFixedTwiddleFactors is the fixed-point variant of FillTwiddleFactors.
// The factors are always generated at fxp.TwiddleFrac regardless of the
// Q-format of the data buffers the table will serve.
func FillFixedTwiddleFactors(tw []fxp.Complex, n int) {
	for k := 0; k < n/2; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		tw[k] = fxp.NewComplex(
			fxp.FromFloat(math.Cos(angle), fxp.TwiddleFrac),
			fxp.FromFloat(math.Sin(angle), fxp.TwiddleFrac),
		)
	}
}

// complexFromFloat64 creates a complex number of type T from float64
// components.
func complexFromFloat64[T fftypes.Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}
