// Package dit implements the in-place radix-2 decimation-in-time butterfly
// engine shared by the floating-point and fixed-point plans.
//
// Both kernels follow the same shape: a bit-reversal permutation (one swap
// per index pair), then log2(n) butterfly stages. Direction affects only two
// things: the inverse conjugates each twiddle factor and halves both
// butterfly outputs once per stage. Distributing the 1/n normalization as
// one halving per stage bounds intermediate dynamic range, which the
// fixed-point representation requires; the floating-point kernel applies the
// identical halving so both engines stay bit-for-bit aligned in structure.
package dit

import (
	"github.com/cwbudde/tinyfft/fxp"
	"github.com/cwbudde/tinyfft/internal/fftypes"
)

// Transform runs an in-place radix-2 DIT FFT over buf.
//
// Caller guarantees: len(buf) is a power of two, len(bitrev) >= len(buf),
// and twiddles holds at least len(buf)/2 factors when read at every
// twiddleStride-th entry. A stride above 1 lets a finer table (generated for
// a larger transform) drive a smaller one.
func Transform[T fftypes.Complex](buf, twiddles []T, bitrev []int, twiddleStride int, inverse bool) {
	n := len(buf)

	for i := 1; i < n-1; i++ {
		if j := bitrev[i]; i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	half := complexFromFloat64[T](0.5, 0)

	twStep := n >> 1
	for stride := 1; stride < n; stride <<= 1 {
		jmax := n - stride

		for j := 0; j < jmax; j += stride << 1 {
			for i := 0; i < stride; i++ {
				w := twiddles[i*twStep*twiddleStride]
				if inverse {
					w = conj(w)
				}

				idx := j + i
				a := buf[idx]
				b := buf[idx+stride]

				t := b * w
				v1 := a + t
				v2 := a - t

				if inverse {
					v1 *= half
					v2 *= half
				}

				buf[idx] = v1
				buf[idx+stride] = v2
			}
		}

		twStep >>= 1
	}
}

// TransformFixed is the fixed-point kernel. The buffer may carry any
// Q-format; the twiddle table is always fxp.TwiddleFrac wide, and the
// mixed-precision multiply keeps every butterfly result in the buffer's
// format.
func TransformFixed(buf, twiddles []fxp.Complex, bitrev []int, twiddleStride int, inverse bool) {
	n := len(buf)

	for i := 1; i < n-1; i++ {
		if j := bitrev[i]; i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	twStep := n >> 1
	for stride := 1; stride < n; stride <<= 1 {
		jmax := n - stride

		for j := 0; j < jmax; j += stride << 1 {
			for i := 0; i < stride; i++ {
				w := twiddles[i*twStep*twiddleStride]
				if inverse {
					w = w.Conj()
				}

				idx := j + i
				a := buf[idx]
				b := buf[idx+stride]

				t := b.Mul(w)
				v1 := a.Add(t)
				v2 := a.Sub(t)

				if inverse {
					v1 = v1.Half()
					v2 = v2.Half()
				}

				buf[idx] = v1
				buf[idx+stride] = v2
			}
		}

		twStep >>= 1
	}
}

// conj returns the complex conjugate of val.
func conj[T fftypes.Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
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
