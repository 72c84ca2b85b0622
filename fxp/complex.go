package fxp

import "math"

// Complex is a pair of same-width fixed-point scalars. Its memory layout is
// exactly two Fixed values, which the real-FFT plans rely on when aliasing a
// real sample buffer as a half-length complex buffer.
type Complex struct {
	Re, Im Fixed
}

// NewComplex builds a complex value from its components.
func NewComplex(re, im Fixed) Complex {
	return Complex{Re: re, Im: im}
}

// Conj returns the complex conjugate. The imaginary negation saturates, so
// conjugating a value whose imaginary store is the representable minimum
// yields the maximum instead of wrapping back to itself.
func (c Complex) Conj() Complex {
	im := c.Im.bits
	if im == math.MinInt32 {
		im = math.MaxInt32
	} else {
		im = -im
	}

	return Complex{Re: c.Re, Im: Fixed{bits: im, frac: c.Im.frac}}
}

// Half scales both components by 0.5 independently.
func (c Complex) Half() Complex {
	return Complex{Re: c.Re.Half(), Im: c.Im.Half()}
}

// Add returns c+o componentwise, at c's widths.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re.Add(o.Re), Im: c.Im.Add(o.Im)}
}

// Sub returns c-o componentwise, at c's widths.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re.Sub(o.Re), Im: c.Im.Sub(o.Im)}
}

// Mul returns the 4-multiply complex product (ac-bd, ad+bc), inheriting the
// scalar multiply's rounding. The result keeps c's widths, so multiplying a
// data value by a Q31 twiddle stays in the data's Q-format.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im)),
		Im: c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re)),
	}
}
