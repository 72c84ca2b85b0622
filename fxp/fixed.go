// Package fxp implements signed Q-format fixed-point scalars and complex
// pairs for the fixed-point FFT engines.
//
// A Fixed value stores a signed 32-bit integer together with its fractional
// width F; the represented value is bits / 2^F. Binary operations may mix
// widths freely: the right operand is rescaled to the left operand's width
// before combining, and the result keeps the left operand's width.
//
// Arithmetic never reports overflow. Add and Sub wrap, Mul truncates to 32
// bits after rounding, and construction from float64 saturates at the
// representable extremes. Callers maintain headroom; the FFT engines bound
// intermediate growth with per-stage halving instead of runtime checks.
package fxp

import (
	"fmt"
	"math"
)

// MaxFrac is the widest supported fractional width.
const MaxFrac = 31

// TwiddleFrac is the fractional width of every fixed-point twiddle table.
// Twiddle factors are always generated at the widest supported precision,
// independent of the data buffer's width, so a single table serves buffers
// of any Q-format.
const TwiddleFrac = MaxFrac

// Fixed is a signed fixed-point scalar: the represented value is
// bits / 2^frac, with frac in [0, MaxFrac].
type Fixed struct {
	bits int32
	frac uint32
}

// FromBits reinterprets raw bits at the given fractional width, without
// scaling.
func FromBits(bits int32, frac uint32) Fixed {
	return Fixed{bits: bits, frac: frac}
}

// FromInt converts an integer, shifting it up by the fractional width.
// For example FromInt(1, 8) stores 256.
func FromInt(v int32, frac uint32) Fixed {
	return Fixed{bits: v << frac, frac: frac}
}

// FromFloat converts a float64 with round-to-nearest, saturating at the
// representable extremes. Note the asymmetry with Convert, which truncates:
// construction rounds, rescaling does not.
func FromFloat(x float64, frac uint32) Fixed {
	scaled := math.Round(x * float64(int64(1)<<frac))

	var bits int32
	switch {
	case scaled > float64(math.MaxInt32):
		bits = math.MaxInt32
	case scaled < float64(math.MinInt32):
		bits = math.MinInt32
	default:
		bits = int32(scaled)
	}

	return Fixed{bits: bits, frac: frac}
}

// Bits returns the raw stored value.
func (f Fixed) Bits() int32 {
	return f.bits
}

// Frac returns the fractional width.
func (f Fixed) Frac() uint32 {
	return f.frac
}

// Float returns the represented value as a float64.
func (f Fixed) Float() float64 {
	return float64(f.bits) / float64(int64(1)<<f.frac)
}

// Convert rescales to another fractional width. Widening left-shifts and is
// exact; narrowing uses an arithmetic right shift and truncates toward
// negative infinity (no rounding).
func (f Fixed) Convert(frac uint32) Fixed {
	if frac > f.frac {
		return Fixed{bits: f.bits << (frac - f.frac), frac: frac}
	}

	return Fixed{bits: f.bits >> (f.frac - frac), frac: frac}
}

// Add returns f+o at f's width. The right operand is rescaled first; the
// addition wraps on overflow.
func (f Fixed) Add(o Fixed) Fixed {
	return Fixed{bits: f.bits + o.Convert(f.frac).bits, frac: f.frac}
}

// Sub returns f-o at f's width. The right operand is rescaled first; the
// subtraction wraps on overflow.
func (f Fixed) Sub(o Fixed) Fixed {
	return Fixed{bits: f.bits - o.Convert(f.frac).bits, frac: f.frac}
}

// Mul returns f*o at f's width. Both stores are widened to 64 bits, the
// product is rounded to nearest by adding 2^(F2-1) before shifting down by
// the right operand's width F2, then narrowed back to 32 bits.
func (f Fixed) Mul(o Fixed) Fixed {
	product := int64(f.bits) * int64(o.bits)
	if o.frac > 0 {
		product = (product + int64(1)<<(o.frac-1)) >> o.frac
	}

	return Fixed{bits: int32(product), frac: f.frac}
}

// Half scales by 0.5 with an arithmetic right shift. Used for per-stage
// normalization in the inverse FFT.
func (f Fixed) Half() Fixed {
	return Fixed{bits: f.bits >> 1, frac: f.frac}
}

// String renders the represented value with six decimal places.
func (f Fixed) String() string {
	return fmt.Sprintf("%.6f", f.Float())
}
