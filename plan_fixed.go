package tinyfft

import (
	"github.com/cwbudde/tinyfft/fxp"
	"github.com/cwbudde/tinyfft/internal/dit"
	"github.com/cwbudde/tinyfft/internal/dsputil"
)

// FixedPlan is a complex FFT plan for fixed-point samples. Its twiddle
// table is generated at fxp.TwiddleFrac (Q31) independent of any data
// buffer's width, so the same plan processes Q15, Q31 or any other
// fractional width without reinitialization.
type FixedPlan struct {
	twiddles []fxp.Complex
	bitrev   []int
	n        int
}

// NewFixedPlan creates a size-n fixed-point complex FFT plan over the
// caller-owned tables. It requires n to be a power of two,
// len(twiddles) >= n/2 and len(bitrev) >= n; on success both tables are
// filled and the plan keeps a reference to them for its lifetime.
func NewFixedPlan(twiddles []fxp.Complex, bitrev []int, n int) (*FixedPlan, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	if len(twiddles) < n/2 || len(bitrev) < n {
		return nil, ErrBufferTooSmall
	}

	p := &FixedPlan{twiddles: twiddles[:n/2], bitrev: bitrev[:n], n: n}
	dsputil.FillBitReversalIndices(p.bitrev, n)
	dsputil.FillFixedTwiddleFactors(p.twiddles, n)

	return p, nil
}

// Len returns the transform size.
func (p *FixedPlan) Len() int {
	return p.n
}

// Process transforms buf in place. All values in buf should share one
// fractional width; the result keeps that width. The inverse transform
// halves both butterfly outputs at every stage, which applies the full 1/n
// normalization while bounding intermediate growth. Fixed-point overflow is
// not detected: additions wrap, and the caller provides headroom.
func (p *FixedPlan) Process(buf []fxp.Complex, inverse bool) error {
	if len(buf) != p.n {
		return ErrSizeMismatch
	}

	dit.TransformFixed(buf, p.twiddles, p.bitrev, 1, inverse)

	return nil
}
