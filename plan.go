package tinyfft

import (
	"github.com/cwbudde/tinyfft/internal/dit"
	"github.com/cwbudde/tinyfft/internal/dsputil"
)

// Plan is a complex FFT plan for floating-point samples. It is bound to the
// twiddle and bit-reversal tables passed at construction; the tables are
// borrowed, filled once, and read-only afterwards, so one plan may be used
// from multiple goroutines on independent buffers.
type Plan[T Complex] struct {
	twiddles []T
	bitrev   []int
	n        int
}

// NewPlan creates a size-n complex FFT plan over the caller-owned tables.
// It requires n to be a power of two, len(twiddles) >= n/2 and
// len(bitrev) >= n; on success both tables are filled and the plan keeps a
// reference to them for its lifetime.
func NewPlan[T Complex](twiddles []T, bitrev []int, n int) (*Plan[T], error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	if len(twiddles) < n/2 || len(bitrev) < n {
		return nil, ErrBufferTooSmall
	}

	p := &Plan[T]{twiddles: twiddles[:n/2], bitrev: bitrev[:n], n: n}
	dsputil.FillBitReversalIndices(p.bitrev, n)
	dsputil.FillTwiddleFactors(p.twiddles, n)

	return p, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Process transforms buf in place. The inverse transform conjugates the
// twiddle factors and halves both butterfly outputs at every stage, so the
// full 1/n normalization is already applied when it returns.
func (p *Plan[T]) Process(buf []T, inverse bool) error {
	if len(buf) != p.n {
		return ErrSizeMismatch
	}

	dit.Transform(buf, p.twiddles, p.bitrev, 1, inverse)

	return nil
}
