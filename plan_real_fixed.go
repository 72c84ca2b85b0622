package tinyfft

import (
	"unsafe"

	"github.com/cwbudde/tinyfft/fxp"
	"github.com/cwbudde/tinyfft/internal/dit"
	"github.com/cwbudde/tinyfft/internal/dsputil"
)

// FixedRealPlan is a real-input FFT plan for fixed-point samples. Like
// FixedPlan, its twiddle table is generated at fxp.TwiddleFrac, so one plan
// serves sample buffers of any fractional width; like the float real plans,
// the table holds n/2 factors at full n-point angular resolution and the
// inner n/2-point transform reads every second entry.
type FixedRealPlan struct {
	twiddles []fxp.Complex
	bitrev   []int
	n        int
}

// NewFixedRealPlan creates a real FFT plan for n fixed-point samples over
// the caller-owned tables. It requires n to be a power of two and at least
// 4, len(twiddles) >= n/2 and len(bitrev) >= n/2; on success both tables
// are filled and the plan keeps a reference to them for its lifetime.
func NewFixedRealPlan(twiddles []fxp.Complex, bitrev []int, n int) (*FixedRealPlan, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	if len(twiddles) < n/2 || len(bitrev) < n/2 {
		return nil, ErrBufferTooSmall
	}

	p := &FixedRealPlan{twiddles: twiddles[:n/2], bitrev: bitrev[:n/2], n: n}
	dsputil.FillBitReversalIndices(p.bitrev, n/2)
	dsputil.FillFixedTwiddleFactors(p.twiddles, n)

	return p, nil
}

// Len returns the number of real samples.
func (p *FixedRealPlan) Len() int {
	return p.n
}

// Process transforms buf in place: forward produces the packed spectrum of
// the n real samples, inverse consumes a packed spectrum and reconstructs
// the samples. All values in buf should share one fractional width; the
// result keeps that width. Bin 0 of the forward output adds DC and Nyquist
// without halving, so the caller leaves one bit of headroom.
func (p *FixedRealPlan) Process(buf []fxp.Fixed, inverse bool) error {
	if len(buf) != p.n {
		return ErrSizeMismatch
	}

	// fxp.Complex is exactly two fxp.Fixed values, so the real buffer
	// aliases directly as n/2 complex samples with no copy.
	cbuf := unsafe.Slice((*fxp.Complex)(unsafe.Pointer(&buf[0])), p.n/2)

	if inverse {
		p.reweave(cbuf)
		dit.TransformFixed(cbuf, p.twiddles, p.bitrev, 2, true)

		return nil
	}

	dit.TransformFixed(cbuf, p.twiddles, p.bitrev, 2, false)
	p.unweave(cbuf)

	return nil
}

func (p *FixedRealPlan) unweave(cbuf []fxp.Complex) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = fxp.NewComplex(v.Re.Add(v.Im), v.Re.Sub(v.Im))
	cbuf[quarter] = cbuf[quarter].Conj()

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := cbuf[j].Conj()
		even := a.Add(b).Half()
		odd := a.Sub(b).Half()

		t := rotate90Fixed(odd.Mul(p.twiddles[i]))
		cbuf[i] = even.Sub(t)
		cbuf[j] = even.Add(t).Conj()
	}
}

func (p *FixedRealPlan) reweave(cbuf []fxp.Complex) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = fxp.NewComplex(v.Re.Add(v.Im).Half(), v.Re.Sub(v.Im).Half())
	cbuf[quarter] = cbuf[quarter].Conj()

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := cbuf[j].Conj()
		even := a.Add(b).Half()
		odd := a.Sub(b).Half()

		t := rotate90Fixed(odd.Mul(p.twiddles[i].Conj()))
		cbuf[i] = even.Add(t)
		cbuf[j] = even.Sub(t).Conj()
	}
}

// rotate90Fixed multiplies by the imaginary unit: (re, im) -> (-im, re).
// Unlike Conj, the negation here wraps at the representable minimum.
func rotate90Fixed(c fxp.Complex) fxp.Complex {
	return fxp.NewComplex(fxp.FromBits(-c.Im.Bits(), c.Im.Frac()), c.Re)
}
