package tinyfft

import (
	"unsafe"

	"github.com/cwbudde/tinyfft/internal/dit"
	"github.com/cwbudde/tinyfft/internal/dsputil"
)

// RealPlan32 is a real-input FFT plan for float32 samples. It transforms n
// real samples through an n/2-point complex FFT by viewing adjacent sample
// pairs as complex values, then resolves the spectrum with conjugate
// symmetry. The twiddle table holds n/2 factors generated at full n-point
// angular resolution: the inner transform reads every second entry, the
// pre/post-processing reads them all.
//
// Forward output and inverse input use the packed layout described in the
// package documentation.
type RealPlan32 struct {
	twiddles []complex64
	bitrev   []int
	n        int
}

// NewRealPlan32 creates a real FFT plan for n float32 samples over the
// caller-owned tables. It requires n to be a power of two and at least 4,
// len(twiddles) >= n/2 and len(bitrev) >= n/2; on success both tables are
// filled and the plan keeps a reference to them for its lifetime.
func NewRealPlan32(twiddles []complex64, bitrev []int, n int) (*RealPlan32, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	if len(twiddles) < n/2 || len(bitrev) < n/2 {
		return nil, ErrBufferTooSmall
	}

	p := &RealPlan32{twiddles: twiddles[:n/2], bitrev: bitrev[:n/2], n: n}
	dsputil.FillBitReversalIndices(p.bitrev, n/2)
	dsputil.FillTwiddleFactors(p.twiddles, n)

	return p, nil
}

// Len returns the number of real samples.
func (p *RealPlan32) Len() int {
	return p.n
}

// Process transforms buf in place: forward produces the packed spectrum of
// the n real samples, inverse consumes a packed spectrum and reconstructs
// the samples.
func (p *RealPlan32) Process(buf []float32, inverse bool) error {
	if len(buf) != p.n {
		return ErrSizeMismatch
	}

	// complex64 is two float32s by language guarantee, so the real buffer
	// aliases directly as n/2 complex samples with no copy.
	cbuf := unsafe.Slice((*complex64)(unsafe.Pointer(&buf[0])), p.n/2)

	if inverse {
		p.reweave(cbuf)
		dit.Transform(cbuf, p.twiddles, p.bitrev, 2, true)

		return nil
	}

	dit.Transform(cbuf, p.twiddles, p.bitrev, 2, false)
	p.unweave(cbuf)

	return nil
}

// unweave separates the spectra of the even- and odd-indexed sample
// sequences out of the n/2-point transform and recombines them into the
// packed real spectrum. Bin 0 superimposes DC and Nyquist; bin n/4 is its
// own symmetry partner and only needs conjugation.
func (p *RealPlan32) unweave(cbuf []complex64) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = complex(real(v)+imag(v), real(v)-imag(v))
	cbuf[quarter] = conj64(cbuf[quarter])

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := conj64(cbuf[j])
		even := (a + b) * 0.5
		odd := (a - b) * 0.5

		t := rotate90c64(odd * p.twiddles[i])
		cbuf[i] = even - t
		cbuf[j] = conj64(even + t)
	}
}

// reweave is the algebraic inverse of unweave, run before the inverse
// transform: the same recombination with conjugated twiddles and the
// rotated term added instead of subtracted.
func (p *RealPlan32) reweave(cbuf []complex64) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = complex((real(v)+imag(v))*0.5, (real(v)-imag(v))*0.5)
	cbuf[quarter] = conj64(cbuf[quarter])

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := conj64(cbuf[j])
		even := (a + b) * 0.5
		odd := (a - b) * 0.5

		t := rotate90c64(odd * conj64(p.twiddles[i]))
		cbuf[i] = even + t
		cbuf[j] = conj64(even - t)
	}
}

// RealPlan64 is the float64 counterpart of RealPlan32.
type RealPlan64 struct {
	twiddles []complex128
	bitrev   []int
	n        int
}

// NewRealPlan64 creates a real FFT plan for n float64 samples over the
// caller-owned tables. It requires n to be a power of two and at least 4,
// len(twiddles) >= n/2 and len(bitrev) >= n/2; on success both tables are
// filled and the plan keeps a reference to them for its lifetime.
func NewRealPlan64(twiddles []complex128, bitrev []int, n int) (*RealPlan64, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	if len(twiddles) < n/2 || len(bitrev) < n/2 {
		return nil, ErrBufferTooSmall
	}

	p := &RealPlan64{twiddles: twiddles[:n/2], bitrev: bitrev[:n/2], n: n}
	dsputil.FillBitReversalIndices(p.bitrev, n/2)
	dsputil.FillTwiddleFactors(p.twiddles, n)

	return p, nil
}

// Len returns the number of real samples.
func (p *RealPlan64) Len() int {
	return p.n
}

// Process transforms buf in place: forward produces the packed spectrum of
// the n real samples, inverse consumes a packed spectrum and reconstructs
// the samples.
func (p *RealPlan64) Process(buf []float64, inverse bool) error {
	if len(buf) != p.n {
		return ErrSizeMismatch
	}

	cbuf := unsafe.Slice((*complex128)(unsafe.Pointer(&buf[0])), p.n/2)

	if inverse {
		p.reweave(cbuf)
		dit.Transform(cbuf, p.twiddles, p.bitrev, 2, true)

		return nil
	}

	dit.Transform(cbuf, p.twiddles, p.bitrev, 2, false)
	p.unweave(cbuf)

	return nil
}

func (p *RealPlan64) unweave(cbuf []complex128) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = complex(real(v)+imag(v), real(v)-imag(v))
	cbuf[quarter] = conj128(cbuf[quarter])

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := conj128(cbuf[j])
		even := (a + b) * 0.5
		odd := (a - b) * 0.5

		t := rotate90c128(odd * p.twiddles[i])
		cbuf[i] = even - t
		cbuf[j] = conj128(even + t)
	}
}

func (p *RealPlan64) reweave(cbuf []complex128) {
	half := p.n / 2
	quarter := half / 2

	v := cbuf[0]
	cbuf[0] = complex((real(v)+imag(v))*0.5, (real(v)-imag(v))*0.5)
	cbuf[quarter] = conj128(cbuf[quarter])

	for i := 1; i < quarter; i++ {
		j := half - i

		a := cbuf[i]
		b := conj128(cbuf[j])
		even := (a + b) * 0.5
		odd := (a - b) * 0.5

		t := rotate90c128(odd * conj128(p.twiddles[i]))
		cbuf[i] = even + t
		cbuf[j] = conj128(even - t)
	}
}

func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

func conj128(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// rotate90c64 multiplies by the imaginary unit: (re, im) -> (-im, re).
func rotate90c64(z complex64) complex64 {
	return complex(-imag(z), real(z))
}

// rotate90c128 multiplies by the imaginary unit: (re, im) -> (-im, re).
func rotate90c128(z complex128) complex128 {
	return complex(-imag(z), real(z))
}
