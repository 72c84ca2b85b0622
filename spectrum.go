package tinyfft

import "github.com/cwbudde/tinyfft/fxp"

// Spectrum layout conversions between the packed real spectrum produced by
// the real FFT plans and a full-length complex spectrum. These are exact
// layout transforms: the negative-frequency half of the full spectrum is
// the Hermitian mirror full[n-k] = conj(full[k]) and carries no extra
// information.

// ExpandSpectrum32 expands the packed spectrum of n real samples into the
// full n-point complex spectrum. It requires len(full) == len(packed), and
// len(packed) to be a power of two of at least 4.
func ExpandSpectrum32(full []complex64, packed []float32) error {
	n := len(packed)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(full) != n {
		return ErrSizeMismatch
	}

	full[0] = complex(packed[0], 0)
	full[n/2] = complex(packed[1], 0)

	for k := 1; k < n/2; k++ {
		bin := complex(packed[2*k], packed[2*k+1])
		full[k] = bin
		full[n-k] = conj64(bin)
	}

	return nil
}

// CompactSpectrum32 packs a full n-point complex spectrum of a real signal
// back into the packed layout, keeping DC, Nyquist and the
// positive-frequency bins. It requires len(packed) == len(full), and
// len(full) to be a power of two of at least 4.
func CompactSpectrum32(packed []float32, full []complex64) error {
	n := len(full)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(packed) != n {
		return ErrSizeMismatch
	}

	packed[0] = real(full[0])
	packed[1] = real(full[n/2])

	for k := 1; k < n/2; k++ {
		packed[2*k] = real(full[k])
		packed[2*k+1] = imag(full[k])
	}

	return nil
}

// ExpandSpectrum64 is the float64 counterpart of ExpandSpectrum32.
func ExpandSpectrum64(full []complex128, packed []float64) error {
	n := len(packed)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(full) != n {
		return ErrSizeMismatch
	}

	full[0] = complex(packed[0], 0)
	full[n/2] = complex(packed[1], 0)

	for k := 1; k < n/2; k++ {
		bin := complex(packed[2*k], packed[2*k+1])
		full[k] = bin
		full[n-k] = conj128(bin)
	}

	return nil
}

// CompactSpectrum64 is the float64 counterpart of CompactSpectrum32.
func CompactSpectrum64(packed []float64, full []complex128) error {
	n := len(full)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(packed) != n {
		return ErrSizeMismatch
	}

	packed[0] = real(full[0])
	packed[1] = real(full[n/2])

	for k := 1; k < n/2; k++ {
		packed[2*k] = real(full[k])
		packed[2*k+1] = imag(full[k])
	}

	return nil
}

// ExpandSpectrumFixed expands a packed fixed-point spectrum into the full
// complex spectrum. The mirrored bins use the saturating conjugate; apart
// from that edge the transform is exact.
func ExpandSpectrumFixed(full []fxp.Complex, packed []fxp.Fixed) error {
	n := len(packed)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(full) != n {
		return ErrSizeMismatch
	}

	zero := fxp.FromBits(0, packed[0].Frac())
	full[0] = fxp.NewComplex(packed[0], zero)
	full[n/2] = fxp.NewComplex(packed[1], fxp.FromBits(0, packed[1].Frac()))

	for k := 1; k < n/2; k++ {
		bin := fxp.NewComplex(packed[2*k], packed[2*k+1])
		full[k] = bin
		full[n-k] = bin.Conj()
	}

	return nil
}

// CompactSpectrumFixed packs a full fixed-point complex spectrum of a real
// signal back into the packed layout.
func CompactSpectrumFixed(packed []fxp.Fixed, full []fxp.Complex) error {
	n := len(full)
	if n < 4 || n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	if len(packed) != n {
		return ErrSizeMismatch
	}

	packed[0] = full[0].Re
	packed[1] = full[n/2].Re

	for k := 1; k < n/2; k++ {
		packed[2*k] = full[k].Re
		packed[2*k+1] = full[k].Im
	}

	return nil
}
