package fftypes

// Complex is the type constraint for complex sample types supported by the
// floating-point FFT kernels.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for real sample types used by the real FFT
// plans.
type Float interface {
	float32 | float64
}
