// Package tinyfft computes power-of-two fast Fourier transforms for
// floating-point and Q-format fixed-point samples, aimed at
// memory-constrained targets: tables and sample buffers are caller-owned,
// every transform runs in place, and nothing on the transform path
// allocates.
//
// A plan is constructed once per transform size over borrowed twiddle and
// bit-reversal tables, then reused for any number of Process calls. Plans
// hold no mutable state after construction, so a single plan may serve
// independent goroutines as long as each call mutates its own buffer. The
// fixed-point plans generate their twiddle table at the widest supported
// precision (Q31) and therefore serve buffers of any fractional width.
//
// The real-FFT plans transform n real samples through an n/2-point complex
// transform by viewing adjacent sample pairs as complex values, then
// resolve the spectrum with the conjugate symmetry of a real signal. Their
// output uses a packed layout: index 0 holds the DC bin, index 1 the
// Nyquist bin (both purely real), and indices 2k, 2k+1 hold the real and
// imaginary parts of bin k for k = 1..n/2-1.
package tinyfft
