package tinyfft

import "errors"

// Sentinel errors returned by plan constructors and transforms. Every error
// is detected at call entry, before any mutation: a failed call leaves the
// buffer untouched.
var (
	// ErrSizeMismatch is returned when a buffer's length does not match the
	// transform size the plan was constructed for.
	ErrSizeMismatch = errors.New("tinyfft: buffer length does not match FFT size")

	// ErrNotPowerOfTwo is returned at construction when the requested
	// transform size is not a power of two.
	ErrNotPowerOfTwo = errors.New("tinyfft: FFT size must be a power of two")

	// ErrBufferTooSmall is returned at construction when a caller-supplied
	// table is shorter than the size requires.
	ErrBufferTooSmall = errors.New("tinyfft: table capacity too small for FFT size")

	// ErrInvalidStride is reserved for invalid twiddle stride configurations.
	// No current call path returns it.
	ErrInvalidStride = errors.New("tinyfft: invalid stride configuration")
)
