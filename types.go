package tinyfft

import "github.com/cwbudde/tinyfft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the
// floating-point plans. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point sample types used by the
// real FFT plans. The canonical definition is in internal/fftypes.
type Float = fftypes.Float
