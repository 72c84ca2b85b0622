package tinyfft

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/tinyfft/fxp"
)

func newFixedPlan(t *testing.T, n int) *FixedPlan {
	t.Helper()

	plan, err := NewFixedPlan(make([]fxp.Complex, n/2), make([]int, n), n)
	if err != nil {
		t.Fatalf("NewFixedPlan(n=%d): %v", n, err)
	}

	return plan
}

func fixedComplexBuf(values []complex128, frac uint32) []fxp.Complex {
	buf := make([]fxp.Complex, len(values))
	for i, v := range values {
		buf[i] = fxp.NewComplex(fxp.FromFloat(real(v), frac), fxp.FromFloat(imag(v), frac))
	}

	return buf
}

func TestNewFixedPlanValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		twLen   int
		brLen   int
		n       int
		wantErr error
	}{
		{"not a power of two", 8, 16, 10, ErrNotPowerOfTwo},
		{"twiddle table too small", 3, 8, 8, ErrBufferTooSmall},
		{"bitrev table too small", 4, 7, 8, ErrBufferTooSmall},
		{"exact capacities", 4, 8, 8, nil},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFixedPlan(make([]fxp.Complex, tt.twLen), make([]int, tt.brLen), tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFixedPlan = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFixedProcessSizeMismatch(t *testing.T) {
	t.Parallel()

	plan := newFixedPlan(t, 8)

	buf := make([]fxp.Complex, 4)
	if err := plan.Process(buf, false); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Process = %v, want ErrSizeMismatch", err)
	}
}

// The forward transform of an impulse is exactly flat: every bin holds the
// impulse amplitude with zero error, at any width.
func TestFixedForwardImpulse(t *testing.T) {
	t.Parallel()

	const frac = 16

	for n := 2; n <= 64; n <<= 1 {
		plan := newFixedPlan(t, n)

		buf := fixedComplexBuf(make([]complex128, n), frac)
		buf[0] = fxp.NewComplex(fxp.FromInt(1, frac), fxp.FromInt(0, frac))

		if err := plan.Process(buf, false); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		one := fxp.FromInt(1, frac).Bits()

		for i, v := range buf {
			if v.Re.Bits() != one || v.Im.Bits() != 0 {
				t.Errorf("n=%d: buf[%d] = (%d, %d) bits, want (%d, 0)", n, i, v.Re.Bits(), v.Im.Bits(), one)
			}
		}
	}
}

func TestFixedInverseFlatIsImpulse(t *testing.T) {
	t.Parallel()

	const (
		n    = 8
		frac = 16
	)

	plan := newFixedPlan(t, n)

	buf := make([]fxp.Complex, n)
	for i := range buf {
		buf[i] = fxp.NewComplex(fxp.FromInt(1, frac), fxp.FromInt(0, frac))
	}

	if err := plan.Process(buf, true); err != nil {
		t.Fatal(err)
	}

	one := fxp.FromInt(1, frac).Bits()

	if buf[0].Re.Bits() != one || buf[0].Im.Bits() != 0 {
		t.Errorf("buf[0] = (%d, %d) bits, want (%d, 0)", buf[0].Re.Bits(), buf[0].Im.Bits(), one)
	}

	for i := 1; i < n; i++ {
		if buf[i].Re.Bits() != 0 || buf[i].Im.Bits() != 0 {
			t.Errorf("buf[%d] = (%d, %d) bits, want (0, 0)", i, buf[i].Re.Bits(), buf[i].Im.Bits())
		}
	}
}

func TestFixedRoundTripQ15(t *testing.T) {
	t.Parallel()

	const (
		n    = 32
		frac = 15
	)

	plan := newFixedPlan(t, n)

	want := make([]complex128, n)
	for i := range want {
		want[i] = complex(math.Sin(float64(i)*0.9), math.Cos(float64(i)*0.4))
	}

	buf := fixedComplexBuf(want, frac)

	if err := plan.Process(buf, false); err != nil {
		t.Fatal(err)
	}

	if err := plan.Process(buf, true); err != nil {
		t.Fatal(err)
	}

	for i, v := range buf {
		reDiff := math.Abs(v.Re.Float() - real(want[i]))
		imDiff := math.Abs(v.Im.Float() - imag(want[i]))

		if reDiff > 0.1 || imDiff > 0.1 {
			t.Errorf("buf[%d] off by (%g, %g)", i, reDiff, imDiff)
		}
	}
}

// One plan serves buffers of different fractional widths: the Q31 twiddle
// table never depends on the data's Q-format.
func TestFixedPlanSharedAcrossWidths(t *testing.T) {
	t.Parallel()

	const n = 8

	plan := newFixedPlan(t, n)

	for _, frac := range []uint32{7, 15, 24, 31} {
		want := make([]complex128, n)
		for i := range want {
			// Keep well inside one unit so even Q31 has headroom for the
			// unnormalized forward growth.
			want[i] = complex(0.02*float64(i%3), -0.015*float64(i%4))
		}

		buf := fixedComplexBuf(want, frac)

		if err := plan.Process(buf, false); err != nil {
			t.Fatalf("frac=%d forward: %v", frac, err)
		}

		if err := plan.Process(buf, true); err != nil {
			t.Fatalf("frac=%d inverse: %v", frac, err)
		}

		tol := 0.1
		if frac >= 15 {
			tol = 0.01
		}

		for i, v := range buf {
			if diff := math.Abs(v.Re.Float() - real(want[i])); diff > tol {
				t.Errorf("frac=%d: buf[%d].Re off by %g", frac, i, diff)
			}

			if diff := math.Abs(v.Im.Float() - imag(want[i])); diff > tol {
				t.Errorf("frac=%d: buf[%d].Im off by %g", frac, i, diff)
			}
		}
	}
}
