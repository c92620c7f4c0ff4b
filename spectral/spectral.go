// Package spectral provides FFT transforms for real and complex signals.
//
// It is an independent sibling of the resampling engine: the two share only
// the scalar conventions of the module. Real transforms use Hermitian
// packing, storing bins 0..n/2 of a length-n transform since the remainder
// is the conjugate reflection.
//
// Transforms are executed through plans. Plans are cached process-wide in a
// small LRU table keyed on (length, transform kind, direction, planning
// preference), so repeated transforms of the same shape reuse the twiddle
// tables instead of rebuilding them.
package spectral

import (
	"errors"

	"github.com/tphakala/simd/f64"
)

// Errors returned by the package.
var (
	// ErrEmptySignal indicates a transform over zero samples.
	ErrEmptySignal = errors.New("spectral: empty signal")

	// ErrSpectrumLength indicates a packed spectrum whose length does not
	// match the requested transform size.
	ErrSpectrumLength = errors.New("spectral: spectrum length mismatch")

	// ErrUnknownBackend indicates a backend value this build does not know.
	ErrUnknownBackend = errors.New("spectral: unknown backend")
)

// HermitianBins returns the number of unique bins of a length-n real
// transform: n/2 + 1.
func HermitianBins(n int) int {
	return n/2 + 1
}

// RFFT computes the forward transform of a real signal and returns its
// Hermitian-packed spectrum (len(src)/2 + 1 bins). dst is reused when it has
// sufficient capacity, matching the gonum convention.
func RFFT(dst []complex128, src []float64) ([]complex128, error) {
	if len(src) == 0 {
		return nil, ErrEmptySignal
	}
	p, err := acquirePlan(len(src), kindReal, directionForward)
	if err != nil {
		return nil, err
	}
	return p.real.Coefficients(dst, src), nil
}

// IRFFT computes the inverse transform of a Hermitian-packed spectrum back
// to n real samples, normalized by 1/n (gonum's inverse does not normalize).
func IRFFT(dst []float64, spectrum []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptySignal
	}
	if len(spectrum) != HermitianBins(n) {
		return nil, ErrSpectrumLength
	}
	p, err := acquirePlan(n, kindReal, directionInverse)
	if err != nil {
		return nil, err
	}
	dst = p.real.Sequence(dst, spectrum)
	f64.Scale(dst, dst, 1/float64(n))
	return dst, nil
}

// FFT computes the forward transform of a complex signal.
func FFT(dst, src []complex128) ([]complex128, error) {
	if len(src) == 0 {
		return nil, ErrEmptySignal
	}
	p, err := acquirePlan(len(src), kindComplex, directionForward)
	if err != nil {
		return nil, err
	}
	return p.cmplx.Coefficients(dst, src), nil
}

// IFFT computes the inverse transform of a complex spectrum, normalized
// by 1/n.
func IFFT(dst, spectrum []complex128) ([]complex128, error) {
	n := len(spectrum)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	p, err := acquirePlan(n, kindComplex, directionInverse)
	if err != nil {
		return nil, err
	}
	dst = p.cmplx.Sequence(dst, spectrum)
	scale := complex(1/float64(n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return dst, nil
}
