package spectral

import (
	"github.com/tphakala/simd/c128"
)

// FFTConvolve returns the full linear convolution of signal and kernel,
// length len(signal)+len(kernel)-1, computed in the frequency domain.
//
// Both operands are zero-padded to the next power of two at or above the
// output length, so the circular convolution of the padded transforms equals
// the linear convolution. The plans come from the shared cache, making
// repeated convolutions of the same shape cheap.
func FFTConvolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 || len(kernel) == 0 {
		return nil, ErrEmptySignal
	}

	outLen := len(signal) + len(kernel) - 1
	size := nextPow2(outLen)

	padded := make([]float64, 2*size)
	a := padded[:size]
	b := padded[size:]
	copy(a, signal)
	copy(b, kernel)

	specA, err := RFFT(nil, a)
	if err != nil {
		return nil, err
	}
	specB, err := RFFT(nil, b)
	if err != nil {
		return nil, err
	}

	product := make([]complex128, len(specA))
	c128.Mul(product, specA, specB)

	// IRFFT applies the 1/size normalization.
	out, err := IRFFT(nil, product, size)
	if err != nil {
		return nil, err
	}
	return out[:outLen], nil
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
