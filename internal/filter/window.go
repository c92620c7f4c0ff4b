// Package filter provides window functions for kernel tapering.
package filter

import (
	"math"

	"github.com/tphakala/go-rational-resampler/internal/mathutil"
)

// Generalized cosine window coefficients.
const (
	// Hann: 0.5 - 0.5*cos
	hannA0 = 0.5
	hannA1 = 0.5

	// Hamming: 0.54 - 0.46*cos
	hammingA0 = 0.54
	hammingA1 = 0.46

	// Blackman: 0.42 - 0.5*cos + 0.08*cos2
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08
)

// HannInto fills dst with a symmetric Hann window over [0, len(dst)-1]:
//
//	w[m] = 0.5 - 0.5*cos(2π*m/(N-1))
//
// A window of length <= 1 degenerates to all ones (no taper is possible).
func HannInto(dst []float64) {
	n := len(dst)
	if n <= 1 {
		for i := range dst {
			dst[i] = 1
		}
		return
	}
	for m := range dst {
		dst[m] = hannA0 - hannA1*math.Cos(mathutil.TwoPi*float64(m)/float64(n-1))
	}
}

// Hann returns a freshly allocated symmetric Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)
	HannInto(w)
	return w
}

// Hamming returns a symmetric Hamming window of length n.
func Hamming(n int) []float64 {
	w := make([]float64, n)
	if n <= 1 {
		for i := range w {
			w[i] = 1
		}
		return w
	}
	for m := range w {
		w[m] = hammingA0 - hammingA1*math.Cos(mathutil.TwoPi*float64(m)/float64(n-1))
	}
	return w
}

// Blackman returns a symmetric Blackman window of length n.
func Blackman(n int) []float64 {
	w := make([]float64, n)
	if n <= 1 {
		for i := range w {
			w[i] = 1
		}
		return w
	}
	for m := range w {
		phase := mathutil.TwoPi * float64(m) / float64(n-1)
		w[m] = blackmanA0 - blackmanA1*math.Cos(phase) + blackmanA2*math.Cos(2*phase)
	}
	return w
}
