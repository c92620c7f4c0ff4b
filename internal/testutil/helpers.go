// Package testutil provides shared test helpers for the resampler test suites.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-rational-resampler/internal/mathutil"
)

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"not symmetric: s[%d]=%g vs s[%d]=%g", i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%g outside [%g, %g]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	center := s[len(s)/2]
	for i, v := range s {
		if v > center {
			return assert.Fail(t, "center is not max",
				"s[%d]=%g > center %g", i, v, center)
		}
	}
	return true
}

// Sine generates n samples of a unit-amplitude sine at the given normalized
// frequency (cycles per sample, Nyquist = 0.5).
func Sine(n int, normFreq float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(mathutil.TwoPi * normFreq * float64(i))
	}
	return s
}

// ToneAmplitude estimates the amplitude of the component at the given
// normalized frequency by correlating against quadrature references.
// The edges are skipped so filter transients do not bias the estimate.
func ToneAmplitude(s []float64, normFreq float64, skip int) float64 {
	if 2*skip >= len(s) {
		skip = 0
	}
	var re, im float64
	count := 0
	for i := skip; i < len(s)-skip; i++ {
		phase := mathutil.TwoPi * normFreq * float64(i)
		re += s[i] * math.Cos(phase)
		im += s[i] * math.Sin(phase)
		count++
	}
	if count == 0 {
		return 0
	}
	return 2 * math.Hypot(re, im) / float64(count)
}

// AttenuationDB returns the attenuation of out relative to in, in decibels.
// Positive values mean the output is quieter than the input.
func AttenuationDB(inAmp, outAmp float64) float64 {
	if outAmp == 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(inAmp/outAmp)
}
