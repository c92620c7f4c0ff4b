// Package mathutil provides small math primitives shared by the
// resampling engine and the spectral subsystem.
package mathutil

import (
	"math"
)

// TwoPi is 2π, the full-circle angular constant used by window and
// oscillator formulas.
const TwoPi = 2 * math.Pi

// Sinc computes the normalized sinc function sin(πx)/(πx) with Sinc(0) = 1.
//
// The normalized form places zeros at every non-zero integer, which is what
// makes a sinc kernel interpolating: evaluated at integer offsets it touches
// exactly one input sample.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
