package resampler

import (
	"github.com/tphakala/go-rational-resampler/internal/interp"
)

// InterpolateLinear evaluates clamped linear interpolation of x at the
// fractional position pos: positions at or below 0 return x[0], positions at
// or beyond len(x)-1 return the last sample, and integer positions return
// the corresponding sample exactly. Returns ErrEmptyInput for an empty x.
//
// The function is pure: no allocation, no state.
func InterpolateLinear[F Float](x []F, pos F) (F, error) {
	return interp.Linear(x, pos)
}

// InterpolateCubic evaluates clamped Catmull–Rom cubic interpolation of x at
// the fractional position pos. The four neighbors are gathered with index
// clamping to [0, len(x)-1] and blended with the Hermite basis; the spline
// passes through every data point. Boundary and error policy match
// InterpolateLinear.
//
// The function is pure: no allocation, no state.
func InterpolateCubic[F Float](x []F, pos F) (F, error) {
	return interp.Cubic(x, pos)
}
