// Package interp implements the pure interpolation kernels used by the
// resampling engine: clamped linear and clamped Catmull–Rom cubic.
//
// Both kernels read a uniformly-sampled sequence at a fractional position and
// return a single sample. They allocate nothing and keep no state.
package interp

import (
	"errors"
	"math"
)

// Float is the scalar constraint shared across the library.
type Float interface {
	float32 | float64
}

// ErrEmptyInput is returned when a kernel is asked to read from an empty
// (or nil) input sequence.
var ErrEmptyInput = errors.New("interp: empty input")

// Linear evaluates clamped linear interpolation of x at the fractional
// position pos.
//
// Boundary policy: pos <= 0 returns x[0], pos >= len(x)-1 returns the last
// sample. At integer positions the corresponding sample is returned exactly.
func Linear[F Float](x []F, pos F) (F, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	p := float64(pos)
	if p <= 0 || n == 1 {
		return x[0], nil
	}
	maxIndex := float64(n - 1)
	if p >= maxIndex {
		return x[n-1], nil
	}

	i := int(math.Floor(p))
	t := p - float64(i)
	a := float64(x[i])
	b := float64(x[i+1])
	return F((1-t)*a + t*b), nil
}

// Cubic evaluates clamped Catmull–Rom cubic interpolation of x at the
// fractional position pos.
//
// The four neighbors around pos are gathered with index clamping to
// [0, len(x)-1], tangents are half the centered differences, and the Hermite
// basis is evaluated at the fractional part. The spline passes through every
// data point, so integer positions return the corresponding sample.
// Boundary policy matches Linear.
func Cubic[F Float](x []F, pos F) (F, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n == 1 {
		return x[0], nil
	}

	p := float64(pos)
	if p <= 0 {
		return x[0], nil
	}
	maxIndex := float64(n - 1)
	if p >= maxIndex {
		return x[n-1], nil
	}

	i := int(math.Floor(p))
	t := p - float64(i)

	// Neighbor indices with edge clamping.
	i0 := i - 1
	if i0 < 0 {
		i0 = 0
	}
	i2 := i + 1
	if i2 > n-1 {
		i2 = n - 1
	}
	i3 := i + 2
	if i3 > n-1 {
		i3 = n - 1
	}

	p0 := float64(x[i0])
	p1 := float64(x[i])
	p2 := float64(x[i2])
	p3 := float64(x[i3])

	// Catmull–Rom tangents: half the centered differences.
	m1 := 0.5 * (p2 - p0)
	m2 := 0.5 * (p3 - p1)

	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return F(h00*p1 + h10*m1 + h01*p2 + h11*m2), nil
}
