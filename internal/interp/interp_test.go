package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultTolerance = 1e-12
	cubicTolerance   = 1e-6
)

// TestLinear_Midpoints verifies straight-line blending between neighbors.
func TestLinear_Midpoints(t *testing.T) {
	x := []float64{0, 1, 3, 6}

	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"between_1_and_3", 1.5, 2.0},
		{"between_0_and_1", 0.25, 0.25},
		{"between_3_and_6", 2.75, 5.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Linear(x, tt.pos)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, defaultTolerance)
		})
	}
}

// TestLinear_BoundaryClamp verifies pos <= 0 and pos >= n-1 clamp to the
// endpoints.
func TestLinear_BoundaryClamp(t *testing.T) {
	x := []float64{0, 1, 3, 6}

	got, err := Linear(x, -10.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = Linear(x, 100.0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	// Exactly n-1 is also the last sample.
	got, err = Linear(x, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

// TestLinear_IntegerPositionsExact verifies bit-exact passthrough at
// integer positions.
func TestLinear_IntegerPositionsExact(t *testing.T) {
	x := []float64{0.125, -3.5, 7.0625, 2.25, -0.875}
	for i, want := range x {
		got, err := Linear(x, float64(i))
		require.NoError(t, err)
		assert.Equal(t, want, got, "pos=%d", i)
	}
}

// TestLinear_SingleSample verifies n == 1 returns x[0] for any position.
func TestLinear_SingleSample(t *testing.T) {
	x := []float64{42}
	for _, pos := range []float64{-1, 0, 0.5, 1, 99} {
		got, err := Linear(x, pos)
		require.NoError(t, err)
		assert.Equal(t, 42.0, got, "pos=%v", pos)
	}
}

// TestLinear_EmptyInput verifies the error path.
func TestLinear_EmptyInput(t *testing.T) {
	_, err := Linear([]float64{}, 0.5)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Linear[float64](nil, 0.5)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestLinear_Float32 verifies the float32 instantiation behaves identically.
func TestLinear_Float32(t *testing.T) {
	x := []float32{0, 2, 4}

	got, err := Linear(x, float32(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(got), defaultTolerance)

	got, err = Linear(x, float32(1))
	require.NoError(t, err)
	assert.Equal(t, float32(2), got)
}

// TestCubic_IntegerPositionsExact verifies Catmull–Rom passes through every
// data point.
func TestCubic_IntegerPositionsExact(t *testing.T) {
	x := []float64{0, 1, 4, 9, 16}
	for i, want := range x {
		got, err := Cubic(x, float64(i))
		require.NoError(t, err)
		assert.Equal(t, want, got, "pos=%d", i)
	}
}

// TestCubic_KnownValue pins the interior evaluation against a hand-computed
// Hermite expansion at pos=2.5 with neighbors (1,4,9,16).
func TestCubic_KnownValue(t *testing.T) {
	x := []float64{0, 1, 4, 9, 16}

	// Neighbors p0..p3 = 1,4,9,16; tangents (9-1)/2 = 4, (16-4)/2 = 6.
	// At t=0.5: h00=0.5, h10=0.125, h01=0.5, h11=-0.125.
	want := 0.5*4 + 0.125*4 + 0.5*9 - 0.125*6

	got, err := Cubic(x, 2.5)
	require.NoError(t, err)
	assert.InDelta(t, want, got, cubicTolerance)
}

// TestCubic_BoundaryClamp verifies endpoint clamping and the clamped
// neighbor gather near the edges.
func TestCubic_BoundaryClamp(t *testing.T) {
	x := []float64{1, 2, 4, 8}

	got, err := Cubic(x, -0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = Cubic(x, 7.0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	// First segment: i=0 clamps i0 to 0, so the left tangent is (x[1]-x[0])/2.
	got, err = Cubic(x, 0.5)
	require.NoError(t, err)
	m1 := 0.5 * (2.0 - 1.0)
	m2 := 0.5 * (4.0 - 1.0)
	want := 0.5*1 + 0.125*m1 + 0.5*2 - 0.125*m2
	assert.InDelta(t, want, got, cubicTolerance)
}

// TestCubic_LinearDataStaysLinear verifies the spline reproduces affine
// input in the interior (tangents equal the true slope there).
func TestCubic_LinearDataStaysLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	for _, pos := range []float64{1.25, 2.5, 3.75} {
		got, err := Cubic(x, pos)
		require.NoError(t, err)
		assert.InDelta(t, pos, got, cubicTolerance, "pos=%v", pos)
	}
}

// TestCubic_SmallInputs verifies the degenerate sizes.
func TestCubic_SmallInputs(t *testing.T) {
	got, err := Cubic([]float64{7}, 12.0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	_, err = Cubic([]float64{}, 0.0)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestCubic_Float32 verifies the float32 instantiation.
func TestCubic_Float32(t *testing.T) {
	x := []float32{0, 1, 4, 9, 16}
	got, err := Cubic(x, float32(2))
	require.NoError(t, err)
	assert.Equal(t, float32(4), got)
}
