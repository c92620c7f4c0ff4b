package resampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiTolerance = 1e-6

// TestNew_DefaultsAndInvariants verifies the public handle exposes the
// documented defaults.
func TestNew_DefaultsAndInvariants(t *testing.T) {
	r, err := New(3, 4)
	require.NoError(t, err)

	num, den := r.Ratio()
	assert.Equal(t, uint32(3), num)
	assert.Equal(t, uint32(4), den)
	assert.Equal(t, QualityLinear, r.Quality())
	assert.Equal(t, uint32(DefaultTaps), r.Taps())
	assert.InDelta(t, 0.75, r.Cutoff(), 1e-15)
}

// TestNew_ZeroComponent verifies creation errors.
func TestNew_ZeroComponent(t *testing.T) {
	_, err := New(0, 1)
	assert.ErrorIs(t, err, ErrInvalidRatio)

	_, err = New(1, 0)
	assert.ErrorIs(t, err, ErrInvalidRatio)
}

// TestSetRatio_UpdatesCutoff verifies the cutoff invariant through the
// public surface.
func TestSetRatio_UpdatesCutoff(t *testing.T) {
	r, err := New(1, 1)
	require.NoError(t, err)

	require.NoError(t, r.SetRatio(1, 2))
	assert.InDelta(t, 0.5, r.Cutoff(), 1e-15)

	require.NoError(t, r.SetRatio(5, 2))
	assert.Equal(t, 1.0, r.Cutoff())

	assert.ErrorIs(t, r.SetRatio(0, 2), ErrInvalidRatio)
	// Failed mutation leaves the previous ratio in place.
	num, den := r.Ratio()
	assert.Equal(t, uint32(5), num)
	assert.Equal(t, uint32(2), den)
}

// TestSetQuality_Surface verifies clamping and the unknown-value error at
// the API level.
func TestSetQuality_Surface(t *testing.T) {
	r, err := New(1, 1)
	require.NoError(t, err)

	require.NoError(t, r.SetQuality(QualitySinc, 7))
	assert.Equal(t, QualitySinc, r.Quality())
	assert.Equal(t, uint32(8), r.Taps())

	assert.ErrorIs(t, r.SetQuality(Quality(42), 16), ErrInvalidQuality)
	assert.Equal(t, QualitySinc, r.Quality())
}

// TestProcess_Scenarios runs the end-to-end linear scenarios through the
// public API.
func TestProcess_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		num, den uint32
		in       []float64
		want     []float64
	}{
		{"upsample_2x", 2, 1, []float64{0, 1, 2, 3},
			[]float64{0, 0.5, 1, 1.5, 2, 2.5, 3}},
		{"downsample_2x", 1, 2, []float64{0, 1, 2, 3, 4},
			[]float64{0, 2, 4}},
		{"ratio_3_2", 3, 2, []float64{0, 1, 2, 3, 4},
			[]float64{0, 2.0 / 3.0, 4.0 / 3.0, 2, 8.0 / 3.0, 10.0 / 3.0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.num, tt.den)
			require.NoError(t, err)

			out := make([]float64, OutputLen(len(tt.in), tt.num, tt.den))
			n, err := r.Process(tt.in, out)
			require.NoError(t, err)
			require.Equal(t, len(tt.want), n)
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], out[i], apiTolerance, "k=%d", i)
			}
		})
	}
}

// TestProcess_IdentityBitExact verifies the L==M linear path returns the
// input unchanged.
func TestProcess_IdentityBitExact(t *testing.T) {
	r, err := New(1, 1)
	require.NoError(t, err)

	in := []float64{0.5, -0.25, 1, 0, -1, 0.125, 0.75, -0.625}
	out := make([]float64, len(in))
	n, err := r.Process(in, out)
	require.NoError(t, err)
	require.Equal(t, len(in), n)
	assert.Equal(t, in, out)
}

// TestProcess_BufferTooSmall verifies the capacity gate at the API level.
func TestProcess_BufferTooSmall(t *testing.T) {
	r, err := New(2, 1)
	require.NoError(t, err)

	_, err = r.Process([]float64{1, 2, 3}, make([]float64, 2))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

// TestProcessFloat32 verifies the float32 entry point.
func TestProcessFloat32(t *testing.T) {
	r, err := New(2, 1)
	require.NoError(t, err)

	in := []float32{0, 1, 2}
	out := make([]float32, OutputLen(len(in), 2, 1))
	n, err := r.ProcessFloat32(in, out)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	assert.InDelta(t, 0.5, float64(out[1]), apiTolerance)
	assert.InDelta(t, 1.5, float64(out[3]), apiTolerance)
}

// TestOutputLen_PublicFormula spot-checks the exported length helper.
func TestOutputLen_PublicFormula(t *testing.T) {
	assert.Equal(t, 0, OutputLen(0, 2, 1))
	assert.Equal(t, 1, OutputLen(1, 1, 7))
	assert.Equal(t, 7, OutputLen(4, 2, 1))
	assert.Equal(t, 3, OutputLen(5, 1, 2))
	assert.Equal(t, 342, OutputLen(1024, 1, 3))
}

// TestInterpolate_Reexports smoke-tests the public kernel wrappers.
func TestInterpolate_Reexports(t *testing.T) {
	x := []float64{0, 1, 3, 6}

	y, err := InterpolateLinear(x, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, y, apiTolerance)

	y, err = InterpolateCubic(x, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, y)

	_, err = InterpolateLinear([]float64{}, 0.0)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
