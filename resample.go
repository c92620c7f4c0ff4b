package resampler

import (
	"github.com/tphakala/go-rational-resampler/internal/engine"
	"github.com/tphakala/go-rational-resampler/internal/interp"
)

// Float is the scalar constraint for the generic API: float32 or float64.
type Float = interp.Float

// Quality selects the interpolation kernel used by Process.
type Quality = engine.Quality

// Quality levels, from fastest to highest fidelity.
const (
	QualityLinear = engine.QualityLinear
	QualityCubic  = engine.QualityCubic
	QualitySinc   = engine.QualitySinc
)

// Tap count limits for the windowed-sinc kernel.
const (
	MinTaps     = engine.MinTaps
	MaxTaps     = engine.MaxTaps
	DefaultTaps = engine.DefaultTaps
)

// Errors returned by the package. All are comparable with errors.Is.
var (
	// ErrInvalidRatio indicates a ratio with a zero component.
	ErrInvalidRatio = engine.ErrInvalidRatio

	// ErrInvalidQuality indicates an unknown quality value.
	ErrInvalidQuality = engine.ErrInvalidQuality

	// ErrBufferTooSmall indicates the output buffer cannot hold the expected
	// number of output samples.
	ErrBufferTooSmall = engine.ErrBufferTooSmall

	// ErrEmptyInput indicates an interpolation kernel was given no samples.
	ErrEmptyInput = interp.ErrEmptyInput
)

// Resampler converts uniformly-sampled signals between rates related by a
// rational ratio L/M. The zero value is not usable; create handles with New.
//
// A Resampler is exclusively owned by its caller. It holds only a small
// constant-size configuration record plus fixed scratch for the sinc kernel,
// and it never retains references to caller buffers.
type Resampler struct {
	conv *engine.Converter
}

// New creates a resampler with output/input ratio num/den and default
// quality (QualityLinear, DefaultTaps). Returns ErrInvalidRatio when either
// component is zero.
func New(num, den uint32) (*Resampler, error) {
	conv, err := engine.New(num, den)
	if err != nil {
		return nil, err
	}
	return &Resampler{conv: conv}, nil
}

// SetRatio updates the conversion ratio. The anti-alias cutoff is recomputed
// together with the ratio, so a subsequent Process call never observes a
// stale combination. The handle is unchanged on error.
func (r *Resampler) SetRatio(num, den uint32) error {
	return r.conv.SetRatio(num, den)
}

// SetQuality selects the interpolation kernel and, for QualitySinc, the tap
// count. Tap counts are clamped to [MinTaps, MaxTaps] and rounded up to
// even. The handle is unchanged on error.
func (r *Resampler) SetQuality(q Quality, taps uint32) error {
	return r.conv.SetQuality(q, taps)
}

// Ratio returns the current num/den ratio.
func (r *Resampler) Ratio() (num, den uint32) {
	return r.conv.Ratio()
}

// Quality returns the selected kernel.
func (r *Resampler) Quality() Quality {
	return r.conv.Quality()
}

// Taps returns the stored sinc tap count.
func (r *Resampler) Taps() uint32 {
	return r.conv.Taps()
}

// Cutoff returns the normalized anti-alias cutoff, min(1, num/den).
func (r *Resampler) Cutoff() float64 {
	return r.conv.Cutoff()
}

// Process resamples in into out and returns the number of samples written,
// OutputLen(len(in), num, den). out must have at least that much room;
// otherwise ErrBufferTooSmall is returned and out is untouched. An empty
// input yields zero output and no error.
func (r *Resampler) Process(in, out []float64) (int, error) {
	return engine.Process(r.conv, in, out)
}

// ProcessFloat32 is like Process for float32 buffers. The sinc path still
// accumulates in float64 internally.
func (r *Resampler) ProcessFloat32(in, out []float32) (int, error) {
	return engine.Process(r.conv, in, out)
}

// OutputLen returns the number of samples Process writes for inLen input
// samples at ratio num/den: floor((inLen−1)·num/den)+1, or 0 for empty
// input. It is exact integer arithmetic, safe for sizing output buffers.
func OutputLen(inLen int, num, den uint32) int {
	return engine.OutputLen(inLen, num, den)
}
