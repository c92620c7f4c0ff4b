// Package engine implements the rational sample-rate converter.
//
// A Converter owns the ratio, the quality selection, and the auto-tracked
// anti-alias cutoff. Processing is whole-buffer and stateless: every call maps
// output index k to the fractional input position k·den/num and interpolates
// there, so chunking input externally is sound.
package engine

import (
	"errors"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-rational-resampler/internal/filter"
	"github.com/tphakala/go-rational-resampler/internal/interp"
	"github.com/tphakala/go-rational-resampler/internal/mathutil"
)

// Float is the scalar constraint shared across the library.
type Float = interp.Float

// Quality selects the interpolation kernel used by Process.
type Quality int

const (
	// QualityLinear uses the clamped linear kernel. Fastest, no anti-aliasing.
	QualityLinear Quality = iota

	// QualityCubic uses the clamped Catmull–Rom kernel. Smoother than linear,
	// still no anti-aliasing.
	QualityCubic

	// QualitySinc uses a Hann-windowed sinc kernel whose cutoff tracks the
	// ratio, attenuating aliasing when downsampling.
	QualitySinc
)

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityLinear:
		return "linear"
	case QualityCubic:
		return "cubic"
	case QualitySinc:
		return "sinc"
	default:
		return "unknown"
	}
}

// Errors returned by the converter.
var (
	// ErrInvalidRatio indicates a ratio with a zero component.
	ErrInvalidRatio = errors.New("engine: ratio components must be positive")

	// ErrInvalidQuality indicates an unknown quality value.
	ErrInvalidQuality = errors.New("engine: unknown quality")

	// ErrBufferTooSmall indicates the output buffer cannot hold the
	// expected number of output samples.
	ErrBufferTooSmall = errors.New("engine: output buffer too small")
)

// Converter is the sample-rate conversion handle. It is exclusively owned:
// concurrent use of one Converter from multiple goroutines is not supported,
// but distinct Converters are fully independent.
type Converter struct {
	num    uint32
	den    uint32
	qual   Quality
	taps   uint32
	cutoff float64

	// Scratch sized MaxTaps once at construction so Process never allocates.
	// window holds the Hann taper for the current tap count; weights and
	// samples are the per-output-sample convolution operands, kept in
	// float64 so accumulation stays in double precision for both scalar
	// types.
	window  []float64
	weights []float64
	samples []float64
}

// New creates a converter with the given output/input ratio num/den and
// default quality (linear, 32 taps).
func New(num, den uint32) (*Converter, error) {
	if num == 0 || den == 0 {
		return nil, ErrInvalidRatio
	}
	c := &Converter{
		num:     num,
		den:     den,
		qual:    QualityLinear,
		taps:    DefaultTaps,
		cutoff:  cutoffFor(num, den),
		window:  make([]float64, MaxTaps),
		weights: make([]float64, MaxTaps),
		samples: make([]float64, MaxTaps),
	}
	filter.HannInto(c.window[:c.taps])
	return c, nil
}

// SetRatio updates the conversion ratio and recomputes the cutoff.
// The converter is unchanged on error.
func (c *Converter) SetRatio(num, den uint32) error {
	if num == 0 || den == 0 {
		return ErrInvalidRatio
	}
	c.num = num
	c.den = den
	c.cutoff = cutoffFor(num, den)
	return nil
}

// SetQuality selects the kernel and the sinc tap count. The tap count is
// clamped to [MinTaps, MaxTaps] and rounded up to even, so the stored value
// is always directly usable by the sinc path. The converter is unchanged on
// error.
func (c *Converter) SetQuality(q Quality, taps uint32) error {
	switch q {
	case QualityLinear, QualityCubic, QualitySinc:
	default:
		return ErrInvalidQuality
	}
	if taps < MinTaps {
		taps = MinTaps
	}
	if taps > MaxTaps {
		taps = MaxTaps
	}
	if taps%2 == 1 {
		taps++
	}
	c.qual = q
	c.taps = taps
	filter.HannInto(c.window[:taps])
	return nil
}

// Ratio returns the current num/den ratio.
func (c *Converter) Ratio() (num, den uint32) {
	return c.num, c.den
}

// Quality returns the selected kernel.
func (c *Converter) Quality() Quality {
	return c.qual
}

// Taps returns the stored sinc tap count.
func (c *Converter) Taps() uint32 {
	return c.taps
}

// Cutoff returns the normalized anti-alias cutoff, min(1, num/den).
func (c *Converter) Cutoff() float64 {
	return c.cutoff
}

func cutoffFor(num, den uint32) float64 {
	return math.Min(maxCutoff, float64(num)/float64(den))
}

// OutputLen returns the number of output samples a Process call produces for
// inLen input samples at ratio num/den: floor((inLen-1)*num/den)+1, mapping
// the first and last input samples onto output samples. Zero input yields
// zero output.
func OutputLen(inLen int, num, den uint32) int {
	if inLen <= 0 {
		return 0
	}
	return int(uint64(inLen-1)*uint64(num)/uint64(den)) + 1
}

// Process resamples in into out and returns the number of samples written.
// out must have room for OutputLen(len(in)) samples; on error out is
// untouched. Output samples are produced in ascending index order.
func Process[F Float](c *Converter, in, out []F) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}
	outN := OutputLen(len(in), c.num, c.den)
	if len(out) < outN {
		return 0, ErrBufferTooSmall
	}

	invRatio := float64(c.den) / float64(c.num)

	switch c.qual {
	case QualityCubic:
		for k := 0; k < outN; k++ {
			pos := float64(k) * invRatio
			// Kernel errors are impossible here: in is non-empty.
			out[k], _ = interp.Cubic(in, F(pos))
		}
	case QualitySinc:
		processSinc(c, in, out[:outN])
	default:
		for k := 0; k < outN; k++ {
			pos := float64(k) * invRatio
			out[k], _ = interp.Linear(in, F(pos))
		}
	}
	return outN, nil
}

// processSinc runs the anti-aliased windowed-sinc path.
//
// Each output sample convolves taps input samples around the fractional
// position with weights sinc(cutoff·d)·hann. Scaling the sinc argument by
// cutoff = min(1, num/den) narrows the passband exactly when downsampling.
// Out-of-range taps read the nearest endpoint (zero-order hold), and the
// accumulator is divided by the weight sum, which cancels the gain bias from
// kernel truncation and edge clamping.
func processSinc[F Float](c *Converter, in, out []F) {
	n := len(in)
	taps := int(c.taps)
	half := taps / 2
	window := c.window[:taps]
	weights := c.weights[:taps]
	samples := c.samples[:taps]
	invRatio := float64(c.den) / float64(c.num)

	for k := range out {
		pos := float64(k) * invRatio
		center := int(math.Floor(pos))

		for j := 0; j < taps; j++ {
			idx := center + j - half
			d := float64(idx) - pos
			weights[j] = mathutil.Sinc(c.cutoff*d) * window[j]
			if idx < 0 {
				idx = 0
			} else if idx > n-1 {
				idx = n - 1
			}
			samples[j] = float64(in[idx])
		}

		acc := f64.DotProductUnsafe(samples, weights)
		if wsum := f64.Sum(weights); wsum != 0 {
			acc /= wsum
		}
		out[k] = F(acc)
	}
}
