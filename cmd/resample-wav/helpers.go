package main

import (
	"fmt"
	"strconv"
	"strings"

	resampler "github.com/tphakala/go-rational-resampler"
)

// Sample format constants.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// parseQualitySpec maps a CLI quality string to a quality level. A "sinc:48"
// style suffix overrides the tap count; a returned tap count of zero means
// the caller's -taps flag applies.
func parseQualitySpec(spec string) (resampler.Quality, uint32, error) {
	name, tapsPart, hasTaps := strings.Cut(spec, ":")

	var taps uint32
	if hasTaps {
		v, err := strconv.ParseUint(tapsPart, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid tap count %q: %w", tapsPart, err)
		}
		taps = uint32(v)
	}

	switch strings.ToLower(name) {
	case "linear":
		return resampler.QualityLinear, taps, nil
	case "cubic":
		return resampler.QualityCubic, taps, nil
	case "sinc":
		return resampler.QualitySinc, taps, nil
	default:
		return 0, 0, fmt.Errorf("unknown quality %q (want linear, cubic, or sinc[:taps])", name)
	}
}

// maxValue returns the full-scale sample value for the given bit depth.
func maxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave converts interleaved int samples to per-channel float slices
// normalized to [-1, 1].
func deinterleave(data []int, channels, bitDepth int) [][]float64 {
	frames := len(data) / channels
	invMax := 1 / maxValue(bitDepth)

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(data[base+ch]) * invMax
		}
	}
	return out
}

// interleave converts per-channel float slices back to interleaved int
// samples, clamping to full scale.
func interleave(chans [][]float64, bitDepth int) []int {
	if len(chans) == 0 || len(chans[0]) == 0 {
		return nil
	}
	channels := len(chans)
	frames := len(chans[0])
	maxVal := maxValue(bitDepth)

	out := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := 0; ch < channels; ch++ {
			s := chans[ch][i]
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			out[base+ch] = int(s * maxVal)
		}
	}
	return out
}
