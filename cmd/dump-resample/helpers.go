package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	resampler "github.com/tphakala/go-rational-resampler"
)

// parseQualitySpec maps a CLI quality string to a quality level and tap
// count. "sinc" may carry an optional tap suffix, e.g. "sinc:48"; the other
// kernels ignore taps and get the default.
func parseQualitySpec(spec string) (resampler.Quality, uint32, error) {
	name, tapsPart, hasTaps := strings.Cut(spec, ":")

	taps := uint32(resampler.DefaultTaps)
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

// readSamples parses whitespace-separated decimal samples, one per line.
func readSamples(r io.Reader) ([]float64, error) {
	var samples []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(samples), err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples found")
	}
	return samples, nil
}
