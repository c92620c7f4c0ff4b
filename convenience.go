package resampler

// Resample is a one-shot helper: it creates a handle for ratio num/den,
// applies the quality level with its default tap count, and returns a
// freshly allocated output of exactly the right length.
func Resample(in []float64, num, den uint32, q Quality) ([]float64, error) {
	r, err := New(num, den)
	if err != nil {
		return nil, err
	}
	if err := r.SetQuality(q, DefaultTaps); err != nil {
		return nil, err
	}

	out := make([]float64, OutputLen(len(in), num, den))
	n, err := r.Process(in, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// ResampleFloat32 is the float32 variant of Resample.
func ResampleFloat32(in []float32, num, den uint32, q Quality) ([]float32, error) {
	r, err := New(num, den)
	if err != nil {
		return nil, err
	}
	if err := r.SetQuality(q, DefaultTaps); err != nil {
		return nil, err
	}

	out := make([]float32, OutputLen(len(in), num, den))
	n, err := r.ProcessFloat32(in, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// RatioForRates reduces an inputRate→outputRate conversion to the smallest
// equivalent num/den ratio. Rates must be positive.
func RatioForRates(inputRate, outputRate uint32) (num, den uint32, err error) {
	if inputRate == 0 || outputRate == 0 {
		return 0, 0, ErrInvalidRatio
	}
	g := gcd(outputRate, inputRate)
	return outputRate / g, inputRate / g, nil
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
