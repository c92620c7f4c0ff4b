package engine

// Tap count limits for the windowed-sinc kernel.
const (
	// MinTaps is the smallest usable kernel: two samples each side.
	MinTaps = 4

	// MaxTaps bounds the per-output-sample convolution cost.
	MaxTaps = 128

	// DefaultTaps balances stopband attenuation against speed.
	DefaultTaps = 32
)

// maxCutoff is the passband ceiling: Nyquist of the input.
const maxCutoff = 1.0
