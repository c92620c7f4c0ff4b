// Package resampler provides rational-ratio sample-rate conversion for
// uniformly-sampled real-valued signals in pure Go.
//
// The conversion ratio is expressed as two positive integers L/M: L is the
// interpolation factor and M the decimation factor. A [Resampler] maps each
// output index k to the fractional input position k·M/L and interpolates
// there, so processing is whole-buffer and stateless: chunking input
// externally is sound, and a handle can be reused across buffers.
//
// # Quality levels
//
//   - [QualityLinear]: clamped linear interpolation. Fastest, no
//     anti-aliasing. This is the default.
//   - [QualityCubic]: clamped Catmull–Rom cubic interpolation. Smoother
//     reconstruction than linear, still no anti-aliasing.
//   - [QualitySinc]: Hann-windowed sinc kernel with a configurable tap
//     count. The kernel cutoff automatically tracks min(1, L/M), so
//     downsampling is anti-aliased without any extra configuration.
//
// # Quick start
//
//	r, err := resampler.New(2, 1) // upsample by 2
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.SetQuality(resampler.QualitySinc, 32); err != nil {
//	    log.Fatal(err)
//	}
//
//	out := make([]float64, resampler.OutputLen(len(in), 2, 1))
//	n, err := r.Process(in, out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out = out[:n]
//
// One-shot helpers [Resample] and [ResampleFloat32] allocate the output for
// you. The pure interpolation kernels are exposed directly as
// [InterpolateLinear] and [InterpolateCubic] for callers that need a single
// sample at a fractional position.
//
// # Precision
//
// Both float64 and float32 buffers are supported ([Resampler.Process] and
// [Resampler.ProcessFloat32]). The windowed-sinc path accumulates in float64
// regardless of the buffer type and casts once on store.
//
// # Thread safety
//
// A Resampler is exclusively owned: concurrent calls on one handle are not
// supported. Distinct handles share no state and may be used concurrently
// without synchronization.
//
// The [spectral] subpackage is an independent sibling providing
// Hermitian-packed real FFTs over gonum with a cached plan table; the
// resampling engine does not depend on it.
package resampler
