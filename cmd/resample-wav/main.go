// Command resample-wav converts WAV audio files to a target sample rate.
//
// Usage:
//
//	resample-wav -rate 48000 input.wav output.wav
//	resample-wav -rate 16000 -quality sinc -taps 64 input.wav output.wav
//
// The whole file is decoded, each channel is resampled independently at the
// reduced rational ratio targetRate/sourceRate, and the result is re-encoded
// at the source bit depth.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	resampler "github.com/tphakala/go-rational-resampler"
)

const (
	defaultRate    = 48000
	defaultQuality = "sinc"
	defaultTaps    = resampler.DefaultTaps

	minRequiredArgs = 2

	// wavAudioFormatPCM is the RIFF fmt tag for integer PCM.
	wavAudioFormatPCM = 1
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("resample-wav: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Target sample rate in Hz (e.g. 16000, 44100, 48000)")
	quality := flag.String("quality", defaultQuality, "Kernel: linear, cubic, or sinc[:taps]")
	taps := flag.Uint("taps", defaultTaps, "Sinc tap count (clamped to [4,128], rounded up to even)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	q, qualityTaps, err := parseQualitySpec(*quality)
	if err != nil {
		return err
	}
	if qualityTaps == 0 {
		qualityTaps = uint32(*taps)
	}

	start := time.Now()
	stats, err := resampleWAV(inputPath, outputPath, *rate, q, qualityTaps, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (ratio %d/%d, %d channels, %d-bit, %s)\n",
		stats.inputRate, stats.outputRate, stats.num, stats.den,
		stats.channels, stats.bitDepth, q)
	fmt.Printf("  %d samples -> %d samples in %.2fs\n",
		stats.inputFrames, stats.outputFrames, elapsed.Seconds())
	return nil
}

type resampleStats struct {
	inputRate    int
	outputRate   int
	num, den     uint32
	channels     int
	bitDepth     int
	inputFrames  int
	outputFrames int
}

func resampleWAV(inputPath, outputPath string, targetRate int, q resampler.Quality, taps uint32, verbose bool) (*resampleStats, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", inputPath, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%s: no audio data", inputPath)
	}

	srcRate := buf.Format.SampleRate
	channels := buf.Format.NumChannels
	bitDepth := int(dec.BitDepth)
	if srcRate == targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", targetRate)
	}

	num, den, err := resampler.RatioForRates(uint32(srcRate), uint32(targetRate))
	if err != nil {
		return nil, err
	}

	if verbose {
		log.Printf("input: %d Hz, %d channels, %d-bit", srcRate, channels, bitDepth)
		log.Printf("ratio: %d/%d, quality: %s, taps: %d", num, den, q, taps)
	}

	r, err := resampler.New(num, den)
	if err != nil {
		return nil, err
	}
	if err := r.SetQuality(q, taps); err != nil {
		return nil, err
	}

	// Deinterleave, resample each channel independently, reinterleave.
	chans := deinterleave(buf.Data, channels, bitDepth)
	inFrames := 0
	if channels > 0 {
		inFrames = len(buf.Data) / channels
	}
	outFrames := resampler.OutputLen(inFrames, num, den)

	outChans := make([][]float64, channels)
	for ch := range chans {
		out := make([]float64, outFrames)
		n, err := r.Process(chans[ch], out)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		outChans[ch] = out[:n]
	}

	outBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: targetRate},
		Data:           interleave(outChans, bitDepth),
		SourceBitDepth: bitDepth,
	}

	of, err := os.Create(outputPath)
	if err != nil {
		return nil, err
	}
	enc := wav.NewEncoder(of, targetRate, bitDepth, channels, wavAudioFormatPCM)
	if err := enc.Write(outBuf); err != nil {
		_ = enc.Close()
		_ = of.Close()
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = of.Close()
		return nil, err
	}
	if err := of.Close(); err != nil {
		return nil, err
	}

	return &resampleStats{
		inputRate:    srcRate,
		outputRate:   targetRate,
		num:          num,
		den:          den,
		channels:     channels,
		bitDepth:     bitDepth,
		inputFrames:  inFrames,
		outputFrames: outFrames,
	}, nil
}
