// Command dump-resample resamples a signal and writes the result to stdout,
// one decimal number per line.
//
// Usage:
//
//	dump-resample --num 2 --den 1 --quality sinc:48 --n 256 --seed 7
//	dump-resample --num 1 --den 3 --quality linear --infile samples.txt
//
// Without --infile the input is n pseudo-random samples in [-1, 1] generated
// from the given seed, which makes runs reproducible for comparison
// harnesses. With --infile, whitespace-separated decimal samples are read
// from the file, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	resampler "github.com/tphakala/go-rational-resampler"
)

// CLI defaults matching the historical dump tool.
const (
	defaultNum     = 2
	defaultDen     = 1
	defaultSamples = 256
	defaultQuality = "linear"

	// Extra output headroom beyond ceil(n*L/M); the engine's exact length
	// formula always fits inside it.
	outputCapMargin = 8
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dump-resample: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	num := flag.Uint("num", defaultNum, "interpolation factor L (output rate numerator)")
	den := flag.Uint("den", defaultDen, "decimation factor M (output rate denominator)")
	quality := flag.String("quality", defaultQuality, "kernel: linear, cubic, or sinc[:taps]")
	n := flag.Uint("n", defaultSamples, "number of generated input samples (ignored with --infile)")
	seed := flag.Uint("seed", 0, "seed for the generated input")
	infile := flag.String("infile", "", "read input samples from this file instead of generating them")
	flag.Parse()

	q, taps, err := parseQualitySpec(*quality)
	if err != nil {
		return err
	}

	r, err := resampler.New(uint32(*num), uint32(*den))
	if err != nil {
		return err
	}
	if err := r.SetQuality(q, taps); err != nil {
		return err
	}

	var in []float64
	if *infile != "" {
		f, err := os.Open(*infile)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		in, err = readSamples(f)
		if err != nil {
			return fmt.Errorf("%s: %w", *infile, err)
		}
	} else {
		in = generateInput(int(*n), int64(*seed))
	}

	// ceil(n*L/M) plus margin always covers floor((n-1)*L/M)+1.
	outCap := (uint64(len(in))*uint64(*num)+uint64(*den)-1)/uint64(*den) + outputCapMargin
	out := make([]float64, outCap)

	outN, err := r.Process(in, out)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer func() { _ = w.Flush() }()
	for _, v := range out[:outN] {
		if _, err := fmt.Fprintf(w, "%g\n", v); err != nil {
			return err
		}
	}
	return nil
}

// generateInput produces n pseudo-random samples uniform in [-1, 1].
func generateInput(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	in := make([]float64, n)
	for i := range in {
		in[i] = rng.Float64()*2 - 1
	}
	return in
}
