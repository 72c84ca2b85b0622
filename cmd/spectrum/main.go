// Command spectrum prints the packed magnitude spectrum of one window of a
// WAV file, using the float32 real FFT plan.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/tinyfft"
)

func main() {
	var (
		inPath = flag.String("in", "", "input WAV file")
		size   = flag.Int("n", 1024, "window size in samples (power of two)")
		offset = flag.Int("offset", 0, "sample offset of the window")
	)

	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	samples, rate, err := readMono(*inPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *inPath, err)
	}

	if *offset < 0 || *offset+*size > len(samples) {
		log.Fatalf("window [%d, %d) out of range: file has %d samples", *offset, *offset+*size, len(samples))
	}

	twiddles := make([]complex64, *size/2)
	bitrev := make([]int, *size/2)

	plan, err := tinyfft.NewRealPlan32(twiddles, bitrev, *size)
	if err != nil {
		log.Fatalf("creating plan for n=%d: %v", *size, err)
	}

	buf := make([]float32, *size)
	copy(buf, samples[*offset:])

	if err := plan.Process(buf, false); err != nil {
		log.Fatalf("transform: %v", err)
	}

	binHz := float64(rate) / float64(*size)

	fmt.Printf("%10s  %12s\n", "freq [Hz]", "magnitude")
	fmt.Printf("%10.1f  %12.6f\n", 0.0, math.Abs(float64(buf[0])))

	for k := 1; k < *size/2; k++ {
		mag := math.Hypot(float64(buf[2*k]), float64(buf[2*k+1]))
		fmt.Printf("%10.1f  %12.6f\n", float64(k)*binHz, mag)
	}

	fmt.Printf("%10.1f  %12.6f\n", float64(*size/2)*binHz, math.Abs(float64(buf[1])))
}

// readMono decodes a WAV file and mixes it down to normalized mono float32
// samples.
func readMono(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding PCM data: %w", err)
	}

	return mixdown(pcm), int(dec.SampleRate), nil
}

// mixdown averages the channels of an integer PCM buffer and scales the
// result to [-1, 1).
func mixdown(pcm *audio.IntBuffer) []float32 {
	channels := pcm.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	depth := pcm.SourceBitDepth
	if depth < 1 {
		depth = 16
	}

	scale := float32(int64(1) << (depth - 1))
	frames := len(pcm.Data) / channels
	out := make([]float32, frames)

	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += pcm.Data[i*channels+c]
		}

		out[i] = float32(sum) / (float32(channels) * scale)
	}

	return out
}
